package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unischedule/internal/app/models"
	"github.com/yigit/unischedule/internal/db"
	"github.com/yigit/unischedule/internal/pkg/logger"
)

// ProfessorRepository handles professor reporting queries
type ProfessorRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewProfessorRepository creates a new ProfessorRepository
func NewProfessorRepository(conn db.DBTX) *ProfessorRepository {
	return &ProfessorRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetWorkload returns weekly scheduled hours and distinct class counts for every professor,
// including professors without classes, ordered by hours descending.
func (r *ProfessorRepository) GetWorkload(ctx context.Context) ([]*models.ProfessorWorkload, error) {
	sql, args, err := r.sb.Select(
		"p.id",
		"COALESCE(p.name, '')",
		"COALESCE(d.name, '')",
		"COALESCE(t.name, '')",
		"COALESCE(SUM(EXTRACT(EPOCH FROM (cs.end_time - cs.start_time)) / 3600), 0)::float8 AS total_hours_per_week",
		"COUNT(DISTINCT c.id) AS total_classes",
	).
		From("PROFESSOR p").
		LeftJoin("DEPARTMENT d ON p.department_id = d.id").
		LeftJoin("TITLE t ON p.title_id = t.id").
		LeftJoin("CLASS c ON p.id = c.professor_id").
		LeftJoin("CLASS_SCHEDULE cs ON c.id = cs.class_id").
		GroupBy("p.id", "p.name", "d.name", "t.name").
		OrderBy("total_hours_per_week DESC", "p.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building professor workload SQL")
		return nil, fmt.Errorf("failed to build professor workload query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing professor workload query")
		return nil, queryError("professor workload", err)
	}
	defer rows.Close()

	workload := []*models.ProfessorWorkload{}
	for rows.Next() {
		w := &models.ProfessorWorkload{}
		if err := rows.Scan(
			&w.ProfessorID,
			&w.ProfessorName,
			&w.DepartmentName,
			&w.TitleName,
			&w.TotalHoursPerWeek,
			&w.TotalClasses,
		); err != nil {
			return nil, fmt.Errorf("error scanning professor workload row: %w", err)
		}
		workload = append(workload, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professor workload rows: %w", err)
	}

	return workload, nil
}

// GetSchedule returns every weekly slot taught by one professor, ordered by day then start time
func (r *ProfessorRepository) GetSchedule(ctx context.Context, professorID int64) ([]*models.ProfessorScheduleEntry, error) {
	sql, args, err := r.sb.Select(
		"p.id",
		"d.name",
		"s.name",
		"COALESCE(c.code, '')",
		"cs.day_of_week",
		"to_char(cs.start_time, 'HH24:MI:SS')",
		"to_char(cs.end_time, 'HH24:MI:SS')",
		"r.id",
		"COALESCE(r.number, '')",
		"b.name",
	).
		From("PROFESSOR p").
		Join("DEPARTMENT d ON p.department_id = d.id").
		Join("CLASS c ON p.id = c.professor_id").
		Join("SUBJECT s ON c.subject_id = s.id").
		Join("CLASS_SCHEDULE cs ON c.id = cs.class_id").
		Join("ROOM r ON cs.room_id = r.id").
		Join("BUILDING b ON r.building_id = b.id").
		Where(squirrel.Eq{"p.id": professorID}).
		OrderBy("cs.day_of_week", "cs.start_time").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building professor schedule SQL")
		return nil, fmt.Errorf("failed to build professor schedule query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("professorID", professorID).Msg("Error executing professor schedule query")
		return nil, queryError("professor schedule", err)
	}
	defer rows.Close()

	entries := []*models.ProfessorScheduleEntry{}
	for rows.Next() {
		e := &models.ProfessorScheduleEntry{}
		var day int64
		if err := rows.Scan(
			&e.ProfessorID,
			&e.DepartmentName,
			&e.SubjectName,
			&e.ClassCode,
			&day,
			&e.StartTime,
			&e.EndTime,
			&e.RoomID,
			&e.RoomNumber,
			&e.BuildingName,
		); err != nil {
			return nil, fmt.Errorf("error scanning professor schedule row: %w", err)
		}
		e.DayOfWeek = models.DayOfWeek(day)
		e.DayName = e.DayOfWeek.Name()
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professor schedule rows: %w", err)
	}

	return entries, nil
}
