package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/unischedule/internal/app/models"
	"github.com/yigit/unischedule/internal/db"
	"github.com/yigit/unischedule/internal/pkg/apperrors"
	"github.com/yigit/unischedule/internal/pkg/dberrors"
	"github.com/yigit/unischedule/internal/pkg/logger"
)

// RoomRepository handles room occupancy and availability queries
type RoomRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(conn db.DBTX) *RoomRepository {
	return &RoomRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetOccupancy lists every room with each of its schedule slots, one row per slot.
// Rooms without slots yield a single FREE row. Ordered by room, day, start time.
func (r *RoomRepository) GetOccupancy(ctx context.Context) ([]*models.RoomOccupancy, error) {
	sql, args, err := r.sb.Select(
		"r.id",
		"COALESCE(r.number, '')",
		"b.name",
		"COALESCE(cs.day_of_week, 0)",
		"COALESCE(to_char(cs.start_time, 'HH24:MI:SS'), '')",
		"COALESCE(to_char(cs.end_time, 'HH24:MI:SS'), '')",
		"COALESCE(s.name, '')",
		"COALESCE(c.code, '')",
		"CASE WHEN cs.id IS NOT NULL THEN 'OCCUPIED' ELSE 'FREE' END AS status",
	).
		From("ROOM r").
		Join("BUILDING b ON r.building_id = b.id").
		LeftJoin("CLASS_SCHEDULE cs ON r.id = cs.room_id").
		LeftJoin("CLASS c ON cs.class_id = c.id").
		LeftJoin("SUBJECT s ON c.subject_id = s.id").
		OrderBy("r.id", "cs.day_of_week", "cs.start_time").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building room occupancy SQL")
		return nil, fmt.Errorf("failed to build room occupancy query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing room occupancy query")
		return nil, queryError("room occupancy", err)
	}
	defer rows.Close()

	occupancy := []*models.RoomOccupancy{}
	for rows.Next() {
		var (
			o                                 models.RoomOccupancy
			day                               int64
			start, end, subject, code, status string
		)
		if err := rows.Scan(
			&o.RoomID,
			&o.RoomNumber,
			&o.BuildingName,
			&day,
			&start,
			&end,
			&subject,
			&code,
			&status,
		); err != nil {
			return nil, fmt.Errorf("error scanning room occupancy row: %w", err)
		}

		o.Status = models.SlotStatus(status)
		if o.Occupied() {
			d := models.DayOfWeek(day)
			o.DayOfWeek = &d
			o.StartTime = &start
			o.EndTime = &end
			o.SubjectName = &subject
			o.ClassCode = &code
		}
		occupancy = append(occupancy, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room occupancy rows: %w", err)
	}

	return occupancy, nil
}

// GetAvailable returns the rooms with no slot on q.DayOfWeek overlapping [q.StartTime, q.EndTime).
// Intervals that only touch at an endpoint do not overlap.
func (r *RoomRepository) GetAvailable(ctx context.Context, q models.AvailabilityQuery) ([]*models.AvailableRoom, error) {
	sql, args, err := r.sb.Select(
		"r.id",
		"COALESCE(r.number, '')",
		"b.name",
	).
		Distinct().
		From("ROOM r").
		Join("BUILDING b ON r.building_id = b.id").
		Where(squirrel.Expr(
			`NOT EXISTS (
				SELECT 1 FROM CLASS_SCHEDULE cs
				WHERE cs.room_id = r.id
				AND cs.day_of_week = ?
				AND NOT (cs.end_time <= ?::time OR cs.start_time >= ?::time)
			)`,
			int(q.DayOfWeek), q.StartTime, q.EndTime,
		)).
		OrderBy("b.name", "r.id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building room availability SQL")
		return nil, fmt.Errorf("failed to build room availability query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing room availability query")
		return nil, availabilityError(err)
	}
	defer rows.Close()

	rooms := []*models.AvailableRoom{}
	for rows.Next() {
		room := &models.AvailableRoom{}
		if err := rows.Scan(&room.RoomID, &room.RoomNumber, &room.BuildingName); err != nil {
			return nil, fmt.Errorf("error scanning available room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, availabilityError(err)
	}

	return rooms, nil
}

// availabilityError maps values PostgreSQL could not convert to a bad request.
// With the statement cache such errors surface from rows.Err rather than Query.
func availabilityError(err error) error {
	if dberrors.IsInvalidInput(err) {
		return apperrors.NewBadRequestError(fmt.Sprintf("invalid availability window: %v", err))
	}
	return queryError("available rooms", err)
}
