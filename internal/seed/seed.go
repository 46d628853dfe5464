package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/unischedule/internal/db"
	"github.com/yigit/unischedule/internal/pkg/dberrors"
)

// sampleStep inserts the sample rows of one table. Rows carry explicit ids that the
// foreign keys of later steps reference; sequences are moved past them afterwards.
type sampleStep struct {
	table string
	sql   string
}

var sampleData = []sampleStep{
	{"DEPARTMENT", `INSERT INTO DEPARTMENT (id, name) VALUES
		(1, 'Ciência da Computação'),
		(2, 'Matemática'),
		(3, 'Física'),
		(4, 'Engenharia'),
		(5, 'Administração')`},
	{"TITLE", `INSERT INTO TITLE (id, name) VALUES
		(1, 'Doutor'),
		(2, 'Mestre'),
		(3, 'Especialista'),
		(4, 'Bacharel')`},
	{"PROFESSOR", `INSERT INTO PROFESSOR (id, department_id, title_id, name) VALUES
		(1, 1, 1, 'Prof. Dr. João Silva'),
		(2, 1, 2, 'Prof. MSc. Maria Santos'),
		(3, 2, 1, 'Prof. Dr. Carlos Lima'),
		(4, 3, 2, 'Prof. MSc. Ana Costa'),
		(5, 4, 1, 'Prof. Dr. Pedro Souza'),
		(6, 5, 3, 'Prof. Esp. Lucia Ferreira')`},
	{"BUILDING", `INSERT INTO BUILDING (id, name) VALUES
		(1, 'Prédio Central'),
		(2, 'Laboratórios'),
		(3, 'Anexo A'),
		(4, 'Biblioteca')`},
	{"ROOM", `INSERT INTO ROOM (id, building_id, number, capacity) VALUES
		(1, 1, '101', 50),
		(2, 1, '102', 45),
		(3, 1, '201', 60),
		(4, 2, 'Lab-01', 30),
		(5, 2, 'Lab-02', 25),
		(6, 3, 'A-01', 40),
		(7, 3, 'A-02', 35),
		(8, 4, 'Aud-01', 200)`},
	{"SUBJECT", `INSERT INTO SUBJECT (id, subject_id, code, name, credits) VALUES
		(1, 'CC001', 'ALG001', 'Algoritmos I', 4),
		(2, 'CC002', 'BD001', 'Banco de Dados', 4),
		(3, 'CC003', 'POO001', 'Programação Orientada a Objetos', 6),
		(4, 'MAT001', 'CALC001', 'Cálculo I', 6),
		(5, 'MAT002', 'CALC002', 'Cálculo II', 6),
		(6, 'FIS001', 'FIS001', 'Física I', 4),
		(7, 'ENG001', 'EST001', 'Estruturas', 4),
		(8, 'ADM001', 'CONT001', 'Contabilidade', 4)`},
	{"SUBJECT_PREREQUISITE", `INSERT INTO SUBJECT_PREREQUISITE (id, subject_id, prerequisite_id) VALUES
		(1, 2, 1),
		(2, 3, 1),
		(3, 5, 4)`},
	{"CLASS", `INSERT INTO CLASS (id, subject_id, year, semester, code, professor_id) VALUES
		(1, 1, 2024, 1, 'ALG001-T01', 1),
		(2, 1, 2024, 1, 'ALG001-T02', 2),
		(3, 2, 2024, 1, 'BD001-T01', 2),
		(4, 3, 2024, 1, 'POO001-T01', 1),
		(5, 4, 2024, 1, 'CALC001-T01', 3),
		(6, 6, 2024, 1, 'FIS001-T01', 4),
		(7, 7, 2024, 1, 'EST001-T01', 5),
		(8, 8, 2024, 1, 'CONT001-T01', 6)`},
	{"CLASS_SCHEDULE", `INSERT INTO CLASS_SCHEDULE (id, class_id, room_id, day_of_week, start_time, end_time) VALUES
		(1, 1, 1, 2, '08:00:00', '10:00:00'),
		(2, 1, 1, 4, '08:00:00', '10:00:00'),
		(3, 2, 2, 2, '10:00:00', '12:00:00'),
		(4, 2, 2, 4, '10:00:00', '12:00:00'),
		(5, 3, 4, 3, '14:00:00', '16:00:00'),
		(6, 3, 4, 5, '14:00:00', '16:00:00'),
		(7, 4, 5, 2, '14:00:00', '17:00:00'),
		(8, 5, 3, 3, '08:00:00', '11:00:00'),
		(9, 5, 3, 5, '08:00:00', '11:00:00'),
		(10, 6, 6, 2, '16:00:00', '18:00:00'),
		(11, 6, 6, 4, '16:00:00', '18:00:00'),
		(12, 7, 7, 3, '19:00:00', '21:00:00'),
		(13, 8, 8, 6, '08:00:00', '12:00:00')`},
}

// statsTables are counted and logged after seeding, with their log field names
var statsTables = []struct {
	table string
	field string
}{
	{"PROFESSOR", "professors"},
	{"ROOM", "rooms"},
	{"SUBJECT", "subjects"},
	{"CLASS", "classes"},
	{"CLASS_SCHEDULE", "schedules"},
}

// resetSequenceSQL moves the table's id sequence past the highest stored id
func resetSequenceSQL(table string) string {
	return fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))", table, table)
}

// Stats holds row counts of the main tables
type Stats map[string]int64

func countRows(ctx context.Context, conn db.DBTX, table string) (int64, error) {
	var count int64
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", table, err)
	}
	return count, nil
}

// CreateSampleData inserts the sample dataset in a single transaction.
// It does nothing when DEPARTMENT already has rows. Returns whether data was inserted.
func CreateSampleData(ctx context.Context, conn db.DBTX, lgr zerolog.Logger) (bool, error) {
	lgr.Info().Msg("Checking for existing sample data...")

	existing, err := countRows(ctx, conn, "DEPARTMENT")
	if err != nil {
		return false, err
	}
	if existing > 0 {
		lgr.Info().Int64("departments", existing).Msg("Data already present, skipping seed")
		return false, nil
	}

	err = db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		for _, step := range sampleData {
			tag, err := tx.Exec(ctx, step.sql)
			switch {
			case dberrors.IsUniqueViolation(err):
				return fmt.Errorf("failed to seed %s, rows already present: %w", step.table, err)
			case err != nil:
				return fmt.Errorf("failed to seed %s: %w", step.table, err)
			}
			lgr.Debug().Str("table", step.table).Int64("rows", tag.RowsAffected()).Msg("Seeded table")
		}
		for _, step := range sampleData {
			if _, err := tx.Exec(ctx, resetSequenceSQL(step.table)); err != nil {
				return fmt.Errorf("failed to reset %s id sequence: %w", step.table, err)
			}
		}
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Sample data insert failed, transaction rolled back")
		return false, err
	}

	lgr.Info().Msg("Sample data inserted")

	stats, err := CollectStats(ctx, conn)
	if err != nil {
		lgr.Warn().Err(err).Msg("Could not collect table statistics")
		return true, nil
	}
	event := lgr.Info()
	for _, s := range statsTables {
		event = event.Int64(s.field, stats[s.field])
	}
	event.Msg("Database statistics")

	return true, nil
}

// CollectStats counts the rows of the main tables
func CollectStats(ctx context.Context, conn db.DBTX) (Stats, error) {
	stats := make(Stats, len(statsTables))
	for _, s := range statsTables {
		count, err := countRows(ctx, conn, s.table)
		if err != nil {
			return nil, err
		}
		stats[s.field] = count
	}
	return stats, nil
}
