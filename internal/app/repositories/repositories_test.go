package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unischedule/internal/app/models"
	"github.com/yigit/unischedule/internal/pkg/apperrors"
	"github.com/yigit/unischedule/internal/pkg/dberrors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestProfessorRepositoryGetWorkload(t *testing.T) {
	mock := newMock(t)

	rows := pgxmock.NewRows([]string{"id", "name", "department", "title", "total_hours_per_week", "total_classes"}).
		AddRow(int64(1), "Prof. Dr. Joao Silva", "Computer Science", "Doctor", 7.0, int64(2)).
		AddRow(int64(6), "Prof. Esp. Lucia Ferreira", "Administration", "Specialist", 0.0, int64(0))

	mock.ExpectQuery(`FROM PROFESSOR p LEFT JOIN DEPARTMENT d ON p.department_id = d.id`).
		WillReturnRows(rows)

	repo := NewProfessorRepository(mock)
	workload, err := repo.GetWorkload(context.Background())
	require.NoError(t, err)
	require.Len(t, workload, 2)

	assert.Equal(t, int64(1), workload[0].ProfessorID)
	assert.Equal(t, 7.0, workload[0].TotalHoursPerWeek)
	assert.Equal(t, int64(2), workload[0].TotalClasses)
	assert.Equal(t, "Administration", workload[1].DepartmentName)
	assert.Zero(t, workload[1].TotalHoursPerWeek)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessorRepositoryGetWorkloadError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM PROFESSOR p`).WillReturnError(errors.New("connection reset"))

	_, err := NewProfessorRepository(mock).GetWorkload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestProfessorRepositoryGetSchedule(t *testing.T) {
	mock := newMock(t)

	rows := pgxmock.NewRows([]string{
		"id", "department", "subject", "code", "day_of_week", "start_time", "end_time", "room_id", "number", "building",
	}).
		AddRow(int64(1), "Computer Science", "Algorithms I", "ALG001-T01", int64(2), "08:00:00", "10:00:00", int64(1), "101", "Central Building").
		AddRow(int64(1), "Computer Science", "Algorithms I", "ALG001-T01", int64(4), "08:00:00", "10:00:00", int64(1), "101", "Central Building")

	mock.ExpectQuery(`WHERE p.id = \$1`).WithArgs(int64(1)).WillReturnRows(rows)

	entries, err := NewProfessorRepository(mock).GetSchedule(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.Tuesday, entries[0].DayOfWeek)
	assert.Equal(t, "Tuesday", entries[0].DayName)
	assert.Equal(t, "Thursday", entries[1].DayName)
	assert.Equal(t, "101", entries[1].RoomNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryGetOccupancy(t *testing.T) {
	mock := newMock(t)

	rows := pgxmock.NewRows([]string{
		"id", "number", "building", "day_of_week", "start_time", "end_time", "subject", "code", "status",
	}).
		AddRow(int64(1), "101", "Central Building", int64(2), "08:00:00", "10:00:00", "Algorithms I", "ALG001-T01", "OCCUPIED").
		AddRow(int64(9), "Aud-02", "Library", int64(0), "", "", "", "", "FREE")

	mock.ExpectQuery(`FROM ROOM r JOIN BUILDING b ON r.building_id = b.id LEFT JOIN CLASS_SCHEDULE cs`).
		WillReturnRows(rows)

	occupancy, err := NewRoomRepository(mock).GetOccupancy(context.Background())
	require.NoError(t, err)
	require.Len(t, occupancy, 2)

	occupied := occupancy[0]
	assert.Equal(t, models.SlotOccupied, occupied.Status)
	require.NotNil(t, occupied.DayOfWeek)
	assert.Equal(t, models.Tuesday, *occupied.DayOfWeek)
	require.NotNil(t, occupied.StartTime)
	assert.Equal(t, "08:00:00", *occupied.StartTime)
	assert.Equal(t, "ALG001-T01", *occupied.ClassCode)

	free := occupancy[1]
	assert.Equal(t, models.SlotFree, free.Status)
	assert.Nil(t, free.DayOfWeek)
	assert.Nil(t, free.StartTime)
	assert.Nil(t, free.SubjectName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryGetAvailable(t *testing.T) {
	mock := newMock(t)

	rows := pgxmock.NewRows([]string{"id", "number", "building"}).
		AddRow(int64(2), "102", "Central Building").
		AddRow(int64(4), "Lab-01", "Laboratories")

	mock.ExpectQuery(`(?s)SELECT DISTINCT .* NOT EXISTS .*cs.day_of_week = \$1.*cs.end_time <= \$2::time OR cs.start_time >= \$3::time`).
		WithArgs(2, "09:00:00", "09:30:00").
		WillReturnRows(rows)

	rooms, err := NewRoomRepository(mock).GetAvailable(context.Background(), models.AvailabilityQuery{
		DayOfWeek: models.Tuesday,
		StartTime: "09:00:00",
		EndTime:   "09:30:00",
	})
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, int64(2), rooms[0].RoomID)
	assert.Equal(t, "Laboratories", rooms[1].BuildingName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryGetAvailableEmpty(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`NOT EXISTS`).
		WithArgs(1, "07:00:00", "22:00:00").
		WillReturnRows(pgxmock.NewRows([]string{"id", "number", "building"}))

	rooms, err := NewRoomRepository(mock).GetAvailable(context.Background(), models.AvailabilityQuery{
		DayOfWeek: models.Monday,
		StartTime: "07:00:00",
		EndTime:   "22:00:00",
	})
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestRoomRepositoryGetAvailableRejectsBadTimeLiteral(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`NOT EXISTS`).
		WithArgs(1, "7 o'clock", "08:00:00").
		WillReturnError(&pgconn.PgError{Code: dberrors.CodeInvalidDatetimeFormat, Message: "invalid input syntax for type time"})

	_, err := NewRoomRepository(mock).GetAvailable(context.Background(), models.AvailabilityQuery{
		DayOfWeek: models.Monday,
		StartTime: "7 o'clock",
		EndTime:   "08:00:00",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestQueryErrorHintsAtMissingSchema(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM ROOM r`).
		WillReturnError(&pgconn.PgError{Code: dberrors.CodeUndefinedTable, Message: `relation "room" does not exist`})

	_, err := NewRoomRepository(mock).GetOccupancy(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema not migrated")
	assert.False(t, errors.Is(err, apperrors.ErrBadRequest))
}

func TestRoomRepositoryGetAvailableRejectsBadTimeDuringIteration(t *testing.T) {
	mock := newMock(t)
	badTime := &pgconn.PgError{Code: dberrors.CodeDatetimeFieldOverflow, Message: "date/time field value out of range"}
	mock.ExpectQuery(`NOT EXISTS`).
		WithArgs(1, "08:00:00", "99:00:00").
		WillReturnRows(pgxmock.NewRows([]string{"id", "number", "building"}).
			AddRow(int64(1), "101", "Central Building").
			RowError(0, badTime))

	_, err := NewRoomRepository(mock).GetAvailable(context.Background(), models.AvailabilityQuery{
		DayOfWeek: models.Monday,
		StartTime: "08:00:00",
		EndTime:   "99:00:00",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
