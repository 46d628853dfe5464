package services

import (
	"context"

	"github.com/yigit/unischedule/internal/app/models"
)

// Services defined in this package:
// - ProfessorService: workload report and per-professor schedule
// - RoomService: occupancy listing, grouped room views and availability search

// ProfessorStore is the data access ProfessorService needs
type ProfessorStore interface {
	GetWorkload(ctx context.Context) ([]*models.ProfessorWorkload, error)
	GetSchedule(ctx context.Context, professorID int64) ([]*models.ProfessorScheduleEntry, error)
}

// RoomStore is the data access RoomService needs
type RoomStore interface {
	GetOccupancy(ctx context.Context) ([]*models.RoomOccupancy, error)
	GetAvailable(ctx context.Context, q models.AvailabilityQuery) ([]*models.AvailableRoom, error)
}
