package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yigit/unischedule/internal/app/models"
	"github.com/yigit/unischedule/internal/pkg/apperrors"
	"github.com/yigit/unischedule/internal/pkg/helpers"
)

// Nominal weekly opening hours used as the occupancy denominator: 5 weekdays x 12 hours
const (
	weekdaysPerWeek     = 5
	openingHoursPerDay  = 12
	WeeklyCapacityHours = weekdaysPerWeek * openingHoursPerDay
)

// RoomService defines the interface for room reporting operations
type RoomService interface {
	GetOccupancy(ctx context.Context) ([]*models.RoomOccupancy, error)
	GetScheduleAnalysis(ctx context.Context) ([]*models.RoomAnalysis, error)
	GetRoomSchedules(ctx context.Context) ([]*models.RoomSchedule, error)
	GetAvailableRooms(ctx context.Context, dayOfWeek, startTime, endTime string) ([]*models.AvailableRoom, error)
}

// roomServiceImpl implements the RoomService interface
type roomServiceImpl struct {
	roomRepo RoomStore
}

// NewRoomService creates a new room service instance
func NewRoomService(roomRepo RoomStore) RoomService {
	return &roomServiceImpl{
		roomRepo: roomRepo,
	}
}

// GetOccupancy returns the raw room/slot listing
func (s *roomServiceImpl) GetOccupancy(ctx context.Context) ([]*models.RoomOccupancy, error) {
	occupancy, err := s.roomRepo.GetOccupancy(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room occupancy: %w", err)
	}
	return occupancy, nil
}

// GetScheduleAnalysis groups the occupancy listing by (building, room id) and computes occupancy rates
func (s *roomServiceImpl) GetScheduleAnalysis(ctx context.Context) ([]*models.RoomAnalysis, error) {
	occupancy, err := s.GetOccupancy(ctx)
	if err != nil {
		return nil, err
	}
	return AnalyzeRooms(occupancy)
}

// GetRoomSchedules groups the occupancy listing by (building, room number)
func (s *roomServiceImpl) GetRoomSchedules(ctx context.Context) ([]*models.RoomSchedule, error) {
	occupancy, err := s.GetOccupancy(ctx)
	if err != nil {
		return nil, err
	}
	return GroupRoomSchedules(occupancy), nil
}

// GetAvailableRooms validates the search window and lists rooms free during it
func (s *roomServiceImpl) GetAvailableRooms(ctx context.Context, dayOfWeek, startTime, endTime string) ([]*models.AvailableRoom, error) {
	q, err := ParseAvailabilityQuery(dayOfWeek, startTime, endTime)
	if err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.GetAvailable(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error retrieving available rooms: %w", err)
	}
	return rooms, nil
}

// ParseAvailabilityQuery checks presence and format of the availability parameters
func ParseAvailabilityQuery(dayOfWeek, startTime, endTime string) (models.AvailabilityQuery, error) {
	dayOfWeek = strings.TrimSpace(dayOfWeek)
	if dayOfWeek == "" || strings.TrimSpace(startTime) == "" || strings.TrimSpace(endTime) == "" {
		return models.AvailabilityQuery{}, apperrors.NewValidationError(apperrors.ErrMissingAvailabilityParams)
	}

	day, err := strconv.Atoi(dayOfWeek)
	if err != nil || !models.DayOfWeek(day).Valid() {
		return models.AvailabilityQuery{}, apperrors.NewValidationError(apperrors.ErrInvalidDayOfWeek)
	}

	start, err := helpers.NormalizeTimeOfDay(startTime)
	if err != nil {
		return models.AvailabilityQuery{}, apperrors.NewValidationError(apperrors.ErrInvalidTimeOfDay)
	}
	end, err := helpers.NormalizeTimeOfDay(endTime)
	if err != nil {
		return models.AvailabilityQuery{}, apperrors.NewValidationError(apperrors.ErrInvalidTimeOfDay)
	}

	return models.AvailabilityQuery{
		DayOfWeek: models.DayOfWeek(day),
		StartTime: start,
		EndTime:   end,
	}, nil
}

// scheduleEntryFrom converts an occupied row; ok is false for FREE rows
func scheduleEntryFrom(row *models.RoomOccupancy) (models.ScheduleEntry, bool) {
	if !row.Occupied() {
		return models.ScheduleEntry{}, false
	}

	entry := models.ScheduleEntry{
		DayOfWeek: models.UnknownDayName,
		Status:    models.SlotOccupied,
	}
	if row.DayOfWeek != nil {
		entry.DayOfWeek = row.DayOfWeek.Name()
	}
	if row.StartTime != nil {
		entry.StartTime = *row.StartTime
	}
	if row.EndTime != nil {
		entry.EndTime = *row.EndTime
	}
	if row.SubjectName != nil {
		entry.Subject = *row.SubjectName
	}
	if row.ClassCode != nil {
		entry.ClassCode = *row.ClassCode
	}
	return entry, true
}

// AnalyzeRooms groups rows by (building, room id), keeps OCCUPIED slots and computes each
// room's occupancy rate. Groups keep the order in which rooms first appear.
func AnalyzeRooms(rows []*models.RoomOccupancy) ([]*models.RoomAnalysis, error) {
	groups := newOrderedGroups[models.RoomKey, *models.RoomAnalysis]()

	for _, row := range rows {
		key := models.RoomKey{Building: row.BuildingName, RoomID: row.RoomID}
		analysis := groups.getOrAdd(key, func() *models.RoomAnalysis {
			return &models.RoomAnalysis{
				Building:   row.BuildingName,
				RoomID:     row.RoomID,
				RoomNumber: row.RoomNumber,
				Schedule:   []models.ScheduleEntry{},
			}
		})

		if entry, ok := scheduleEntryFrom(row); ok {
			analysis.Schedule = append(analysis.Schedule, entry)
		}
	}

	result := groups.values()
	for _, analysis := range result {
		rate, err := OccupancyRate(analysis.Schedule)
		if err != nil {
			return nil, fmt.Errorf("room %d in %s: %w", analysis.RoomID, analysis.Building, err)
		}
		analysis.OccupancyRate = rate
	}
	return result, nil
}

// GroupRoomSchedules groups rows by (building, room number) keeping OCCUPIED slots only
func GroupRoomSchedules(rows []*models.RoomOccupancy) []*models.RoomSchedule {
	groups := newOrderedGroups[models.RoomNumberKey, *models.RoomSchedule]()

	for _, row := range rows {
		key := models.RoomNumberKey{Building: row.BuildingName, Number: row.RoomNumber}
		schedule := groups.getOrAdd(key, func() *models.RoomSchedule {
			return &models.RoomSchedule{
				Building:   row.BuildingName,
				RoomNumber: row.RoomNumber,
				Schedule:   []models.ScheduleEntry{},
			}
		})

		if entry, ok := scheduleEntryFrom(row); ok {
			schedule.Schedule = append(schedule.Schedule, entry)
		}
	}

	return groups.values()
}

// OccupancyRate sums slot durations and expresses them as a percentage of
// WeeklyCapacityHours, rounded to two decimals. The result is not capped at 100.
func OccupancyRate(schedule []models.ScheduleEntry) (float64, error) {
	var hours float64
	for _, entry := range schedule {
		h, err := helpers.HoursBetween(entry.StartTime, entry.EndTime)
		if err != nil {
			return 0, err
		}
		hours += h
	}

	rate := hours / WeeklyCapacityHours * 100
	return math.Round(rate*100) / 100, nil
}
