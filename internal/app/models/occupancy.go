package models

// RoomOccupancy is one row of the raw occupancy listing: a room paired with one of its
// schedule slots, or with nothing when the room has no slots (Status FREE, slot fields nil).
type RoomOccupancy struct {
	RoomID       int64      `json:"room_id"`
	RoomNumber   string     `json:"room_number"`
	BuildingName string     `json:"building_name"`
	DayOfWeek    *DayOfWeek `json:"day_of_week"`
	StartTime    *string    `json:"start_time"`
	EndTime      *string    `json:"end_time"`
	SubjectName  *string    `json:"subject_name"`
	ClassCode    *string    `json:"class_code"`
	Status       SlotStatus `json:"status"`
}

// Occupied reports whether the row carries a schedule slot
func (o RoomOccupancy) Occupied() bool {
	return o.Status == SlotOccupied
}

// RoomKey identifies a room by building name and room id
type RoomKey struct {
	Building string
	RoomID   int64
}

// RoomNumberKey identifies a room by building name and room number
type RoomNumberKey struct {
	Building string
	Number   string
}

// ScheduleEntry is an occupied slot inside a grouped room view
type ScheduleEntry struct {
	DayOfWeek string     `json:"day_of_week"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	Subject   string     `json:"subject"`
	ClassCode string     `json:"class_code"`
	Status    SlotStatus `json:"status"`
}

// RoomAnalysis is the per-room view grouped by (building, room id) with a utilization metric.
// OccupancyRate is scheduled hours over a nominal 60-hour week, as a percentage with two
// decimals; overlapping or out-of-hours bookings can push it past 100.
type RoomAnalysis struct {
	Building      string          `json:"building"`
	RoomID        int64           `json:"room_id"`
	RoomNumber    string          `json:"room_number"`
	Schedule      []ScheduleEntry `json:"schedule"`
	OccupancyRate float64         `json:"occupancy_rate"`
}

// RoomSchedule is the per-room view grouped by (building, room number)
type RoomSchedule struct {
	Building   string          `json:"building"`
	RoomNumber string          `json:"room_number"`
	Schedule   []ScheduleEntry `json:"schedule"`
}

// AvailableRoom is a room with no booking overlapping a requested window
type AvailableRoom struct {
	RoomID       int64  `json:"room_id"`
	RoomNumber   string `json:"room_number"`
	BuildingName string `json:"building_name"`
}

// AvailabilityQuery is a validated availability search window.
// Times are normalized to HH:MM:SS.
type AvailabilityQuery struct {
	DayOfWeek DayOfWeek `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}
