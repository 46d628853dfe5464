package models

// DayOfWeek is the 1-based weekday stored in CLASS_SCHEDULE.day_of_week, 1 = Monday
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// UnknownDayName labels day numbers outside 1..7
const UnknownDayName = "Unknown"

var dayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Valid reports whether d is in 1..7
func (d DayOfWeek) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Name returns the weekday label, or UnknownDayName when d is out of range
func (d DayOfWeek) Name() string {
	if !d.Valid() {
		return UnknownDayName
	}
	return dayNames[d]
}

// DayName maps a raw day number to its label
func DayName(day int) string {
	return DayOfWeek(day).Name()
}

// SlotStatus tags a row of the room occupancy listing
type SlotStatus string

const (
	SlotOccupied SlotStatus = "OCCUPIED"
	SlotFree     SlotStatus = "FREE"
)
