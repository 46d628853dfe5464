package dto

// AvailabilityRequest holds the raw query parameters of the availability search
type AvailabilityRequest struct {
	DayOfWeek string `form:"day_of_week" json:"day_of_week" binding:"required"`
	StartTime string `form:"start_time" json:"start_time" binding:"required"`
	EndTime   string `form:"end_time" json:"end_time" binding:"required"`
}

// ProfessorURI binds the professor id path parameter
type ProfessorURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}
