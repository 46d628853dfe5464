package models

// ProfessorWorkload aggregates the weekly scheduled hours of one professor
type ProfessorWorkload struct {
	ProfessorID       int64   `json:"professor_id"`
	ProfessorName     string  `json:"professor_name"`
	DepartmentName    string  `json:"department_name"`
	TitleName         string  `json:"title_name"`
	TotalHoursPerWeek float64 `json:"total_hours_per_week"`
	TotalClasses      int64   `json:"total_classes"`
}

// ProfessorScheduleEntry is one weekly slot taught by a professor
type ProfessorScheduleEntry struct {
	ProfessorID    int64     `json:"professor_id"`
	DepartmentName string    `json:"department_name"`
	SubjectName    string    `json:"subject_name"`
	ClassCode      string    `json:"class_code"`
	DayOfWeek      DayOfWeek `json:"day_of_week"`
	DayName        string    `json:"day_name"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	RoomID         int64     `json:"room_id"`
	RoomNumber     string    `json:"room_number"`
	BuildingName   string    `json:"building_name"`
}

// WorkloadSummary aggregates a workload listing
type WorkloadSummary struct {
	TotalProfessors int     `json:"total_professors"`
	AverageHours    float64 `json:"average_hours"`
}

// WorkloadReport is the workload listing with its summary
type WorkloadReport struct {
	Professors []*ProfessorWorkload
	Summary    WorkloadSummary
}
