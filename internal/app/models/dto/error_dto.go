package dto

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success bool                   `json:"success" example:"false"`
	Error   string                 `json:"error" example:"Required parameters: day_of_week, start_time, end_time"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewErrorResponse creates the failure envelope carrying a message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   message,
	}
}
