package dto

import (
	"time"

	"github.com/yigit/unischedule/internal/app/models"
)

// APIResponse is the envelope shared by every data endpoint
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// WorkloadResponse is APIResponse plus the workload summary
type WorkloadResponse struct {
	APIResponse
	Summary models.WorkloadSummary `json:"summary"`
}

// AvailabilityResponse is APIResponse plus the echoed search parameters
type AvailabilityResponse struct {
	APIResponse
	QueryParameters AvailabilityRequest `json:"query_parameters"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"University scheduling service is running"`
	Timestamp time.Time `json:"timestamp"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}
