package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Professor errors
var (
	ErrInvalidProfessorID = errors.New("invalid professor ID")
)

// Availability search errors
var (
	ErrMissingAvailabilityParams = errors.New("Required parameters: day_of_week, start_time, end_time")
	ErrInvalidDayOfWeek          = errors.New("day_of_week must be an integer between 1 and 7")
	ErrInvalidTimeOfDay          = errors.New("start_time and end_time must use HH:MM or HH:MM:SS")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError wraps a validation cause so it maps to a 400 response
func NewValidationError(cause error) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: cause.Error(),
		cause:   cause,
	}
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
	cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the category sentinel and the specific cause
func (e *CustomError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
