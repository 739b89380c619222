package dto

import "time"

// ErrorDto is the uniform failure envelope: every fatal error surfaces to
// the caller through it, whatever the layer it came from.
type ErrorDto struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

func AdaptErrorDto(err error) ErrorDto {
	return ErrorDto{
		Success:   false,
		Error:     err.Error(),
		Timestamp: time.Now().UTC(),
	}
}
