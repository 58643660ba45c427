// Package error defines domain-specific errors for the Fleetbook application.
package error

import "errors"

// Photo domain errors.
var (
	// ErrPhotoNotFound is returned when a photo is not found for the vehicle.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrInvalidPhotoURL is returned when the photo URL is empty or malformed.
	ErrInvalidPhotoURL = errors.New("invalid photo url")
)

// PhotoErrorCode defines error codes for photo errors.
type PhotoErrorCode string

const (
	ErrCodeInvalidPhotoURL PhotoErrorCode = "PHOTO-010001"
	ErrCodePhotoNotFound   PhotoErrorCode = "PHOTO-020001"
)

// PhotoError represents a photo error with code and message.
type PhotoError struct {
	Code    PhotoErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PhotoError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PhotoError) Unwrap() error {
	return e.Err
}

// NewPhotoError creates a new PhotoError with the given code and message.
func NewPhotoError(code PhotoErrorCode, message string, err error) *PhotoError {
	return &PhotoError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
