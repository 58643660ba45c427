// Package error defines domain-specific errors for the Fleetbook application.
package error

import "errors"

// Vehicle domain errors.
var (
	// ErrVehicleNotFound is returned when a vehicle is not found or not owned by the caller.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidVehicleStatus is returned when the vehicle status is not a known pipeline state.
	ErrInvalidVehicleStatus = errors.New("invalid vehicle status")

	// ErrInvalidVehicleYear is returned when the model year is outside the accepted range.
	ErrInvalidVehicleYear = errors.New("invalid vehicle year")

	// ErrNegativePrice is returned when a monetary field is negative.
	ErrNegativePrice = errors.New("price must not be negative")

	// ErrNegativeMileage is returned when the mileage is negative.
	ErrNegativeMileage = errors.New("mileage must not be negative")

	// ErrMissingVehicleFields is returned when required vehicle fields are absent.
	ErrMissingVehicleFields = errors.New("make and model are required")
)

// VehicleErrorCode defines error codes for vehicle errors.
// Format: VEH-XXYYYY where XX is category and YYYY is specific error.
type VehicleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidVehicleStatus VehicleErrorCode = "VEH-010001"
	ErrCodeInvalidVehicleYear   VehicleErrorCode = "VEH-010002"
	ErrCodeNegativePrice        VehicleErrorCode = "VEH-010003"
	ErrCodeNegativeMileage      VehicleErrorCode = "VEH-010004"
	ErrCodeMissingVehicleFields VehicleErrorCode = "VEH-010005"

	// Lookup errors (02XXXX)
	ErrCodeVehicleNotFound VehicleErrorCode = "VEH-020001"
)

// VehicleError represents a vehicle error with code and message.
type VehicleError struct {
	Code    VehicleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VehicleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VehicleError) Unwrap() error {
	return e.Err
}

// NewVehicleError creates a new VehicleError with the given code and message.
func NewVehicleError(code VehicleErrorCode, message string, err error) *VehicleError {
	return &VehicleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
