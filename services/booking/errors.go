package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound is returned when a booking id does not exist.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrAdmissionInProgress is returned by an AdmissionLock held by a
	// concurrent request for the same booking key.
	ErrAdmissionInProgress = errors.New("booking admission already in progress")
)

// ConflictError is a business-rule rejection of a booking request.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newDuplicateBookingError(date string) error {
	return &ConflictError{
		Code:    "duplicateBooking",
		Message: fmt.Sprintf("You Already have a booking on %s", date),
	}
}

func newSlotTakenError(treatment, slot, date string) error {
	return &ConflictError{
		Code:    "slotUnavailable",
		Message: fmt.Sprintf("%s at %s is no longer available on %s", treatment, slot, date),
	}
}

// ValidationError reports a malformed booking request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking field %q is required", e.Field)
}
