package entity

import (
	"errors"
	"fmt"
)

// Error kinds. Every validation or scheduling failure unwraps to exactly one of these.
var (
	ErrEmptyField         = errors.New("required field is empty")
	ErrOutOfRange         = errors.New("value out of range")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrMissingReference   = errors.New("missing reference")
	ErrSchedulingConflict = errors.New("scheduling conflict")
	ErrWrongVariant       = errors.New("field does not apply to this kind of professional")
	ErrImmutableField     = errors.New("field cannot be changed once set")
)

// Field names used in ValidationError.Field
const (
	FieldID             = "id"
	FieldName           = "name"
	FieldWorkExperience = "work_experience"
	FieldSpecialty      = "specialty"
	FieldMaxAge         = "max_age"
	FieldKind           = "kind"
	FieldPatientName    = "patient_name"
	FieldPatientMobile  = "patient_mobile"
	FieldTimeSlot       = "time_slot"
	FieldDoctor         = "doctor"
)

// ValidationError reports the first constraint a field failed.
type ValidationError struct {
	Field   string
	Value   interface{}
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// ConflictError is returned when a doctor already holds an appointment at a time slot.
type ConflictError struct {
	DoctorID   int
	DoctorName string
	TimeSlot   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s (id %d) is already booked at %s", e.DoctorName, e.DoctorID, e.TimeSlot)
}

func (e *ConflictError) Unwrap() error {
	return ErrSchedulingConflict
}
