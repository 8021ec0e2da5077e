package entity

import (
	"fmt"

	"clinic-registry/pkg/validator"
)

var fieldValidator = validator.NewValidator()

// checkField runs the validator tags for one field and converts the first failure into
// a ValidationError of the matching kind.
func checkField(field string, value interface{}, tag string) error {
	err := fieldValidator.ValidateVar(value, tag)
	if err == nil {
		return nil
	}

	kind := ErrInvalidFormat
	if fe, ok := validator.FirstFieldError(err); ok {
		kind = kindForTag(fe.Tag())
	}

	return &ValidationError{
		Field:   field,
		Value:   value,
		Kind:    kind,
		Message: violationMessage(field, kind, value),
	}
}

func kindForTag(tag string) error {
	switch tag {
	case "required", "notblank":
		return ErrEmptyField
	case "gt", "gte", "lt", "lte", "min", "max":
		return ErrOutOfRange
	default:
		return ErrInvalidFormat
	}
}

func violationMessage(field string, kind error, value interface{}) string {
	switch field {
	case FieldID:
		return fmt.Sprintf("doctor ID must be a positive integer (current value: %v)", value)
	case FieldName:
		return "doctor's name cannot be empty"
	case FieldWorkExperience:
		return fmt.Sprintf("work experience cannot be a negative number (current value: %v)", value)
	case FieldSpecialty:
		return "specialty cannot be empty"
	case FieldMaxAge:
		return fmt.Sprintf("pediatric patient age limit must be between 1-18 years (current value: %v)", value)
	case FieldPatientName:
		return "the patient's name cannot be left blank"
	case FieldPatientMobile:
		return fmt.Sprintf("invalid mobile phone number format (requires 11-digit valid number, current: %v)", value)
	case FieldTimeSlot:
		if kind == ErrEmptyField {
			return "the appointment time cannot be empty"
		}
		return fmt.Sprintf("invalid time format (required: HH:mm, e.g. 09:30, current: %v)", value)
	}
	return fmt.Sprintf("%s: %v", field, kind)
}

// ValidateMobile checks a patient mobile number on its own, e.g. as a cancellation key.
func ValidateMobile(mobile string) error {
	return checkField(FieldPatientMobile, mobile, "mobile")
}

// ValidateTimeSlot checks a HH:mm time slot on its own.
func ValidateTimeSlot(timeSlot string) error {
	return checkField(FieldTimeSlot, timeSlot, "notblank,timeslot")
}
