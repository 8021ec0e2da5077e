package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Appointment binds a patient to a doctor at a time slot.
// The doctor is borrowed: it is shared with the caller and outlives the appointment.
type Appointment struct {
	id            uuid.UUID
	code          string
	patientName   string
	patientMobile string
	timeSlot      string
	doctor        *HealthProfessional
}

// NewAppointment validates patient name, mobile, time slot and doctor in that order and
// stops at the first failure.
func NewAppointment(patientName, patientMobile, timeSlot string, doctor *HealthProfessional) (*Appointment, error) {
	if err := checkField(FieldPatientName, patientName, "notblank"); err != nil {
		return nil, err
	}
	if err := ValidateMobile(patientMobile); err != nil {
		return nil, err
	}
	if err := ValidateTimeSlot(timeSlot); err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, &ValidationError{
			Field:   FieldDoctor,
			Kind:    ErrMissingReference,
			Message: "an appointment cannot be created without selecting a doctor",
		}
	}

	id := uuid.New()
	return &Appointment{
		id:            id,
		code:          appointmentCode(timeSlot, id),
		patientName:   patientName,
		patientMobile: patientMobile,
		timeSlot:      timeSlot,
		doctor:        doctor,
	}, nil
}

// appointmentCode generates a reference code: AP-HHMM-XXXXXX
func appointmentCode(timeSlot string, id uuid.UUID) string {
	return fmt.Sprintf("AP-%s-%06X", strings.Replace(timeSlot, ":", "", 1), id[:3])
}

func (a *Appointment) ID() uuid.UUID               { return a.id }
func (a *Appointment) Code() string                { return a.code }
func (a *Appointment) PatientName() string         { return a.patientName }
func (a *Appointment) PatientMobile() string       { return a.patientMobile }
func (a *Appointment) TimeSlot() string            { return a.timeSlot }
func (a *Appointment) Doctor() *HealthProfessional { return a.doctor }

// ConflictsWith reports whether the appointment occupies doctorID at timeSlot.
func (a *Appointment) ConflictsWith(doctorID int, timeSlot string) bool {
	return a.doctor.ID() == doctorID && a.timeSlot == timeSlot
}
