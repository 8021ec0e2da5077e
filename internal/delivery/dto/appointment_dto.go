package dto

import "github.com/google/uuid"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientName   string `json:"patient_name" validate:"notblank"`
	PatientMobile string `json:"patient_mobile" validate:"mobile"`
	TimeSlot      string `json:"time_slot" validate:"notblank,timeslot"`
	DoctorID      int    `json:"doctor_id" validate:"gt=0"`
}

// Response DTOs

type AppointmentResponse struct {
	ID            uuid.UUID             `json:"id"`
	Code          string                `json:"code"`
	PatientName   string                `json:"patient_name"`
	PatientMobile string                `json:"patient_mobile"`
	TimeSlot      string                `json:"time_slot"`
	Doctor        *ProfessionalResponse `json:"doctor,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type CancelAppointmentResponse struct {
	Mobile   string `json:"mobile"`
	TimeSlot string `json:"time_slot,omitempty"`
	Removed  bool   `json:"removed"`
}
