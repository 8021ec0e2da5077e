package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:            appointment.ID(),
		Code:          appointment.Code(),
		PatientName:   appointment.PatientName(),
		PatientMobile: appointment.PatientMobile(),
		TimeSlot:      appointment.TimeSlot(),
		Doctor:        ProfessionalToResponse(appointment.Doctor()),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []*entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		if resp := AppointmentToResponse(appointment); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
