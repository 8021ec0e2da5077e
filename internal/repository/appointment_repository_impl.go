package repository

import (
	"slices"

	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"
)

// appointmentRepository is an in-memory ordered list. It is not safe for concurrent
// use; callers serialise access.
type appointmentRepository struct {
	appointments []*entity.Appointment
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Append(appointment *entity.Appointment) {
	r.appointments = append(r.appointments, appointment)
}

func (r *appointmentRepository) FindConflict(doctorID int, timeSlot string) *entity.Appointment {
	for _, a := range r.appointments {
		if a.ConflictsWith(doctorID, timeSlot) {
			return a
		}
	}
	return nil
}

func (r *appointmentRepository) FindAll() []*entity.Appointment {
	return slices.Clone(r.appointments)
}

func (r *appointmentRepository) FindByMobile(mobile string) []*entity.Appointment {
	var found []*entity.Appointment
	for _, a := range r.appointments {
		if a.PatientMobile() == mobile {
			found = append(found, a)
		}
	}
	return found
}

func (r *appointmentRepository) RemoveFirst(match func(*entity.Appointment) bool) (*entity.Appointment, bool) {
	i := slices.IndexFunc(r.appointments, match)
	if i < 0 {
		return nil, false
	}
	removed := r.appointments[i]
	r.appointments = slices.Delete(r.appointments, i, i+1)
	return removed, true
}

func (r *appointmentRepository) Count() int {
	return len(r.appointments)
}
