package repository

import "clinic-registry/internal/domain/entity"

// AppointmentRepository keeps appointments in insertion order.
type AppointmentRepository interface {
	Append(appointment *entity.Appointment)
	// FindConflict returns the first appointment holding doctorID at timeSlot, or nil.
	FindConflict(doctorID int, timeSlot string) *entity.Appointment
	FindAll() []*entity.Appointment
	FindByMobile(mobile string) []*entity.Appointment
	// RemoveFirst deletes the first appointment accepted by match and stops scanning.
	RemoveFirst(match func(*entity.Appointment) bool) (*entity.Appointment, bool)
	Count() int
}
