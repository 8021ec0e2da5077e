package usecase

import (
	"context"
	"iter"
	"slices"
	"sync"

	"clinic-registry/internal/domain/entity"
	"clinic-registry/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AppointmentRegistry interface {
	CreateAppointment(ctx context.Context, patientName, mobile, timeSlot string, doctor *entity.HealthProfessional) (*entity.Appointment, error)
	ListAppointments(ctx context.Context) iter.Seq[*entity.Appointment]
	Appointments(ctx context.Context) []*entity.Appointment
	FindByMobile(ctx context.Context, mobile string) ([]*entity.Appointment, error)
	CancelAppointment(ctx context.Context, mobile string) (bool, error)
	CancelAppointmentAt(ctx context.Context, mobile, timeSlot string) (bool, error)
	Count(ctx context.Context) int
}

type appointmentRegistry struct {
	mu              sync.Mutex
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentRegistry(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentRegistry {
	return &appointmentRegistry{
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// CreateAppointment books doctor at timeSlot for the patient.
//
// Flow:
// 1. Reject if the doctor already has an appointment at timeSlot
// 2. Build the appointment (validates every field)
// 3. Append it to the registry
func (u *appointmentRegistry) CreateAppointment(ctx context.Context, patientName, mobile, timeSlot string, doctor *entity.HealthProfessional) (*entity.Appointment, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	// Step 1: conflict check; a nil doctor is reported by NewAppointment below
	if doctor != nil {
		if existing := u.appointmentRepo.FindConflict(doctor.ID(), timeSlot); existing != nil {
			u.log.WithContext(ctx).Warnf("Rejected appointment for %s: doctor %d already booked at %s (code=%s)",
				patientName, doctor.ID(), timeSlot, existing.Code())
			return nil, &entity.ConflictError{
				DoctorID:   doctor.ID(),
				DoctorName: doctor.Name(),
				TimeSlot:   timeSlot,
			}
		}
	}

	// Step 2: validate and build
	appointment, err := entity.NewAppointment(patientName, mobile, timeSlot, doctor)
	if err != nil {
		u.log.WithContext(ctx).Warnf("Rejected appointment for %q: %+v", patientName, err)
		return nil, err
	}

	// Step 3: store
	u.appointmentRepo.Append(appointment)

	u.log.WithContext(ctx).Infof("Appointment created successfully for: %s (code=%s, doctor=%d, time=%s)",
		patientName, appointment.Code(), doctor.ID(), timeSlot)
	return appointment, nil
}

// ListAppointments returns the appointments in insertion order. The sequence iterates a
// snapshot taken at call time and can be ranged over any number of times.
func (u *appointmentRegistry) ListAppointments(ctx context.Context) iter.Seq[*entity.Appointment] {
	return slices.Values(u.Appointments(ctx))
}

func (u *appointmentRegistry) Appointments(ctx context.Context) []*entity.Appointment {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.appointmentRepo.FindAll()
}

func (u *appointmentRegistry) FindByMobile(ctx context.Context, mobile string) ([]*entity.Appointment, error) {
	if err := entity.ValidateMobile(mobile); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	return u.appointmentRepo.FindByMobile(mobile), nil
}

// CancelAppointment removes the first appointment booked with mobile. The boolean
// reports whether anything was removed.
func (u *appointmentRegistry) CancelAppointment(ctx context.Context, mobile string) (bool, error) {
	if err := entity.ValidateMobile(mobile); err != nil {
		u.log.WithContext(ctx).Warnf("Cannot cancel: %+v", err)
		return false, err
	}

	return u.cancelFirst(ctx, mobile, func(a *entity.Appointment) bool {
		return a.PatientMobile() == mobile
	})
}

// CancelAppointmentAt removes the appointment booked with mobile at timeSlot. Use it when
// one patient holds several slots.
func (u *appointmentRegistry) CancelAppointmentAt(ctx context.Context, mobile, timeSlot string) (bool, error) {
	if err := entity.ValidateMobile(mobile); err != nil {
		u.log.WithContext(ctx).Warnf("Cannot cancel: %+v", err)
		return false, err
	}
	if err := entity.ValidateTimeSlot(timeSlot); err != nil {
		u.log.WithContext(ctx).Warnf("Cannot cancel: %+v", err)
		return false, err
	}

	return u.cancelFirst(ctx, mobile, func(a *entity.Appointment) bool {
		return a.PatientMobile() == mobile && a.TimeSlot() == timeSlot
	})
}

func (u *appointmentRegistry) cancelFirst(ctx context.Context, mobile string, match func(*entity.Appointment) bool) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	removed, ok := u.appointmentRepo.RemoveFirst(match)
	if !ok {
		u.log.WithContext(ctx).Infof("No appointment found with mobile number: %s", mobile)
		return false, nil
	}

	u.log.WithContext(ctx).Infof("Appointment canceled successfully (mobile: %s, code=%s)", mobile, removed.Code())
	return true, nil
}

func (u *appointmentRegistry) Count(ctx context.Context) int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.appointmentRepo.Count()
}
