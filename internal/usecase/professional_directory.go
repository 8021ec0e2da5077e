package usecase

import (
	"context"
	"errors"
	"sync"

	"clinic-registry/internal/domain/entity"
	"clinic-registry/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrProfessionalExists   = errors.New("professional id already registered")
)

type ProfessionalDirectory interface {
	Register(ctx context.Context, professional *entity.HealthProfessional) error
	Get(ctx context.Context, id int) (*entity.HealthProfessional, error)
	List(ctx context.Context) []*entity.HealthProfessional
}

type professionalDirectory struct {
	mu               sync.RWMutex
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
}

func NewProfessionalDirectory(
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
) ProfessionalDirectory {
	return &professionalDirectory{
		log:              log,
		professionalRepo: professionalRepo,
	}
}

func (u *professionalDirectory) Register(ctx context.Context, professional *entity.HealthProfessional) error {
	if professional == nil {
		return &entity.ValidationError{
			Field:   entity.FieldDoctor,
			Kind:    entity.ErrMissingReference,
			Message: "cannot register an empty professional",
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.professionalRepo.FindByID(professional.ID()) != nil {
		u.log.WithContext(ctx).Warnf("Failed to register professional %d: %+v", professional.ID(), ErrProfessionalExists)
		return ErrProfessionalExists
	}

	u.professionalRepo.Create(professional)

	u.log.WithContext(ctx).Infof("Professional registered: id=%d, kind=%s, name=%s", professional.ID(), professional.Kind(), professional.Name())
	return nil
}

func (u *professionalDirectory) Get(ctx context.Context, id int) (*entity.HealthProfessional, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	professional := u.professionalRepo.FindByID(id)
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}
	return professional, nil
}

func (u *professionalDirectory) List(ctx context.Context) []*entity.HealthProfessional {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return u.professionalRepo.FindAll()
}
