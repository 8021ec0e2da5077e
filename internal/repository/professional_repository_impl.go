package repository

import (
	"slices"

	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"
)

type professionalRepository struct {
	professionals []*entity.HealthProfessional
	byID          map[int]*entity.HealthProfessional
}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{
		byID: make(map[int]*entity.HealthProfessional),
	}
}

func (r *professionalRepository) Create(professional *entity.HealthProfessional) {
	r.professionals = append(r.professionals, professional)
	r.byID[professional.ID()] = professional
}

func (r *professionalRepository) FindByID(id int) *entity.HealthProfessional {
	return r.byID[id]
}

func (r *professionalRepository) FindAll() []*entity.HealthProfessional {
	return slices.Clone(r.professionals)
}
