package repository

import "clinic-registry/internal/domain/entity"

type ProfessionalRepository interface {
	Create(professional *entity.HealthProfessional)
	FindByID(id int) *entity.HealthProfessional
	FindAll() []*entity.HealthProfessional
}
