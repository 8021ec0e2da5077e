package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
)

// ProfessionalToResponse converts a HealthProfessional entity to ProfessionalResponse DTO
func ProfessionalToResponse(professional *entity.HealthProfessional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	response := &dto.ProfessionalResponse{
		ID:                 professional.ID(),
		Kind:               string(professional.Kind()),
		Name:               professional.Name(),
		WorkExperience:     professional.WorkExperience(),
		Specialty:          professional.Specialty(),
		ServiceDescription: professional.ServiceDescription(),
	}

	// Variant-specific fields
	if accepts, ok := professional.AcceptsChildren(); ok {
		response.AcceptsChildren = &accepts
	}
	if maxAge, ok := professional.MaxAge(); ok {
		response.MaxAge = &maxAge
	}

	return response
}

// ProfessionalsToResponses converts a slice of HealthProfessional entities to slice of ProfessionalResponse DTOs
func ProfessionalsToResponses(professionals []*entity.HealthProfessional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, 0, len(professionals))
	for _, professional := range professionals {
		if resp := ProfessionalToResponse(professional); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}

// RequestToProfessional builds the entity for a create request; entity validation still applies.
func RequestToProfessional(req *dto.CreateProfessionalRequest) (*entity.HealthProfessional, error) {
	kind, err := entity.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	if kind == entity.KindPediatrician {
		return entity.NewPediatrician(req.ID, req.Name, req.WorkExperience, req.Specialty, req.MaxAge)
	}
	return entity.NewGeneralPractitioner(req.ID, req.Name, req.WorkExperience, req.Specialty, req.AcceptsChildren)
}
