package dto

// Request DTOs

type CreateProfessionalRequest struct {
	Kind            string `json:"kind" validate:"required,oneof=general_practitioner pediatrician"`
	ID              int    `json:"id" validate:"gt=0"`
	Name            string `json:"name" validate:"notblank"`
	WorkExperience  int    `json:"work_experience" validate:"gte=0"`
	Specialty       string `json:"specialty" validate:"notblank"`
	AcceptsChildren bool   `json:"accepts_children"`
	MaxAge          int    `json:"max_age" validate:"omitempty,min=1,max=18"`
}

// Response DTOs

type ProfessionalResponse struct {
	ID                 int    `json:"id"`
	Kind               string `json:"kind"`
	Name               string `json:"name"`
	WorkExperience     int    `json:"work_experience"`
	Specialty          string `json:"specialty"`
	AcceptsChildren    *bool  `json:"accepts_children,omitempty"`
	MaxAge             *int   `json:"max_age,omitempty"`
	ServiceDescription string `json:"service_description"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
