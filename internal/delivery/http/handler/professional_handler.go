package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-registry/internal/converter"
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"

	"github.com/gorilla/mux"
)

type ProfessionalHandler struct {
	directory usecase.ProfessionalDirectory
	validator *validator.CustomValidator
}

func NewProfessionalHandler(directory usecase.ProfessionalDirectory, validator *validator.CustomValidator) *ProfessionalHandler {
	return &ProfessionalHandler{
		directory: directory,
		validator: validator,
	}
}

func (h *ProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := converter.RequestToProfessional(&req)
	if err != nil {
		writeDomainError(w, err, "Failed to create professional")
		return
	}

	if err := h.directory.Register(r.Context(), professional); err != nil {
		writeDomainError(w, err, "Failed to create professional")
		return
	}

	response.Success(w, http.StatusCreated, "Professional created successfully", converter.ProfessionalToResponse(professional))
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	professional, err := h.directory.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Failed to get professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", converter.ProfessionalToResponse(professional))
}

func (h *ProfessionalHandler) GetAllProfessionals(w http.ResponseWriter, r *http.Request) {
	professionals := converter.ProfessionalsToResponses(h.directory.List(r.Context()))

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", &dto.ProfessionalListResponse{
		Professionals: professionals,
		Total:         len(professionals),
	})
}
