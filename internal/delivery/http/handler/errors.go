package handler

import (
	"errors"
	"net/http"

	"clinic-registry/internal/domain/entity"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
)

// writeDomainError maps entity and usecase errors onto HTTP responses.
func writeDomainError(w http.ResponseWriter, err error, fallback string) {
	var conflictErr *entity.ConflictError
	var validationErr *entity.ValidationError

	switch {
	case errors.As(err, &conflictErr):
		response.Conflict(w, conflictErr.Error())
	case errors.As(err, &validationErr):
		response.ValidationError(w, map[string]string{validationErr.Field: validationErr.Message})
	case errors.Is(err, entity.ErrWrongVariant):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		response.NotFound(w, "Professional not found")
	case errors.Is(err, usecase.ErrProfessionalExists):
		response.Conflict(w, "Professional ID already registered")
	default:
		response.InternalServerError(w, fallback)
	}
}
