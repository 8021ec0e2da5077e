package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"clinic-registry/internal/converter"
	"clinic-registry/internal/delivery/console"
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	registry  usecase.AppointmentRegistry
	directory usecase.ProfessionalDirectory
	validator *validator.CustomValidator
}

func NewAppointmentHandler(registry usecase.AppointmentRegistry, directory usecase.ProfessionalDirectory, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		registry:  registry,
		directory: directory,
		validator: validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.directory.Get(r.Context(), req.DoctorID)
	if err != nil {
		writeDomainError(w, err, "Failed to create appointment")
		return
	}

	appointment, err := h.registry.CreateAppointment(r.Context(), req.PatientName, req.PatientMobile, req.TimeSlot, doctor)
	if err != nil {
		writeDomainError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully for: "+appointment.PatientName(), converter.AppointmentToResponse(appointment))
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments := converter.AppointmentsToResponses(h.registry.Appointments(r.Context()))

	message := "Appointments retrieved successfully"
	if len(appointments) == 0 {
		message = "No appointments found in the system."
	}

	response.Success(w, http.StatusOK, message, &dto.AppointmentListResponse{
		Appointments: appointments,
		Total:        len(appointments),
	})
}

// GetReport renders the appointment list in the plain-text console format.
func (h *AppointmentHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	var sb strings.Builder
	console.NewPrinter(&sb).PrintAppointments(h.registry.ListAppointments(r.Context()))

	response.Text(w, http.StatusOK, sb.String())
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	mobile := mux.Vars(r)["mobile"]
	timeSlot := r.URL.Query().Get("time_slot")

	var (
		removed bool
		err     error
	)
	if timeSlot != "" {
		removed, err = h.registry.CancelAppointmentAt(r.Context(), mobile, timeSlot)
	} else {
		removed, err = h.registry.CancelAppointment(r.Context(), mobile)
	}
	if err != nil {
		writeDomainError(w, err, "Failed to cancel appointment")
		return
	}

	if !removed {
		response.NotFound(w, "No appointment found with mobile number: "+mobile)
		return
	}

	response.Success(w, http.StatusOK, "Appointment canceled successfully", &dto.CancelAppointmentResponse{
		Mobile:   mobile,
		TimeSlot: timeSlot,
		Removed:  removed,
	})
}
