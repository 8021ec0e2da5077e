package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-registry/internal/domain/entity"
	"clinic-registry/internal/repository"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	router    *mux.Router
	registry  usecase.AppointmentRegistry
	directory usecase.ProfessionalDirectory
}

func newHandlerFixture(t *testing.T) handlerFixture {
	t.Helper()

	log, _ := test.NewNullLogger()
	directory := usecase.NewProfessionalDirectory(log, repository.NewProfessionalRepository())
	registry := usecase.NewAppointmentRegistry(log, repository.NewAppointmentRepository())

	gp, err := entity.NewGeneralPractitioner(1, "Dr. Sarah Johnson", 8, "Community General Practice", true)
	require.NoError(t, err)
	require.NoError(t, directory.Register(context.Background(), gp))

	v := validator.NewValidator()
	professionalHandler := NewProfessionalHandler(directory, v)
	appointmentHandler := NewAppointmentHandler(registry, directory, v)

	r := mux.NewRouter()
	r.HandleFunc("/professionals", professionalHandler.CreateProfessional).Methods(http.MethodPost)
	r.HandleFunc("/professionals", professionalHandler.GetAllProfessionals).Methods(http.MethodGet)
	r.HandleFunc("/professionals/{id}", professionalHandler.GetProfessional).Methods(http.MethodGet)
	r.HandleFunc("/appointments", appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	r.HandleFunc("/appointments", appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	r.HandleFunc("/appointments/report", appointmentHandler.GetReport).Methods(http.MethodGet)
	r.HandleFunc("/appointments/{mobile}", appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	return handlerFixture{router: r, registry: registry, directory: directory}
}

func (f handlerFixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var resp response.Response
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestCreateAppointmentHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec, resp := f.do(t, http.MethodPost, "/appointments",
			`{"patient_name":"Alex Taylor","patient_mobile":"13800138000","time_slot":"09:30","doctor_id":1}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Appointment created successfully for: Alex Taylor", resp.Message)

		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "09:30", data["time_slot"])
		assert.Regexp(t, `^AP-0930-`, data["code"])
		assert.Equal(t, 1, f.registry.Count(context.Background()))
	})

	t.Run("Conflict", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec, _ := f.do(t, http.MethodPost, "/appointments",
			`{"patient_name":"Alex Taylor","patient_mobile":"13800138000","time_slot":"09:30","doctor_id":1}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, resp := f.do(t, http.MethodPost, "/appointments",
			`{"patient_name":"Jamie Lee","patient_mobile":"13900139000","time_slot":"09:30","doctor_id":1}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "conflict: Dr. Sarah Johnson (id 1) is already booked at 09:30", resp.Message)
		assert.Equal(t, 1, f.registry.Count(context.Background()))
	})

	t.Run("Validation Failed", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec, resp := f.do(t, http.MethodPost, "/appointments",
			`{"patient_name":" ","patient_mobile":"12345678901","time_slot":"24:00","doctor_id":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", resp.Message)
		fields, ok := resp.Error.(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, fields, "patient_name")
		assert.Contains(t, fields, "patient_mobile")
		assert.Contains(t, fields, "time_slot")
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec, _ := f.do(t, http.MethodPost, "/appointments",
			`{"patient_name":"Alex","patient_mobile":"13800138000","time_slot":"09:30","doctor_id":9}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec, resp := f.do(t, http.MethodPost, "/appointments", `{"patient_name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", resp.Message)
	})
}

func TestListAppointmentsHandler(t *testing.T) {
	f := newHandlerFixture(t)

	rec, resp := f.do(t, http.MethodGet, "/appointments", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No appointments found in the system.", resp.Message)

	rec, _ = f.do(t, http.MethodPost, "/appointments",
		`{"patient_name":"Alex Taylor","patient_mobile":"13800138000","time_slot":"09:30","doctor_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp = f.do(t, http.MethodGet, "/appointments", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.EqualValues(t, 1, data["total"])

	rec, _ = f.do(t, http.MethodGet, "/appointments/report", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Patient: Alex Taylor | Mobile: 13800138000")
}

func TestCancelAppointmentHandler(t *testing.T) {
	f := newHandlerFixture(t)

	for _, body := range []string{
		`{"patient_name":"Alex Taylor","patient_mobile":"13800138000","time_slot":"09:30","doctor_id":1}`,
		`{"patient_name":"Alex Taylor","patient_mobile":"13800138000","time_slot":"11:00","doctor_id":1}`,
	} {
		rec, _ := f.do(t, http.MethodPost, "/appointments", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, resp := f.do(t, http.MethodDelete, "/appointments/13800138000?time_slot=11:00", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Appointment canceled successfully", resp.Message)

	remaining := f.registry.Appointments(context.Background())
	require.Len(t, remaining, 1)
	assert.Equal(t, "09:30", remaining[0].TimeSlot())

	rec, _ = f.do(t, http.MethodDelete, "/appointments/13800138000", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = f.do(t, http.MethodDelete, "/appointments/13800138000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No appointment found with mobile number: 13800138000", resp.Message)

	rec, _ = f.do(t, http.MethodDelete, "/appointments/123", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
