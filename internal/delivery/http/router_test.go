package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-registry/internal/delivery/http/handler"
	"clinic-registry/internal/delivery/http/middleware"
	"clinic-registry/internal/repository"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/validator"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() http.Handler {
	log, _ := test.NewNullLogger()
	directory := usecase.NewProfessionalDirectory(log, repository.NewProfessionalRepository())
	registry := usecase.NewAppointmentRegistry(log, repository.NewAppointmentRepository())
	v := validator.NewValidator()

	return NewRouter(
		handler.NewProfessionalHandler(directory, v),
		handler.NewAppointmentHandler(registry, directory, v),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
		middleware.NewRateLimitMiddleware(100, 100),
	).Setup()
}

func TestRouter(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/professionals", "", http.StatusOK},
		{http.MethodPost, "/api/v1/professionals", `{"kind":"general_practitioner","id":1,"name":"Dr. A","work_experience":1,"specialty":"Family Medicine"}`, http.StatusCreated},
		{http.MethodGet, "/api/v1/professionals/1", "", http.StatusOK},
		{http.MethodPost, "/api/v1/appointments", `{"patient_name":"Alex","patient_mobile":"13800138000","time_slot":"09:30","doctor_id":1}`, http.StatusCreated},
		{http.MethodGet, "/api/v1/appointments", "", http.StatusOK},
		{http.MethodGet, "/api/v1/appointments/report", "", http.StatusOK},
		{http.MethodDelete, "/api/v1/appointments/13800138000", "", http.StatusOK},
		{http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestRouterPreflight(t *testing.T) {
	r := newTestRouter()

	for _, target := range []string{"/api/v1/appointments", "/api/v1/appointments/13800138000", "/api/v1/professionals/1"} {
		req := httptest.NewRequest(http.MethodOptions, target, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), target)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete, target)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), "regular responses carry CORS headers")
}
