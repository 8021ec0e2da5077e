package http

import (
	"net/http"

	"clinic-registry/internal/delivery/http/handler"
	"clinic-registry/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	professionalHandler *handler.ProfessionalHandler
	appointmentHandler  *handler.AppointmentHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	professionalHandler *handler.ProfessionalHandler,
	appointmentHandler *handler.AppointmentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		professionalHandler: professionalHandler,
		appointmentHandler:  appointmentHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

// Setup registers the routes. CORS wraps the whole router so preflight requests
// are answered before method matching.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Professionals
	api.HandleFunc("/professionals", r.professionalHandler.CreateProfessional).Methods(http.MethodPost)
	api.HandleFunc("/professionals", r.professionalHandler.GetAllProfessionals).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/report", r.appointmentHandler.GetReport).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{mobile}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.rateLimitMiddleware.Handle)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
