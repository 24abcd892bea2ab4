package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/internal/staff/usecase/command"
	"github.com/bookhaven/backoffice/internal/staff/usecase/query"
	"github.com/bookhaven/backoffice/pkg/apperror"
	"github.com/bookhaven/backoffice/pkg/logger"
)

// StaffHandler handles HTTP requests for the staff directory
type StaffHandler struct {
	createHandler *command.CreateStaffHandler
	getHandler    *query.GetStaffHandler
	listHandler   *query.ListStaffHandler

	repo domain.StaffRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(repo domain.StaffRepository) *StaffHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staff_requests_total",
			Help: "Total number of requests to the staff endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staff_request_duration_seconds",
			Help:    "Duration of staff requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &StaffHandler{
		createHandler:  command.NewCreateStaffHandler(repo),
		getHandler:     query.NewGetStaffHandler(repo),
		listHandler:    query.NewListStaffHandler(repo),
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateStaff handles POST /api/staff
func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	staff, err := h.createHandler.Handle(command.CreateStaffCommand{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create staff")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Staff created successfully",
		Data:    staff,
	})
}

// GetStaff handles GET /api/staff/{id}
func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid staff ID",
		})
		return
	}

	staff, err := h.getHandler.Handle(query.GetStaffQuery{ID: uint(id)})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    staff,
	})
}

// ListStaff handles GET /api/staff
func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	staff, err := h.listHandler.Handle(query.ListStaffQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list staff")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    staff,
	})
}

// RegisterRoutes registers all staff routes
func (h *StaffHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/staff", h.metricsMiddleware("/api/staff", h.ListStaff)).Methods("GET")
	router.HandleFunc("/api/staff", h.metricsMiddleware("/api/staff", h.CreateStaff)).Methods("POST")
	router.HandleFunc("/api/staff/{id}", h.metricsMiddleware("/api/staff/{id}", h.GetStaff)).Methods("GET")
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *StaffHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError maps domain errors onto HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErr *apperror.ValidationError
	var notFoundErr *apperror.NotFoundError
	var domainErr apperror.DomainErr

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &domainErr):
		status = http.StatusConflict
	}

	respondJSON(w, status, Response{
		Success: false,
		Error:   err.Error(),
	})
}
