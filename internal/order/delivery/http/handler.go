package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/internal/order/domain"
	"github.com/bookhaven/backoffice/internal/order/usecase/command"
	"github.com/bookhaven/backoffice/internal/order/usecase/query"
	staffdomain "github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
	"github.com/bookhaven/backoffice/pkg/logger"
)

// OrderHandler handles HTTP requests for the order ledger
type OrderHandler struct {
	createHandler      *command.CreateOrderHandler
	addProductHandler  *command.AddProductHandler
	updateTotalHandler *command.UpdateTotalHandler
	completeHandler    *command.CompleteSaleHandler

	getHandler  *query.GetOrderHandler
	listHandler *query.ListOrdersHandler

	repo domain.OrderRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	salesCompleted prometheus.Counter
}

// NewOrderHandler creates a new order handler. publisher may be nil.
func NewOrderHandler(
	repo domain.OrderRepository,
	products catalogdomain.ProductRepository,
	staff staffdomain.StaffRepository,
	publisher command.SalePublisher,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_requests_total",
			Help: "Total number of requests to the order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	salesCompleted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_completed_total",
			Help: "Number of orders successfully completed",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(salesCompleted)

	return &OrderHandler{
		createHandler:      command.NewCreateOrderHandler(repo, staff),
		addProductHandler:  command.NewAddProductHandler(repo, products),
		updateTotalHandler: command.NewUpdateTotalHandler(repo),
		completeHandler:    command.NewCompleteSaleHandler(repo, publisher),
		getHandler:         query.NewGetOrderHandler(repo),
		listHandler:        query.NewListOrdersHandler(repo),
		repo:               repo,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		salesCompleted:     salesCompleted,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID       uint   `json:"staff_id"`
		PaymentMethod string `json:"payment_method"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	order, err := h.createHandler.Handle(command.CreateOrderCommand{
		StaffID:       req.StaffID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create order")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{ID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	staffID, _ := strconv.ParseUint(r.URL.Query().Get("staff_id"), 10, 32)

	orders, err := h.listHandler.Handle(query.ListOrdersQuery{
		StaffID: uint(staffID),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list orders")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// AddProduct handles POST /api/orders/{id}/items
func (h *OrderHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  *int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	// Quantity defaults to 1 when omitted; an explicit zero is invalid.
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	order, err := h.addProductHandler.Handle(command.AddProductCommand{
		OrderID:   id,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("order_id", id).Msg("Failed to add product to order")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product added to order",
		Data:    order,
	})
}

// UpdateTotal handles POST /api/orders/{id}/total
func (h *OrderHandler) UpdateTotal(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.updateTotalHandler.Handle(command.UpdateTotalCommand{OrderID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("order_id", id).Msg("Failed to update order total")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order total updated",
		Data:    order,
	})
}

// CompleteSale handles POST /api/orders/{id}/complete
func (h *OrderHandler) CompleteSale(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.completeHandler.Handle(r.Context(), command.CompleteSaleCommand{OrderID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("order_id", id).Msg("Failed to complete sale")
		respondError(w, err)
		return
	}

	h.salesCompleted.Inc()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sale completed successfully",
		Data:    order,
	})
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/orders/{id}/items", h.metricsMiddleware("/api/orders/{id}/items", h.AddProduct)).Methods("POST")
	router.HandleFunc("/api/orders/{id}/total", h.metricsMiddleware("/api/orders/{id}/total", h.UpdateTotal)).Methods("POST")
	router.HandleFunc("/api/orders/{id}/complete", h.metricsMiddleware("/api/orders/{id}/complete", h.CompleteSale)).Methods("POST")
}

func orderID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return 0, false
	}
	return uint(id), true
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
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
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
