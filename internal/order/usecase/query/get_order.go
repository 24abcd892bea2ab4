package query

import (
	"github.com/bookhaven/backoffice/internal/order/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

// GetOrderQuery represents the query to get an order by ID
type GetOrderQuery struct {
	ID uint
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	if q.ID == 0 {
		return nil, apperror.Validation("id", "is required")
	}
	return h.repo.FindByID(q.ID)
}
