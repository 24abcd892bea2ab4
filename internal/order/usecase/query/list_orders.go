package query

import (
	"fmt"

	"github.com/bookhaven/backoffice/internal/order/domain"
)

// ListOrdersQuery represents the query to list orders, optionally
// filtered by owning staff member.
type ListOrdersQuery struct {
	StaffID uint
	Limit   int
	Offset  int
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) ([]domain.Order, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	var (
		orders []domain.Order
		err    error
	)
	if q.StaffID != 0 {
		orders, err = h.repo.FindByStaffID(q.StaffID, q.Limit, q.Offset)
	} else {
		orders, err = h.repo.FindAll(q.Limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
