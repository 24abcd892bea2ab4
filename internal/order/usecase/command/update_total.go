package command

import (
	"fmt"

	"github.com/bookhaven/backoffice/internal/order/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

// UpdateTotalCommand represents the command to recompute an order's
// total from its current items.
type UpdateTotalCommand struct {
	OrderID uint
}

// UpdateTotalHandler handles update total command
type UpdateTotalHandler struct {
	orders domain.OrderRepository
}

// NewUpdateTotalHandler creates a new update total handler
func NewUpdateTotalHandler(orders domain.OrderRepository) *UpdateTotalHandler {
	return &UpdateTotalHandler{orders: orders}
}

// Handle executes the update total command. Idempotent.
func (h *UpdateTotalHandler) Handle(cmd UpdateTotalCommand) (*domain.Order, error) {
	if cmd.OrderID == 0 {
		return nil, apperror.Validation("order_id", "is required")
	}

	order, err := h.orders.UpdateLocked(cmd.OrderID, func(o *domain.Order) error {
		o.RecalculateTotal()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update total: %w", err)
	}

	return order, nil
}
