package command

import (
	"fmt"

	"github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

// DecrementInventoryCommand represents the command to reduce a
// product's quantity on hand.
type DecrementInventoryCommand struct {
	ProductID uint
	Quantity  int
}

// DecrementInventoryHandler handles decrement inventory command
type DecrementInventoryHandler struct {
	repo domain.ProductRepository
}

// NewDecrementInventoryHandler creates a new decrement inventory handler
func NewDecrementInventoryHandler(repo domain.ProductRepository) *DecrementInventoryHandler {
	return &DecrementInventoryHandler{repo: repo}
}

// Handle executes the decrement inventory command
func (h *DecrementInventoryHandler) Handle(cmd DecrementInventoryCommand) error {
	if cmd.ProductID == 0 {
		return apperror.Validation("product_id", "is required")
	}
	if cmd.Quantity < 1 {
		return apperror.Validation("quantity", "must be a positive integer")
	}

	if err := h.repo.DecrementInventory(cmd.ProductID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to decrement inventory: %w", err)
	}

	return nil
}
