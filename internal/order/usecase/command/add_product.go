package command

import (
	"fmt"

	catalogdomain "github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/internal/order/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

// AddProductCommand represents the command to add a product to an open
// order.
type AddProductCommand struct {
	OrderID   uint
	ProductID uint
	Quantity  int
}

// AddProductHandler handles add product command
type AddProductHandler struct {
	orders   domain.OrderRepository
	products catalogdomain.ProductRepository
}

// NewAddProductHandler creates a new add product handler
func NewAddProductHandler(orders domain.OrderRepository, products catalogdomain.ProductRepository) *AddProductHandler {
	return &AddProductHandler{orders: orders, products: products}
}

// Handle executes the add product command. The item merge and the total
// recompute run under one locked transaction against the order.
func (h *AddProductHandler) Handle(cmd AddProductCommand) (*domain.Order, error) {
	if cmd.OrderID == 0 {
		return nil, apperror.Validation("order_id", "is required")
	}
	if cmd.ProductID == 0 {
		return nil, apperror.Validation("product", "is required")
	}

	if cmd.Quantity < 1 {
		return nil, apperror.Validation("quantity", "must be a positive integer")
	}

	product, err := h.products.FindByID(cmd.ProductID)
	if err != nil {
		return nil, err
	}

	order, err := h.orders.UpdateLocked(cmd.OrderID, func(o *domain.Order) error {
		return o.AddProduct(product, cmd.Quantity)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add product to order: %w", err)
	}

	return order, nil
}
