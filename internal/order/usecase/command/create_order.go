package command

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookhaven/backoffice/internal/order/domain"
	staffdomain "github.com/bookhaven/backoffice/internal/staff/domain"
)

// CreateOrderCommand represents the command to open a new order
type CreateOrderCommand struct {
	StaffID       uint
	PaymentMethod string
}

// CreateOrderHandler handles create order command
type CreateOrderHandler struct {
	orders domain.OrderRepository
	staff  staffdomain.StaffRepository
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(orders domain.OrderRepository, staff staffdomain.StaffRepository) *CreateOrderHandler {
	return &CreateOrderHandler{orders: orders, staff: staff}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(cmd CreateOrderCommand) (*domain.Order, error) {
	order := &domain.Order{
		Number:        fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		StaffID:       cmd.StaffID,
		PaymentMethod: cmd.PaymentMethod,
		TotalAmount:   decimal.Zero,
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	// Every order is owned by exactly one staff member.
	if _, err := h.staff.FindByID(cmd.StaffID); err != nil {
		return nil, err
	}

	if err := h.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}
