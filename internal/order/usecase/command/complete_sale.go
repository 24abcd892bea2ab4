package command

import (
	"context"
	"time"

	"github.com/bookhaven/backoffice/internal/order/domain"
	"github.com/bookhaven/backoffice/kafka"
	"github.com/bookhaven/backoffice/pkg/apperror"
	"github.com/bookhaven/backoffice/pkg/logger"
)

// SalePublisher emits sale events after completion commits.
type SalePublisher interface {
	PublishSaleCompleted(ctx context.Context, event kafka.SaleCompletedEvent) error
}

// CompleteSaleCommand represents the command to finalize an order
type CompleteSaleCommand struct {
	OrderID uint
}

// CompleteSaleHandler handles complete sale command
type CompleteSaleHandler struct {
	orders    domain.OrderRepository
	publisher SalePublisher
	now       func() time.Time
}

// NewCompleteSaleHandler creates a new complete sale handler. publisher
// may be nil when eventing is disabled.
func NewCompleteSaleHandler(orders domain.OrderRepository, publisher SalePublisher) *CompleteSaleHandler {
	return &CompleteSaleHandler{
		orders:    orders,
		publisher: publisher,
		now:       time.Now,
	}
}

// Handle executes the complete sale command. The completion timestamp
// and every inventory decrement commit together or not at all; the
// event publish happens after the commit and never rolls it back.
func (h *CompleteSaleHandler) Handle(ctx context.Context, cmd CompleteSaleCommand) (*domain.Order, error) {
	if cmd.OrderID == 0 {
		return nil, apperror.Validation("order_id", "is required")
	}

	order, err := h.orders.Complete(cmd.OrderID, h.now().UTC())
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		event := kafka.SaleCompletedEvent{
			OrderID:       order.ID,
			OrderNumber:   order.Number,
			StaffID:       order.StaffID,
			PaymentMethod: order.PaymentMethod,
			TotalAmount:   order.TotalAmount.String(),
			CompletedAt:   *order.CompletedAt,
		}
		for _, item := range order.Items {
			event.Items = append(event.Items, kafka.SaleCompletedItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice.String(),
			})
		}

		if err := h.publisher.PublishSaleCompleted(ctx, event); err != nil {
			// The sale is already committed; the event is best effort.
			logger.Logger.Warn().Err(err).Uint("order_id", order.ID).Msg("Failed to publish sale completed event")
		}
	}

	return order, nil
}
