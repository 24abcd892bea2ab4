package kafka

import "time"

// SaleCompletedItem is one order line carried on a sale event.
type SaleCompletedItem struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// SaleCompletedEvent is emitted after a sale completes and its
// inventory effects have committed.
type SaleCompletedEvent struct {
	EventID       string              `json:"event_id"`
	EventType     string              `json:"event_type"`
	OrderID       uint                `json:"order_id"`
	OrderNumber   string              `json:"order_number"`
	StaffID       uint                `json:"staff_id"`
	PaymentMethod string              `json:"payment_method"`
	TotalAmount   string              `json:"total_amount"`
	Items         []SaleCompletedItem `json:"items"`
	CompletedAt   time.Time           `json:"completed_at"`
	Timestamp     time.Time           `json:"timestamp"`
}

// Event types
const (
	EventTypeSaleCompleted = "sale.completed"
)

// Kafka topics
const (
	TopicSaleCompleted = "sale-completed"
)
