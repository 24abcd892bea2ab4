package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/bookhaven/backoffice/internal/catalog/domain"
	staffdomain "github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

// Order is the ledger aggregate: it owns its line items and keeps
// total_amount equal to the sum of unit_price * quantity across them.
// completed_at null means the order is open; once set, the order is
// terminal and its items are frozen.
type Order struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	Number        string            `json:"number" gorm:"uniqueIndex;not null"`
	StaffID       uint              `json:"staff_id" gorm:"not null;index"`
	Staff         staffdomain.Staff `json:"-" gorm:"foreignKey:StaffID"`
	PaymentMethod string            `json:"payment_method" gorm:"not null"`
	TotalAmount   decimal.Decimal   `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	CompletedAt   *time.Time        `json:"completed_at"`
	Items         []OrderItem       `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one product line within an order. UnitPrice is a
// snapshot of the product's price at first addition and is never
// refreshed afterwards.
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null;index"`
	ProductID uint            `json:"product_id" gorm:"not null;index"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// Subtotal is unit_price * quantity for the line.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Completed reports whether the order reached its terminal state.
func (o *Order) Completed() bool {
	return o.CompletedAt != nil
}

// Validate enforces the order creation invariants.
func (o *Order) Validate() error {
	if o.StaffID == 0 {
		return apperror.Validation("staff", "is required")
	}
	if strings.TrimSpace(o.PaymentMethod) == "" {
		return apperror.Validation("payment_method", "is required")
	}
	return nil
}

// AddProduct merges quantity into the existing line for the product, or
// appends a new line priced at the product's current price, then
// recalculates the total. Only open orders accept additions.
func (o *Order) AddProduct(product *catalogdomain.Product, quantity int) error {
	if product == nil {
		return apperror.Validation("product", "is required")
	}
	if quantity < 1 {
		return apperror.Validation("quantity", "must be a positive integer")
	}
	if o.Completed() {
		return apperror.ErrOrderCompleted
	}

	for i := range o.Items {
		if o.Items[i].ProductID == product.ID {
			o.Items[i].Quantity += quantity
			o.RecalculateTotal()
			return nil
		}
	}

	o.Items = append(o.Items, OrderItem{
		OrderID:   o.ID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
	})
	o.RecalculateTotal()
	return nil
}

// RecalculateTotal recomputes total_amount from the current items.
// Idempotent.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Subtotal())
	}
	o.TotalAmount = total
}

// Complete stamps the terminal transition. Re-completion is rejected.
func (o *Order) Complete(at time.Time) error {
	if o.Completed() {
		return apperror.ErrOrderCompleted
	}
	o.CompletedAt = &at
	return nil
}

// OrderRepository defines the contract for order data access. The two
// compound operations run inside a single database transaction in the
// gorm implementation.
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id uint) (*Order, error)
	FindAll(limit, offset int) ([]Order, error)
	FindByStaffID(staffID uint, limit, offset int) ([]Order, error)
	Delete(id uint) error

	// UpdateLocked loads the order and its items with the order row
	// locked, applies fn, and persists the items and total before the
	// transaction commits.
	UpdateLocked(id uint, fn func(*Order) error) (*Order, error)

	// Complete transitions the order to completed and decrements the
	// inventory of every line's product, all or nothing. The
	// transition only succeeds while completed_at is still null.
	Complete(id uint, completedAt time.Time) (*Order, error)
}
