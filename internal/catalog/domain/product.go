package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bookhaven/backoffice/pkg/apperror"
)

// Product kinds. Books share the products table and are selected by the
// type discriminator column.
const (
	KindProduct = "product"
	KindBook    = "book"
)

// Product represents a catalog entry. The book variant carries the
// extra title/author/publisher/isbn columns.
type Product struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"not null"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Category       string          `json:"category"`
	InventoryCount int             `json:"inventory_count" gorm:"not null;default:0"`
	Kind           string          `json:"kind" gorm:"column:type;not null;default:'product'"`
	Title          string          `json:"title,omitempty"`
	Author         string          `json:"author,omitempty"`
	Publisher      string          `json:"publisher,omitempty"`
	ISBN           string          `json:"isbn,omitempty" gorm:"column:isbn"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsBook reports whether the product is the book variant.
func (p *Product) IsBook() bool {
	return p.Kind == KindBook
}

// IsAvailable checks if product is in stock
func (p *Product) IsAvailable() bool {
	return p.InventoryCount > 0
}

// Validate enforces the catalog invariants. It returns a
// ValidationError describing the first violated constraint.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.Validation("name", "is required")
	}
	if p.Price.IsNegative() {
		return apperror.Validation("price", "must be greater than or equal to 0")
	}
	if p.InventoryCount < 0 {
		return apperror.Validation("inventory_count", "must be greater than or equal to 0")
	}

	switch p.Kind {
	case KindProduct:
	case KindBook:
		if strings.TrimSpace(p.Title) == "" {
			return apperror.Validation("title", "is required")
		}
	default:
		return apperror.Validation("kind", "must be product or book")
	}

	return nil
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindByISBN(isbn string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	FindByCategory(category string, limit, offset int) ([]Product, error)
	Update(product *Product) error
	Count() (int64, error)

	// DecrementInventory atomically reduces inventory_count by quantity.
	// It fails with ErrInsufficientStock when the product holds fewer
	// than quantity units.
	DecrementInventory(id uint, quantity int) error
}
