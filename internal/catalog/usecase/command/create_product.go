package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

// CreateProductCommand represents the command to create a product or a
// book variant.
type CreateProductCommand struct {
	Name           string
	Description    string
	Price          *decimal.Decimal
	Category       string
	InventoryCount *int
	Kind           string
	Title          string
	Author         string
	Publisher      string
	ISBN           string
}

// CreateProductHandler handles create product command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Price == nil {
		return nil, apperror.Validation("price", "is required")
	}
	if cmd.InventoryCount == nil {
		return nil, apperror.Validation("inventory_count", "is required")
	}

	kind := cmd.Kind
	if kind == "" {
		kind = domain.KindProduct
	}

	product := &domain.Product{
		Name:           cmd.Name,
		Description:    cmd.Description,
		Price:          *cmd.Price,
		Category:       cmd.Category,
		InventoryCount: *cmd.InventoryCount,
		Kind:           kind,
		Title:          cmd.Title,
		Author:         cmd.Author,
		Publisher:      cmd.Publisher,
		ISBN:           cmd.ISBN,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	// ISBN uniqueness applies to books with a non-blank isbn only, so
	// the check lives here rather than on a unique index.
	if product.IsBook() && strings.TrimSpace(product.ISBN) != "" {
		existing, err := h.repo.FindByISBN(product.ISBN)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check isbn: %w", err)
		}
		if existing != nil {
			return nil, apperror.Validation("isbn", "has already been taken")
		}
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
