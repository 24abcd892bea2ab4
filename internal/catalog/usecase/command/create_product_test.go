package command

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

type memProductRepo struct {
	products map[uint]*domain.Product
	nextID   uint
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uint]*domain.Product)}
}

func (r *memProductRepo) Create(product *domain.Product) error {
	r.nextID++
	product.ID = r.nextID
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) FindByID(id uint) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, apperror.NotFound("product", id)
	}
	return product, nil
}

func (r *memProductRepo) FindByISBN(isbn string) (*domain.Product, error) {
	for _, product := range r.products {
		if product.ISBN == isbn {
			return product, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	return nil, nil
}

func (r *memProductRepo) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	return nil, nil
}

func (r *memProductRepo) Update(product *domain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

func (r *memProductRepo) DecrementInventory(id uint, quantity int) error {
	product, ok := r.products[id]
	if !ok {
		return apperror.NotFound("product", id)
	}
	if product.InventoryCount < quantity {
		return apperror.ErrInsufficientStock
	}
	product.InventoryCount -= quantity
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestCreateProduct_Succeeds(t *testing.T) {
	repo := newMemProductRepo()
	handler := NewCreateProductHandler(repo)

	product, err := handler.Handle(CreateProductCommand{
		Name:           "Bookstore Mug",
		Price:          ptr(decimal.RequireFromString("12.99")),
		InventoryCount: ptr(25),
		Category:       "Merchandise",
	})

	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, domain.KindProduct, product.Kind)
	assert.Equal(t, 25, product.InventoryCount)
}

func TestCreateProduct_RejectsInvalidAttributes(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateProductCommand
		wantErr string
	}{
		{
			name:    "missing price",
			cmd:     CreateProductCommand{Name: "Mug", InventoryCount: ptr(1)},
			wantErr: "price",
		},
		{
			name:    "missing inventory count",
			cmd:     CreateProductCommand{Name: "Mug", Price: ptr(decimal.RequireFromString("1.00"))},
			wantErr: "inventory_count",
		},
		{
			name:    "blank name",
			cmd:     CreateProductCommand{Name: " ", Price: ptr(decimal.RequireFromString("1.00")), InventoryCount: ptr(1)},
			wantErr: "name",
		},
		{
			name:    "negative price",
			cmd:     CreateProductCommand{Name: "Mug", Price: ptr(decimal.RequireFromString("-1.00")), InventoryCount: ptr(1)},
			wantErr: "price",
		},
		{
			name:    "negative inventory",
			cmd:     CreateProductCommand{Name: "Mug", Price: ptr(decimal.RequireFromString("1.00")), InventoryCount: ptr(-2)},
			wantErr: "inventory_count",
		},
		{
			name:    "book without title",
			cmd:     CreateProductCommand{Name: "Book", Kind: domain.KindBook, Price: ptr(decimal.RequireFromString("1.00")), InventoryCount: ptr(1)},
			wantErr: "title",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemProductRepo()
			handler := NewCreateProductHandler(repo)

			_, err := handler.Handle(tc.cmd)

			var validationErr *apperror.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantErr, validationErr.Field)
			assert.Empty(t, repo.products, "nothing persisted on validation failure")
		})
	}
}

func bookCommand(isbn string) CreateProductCommand {
	return CreateProductCommand{
		Name:           "The Rails Way",
		Kind:           domain.KindBook,
		Title:          "The Rails Way",
		Author:         "Obie Fernandez",
		ISBN:           isbn,
		Price:          ptr(decimal.RequireFromString("49.99")),
		InventoryCount: ptr(10),
	}
}

func TestCreateBook_RejectsDuplicateISBN(t *testing.T) {
	repo := newMemProductRepo()
	handler := NewCreateProductHandler(repo)

	_, err := handler.Handle(bookCommand("978-0321601667"))
	require.NoError(t, err)

	_, err = handler.Handle(bookCommand("978-0321601667"))

	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "isbn", validationErr.Field)
	assert.Len(t, repo.products, 1)
}

func TestCreateBook_AllowsRepeatedBlankISBN(t *testing.T) {
	repo := newMemProductRepo()
	handler := NewCreateProductHandler(repo)

	_, err := handler.Handle(bookCommand(""))
	require.NoError(t, err)

	_, err = handler.Handle(bookCommand(""))

	require.NoError(t, err, "blank isbn is exempt from uniqueness")
	assert.Len(t, repo.products, 2)
}

func TestDecrementInventory(t *testing.T) {
	repo := newMemProductRepo()
	require.NoError(t, repo.Create(&domain.Product{Name: "Mug", Price: decimal.RequireFromString("12.99"), InventoryCount: 5, Kind: domain.KindProduct}))

	handler := NewDecrementInventoryHandler(repo)

	require.NoError(t, handler.Handle(DecrementInventoryCommand{ProductID: 1, Quantity: 2}))
	assert.Equal(t, 3, repo.products[1].InventoryCount)

	var validationErr *apperror.ValidationError
	err := handler.Handle(DecrementInventoryCommand{ProductID: 1, Quantity: 0})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "quantity", validationErr.Field)

	err = handler.Handle(DecrementInventoryCommand{ProductID: 1, Quantity: 10})
	assert.ErrorIs(t, err, apperror.ErrInsufficientStock)
	assert.Equal(t, 3, repo.products[1].InventoryCount)
}
