package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/backoffice/pkg/apperror"
)

func validProduct() Product {
	return Product{
		Name:           "Bookstore Mug",
		Price:          decimal.RequireFromString("12.99"),
		InventoryCount: 25,
		Kind:           KindProduct,
	}
}

func validBook() Product {
	return Product{
		Name:           "The Rails Way",
		Price:          decimal.RequireFromString("49.99"),
		InventoryCount: 10,
		Kind:           KindBook,
		Title:          "The Rails Way",
		Author:         "Obie Fernandez",
	}
}

func TestProductValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Product)
		wantErr string
	}{
		{name: "valid product", mutate: func(p *Product) {}},
		{name: "blank name", mutate: func(p *Product) { p.Name = "  " }, wantErr: "name"},
		{name: "negative price", mutate: func(p *Product) { p.Price = decimal.RequireFromString("-0.01") }, wantErr: "price"},
		{name: "zero price is allowed", mutate: func(p *Product) { p.Price = decimal.Zero }},
		{name: "negative inventory", mutate: func(p *Product) { p.InventoryCount = -1 }, wantErr: "inventory_count"},
		{name: "zero inventory is allowed", mutate: func(p *Product) { p.InventoryCount = 0 }},
		{name: "unknown kind", mutate: func(p *Product) { p.Kind = "magazine" }, wantErr: "kind"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			product := validProduct()
			tc.mutate(&product)

			err := product.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *apperror.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantErr, validationErr.Field)
		})
	}
}

func TestBookValidate(t *testing.T) {
	book := validBook()
	require.NoError(t, book.Validate())
	assert.True(t, book.IsBook())

	book.Title = ""
	var validationErr *apperror.ValidationError
	err := book.Validate()
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)
}

func TestIsAvailable(t *testing.T) {
	product := validProduct()
	assert.True(t, product.IsAvailable())

	product.InventoryCount = 0
	assert.False(t, product.IsAvailable())
}
