package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

type memProductRepo struct {
	products []*domain.Product
}

func (r *memProductRepo) Create(product *domain.Product) error {
	product.ID = uint(len(r.products) + 1)
	r.products = append(r.products, product)
	return nil
}

func (r *memProductRepo) FindByID(id uint) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperror.NotFound("product", id)
}

func (r *memProductRepo) FindByISBN(isbn string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ISBN == isbn {
			return p, nil
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

func (r *memProductRepo) Update(product *domain.Product) error { return nil }

func (r *memProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

func (r *memProductRepo) DecrementInventory(id uint, quantity int) error { return nil }

func TestCatalogSeedsOnceIntoEmptyStore(t *testing.T) {
	repo := &memProductRepo{}

	require.NoError(t, Catalog(repo))
	assert.Len(t, repo.products, 2)

	book, err := repo.FindByISBN("978-0321601667")
	require.NoError(t, err)
	assert.Equal(t, domain.KindBook, book.Kind)
	assert.Equal(t, "Obie Fernandez", book.Author)

	// Repeated runs never duplicate the baseline.
	require.NoError(t, Catalog(repo))
	assert.Len(t, repo.products, 2)
}
