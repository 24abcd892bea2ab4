package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/pkg/logger"
)

// Catalog creates the baseline catalog entries when the store is empty,
// so repeated runs never duplicate them.
func Catalog(repo domain.ProductRepository) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	baseline := []domain.Product{
		{
			Name:           "The Rails Way",
			Kind:           domain.KindBook,
			Title:          "The Rails Way",
			Author:         "Obie Fernandez",
			Publisher:      "Addison-Wesley",
			ISBN:           "978-0321601667",
			Price:          decimal.RequireFromString("49.99"),
			InventoryCount: 10,
			Category:       "Programming",
		},
		{
			Name:           "Bookstore Mug",
			Kind:           domain.KindProduct,
			Price:          decimal.RequireFromString("12.99"),
			InventoryCount: 25,
			Category:       "Merchandise",
		},
	}

	for i := range baseline {
		if err := repo.Create(&baseline[i]); err != nil {
			return fmt.Errorf("failed to seed %q: %w", baseline[i].Name, err)
		}
	}

	logger.Logger.Info().Int("products", len(baseline)).Msg("Seeded baseline catalog")
	return nil
}
