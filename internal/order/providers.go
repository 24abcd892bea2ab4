package order

import (
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/order/domain"
	"github.com/bookhaven/backoffice/internal/order/repository"
)

// ProvideOrderRepository provides the gorm-backed order repository
// wrapped with tracing
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepositoryWithTracing(db)
}
