package catalog

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/internal/catalog/repository"
)

// ProvideProductRepository provides the gorm-backed product repository
// wrapped with tracing
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// ProvideCachedProductRepository layers the redis read-through cache on
// top of the traced gorm repository
func ProvideCachedProductRepository(db *gorm.DB, rdb *redis.Client) domain.ProductRepository {
	return repository.NewCachedProductRepository(repository.NewGormProductRepositoryWithTracing(db), rdb)
}
