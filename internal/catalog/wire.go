//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/catalog/delivery/http"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var CachedRepositorySet = wire.NewSet(
	ProvideCachedProductRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewProductHandler,
	)
	return nil, nil
}

// InitializeHTTPHandlerWithCache initializes HTTP handler with the
// redis-cached repository
func InitializeHTTPHandlerWithCache(db *gorm.DB, rdb *redis.Client) (*http.ProductHandler, error) {
	wire.Build(
		CachedRepositorySet,
		http.NewProductHandler,
	)
	return nil, nil
}
