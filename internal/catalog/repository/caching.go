package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/pkg/logger"
)

// CachedProductRepository is a read-through cache in front of another
// ProductRepository. Redis failures degrade to the underlying store.
type CachedProductRepository struct {
	domain.ProductRepository
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedProductRepository(repo domain.ProductRepository, rdb *redis.Client) *CachedProductRepository {
	return &CachedProductRepository{
		ProductRepository: repo,
		redis:             rdb,
		ttl:               5 * time.Minute,
	}
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *CachedProductRepository) FindByID(id uint) (*domain.Product, error) {
	ctx := context.Background()
	key := productKey(id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var product domain.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
		logger.Logger.Warn().Uint("product_id", id).Msg("Corrupt cache entry, falling back to database")
	case errors.Is(err, redis.Nil):
	default:
		logger.Logger.Warn().Err(err).Msg("Redis unavailable, falling back to database")
	}

	product, err := c.ProductRepository.FindByID(id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(product); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to cache product")
		}
	}

	return product, nil
}

func (c *CachedProductRepository) Update(product *domain.Product) error {
	if err := c.ProductRepository.Update(product); err != nil {
		return err
	}
	c.invalidate(product.ID)
	return nil
}

func (c *CachedProductRepository) DecrementInventory(id uint, quantity int) error {
	if err := c.ProductRepository.DecrementInventory(id, quantity); err != nil {
		return err
	}
	c.invalidate(id)
	return nil
}

func (c *CachedProductRepository) invalidate(id uint) {
	if err := c.redis.Del(context.Background(), productKey(id)).Err(); err != nil {
		logger.Logger.Warn().Err(err).Uint("product_id", id).Msg("Failed to invalidate cached product")
	}
}
