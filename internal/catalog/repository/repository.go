package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("product", id)
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByISBN(isbn string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("isbn = ?", isbn).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("category = ?", category).Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

// DecrementInventory applies a conditional single-statement decrement so
// concurrent decrements of the same product serialize on the row and
// the count never drops below zero.
func (r *GormProductRepository) DecrementInventory(id uint, quantity int) error {
	res := r.db.Model(&domain.Product{}).
		Where("id = ? AND inventory_count >= ?", id, quantity).
		Update("inventory_count", gorm.Expr("inventory_count - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&domain.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperror.NotFound("product", id)
		}
		return fmt.Errorf("product %d: %w", id, apperror.ErrInsufficientStock)
	}
	return nil
}
