package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogdomain "github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/internal/order/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}

func (r *GormOrderRepository) Create(order *domain.Order) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id")
	}).First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("order", id)
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) FindByStaffID(staffID uint, limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").
		Where("staff_id = ?", staffID).
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) Delete(id uint) error {
	// Items go with the order (composition).
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Order{}, id).Error
	})
}

// UpdateLocked serializes read-modify-write cycles on one order: the
// order row is locked for the duration of the transaction, so
// concurrent additions cannot lose quantity or total updates.
func (r *GormOrderRepository) UpdateLocked(id uint, fn func(*domain.Order) error) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("order", id)
			}
			return err
		}
		if err := tx.Where("order_id = ?", id).Order("id").Find(&order.Items).Error; err != nil {
			return err
		}

		if err := fn(&order); err != nil {
			return err
		}

		for i := range order.Items {
			if err := tx.Save(&order.Items[i]).Error; err != nil {
				return err
			}
		}

		return tx.Model(&domain.Order{}).
			Where("id = ?", id).
			Update("total_amount", order.TotalAmount).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Complete applies the terminal transition and every inventory
// decrement in one transaction. The conditional timestamp write guards
// against concurrent or repeated completion; any insufficient stock
// rolls the whole completion back.
func (r *GormOrderRepository) Complete(id uint, completedAt time.Time) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Order{}).
			Where("id = ? AND completed_at IS NULL", id).
			Update("completed_at", completedAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&domain.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return apperror.NotFound("order", id)
			}
			return apperror.ErrOrderCompleted
		}

		var items []domain.OrderItem
		if err := tx.Where("order_id = ?", id).Order("id").Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			res := tx.Model(&catalogdomain.Product{}).
				Where("id = ? AND inventory_count >= ?", item.ProductID, item.Quantity).
				Update("inventory_count", gorm.Expr("inventory_count - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %d: %w", item.ProductID, apperror.ErrInsufficientStock)
			}
		}

		if err := tx.First(&order, id).Error; err != nil {
			return err
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
