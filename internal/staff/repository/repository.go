package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

type GormStaffRepository struct {
	db *gorm.DB
}

func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

func (r *GormStaffRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Staff{})
}

func (r *GormStaffRepository) Create(staff *domain.Staff) error {
	return r.db.Create(staff).Error
}

func (r *GormStaffRepository) FindByID(id uint) (*domain.Staff, error) {
	var staff domain.Staff
	err := r.db.First(&staff, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("staff", id)
		}
		return nil, err
	}
	return &staff, nil
}

func (r *GormStaffRepository) FindByEmail(email string) (*domain.Staff, error) {
	var staff domain.Staff
	err := r.db.Where("email = ?", email).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *GormStaffRepository) FindAll(limit, offset int) ([]domain.Staff, error) {
	var staff []domain.Staff
	err := r.db.Limit(limit).Offset(offset).Find(&staff).Error
	return staff, err
}

func (r *GormStaffRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Staff{}).Count(&count).Error
	return count, err
}
