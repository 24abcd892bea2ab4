package staff

import (
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/internal/staff/repository"
)

// ProvideStaffRepository provides the gorm-backed staff repository
func ProvideStaffRepository(db *gorm.DB) domain.StaffRepository {
	return repository.NewGormStaffRepository(db)
}
