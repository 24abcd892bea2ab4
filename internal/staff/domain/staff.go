package domain

import (
	"strings"
	"time"

	"github.com/bookhaven/backoffice/pkg/apperror"
)

// Staff represents a staff member who owns orders.
type Staff struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Staff) TableName() string {
	return "staff"
}

// Validate enforces presence of name and email.
func (s *Staff) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return apperror.Validation("name", "is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		return apperror.Validation("email", "is required")
	}
	return nil
}

// StaffRepository defines the contract for staff data access
type StaffRepository interface {
	Create(staff *Staff) error
	FindByID(id uint) (*Staff, error)
	FindByEmail(email string) (*Staff, error)
	FindAll(limit, offset int) ([]Staff, error)
	Count() (int64, error)
}
