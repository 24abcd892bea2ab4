package command

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

// CreateStaffCommand represents the command to create a staff member
type CreateStaffCommand struct {
	Name  string
	Email string
}

// CreateStaffHandler handles create staff command
type CreateStaffHandler struct {
	repo domain.StaffRepository
}

// NewCreateStaffHandler creates a new create staff handler
func NewCreateStaffHandler(repo domain.StaffRepository) *CreateStaffHandler {
	return &CreateStaffHandler{repo: repo}
}

// Handle executes the create staff command
func (h *CreateStaffHandler) Handle(cmd CreateStaffCommand) (*domain.Staff, error) {
	staff := &domain.Staff{
		Name:  cmd.Name,
		Email: cmd.Email,
	}

	if err := staff.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.repo.FindByEmail(staff.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, apperror.Validation("email", "has already been taken")
	}

	if err := h.repo.Create(staff); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	return staff, nil
}
