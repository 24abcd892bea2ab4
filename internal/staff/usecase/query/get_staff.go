package query

import (
	"github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

// GetStaffQuery represents the query to get a staff member by ID
type GetStaffQuery struct {
	ID uint
}

// GetStaffHandler handles get staff query
type GetStaffHandler struct {
	repo domain.StaffRepository
}

// NewGetStaffHandler creates a new get staff handler
func NewGetStaffHandler(repo domain.StaffRepository) *GetStaffHandler {
	return &GetStaffHandler{repo: repo}
}

// Handle executes the get staff query
func (h *GetStaffHandler) Handle(q GetStaffQuery) (*domain.Staff, error) {
	if q.ID == 0 {
		return nil, apperror.Validation("id", "is required")
	}
	return h.repo.FindByID(q.ID)
}
