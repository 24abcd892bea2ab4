package query

import (
	"fmt"

	"github.com/bookhaven/backoffice/internal/staff/domain"
)

// ListStaffQuery represents the query to list staff members
type ListStaffQuery struct {
	Limit  int
	Offset int
}

// ListStaffHandler handles list staff query
type ListStaffHandler struct {
	repo domain.StaffRepository
}

// NewListStaffHandler creates a new list staff handler
func NewListStaffHandler(repo domain.StaffRepository) *ListStaffHandler {
	return &ListStaffHandler{repo: repo}
}

// Handle executes the list staff query
func (h *ListStaffHandler) Handle(q ListStaffQuery) ([]domain.Staff, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	staff, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	return staff, nil
}
