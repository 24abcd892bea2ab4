package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

type memStaffRepo struct {
	staff  map[uint]*domain.Staff
	nextID uint
}

func newMemStaffRepo() *memStaffRepo {
	return &memStaffRepo{staff: make(map[uint]*domain.Staff)}
}

func (r *memStaffRepo) Create(staff *domain.Staff) error {
	r.nextID++
	staff.ID = r.nextID
	r.staff[staff.ID] = staff
	return nil
}

func (r *memStaffRepo) FindByID(id uint) (*domain.Staff, error) {
	staff, ok := r.staff[id]
	if !ok {
		return nil, apperror.NotFound("staff", id)
	}
	return staff, nil
}

func (r *memStaffRepo) FindByEmail(email string) (*domain.Staff, error) {
	for _, staff := range r.staff {
		if staff.Email == email {
			return staff, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStaffRepo) FindAll(limit, offset int) ([]domain.Staff, error) {
	return nil, nil
}

func (r *memStaffRepo) Count() (int64, error) {
	return int64(len(r.staff)), nil
}

func TestCreateStaff_Succeeds(t *testing.T) {
	repo := newMemStaffRepo()
	handler := NewCreateStaffHandler(repo)

	staff, err := handler.Handle(CreateStaffCommand{Name: "Alex", Email: "alex@bookhaven.test"})

	require.NoError(t, err)
	assert.NotZero(t, staff.ID)
	assert.Equal(t, "Alex", staff.Name)
}

func TestCreateStaff_RejectsMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateStaffCommand
		wantErr string
	}{
		{name: "missing name", cmd: CreateStaffCommand{Email: "a@b.test"}, wantErr: "name"},
		{name: "missing email", cmd: CreateStaffCommand{Name: "Alex"}, wantErr: "email"},
		{name: "blank email", cmd: CreateStaffCommand{Name: "Alex", Email: "  "}, wantErr: "email"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemStaffRepo()
			handler := NewCreateStaffHandler(repo)

			_, err := handler.Handle(tc.cmd)

			var validationErr *apperror.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantErr, validationErr.Field)
			assert.Empty(t, repo.staff)
		})
	}
}

func TestCreateStaff_RejectsDuplicateEmail(t *testing.T) {
	repo := newMemStaffRepo()
	handler := NewCreateStaffHandler(repo)

	_, err := handler.Handle(CreateStaffCommand{Name: "Alex", Email: "alex@bookhaven.test"})
	require.NoError(t, err)

	_, err = handler.Handle(CreateStaffCommand{Name: "Sam", Email: "alex@bookhaven.test"})

	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "email", validationErr.Field)
	assert.Len(t, repo.staff, 1)
}
