package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/bookhaven/backoffice/internal/catalog/domain"
	staffdomain "github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/pkg/apperror"
)

func newStaffRepoWith(id uint) *memStaffRepo {
	return &memStaffRepo{staff: map[uint]*staffdomain.Staff{
		id: {ID: id, Name: "Alex", Email: "alex@bookhaven.test"},
	}}
}

func TestCreateOrder_Succeeds(t *testing.T) {
	orders := newMemOrderRepo(map[uint]*catalogdomain.Product{})
	handler := NewCreateOrderHandler(orders, newStaffRepoWith(1))

	order, err := handler.Handle(CreateOrderCommand{StaffID: 1, PaymentMethod: "cash"})

	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.True(t, strings.HasPrefix(order.Number, "ORD-"))
	assert.Equal(t, uint(1), order.StaffID)
	assert.Nil(t, order.CompletedAt, "new order must be open")
	assert.True(t, order.TotalAmount.IsZero())
	assert.Empty(t, order.Items)
}

func TestCreateOrder_RejectsBlankPaymentMethod(t *testing.T) {
	orders := newMemOrderRepo(map[uint]*catalogdomain.Product{})
	handler := NewCreateOrderHandler(orders, newStaffRepoWith(1))

	_, err := handler.Handle(CreateOrderCommand{StaffID: 1, PaymentMethod: "  "})

	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "payment_method", validationErr.Field)
	assert.Empty(t, orders.orders, "nothing persisted on validation failure")
}

func TestCreateOrder_RejectsMissingStaff(t *testing.T) {
	orders := newMemOrderRepo(map[uint]*catalogdomain.Product{})
	handler := NewCreateOrderHandler(orders, newStaffRepoWith(1))

	_, err := handler.Handle(CreateOrderCommand{StaffID: 99, PaymentMethod: "cash"})

	var notFoundErr *apperror.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "staff", notFoundErr.Resource)
	assert.Empty(t, orders.orders)
}
