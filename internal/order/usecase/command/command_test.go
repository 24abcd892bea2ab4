package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	catalogdomain "github.com/bookhaven/backoffice/internal/catalog/domain"
	"github.com/bookhaven/backoffice/internal/order/domain"
	staffdomain "github.com/bookhaven/backoffice/internal/staff/domain"
	"github.com/bookhaven/backoffice/kafka"
	"github.com/bookhaven/backoffice/pkg/apperror"
	"gorm.io/gorm"
)

// In-memory repositories mirroring the persistence contracts, so the
// handlers can be exercised without a database.

type memOrderRepo struct {
	orders   map[uint]*domain.Order
	products map[uint]*catalogdomain.Product
	nextID   uint
}

func newMemOrderRepo(products map[uint]*catalogdomain.Product) *memOrderRepo {
	return &memOrderRepo{
		orders:   make(map[uint]*domain.Order),
		products: products,
	}
}

func (r *memOrderRepo) Create(order *domain.Order) error {
	r.nextID++
	order.ID = r.nextID
	r.orders[order.ID] = order
	return nil
}

func (r *memOrderRepo) FindByID(id uint) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, apperror.NotFound("order", id)
	}
	return order, nil
}

func (r *memOrderRepo) FindAll(limit, offset int) ([]domain.Order, error) {
	ids := make([]uint, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var orders []domain.Order
	for _, id := range ids {
		orders = append(orders, *r.orders[id])
	}
	return orders, nil
}

func (r *memOrderRepo) FindByStaffID(staffID uint, limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	for _, order := range r.orders {
		if order.StaffID == staffID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *memOrderRepo) Delete(id uint) error {
	delete(r.orders, id)
	return nil
}

func (r *memOrderRepo) UpdateLocked(id uint, fn func(*domain.Order) error) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, apperror.NotFound("order", id)
	}
	if err := fn(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *memOrderRepo) Complete(id uint, completedAt time.Time) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, apperror.NotFound("order", id)
	}
	if order.Completed() {
		return nil, apperror.ErrOrderCompleted
	}

	// All or nothing, like the transactional implementation.
	for _, item := range order.Items {
		product, ok := r.products[item.ProductID]
		if !ok {
			return nil, apperror.NotFound("product", item.ProductID)
		}
		if product.InventoryCount < item.Quantity {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, apperror.ErrInsufficientStock)
		}
	}
	for _, item := range order.Items {
		r.products[item.ProductID].InventoryCount -= item.Quantity
	}

	order.CompletedAt = &completedAt
	return order, nil
}

type memProductRepo struct {
	products map[uint]*catalogdomain.Product
}

func (r *memProductRepo) Create(product *catalogdomain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) FindByID(id uint) (*catalogdomain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, apperror.NotFound("product", id)
	}
	return product, nil
}

func (r *memProductRepo) FindByISBN(isbn string) (*catalogdomain.Product, error) {
	for _, product := range r.products {
		if product.ISBN == isbn {
			return product, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memProductRepo) FindAll(limit, offset int) ([]catalogdomain.Product, error) {
	return nil, nil
}

func (r *memProductRepo) FindByCategory(category string, limit, offset int) ([]catalogdomain.Product, error) {
	return nil, nil
}

func (r *memProductRepo) Update(product *catalogdomain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

func (r *memProductRepo) DecrementInventory(id uint, quantity int) error {
	product, ok := r.products[id]
	if !ok {
		return apperror.NotFound("product", id)
	}
	if product.InventoryCount < quantity {
		return apperror.ErrInsufficientStock
	}
	product.InventoryCount -= quantity
	return nil
}

type memStaffRepo struct {
	staff map[uint]*staffdomain.Staff
}

func (r *memStaffRepo) Create(staff *staffdomain.Staff) error {
	r.staff[staff.ID] = staff
	return nil
}

func (r *memStaffRepo) FindByID(id uint) (*staffdomain.Staff, error) {
	staff, ok := r.staff[id]
	if !ok {
		return nil, apperror.NotFound("staff", id)
	}
	return staff, nil
}

func (r *memStaffRepo) FindByEmail(email string) (*staffdomain.Staff, error) {
	for _, staff := range r.staff {
		if staff.Email == email {
			return staff, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStaffRepo) FindAll(limit, offset int) ([]staffdomain.Staff, error) {
	return nil, nil
}

func (r *memStaffRepo) Count() (int64, error) {
	return int64(len(r.staff)), nil
}

type capturingPublisher struct {
	events []kafka.SaleCompletedEvent
	err    error
}

func (p *capturingPublisher) PublishSaleCompleted(_ context.Context, event kafka.SaleCompletedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

var errPublisherDown = errors.New("broker unreachable")
