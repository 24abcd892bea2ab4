package repository

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/bookhaven/backoffice/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// GormOrderRepositoryWithTracing wraps GormOrderRepository with tracing
type GormOrderRepositoryWithTracing struct {
	*GormOrderRepository
}

// NewGormOrderRepositoryWithTracing creates a new repository with tracing
func NewGormOrderRepositoryWithTracing(db *gorm.DB) *GormOrderRepositoryWithTracing {
	return &GormOrderRepositoryWithTracing{
		GormOrderRepository: NewGormOrderRepository(db),
	}
}

// CreateWithContext records a span around Create
func (r *GormOrderRepositoryWithTracing) CreateWithContext(ctx context.Context, order *domain.Order) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("order.staff_id", int(order.StaffID)),
			attribute.String("order.payment_method", order.PaymentMethod),
		),
	)
	defer span.End()

	err := r.GormOrderRepository.Create(order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("order.id", int(order.ID)))
	return nil
}

// UpdateLockedWithContext records a span around UpdateLocked
func (r *GormOrderRepositoryWithTracing) UpdateLockedWithContext(ctx context.Context, id uint, fn func(*domain.Order) error) (*domain.Order, error) {
	_, span := tracer.Start(ctx, "repository.UpdateLocked",
		trace.WithAttributes(
			attribute.Int("order.id", int(id)),
		),
	)
	defer span.End()

	order, err := r.GormOrderRepository.UpdateLocked(id, fn)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("order.items", len(order.Items)),
		attribute.String("order.total_amount", order.TotalAmount.String()),
	)
	return order, nil
}

// CompleteWithContext records a span around Complete
func (r *GormOrderRepositoryWithTracing) CompleteWithContext(ctx context.Context, id uint, completedAt time.Time) (*domain.Order, error) {
	_, span := tracer.Start(ctx, "repository.Complete",
		trace.WithAttributes(
			attribute.Int("order.id", int(id)),
		),
	)
	defer span.End()

	order, err := r.GormOrderRepository.Complete(id, completedAt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("order.items", len(order.Items)))
	return order, nil
}
