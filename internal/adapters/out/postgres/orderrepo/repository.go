package orderrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository bound to the
// given connection or transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a delivered order and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, delivered order.Delivered) error {
	if err := delivered.CustomerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("delivered order", err)
	}

	dto := fromDomain(delivered)
	return r.db.WithContext(ctx).Create(&dto).Error
}
