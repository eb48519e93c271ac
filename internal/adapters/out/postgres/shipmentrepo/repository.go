package shipmentrepo

import (
	"context"
	"strings"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository bound to
// the given connection or transaction.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a delivered shipment and its line items.
func (r *GormShipmentRepository) Add(ctx context.Context, delivered shipment.Delivered) error {
	if strings.TrimSpace(delivered.TrackingNumber) == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	dto := fromDomain(delivered)
	return r.db.WithContext(ctx).Create(&dto).Error
}
