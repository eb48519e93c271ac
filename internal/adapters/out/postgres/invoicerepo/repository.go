package invoicerepo

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements ports.InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository bound to
// the given connection or transaction.
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Add saves a sent invoice and its line items. Inserting the same invoice
// id twice violates the primary key and is surfaced as the driver error.
func (r *GormInvoiceRepository) Add(ctx context.Context, sent invoice.Sent) error {
	if err := sent.InvoiceID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sent invoice", err)
	}

	dto := fromDomain(sent)
	return r.db.WithContext(ctx).Create(&dto).Error
}
