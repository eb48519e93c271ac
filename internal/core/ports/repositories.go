package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
)

// OrderRepository persists orders that completed the place-order pipeline.
// Only terminal entities are stored; in-flight pipeline states never touch
// the database.
type OrderRepository interface {
	// Add stores a delivered order together with its line items.
	Add(ctx context.Context, delivered order.Delivered) error
}

// InvoiceRepository persists invoices that completed the generate-invoice
// pipeline.
type InvoiceRepository interface {
	// Add stores a sent invoice together with its line items. The invoice
	// id is the natural key; storing the same invoice twice is an error.
	Add(ctx context.Context, sent invoice.Sent) error
}

// ShipmentRepository persists shipments that completed the prepare-shipment
// pipeline.
type ShipmentRepository interface {
	// Add stores a delivered shipment together with its line items. The
	// tracking number is the natural key.
	Add(ctx context.Context, delivered shipment.Delivered) error
}
