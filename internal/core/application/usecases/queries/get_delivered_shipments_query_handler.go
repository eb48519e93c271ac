package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetDeliveredShipmentsQueryHandler reads delivered shipments straight from
// the shipments table with raw SQL.
type GetDeliveredShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveredShipmentsQueryHandler creates a handler for delivered
// shipment retrieval.
func NewGetDeliveredShipmentsQueryHandler(db *gorm.DB) GetDeliveredShipmentsQueryHandler {
	return GetDeliveredShipmentsQueryHandler{db: db}
}

// Handle executes the query, converting database columns back into domain
// value objects.
func (h GetDeliveredShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveredShipmentsQuery,
) ([]GetDeliveredShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetDeliveredShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_number,
			order_id,
			customer_id,
			carrier,
			recipient_name,
			delivered_at
		FROM shipments
		ORDER BY delivered_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var delivered GetDeliveredShipmentsQueryResponse
		var rawOrderID, rawCustomerID string

		err = rows.Scan(
			&delivered.TrackingNumber,
			&rawOrderID,
			&rawCustomerID,
			&delivered.Carrier,
			&delivered.RecipientName,
			&delivered.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		if delivered.OrderID, err = kernel.ParseOrderID(rawOrderID); err != nil {
			return nil, err
		}
		if delivered.CustomerID, err = kernel.ParseCustomerID(rawCustomerID); err != nil {
			return nil, err
		}

		shipments = append(shipments, delivered)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
