package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPlacedOrdersQueryHandler reads placed orders straight from the orders
// table with raw SQL.
type GetPlacedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPlacedOrdersQueryHandler creates a handler for placed order
// retrieval.
func NewGetPlacedOrdersQueryHandler(db *gorm.DB) GetPlacedOrdersQueryHandler {
	return GetPlacedOrdersQueryHandler{db: db}
}

// Handle executes the query, converting database columns back into domain
// value objects.
func (h GetPlacedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPlacedOrdersQuery,
) ([]GetPlacedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPlacedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			total_amount,
			total_currency,
			reservation_id,
			delivered_at
		FROM orders
		ORDER BY delivered_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var placed GetPlacedOrdersQueryResponse
		var rawCustomerID, currency string
		var amount decimal.Decimal

		err = rows.Scan(
			&placed.ID,
			&rawCustomerID,
			&amount,
			&currency,
			&placed.ReservationID,
			&placed.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.ParseCustomerID(rawCustomerID)
		if idErr != nil {
			return nil, idErr
		}
		placed.CustomerID = customerID

		total, moneyErr := kernel.NewMoney(amount, currency)
		if moneyErr != nil {
			return nil, moneyErr
		}
		placed.TotalAmount = total

		orders = append(orders, placed)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
