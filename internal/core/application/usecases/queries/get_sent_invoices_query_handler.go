package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSentInvoicesQueryHandler reads sent invoices straight from the
// invoices table with raw SQL.
type GetSentInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetSentInvoicesQueryHandler creates a handler for sent invoice
// retrieval.
func NewGetSentInvoicesQueryHandler(db *gorm.DB) GetSentInvoicesQueryHandler {
	return GetSentInvoicesQueryHandler{db: db}
}

// Handle executes the query, converting database columns back into domain
// value objects.
func (h GetSentInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetSentInvoicesQuery,
) ([]GetSentInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]GetSentInvoicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			invoice_id,
			invoice_number,
			order_id,
			customer_id,
			total_amount,
			total_currency,
			sent_to,
			sent_at
		FROM invoices
		ORDER BY sent_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sent GetSentInvoicesQueryResponse
		var rawInvoiceID, rawOrderID, rawCustomerID, currency string
		var amount decimal.Decimal

		err = rows.Scan(
			&rawInvoiceID,
			&sent.InvoiceNumber,
			&rawOrderID,
			&rawCustomerID,
			&amount,
			&currency,
			&sent.SentTo,
			&sent.SentAt,
		)
		if err != nil {
			return nil, err
		}

		if sent.InvoiceID, err = kernel.ParseInvoiceID(rawInvoiceID); err != nil {
			return nil, err
		}
		if sent.OrderID, err = kernel.ParseOrderID(rawOrderID); err != nil {
			return nil, err
		}
		if sent.CustomerID, err = kernel.ParseCustomerID(rawCustomerID); err != nil {
			return nil, err
		}
		if sent.TotalAmount, err = kernel.NewMoney(amount, currency); err != nil {
			return nil, err
		}

		invoices = append(invoices, sent)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
