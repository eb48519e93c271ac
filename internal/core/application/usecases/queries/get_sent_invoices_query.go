package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrGetSentInvoicesQueryIsNotConstructed is returned when validating a
// zero-value GetSentInvoicesQuery.
var ErrGetSentInvoicesQueryIsNotConstructed = errors.New(
	"GetSentInvoicesQuery must be created via NewGetSentInvoicesQuery constructor",
)

// GetSentInvoicesQuery retrieves every invoice that completed the
// generate-invoice pipeline, newest dispatch first.
type GetSentInvoicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSentInvoicesQuery creates the parameterless query.
func NewGetSentInvoicesQuery() GetSentInvoicesQuery {
	return GetSentInvoicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSentInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetSentInvoicesQueryIsNotConstructed)
}

// GetSentInvoicesQueryResponse is one sent invoice in the read model.
type GetSentInvoicesQueryResponse struct {
	InvoiceID     kernel.InvoiceID
	InvoiceNumber string
	OrderID       kernel.OrderID
	CustomerID    kernel.CustomerID
	TotalAmount   kernel.Money
	SentTo        string
	SentAt        time.Time
}
