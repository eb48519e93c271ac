package events

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
)

// InvoiceGeneratedEvent is the outcome signal of the generate-invoice
// pipeline.
type InvoiceGeneratedEvent interface {
	isInvoiceGeneratedEvent()
}

// InvoiceGeneratedSucceeded carries the sent invoice and its export line,
// "invoice id, order id, customer id, amount, invoice number".
type InvoiceGeneratedSucceeded struct {
	Invoice       invoice.Sent
	InvoiceNumber string
	GeneratedAt   time.Time
	SentAt        time.Time
	CSV           string
}

func (InvoiceGeneratedSucceeded) isInvoiceGeneratedEvent() {}

// InvoiceGeneratedFailed carries the accumulated failure reasons verbatim.
type InvoiceGeneratedFailed struct {
	Reasons []string
}

func (InvoiceGeneratedFailed) isInvoiceGeneratedEvent() {}

// NewInvoiceGeneratedEvent maps the final pipeline state to its outcome.
func NewInvoiceGeneratedEvent(state invoice.State) InvoiceGeneratedEvent {
	switch s := state.(type) {
	case invoice.Sent:
		return InvoiceGeneratedSucceeded{
			Invoice:       s,
			InvoiceNumber: s.InvoiceNumber,
			GeneratedAt:   s.GeneratedAt,
			SentAt:        s.SentAt,
			CSV: fmt.Sprintf("%s,%s,%s,%s,%s",
				s.InvoiceID, s.OrderID, s.CustomerID,
				s.TotalAmount.Amount().StringFixed(2), s.InvoiceNumber),
		}
	case invoice.Invalid:
		return InvoiceGeneratedFailed{Reasons: s.Reasons}
	default:
		return InvoiceGeneratedFailed{Reasons: []string{fmt.Sprintf("Unexpected invoice state: %T", state)}}
	}
}
