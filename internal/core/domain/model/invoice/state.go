package invoice

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// State is the closed set of invoice lifecycle states.
type State interface {
	isInvoiceState()
}

// UnvalidatedItem is a raw invoice line: product id, quantity and unit price
// all as the caller supplied them.
type UnvalidatedItem struct {
	ProductID string
	Quantity  int
	UnitPrice string
}

// Item is a validated invoice line. LineTotal is quantity times unit price,
// computed during validation and reconciled against the declared total.
type Item struct {
	ProductID kernel.ProductID
	Quantity  int
	UnitPrice kernel.Money
	LineTotal kernel.Money
}

// Unvalidated is the entry state holding raw strings.
type Unvalidated struct {
	OrderID        string
	CustomerID     string
	Items          []UnvalidatedItem
	TotalAmount    string
	BillingAddress string
}

func (Unvalidated) isInvoiceState() {}

// Validated holds parsed value objects. TotalAmount has been reconciled
// against the sum of the item line totals.
type Validated struct {
	OrderID        kernel.OrderID
	CustomerID     kernel.CustomerID
	Items          []Item
	TotalAmount    kernel.Money
	BillingAddress kernel.Address
}

func (Validated) isInvoiceState() {}

// Generated extends Validated with the generated invoice identity.
type Generated struct {
	OrderID        kernel.OrderID
	CustomerID     kernel.CustomerID
	Items          []Item
	TotalAmount    kernel.Money
	BillingAddress kernel.Address
	InvoiceID      kernel.InvoiceID
	GeneratedAt    time.Time
	InvoiceNumber  string
}

func (Generated) isInvoiceState() {}

// NewGenerated promotes a Validated invoice.
func NewGenerated(validated Validated, invoiceID kernel.InvoiceID, generatedAt time.Time, invoiceNumber string) Generated {
	return Generated{
		OrderID:        validated.OrderID,
		CustomerID:     validated.CustomerID,
		Items:          validated.Items,
		TotalAmount:    validated.TotalAmount,
		BillingAddress: validated.BillingAddress,
		InvoiceID:      invoiceID,
		GeneratedAt:    generatedAt,
		InvoiceNumber:  invoiceNumber,
	}
}

// Sent is the terminal success state, extending Generated with the dispatch
// details.
type Sent struct {
	OrderID        kernel.OrderID
	CustomerID     kernel.CustomerID
	Items          []Item
	TotalAmount    kernel.Money
	BillingAddress kernel.Address
	InvoiceID      kernel.InvoiceID
	GeneratedAt    time.Time
	InvoiceNumber  string
	SentAt         time.Time
	SentTo         string
	DeliveryMethod string
}

func (Sent) isInvoiceState() {}

// NewSent promotes a Generated invoice.
func NewSent(generated Generated, sentAt time.Time, sentTo, deliveryMethod string) Sent {
	return Sent{
		OrderID:        generated.OrderID,
		CustomerID:     generated.CustomerID,
		Items:          generated.Items,
		TotalAmount:    generated.TotalAmount,
		BillingAddress: generated.BillingAddress,
		InvoiceID:      generated.InvoiceID,
		GeneratedAt:    generated.GeneratedAt,
		InvoiceNumber:  generated.InvoiceNumber,
		SentAt:         sentAt,
		SentTo:         sentTo,
		DeliveryMethod: deliveryMethod,
	}
}

// Invalid is the absorbing failure state carrying only the ordered reasons.
type Invalid struct {
	Reasons []string
}

func (Invalid) isInvoiceState() {}

// NewInvalid builds the failure state from accumulated reasons.
func NewInvalid(reasons []string) Invalid {
	return Invalid{Reasons: reasons}
}
