package workflows

import (
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/operations/invoiceops"
)

// GenerateInvoiceDeps carries every external effect the generate-invoice
// pipeline needs. All fields are required.
type GenerateInvoiceDeps struct {
	OrderExists           invoiceops.ExistsFunc
	CustomerExists        invoiceops.ExistsFunc
	ProductExists         invoiceops.ExistsFunc
	GenerateInvoiceID     invoiceops.GenerateFunc
	GenerateInvoiceNumber invoiceops.GenerateFunc
	SendInvoice           invoiceops.SendFunc
	GetCustomerEmail      invoiceops.CustomerEmailFunc
}

// GenerateInvoice runs an unvalidated invoice through validation, generation
// and sending, in that order.
type GenerateInvoice struct {
	validate *invoiceops.ValidateInvoice
	generate *invoiceops.GenerateInvoice
	send     *invoiceops.SendInvoice
}

// NewGenerateInvoice builds the workflow, failing on any missing dependency.
func NewGenerateInvoice(deps GenerateInvoiceDeps) (*GenerateInvoice, error) {
	validate, err := invoiceops.NewValidateInvoice(deps.OrderExists, deps.CustomerExists, deps.ProductExists)
	if err != nil {
		return nil, err
	}
	generate, err := invoiceops.NewGenerateInvoice(deps.GenerateInvoiceID, deps.GenerateInvoiceNumber)
	if err != nil {
		return nil, err
	}
	send, err := invoiceops.NewSendInvoice(deps.SendInvoice, deps.GetCustomerEmail)
	if err != nil {
		return nil, err
	}
	return &GenerateInvoice{validate: validate, generate: generate, send: send}, nil
}

// Execute runs the pipeline and converts the final state into exactly one
// outcome event.
func (w *GenerateInvoice) Execute(unvalidated invoice.Unvalidated) events.InvoiceGeneratedEvent {
	var state invoice.State = unvalidated

	state = w.validate.Apply(state)
	state = w.generate.Apply(state)
	state = w.send.Apply(state)

	return events.NewInvoiceGeneratedEvent(state)
}
