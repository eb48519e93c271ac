package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/pkg/guard"
)

// ErrGenerateInvoiceCommandIsNotConstructed is returned when validating a
// zero-value GenerateInvoiceCommand.
var ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
	"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
)

// GenerateInvoiceCommand wraps the raw invoice exactly as the transport
// layer decoded it; validation belongs to the pipeline.
type GenerateInvoiceCommand struct {
	invoice invoice.Unvalidated

	guard guard.ConstructorGuard
}

// NewGenerateInvoiceCommand creates a command around a raw invoice.
func NewGenerateInvoiceCommand(unvalidated invoice.Unvalidated) GenerateInvoiceCommand {
	return GenerateInvoiceCommand{
		invoice: unvalidated,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// Invoice returns the wrapped raw invoice.
func (c GenerateInvoiceCommand) Invoice() invoice.Unvalidated {
	return c.invoice
}
