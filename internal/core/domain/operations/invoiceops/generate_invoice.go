package invoiceops

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GenerateFunc produces a fresh identifier or document number.
type GenerateFunc func() (string, error)

// GenerateInvoice advances Validated to Generated by minting the invoice id
// and the human-facing invoice number. A generated id that does not parse as
// a kernel.InvoiceID counts as a generation failure.
type GenerateInvoice struct {
	generateInvoiceID     GenerateFunc
	generateInvoiceNumber GenerateFunc
}

// NewGenerateInvoice builds the step. Both generators are required.
func NewGenerateInvoice(generateInvoiceID, generateInvoiceNumber GenerateFunc) (*GenerateInvoice, error) {
	if generateInvoiceID == nil {
		return nil, errs.NewValueIsRequiredError("generateInvoiceID")
	}
	if generateInvoiceNumber == nil {
		return nil, errs.NewValueIsRequiredError("generateInvoiceNumber")
	}
	return &GenerateInvoice{
		generateInvoiceID:     generateInvoiceID,
		generateInvoiceNumber: generateInvoiceNumber,
	}, nil
}

// Apply dispatches on the current state. Only Validated is targeted.
func (op *GenerateInvoice) Apply(state invoice.State) invoice.State {
	switch s := state.(type) {
	case invoice.Validated:
		return op.onValidated(s)
	case invoice.Unvalidated, invoice.Generated, invoice.Sent, invoice.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown invoice state: %T", state))
	}
}

func (op *GenerateInvoice) onValidated(validated invoice.Validated) invoice.State {
	var reasons []string

	var invoiceID kernel.InvoiceID
	rawID, err := op.generateInvoiceID()
	if err != nil {
		reasons = append(reasons, "Failed to generate invoice ID")
	} else if parsed, ok := kernel.TryParseInvoiceID(rawID); !ok {
		reasons = append(reasons, "Failed to generate invoice ID")
	} else {
		invoiceID = parsed
	}

	invoiceNumber, err := op.generateInvoiceNumber()
	if err != nil || strings.TrimSpace(invoiceNumber) == "" {
		reasons = append(reasons, "Failed to generate invoice number")
	}

	if len(reasons) > 0 {
		return invoice.NewInvalid(reasons)
	}

	return invoice.NewGenerated(validated, invoiceID, time.Now().UTC(), invoiceNumber)
}
