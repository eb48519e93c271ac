package invoiceops

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/pkg/errs"
)

// CustomerEmailFunc resolves a customer id to the email address the invoice
// should be sent to.
type CustomerEmailFunc func(customerID string) (string, error)

// SendFunc dispatches an invoice to an address. A false result or an error
// means the send failed.
type SendFunc func(invoiceID, email string) (bool, error)

// SendInvoice advances Generated to the terminal Sent state by resolving the
// customer's email and dispatching the invoice to it.
type SendInvoice struct {
	sendInvoice      SendFunc
	getCustomerEmail CustomerEmailFunc
}

// NewSendInvoice builds the step. Both callbacks are required.
func NewSendInvoice(sendInvoice SendFunc, getCustomerEmail CustomerEmailFunc) (*SendInvoice, error) {
	if sendInvoice == nil {
		return nil, errs.NewValueIsRequiredError("sendInvoice")
	}
	if getCustomerEmail == nil {
		return nil, errs.NewValueIsRequiredError("getCustomerEmail")
	}
	return &SendInvoice{sendInvoice: sendInvoice, getCustomerEmail: getCustomerEmail}, nil
}

// Apply dispatches on the current state. Only Generated is targeted.
func (op *SendInvoice) Apply(state invoice.State) invoice.State {
	switch s := state.(type) {
	case invoice.Generated:
		return op.onGenerated(s)
	case invoice.Unvalidated, invoice.Validated, invoice.Sent, invoice.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown invoice state: %T", state))
	}
}

func (op *SendInvoice) onGenerated(generated invoice.Generated) invoice.State {
	var reasons []string
	customerID := generated.CustomerID.String()

	email, err := op.getCustomerEmail(customerID)
	if err != nil {
		reasons = append(reasons, fmt.Sprintf("Customer email not found (%s): %s", customerID, err))
		email = ""
	} else if strings.TrimSpace(email) == "" {
		reasons = append(reasons, fmt.Sprintf("Customer email not found (%s)", customerID))
	}

	if strings.TrimSpace(email) != "" {
		sent, err := op.sendInvoice(generated.InvoiceID.String(), email)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("Failed to send invoice to (%s): %s", email, err))
		} else if !sent {
			reasons = append(reasons, fmt.Sprintf("Failed to send invoice to (%s)", email))
		}
	}

	if len(reasons) > 0 {
		return invoice.NewInvalid(reasons)
	}

	return invoice.NewSent(generated, time.Now().UTC(), email, "Email")
}
