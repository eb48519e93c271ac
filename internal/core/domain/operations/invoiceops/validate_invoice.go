package invoiceops

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ExistsFunc reports whether an identifier is known. An error counts as
// "does not exist".
type ExistsFunc func(id string) (bool, error)

// ValidateInvoice advances Unvalidated to Validated, or to Invalid with
// every independently detectable problem collected in one pass. Beyond the
// field checks it reconciles the declared total against the sum of the line
// totals, exactly, with no rounding tolerance.
type ValidateInvoice struct {
	orderExists    ExistsFunc
	customerExists ExistsFunc
	productExists  ExistsFunc
}

// NewValidateInvoice builds the step. All callbacks are required.
func NewValidateInvoice(orderExists, customerExists, productExists ExistsFunc) (*ValidateInvoice, error) {
	if orderExists == nil {
		return nil, errs.NewValueIsRequiredError("orderExists")
	}
	if customerExists == nil {
		return nil, errs.NewValueIsRequiredError("customerExists")
	}
	if productExists == nil {
		return nil, errs.NewValueIsRequiredError("productExists")
	}
	return &ValidateInvoice{
		orderExists:    orderExists,
		customerExists: customerExists,
		productExists:  productExists,
	}, nil
}

// Apply dispatches on the current state. Only Unvalidated is targeted.
func (op *ValidateInvoice) Apply(state invoice.State) invoice.State {
	switch s := state.(type) {
	case invoice.Unvalidated:
		return op.onUnvalidated(s)
	case invoice.Validated, invoice.Generated, invoice.Sent, invoice.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown invoice state: %T", state))
	}
}

func (op *ValidateInvoice) onUnvalidated(unvalidated invoice.Unvalidated) invoice.State {
	var reasons []string

	orderID, ok := kernel.TryParseOrderID(unvalidated.OrderID)
	if !ok {
		reasons = append(reasons, fmt.Sprintf("Invalid order ID (%s)", unvalidated.OrderID))
	} else if exists, err := op.orderExists(unvalidated.OrderID); err != nil || !exists {
		reasons = append(reasons, fmt.Sprintf("Order not found (%s)", unvalidated.OrderID))
	}

	customerID, ok := kernel.TryParseCustomerID(unvalidated.CustomerID)
	if !ok {
		reasons = append(reasons, fmt.Sprintf("Invalid customer ID (%s)", unvalidated.CustomerID))
	} else if exists, err := op.customerExists(unvalidated.CustomerID); err != nil || !exists {
		reasons = append(reasons, fmt.Sprintf("Customer not found (%s)", unvalidated.CustomerID))
	}

	address, ok := kernel.TryParseAddress(unvalidated.BillingAddress)
	if !ok {
		reasons = append(reasons, "Invalid billing address")
	}

	allItemsParsed := true
	items := make([]invoice.Item, 0, len(unvalidated.Items))
	for _, raw := range unvalidated.Items {
		productID, ok := kernel.TryParseProductID(raw.ProductID)
		if !ok {
			reasons = append(reasons, fmt.Sprintf("Invalid product ID (%s)", raw.ProductID))
			allItemsParsed = false
			continue
		}

		if exists, err := op.productExists(raw.ProductID); err != nil || !exists {
			reasons = append(reasons, fmt.Sprintf("Product not found (%s)", raw.ProductID))
		}

		quantityOK := raw.Quantity > 0
		if !quantityOK {
			reasons = append(reasons, fmt.Sprintf("Invalid quantity for product (%s)", raw.ProductID))
		}

		unitPrice, ok := kernel.TryParseMoney(raw.UnitPrice)
		if !ok {
			reasons = append(reasons, fmt.Sprintf("Invalid unit price for product (%s)", raw.ProductID))
			allItemsParsed = false
			continue
		}

		if !quantityOK {
			allItemsParsed = false
			continue
		}

		items = append(items, invoice.Item{
			ProductID: productID,
			Quantity:  raw.Quantity,
			UnitPrice: unitPrice,
			LineTotal: unitPrice.Times(raw.Quantity),
		})
	}

	totalAmount, ok := kernel.TryParseMoney(unvalidated.TotalAmount)
	if !ok {
		reasons = append(reasons, "Invalid total amount")
	} else if allItemsParsed && len(items) > 0 {
		if reason, mismatch := reconcileTotal(items, totalAmount); mismatch {
			reasons = append(reasons, reason)
		}
	}

	if len(reasons) > 0 {
		return invoice.NewInvalid(reasons)
	}

	return invoice.Validated{
		OrderID:        orderID,
		CustomerID:     customerID,
		Items:          items,
		TotalAmount:    totalAmount,
		BillingAddress: address,
	}
}

// reconcileTotal compares the declared total against the exact sum of the
// line totals, amount and currency both.
func reconcileTotal(items []invoice.Item, declared kernel.Money) (string, bool) {
	expected := items[0].LineTotal
	for _, item := range items[1:] {
		sum, err := expected.Add(item.LineTotal)
		if err != nil {
			return fmt.Sprintf("Currency mismatch for product (%s)", item.ProductID), true
		}
		expected = sum
	}

	amountMatches := declared.Amount().Equal(expected.Amount())
	currencyMatches := strings.EqualFold(declared.Currency(), expected.Currency())
	if amountMatches && currencyMatches {
		return "", false
	}
	return fmt.Sprintf("Total amount mismatch: expected %s, got %s", expected, declared), true
}
