package orderops

import (
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// AvailableStockFunc returns the quantity currently in stock for a product.
type AvailableStockFunc func(productID string) (int, error)

// CheckAvailability verifies that every line item of a Validated order can be
// covered by the available stock. It never advances the state: on success the
// Validated order passes through unchanged, on shortage it fails into Invalid
// naming every short item.
type CheckAvailability struct {
	availableStock AvailableStockFunc
}

// NewCheckAvailability builds the step. The stock callback is required.
func NewCheckAvailability(availableStock AvailableStockFunc) (*CheckAvailability, error) {
	if availableStock == nil {
		return nil, errs.NewValueIsRequiredError("availableStock")
	}
	return &CheckAvailability{availableStock: availableStock}, nil
}

// Apply dispatches on the current state. Only Validated is targeted.
func (op *CheckAvailability) Apply(state order.State) order.State {
	switch s := state.(type) {
	case order.Validated:
		return op.onValidated(s)
	case order.Unvalidated, order.StockReserved, order.Prepared, order.Delivered, order.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown order state: %T", state))
	}
}

func (op *CheckAvailability) onValidated(validated order.Validated) order.State {
	var reasons []string

	for _, item := range validated.Items {
		productID := item.ProductID.String()

		available, err := op.availableStock(productID)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf(
				"Insufficient stock for product (%s): requested %d, available 0 (error: %s)",
				productID, item.Quantity, err))
			continue
		}

		if available < item.Quantity {
			reasons = append(reasons, fmt.Sprintf(
				"Insufficient stock for product (%s): requested %d, available %d",
				productID, item.Quantity, available))
		}
	}

	if len(reasons) > 0 {
		return order.NewInvalid(reasons)
	}
	return validated
}
