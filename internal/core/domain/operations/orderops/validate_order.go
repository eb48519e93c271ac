package orderops

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CustomerExistsFunc reports whether a customer id is known. An error counts
// as "does not exist".
type CustomerExistsFunc func(customerID string) (bool, error)

// ProductExistsFunc reports whether a product id is known. An error counts
// as "does not exist".
type ProductExistsFunc func(productID string) (bool, error)

// UnitPriceFunc returns the current unit price for a product id.
type UnitPriceFunc func(productID string) (kernel.Money, error)

// ValidateOrder advances Unvalidated to Validated, or to Invalid with every
// independently detectable problem collected in one pass.
type ValidateOrder struct {
	customerExists CustomerExistsFunc
	productExists  ProductExistsFunc
	unitPriceFor   UnitPriceFunc
}

// NewValidateOrder builds the step. All callbacks are required.
func NewValidateOrder(
	customerExists CustomerExistsFunc,
	productExists ProductExistsFunc,
	unitPriceFor UnitPriceFunc,
) (*ValidateOrder, error) {
	if customerExists == nil {
		return nil, errs.NewValueIsRequiredError("customerExists")
	}
	if productExists == nil {
		return nil, errs.NewValueIsRequiredError("productExists")
	}
	if unitPriceFor == nil {
		return nil, errs.NewValueIsRequiredError("unitPriceFor")
	}
	return &ValidateOrder{
		customerExists: customerExists,
		productExists:  productExists,
		unitPriceFor:   unitPriceFor,
	}, nil
}

// Apply dispatches on the current state. Only Unvalidated is targeted; every
// other state passes through unchanged.
func (op *ValidateOrder) Apply(state order.State) order.State {
	switch s := state.(type) {
	case order.Unvalidated:
		return op.onUnvalidated(s)
	case order.Validated, order.StockReserved, order.Prepared, order.Delivered, order.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown order state: %T", state))
	}
}

func (op *ValidateOrder) onUnvalidated(unvalidated order.Unvalidated) order.State {
	var reasons []string

	customerID, ok := kernel.TryParseCustomerID(unvalidated.CustomerID)
	if !ok {
		reasons = append(reasons, fmt.Sprintf("Invalid customer ID (%s)", unvalidated.CustomerID))
	} else if exists, err := op.customerExists(unvalidated.CustomerID); err != nil || !exists {
		reasons = append(reasons, fmt.Sprintf("Customer not found (%s)", unvalidated.CustomerID))
	}

	address, ok := kernel.TryParseAddress(unvalidated.DeliveryAddress)
	if !ok {
		reasons = append(reasons, "Invalid delivery address")
	}

	items := make([]order.Item, 0, len(unvalidated.Items))
	for _, raw := range unvalidated.Items {
		productID, ok := kernel.TryParseProductID(raw.ProductID)
		if !ok {
			// Without a parsed id there is nothing to check the
			// remaining item fields against.
			reasons = append(reasons, fmt.Sprintf("Invalid product ID (%s)", raw.ProductID))
			continue
		}

		if exists, err := op.productExists(raw.ProductID); err != nil || !exists {
			reasons = append(reasons, fmt.Sprintf("Product not found (%s)", raw.ProductID))
		}

		quantityOK := raw.Quantity > 0
		if !quantityOK {
			reasons = append(reasons, fmt.Sprintf("Invalid quantity for product (%s)", raw.ProductID))
		}

		unitPrice, err := op.unitPriceFor(raw.ProductID)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("Invalid unit price for product (%s)", raw.ProductID))
			continue
		}

		if quantityOK {
			items = append(items, order.Item{
				ProductID: productID,
				Quantity:  raw.Quantity,
				UnitPrice: unitPrice,
			})
		}
	}

	total, mixedID := sumLineTotals(items)
	if mixedID != "" {
		reasons = append(reasons, fmt.Sprintf("Currency mismatch for product (%s)", mixedID))
	}

	if len(reasons) > 0 {
		return order.NewInvalid(reasons)
	}

	return order.Validated{
		CustomerID:      customerID,
		Items:           items,
		DeliveryAddress: address,
		TotalAmount:     total,
	}
}

// sumLineTotals adds up the per-item line totals. When an item's currency
// differs from the running total's it returns that item's product id so the
// caller can report it. An empty item list carries no currency of its own,
// so it yields a zero total in USD as the stand-in currency; such an order
// validates and runs the full pipeline with an empty combined reservation id.
func sumLineTotals(items []order.Item) (kernel.Money, string) {
	if len(items) == 0 {
		total, _ := kernel.TryNewMoney(decimal.Zero, "USD")
		return total, ""
	}
	total := items[0].LineTotal()
	for _, item := range items[1:] {
		sum, err := total.Add(item.LineTotal())
		if err != nil {
			return kernel.Money{}, item.ProductID.String()
		}
		total = sum
	}
	return total, ""
}
