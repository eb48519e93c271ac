package shipmentops

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// ExistsFunc reports whether an identifier is known. An error counts as
// "does not exist".
type ExistsFunc func(id string) (bool, error)

// ValidateShipment advances Unvalidated to Validated, or to Invalid with
// every independently detectable problem collected in one pass. The order
// existence check is stricter than the invoice's: the order must exist and
// be ready for shipment.
type ValidateShipment struct {
	orderExists    ExistsFunc
	customerExists ExistsFunc
	productExists  ExistsFunc
}

// NewValidateShipment builds the step. All callbacks are required.
func NewValidateShipment(orderExists, customerExists, productExists ExistsFunc) (*ValidateShipment, error) {
	if orderExists == nil {
		return nil, errs.NewValueIsRequiredError("orderExists")
	}
	if customerExists == nil {
		return nil, errs.NewValueIsRequiredError("customerExists")
	}
	if productExists == nil {
		return nil, errs.NewValueIsRequiredError("productExists")
	}
	return &ValidateShipment{
		orderExists:    orderExists,
		customerExists: customerExists,
		productExists:  productExists,
	}, nil
}

// Apply dispatches on the current state. Only Unvalidated is targeted.
func (op *ValidateShipment) Apply(state shipment.State) shipment.State {
	switch s := state.(type) {
	case shipment.Unvalidated:
		return op.onUnvalidated(s)
	case shipment.Validated, shipment.Prepared, shipment.Delivered, shipment.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown shipment state: %T", state))
	}
}

func (op *ValidateShipment) onUnvalidated(unvalidated shipment.Unvalidated) shipment.State {
	var reasons []string

	orderID, ok := kernel.TryParseOrderID(unvalidated.OrderID)
	if !ok {
		reasons = append(reasons, fmt.Sprintf("Invalid order ID (%s)", unvalidated.OrderID))
	} else if exists, err := op.orderExists(unvalidated.OrderID); err != nil || !exists {
		reasons = append(reasons, fmt.Sprintf("Order not found or not ready for shipment (%s)", unvalidated.OrderID))
	}

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

	items := make([]shipment.Item, 0, len(unvalidated.Items))
	for _, raw := range unvalidated.Items {
		productID, ok := kernel.TryParseProductID(raw.ProductID)
		if !ok {
			reasons = append(reasons, fmt.Sprintf("Invalid product ID (%s)", raw.ProductID))
			continue
		}

		if exists, err := op.productExists(raw.ProductID); err != nil || !exists {
			reasons = append(reasons, fmt.Sprintf("Product not found (%s)", raw.ProductID))
		}

		if raw.Quantity <= 0 {
			reasons = append(reasons, fmt.Sprintf("Invalid quantity for product (%s)", raw.ProductID))
			continue
		}

		items = append(items, shipment.Item{ProductID: productID, Quantity: raw.Quantity})
	}

	if len(reasons) > 0 {
		return shipment.NewInvalid(reasons)
	}

	return shipment.Validated{
		OrderID:         orderID,
		CustomerID:      customerID,
		Items:           items,
		DeliveryAddress: address,
	}
}
