package orderops

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// AssignWarehouseFunc picks the warehouse location that will prepare an
// order, given its delivery address.
type AssignWarehouseFunc func(deliveryAddress string) (string, error)

// PrepareOrder advances StockReserved to Prepared by assigning a warehouse
// location.
type PrepareOrder struct {
	assignWarehouse AssignWarehouseFunc
}

// NewPrepareOrder builds the step. The warehouse callback is required.
func NewPrepareOrder(assignWarehouse AssignWarehouseFunc) (*PrepareOrder, error) {
	if assignWarehouse == nil {
		return nil, errs.NewValueIsRequiredError("assignWarehouse")
	}
	return &PrepareOrder{assignWarehouse: assignWarehouse}, nil
}

// Apply dispatches on the current state. Only StockReserved is targeted.
func (op *PrepareOrder) Apply(state order.State) order.State {
	switch s := state.(type) {
	case order.StockReserved:
		return op.onStockReserved(s)
	case order.Unvalidated, order.Validated, order.Prepared, order.Delivered, order.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown order state: %T", state))
	}
}

func (op *PrepareOrder) onStockReserved(reserved order.StockReserved) order.State {
	address := reserved.DeliveryAddress.String()

	location, err := op.assignWarehouse(address)
	if err != nil {
		return order.NewInvalid([]string{fmt.Sprintf(
			"Failed to assign warehouse for address (%s): %s", address, err)})
	}
	if strings.TrimSpace(location) == "" {
		return order.NewInvalid([]string{fmt.Sprintf(
			"Failed to assign warehouse for address (%s)", address)})
	}

	return order.NewPrepared(reserved, time.Now().UTC(), location)
}
