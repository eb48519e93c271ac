package orderops

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ReserveStockFunc reserves the given quantity of a product and returns the
// reservation id. An empty id or an error means the reservation failed.
type ReserveStockFunc func(productID string, quantity int) (string, error)

// ReserveStock advances Validated to StockReserved by reserving every line
// item. Per-item reservation ids are joined with commas into the combined
// reservation id; a failure on any item is collected and fails the whole
// order, but the remaining items are still attempted.
type ReserveStock struct {
	reserveStock ReserveStockFunc
}

// NewReserveStock builds the step. The reservation callback is required.
func NewReserveStock(reserveStock ReserveStockFunc) (*ReserveStock, error) {
	if reserveStock == nil {
		return nil, errs.NewValueIsRequiredError("reserveStock")
	}
	return &ReserveStock{reserveStock: reserveStock}, nil
}

// Apply dispatches on the current state. Only Validated is targeted.
func (op *ReserveStock) Apply(state order.State) order.State {
	switch s := state.(type) {
	case order.Validated:
		return op.onValidated(s)
	case order.Unvalidated, order.StockReserved, order.Prepared, order.Delivered, order.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown order state: %T", state))
	}
}

func (op *ReserveStock) onValidated(validated order.Validated) order.State {
	var reasons []string
	reservationIDs := make([]string, 0, len(validated.Items))

	for _, item := range validated.Items {
		productID := item.ProductID.String()

		reservationID, err := op.reserveStock(productID, item.Quantity)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf(
				"Failed to reserve stock for product (%s): %s", productID, err))
			continue
		}
		if strings.TrimSpace(reservationID) == "" {
			reasons = append(reasons, fmt.Sprintf(
				"Failed to reserve stock for product (%s)", productID))
			continue
		}

		reservationIDs = append(reservationIDs, reservationID)
	}

	if len(reasons) > 0 {
		return order.NewInvalid(reasons)
	}

	return order.NewStockReserved(validated, strings.Join(reservationIDs, ","), time.Now().UTC())
}
