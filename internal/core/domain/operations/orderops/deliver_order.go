package orderops

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ConfirmOrderDeliveryFunc confirms that the goods covered by a reservation
// reached the customer. A false result or an error means delivery was not
// confirmed.
type ConfirmOrderDeliveryFunc func(reservationID string) (bool, error)

// DeliverOrder advances Prepared to the terminal Delivered state once the
// delivery is confirmed. The delivery signature is derived from the
// reservation id and the confirmation instant.
type DeliverOrder struct {
	confirmDelivery ConfirmOrderDeliveryFunc
}

// NewDeliverOrder builds the step. The confirmation callback is required.
func NewDeliverOrder(confirmDelivery ConfirmOrderDeliveryFunc) (*DeliverOrder, error) {
	if confirmDelivery == nil {
		return nil, errs.NewValueIsRequiredError("confirmDelivery")
	}
	return &DeliverOrder{confirmDelivery: confirmDelivery}, nil
}

// Apply dispatches on the current state. Only Prepared is targeted.
func (op *DeliverOrder) Apply(state order.State) order.State {
	switch s := state.(type) {
	case order.Prepared:
		return op.onPrepared(s)
	case order.Unvalidated, order.Validated, order.StockReserved, order.Delivered, order.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown order state: %T", state))
	}
}

func (op *DeliverOrder) onPrepared(prepared order.Prepared) order.State {
	confirmed, err := op.confirmDelivery(prepared.ReservationID)
	if err != nil {
		return order.NewInvalid([]string{fmt.Sprintf(
			"Failed to confirm delivery for reservation (%s): %s", prepared.ReservationID, err)})
	}
	if !confirmed {
		return order.NewInvalid([]string{fmt.Sprintf(
			"Failed to confirm delivery for reservation (%s)", prepared.ReservationID)})
	}

	deliveredAt := time.Now().UTC()
	signature := fmt.Sprintf("SIG-%s-%d", prepared.ReservationID, deliveredAt.UnixNano())

	return order.NewDelivered(prepared, deliveredAt, signature)
}
