package events

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// OrderPlacedEvent is the outcome signal of the place-order pipeline.
type OrderPlacedEvent interface {
	isOrderPlacedEvent()
}

// OrderPlacedSucceeded carries the delivered order and its export line,
// "customer id, total amount, combined reservation id".
type OrderPlacedSucceeded struct {
	Order    order.Delivered
	PlacedAt time.Time
	CSV      string
}

func (OrderPlacedSucceeded) isOrderPlacedEvent() {}

// OrderPlacedFailed carries the accumulated failure reasons verbatim.
type OrderPlacedFailed struct {
	Reasons []string
}

func (OrderPlacedFailed) isOrderPlacedEvent() {}

// NewOrderPlacedEvent maps the final pipeline state to its outcome.
func NewOrderPlacedEvent(state order.State) OrderPlacedEvent {
	switch s := state.(type) {
	case order.Delivered:
		return OrderPlacedSucceeded{
			Order:    s,
			PlacedAt: time.Now().UTC(),
			CSV:      fmt.Sprintf("%s,%s,%s", s.CustomerID, s.TotalAmount, s.ReservationID),
		}
	case order.Invalid:
		return OrderPlacedFailed{Reasons: s.Reasons}
	default:
		return OrderPlacedFailed{Reasons: []string{fmt.Sprintf("Unexpected order state: %T", state)}}
	}
}
