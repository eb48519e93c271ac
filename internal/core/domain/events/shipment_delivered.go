package events

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentDeliveredEvent is the outcome signal of the prepare-shipment
// pipeline.
type ShipmentDeliveredEvent interface {
	isShipmentDeliveredEvent()
}

// ShipmentDeliveredSucceeded carries the delivered shipment and its export
// line, "tracking number, order id, customer id, carrier, recipient name".
type ShipmentDeliveredSucceeded struct {
	Shipment       shipment.Delivered
	TrackingNumber string
	DeliveredAt    time.Time
	CSV            string
}

func (ShipmentDeliveredSucceeded) isShipmentDeliveredEvent() {}

// ShipmentDeliveredFailed carries the accumulated failure reasons verbatim.
type ShipmentDeliveredFailed struct {
	Reasons []string
}

func (ShipmentDeliveredFailed) isShipmentDeliveredEvent() {}

// NewShipmentDeliveredEvent maps the final pipeline state to its outcome.
func NewShipmentDeliveredEvent(state shipment.State) ShipmentDeliveredEvent {
	switch s := state.(type) {
	case shipment.Delivered:
		return ShipmentDeliveredSucceeded{
			Shipment:       s,
			TrackingNumber: s.TrackingNumber,
			DeliveredAt:    s.DeliveredAt,
			CSV: fmt.Sprintf("%s,%s,%s,%s,%s",
				s.TrackingNumber, s.OrderID, s.CustomerID, s.Carrier, s.RecipientName),
		}
	case shipment.Invalid:
		return ShipmentDeliveredFailed{Reasons: s.Reasons}
	default:
		return ShipmentDeliveredFailed{Reasons: []string{fmt.Sprintf("Unexpected shipment state: %T", state)}}
	}
}
