package shipment

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// State is the closed set of shipment lifecycle states.
type State interface {
	isShipmentState()
}

// UnvalidatedItem is a raw shipment line as supplied by the caller.
type UnvalidatedItem struct {
	ProductID string
	Quantity  int
}

// Item is a validated shipment line.
type Item struct {
	ProductID kernel.ProductID
	Quantity  int
}

// Unvalidated is the entry state holding raw strings.
type Unvalidated struct {
	OrderID         string
	CustomerID      string
	Items           []UnvalidatedItem
	DeliveryAddress string
}

func (Unvalidated) isShipmentState() {}

// Validated holds parsed value objects.
type Validated struct {
	OrderID         kernel.OrderID
	CustomerID      kernel.CustomerID
	Items           []Item
	DeliveryAddress kernel.Address
}

func (Validated) isShipmentState() {}

// Prepared extends Validated with the carrier assignment and tracking number.
type Prepared struct {
	OrderID         kernel.OrderID
	CustomerID      kernel.CustomerID
	Items           []Item
	DeliveryAddress kernel.Address
	TrackingNumber  string
	PreparedAt      time.Time
	Carrier         string
}

func (Prepared) isShipmentState() {}

// NewPrepared promotes a Validated shipment.
func NewPrepared(validated Validated, trackingNumber string, preparedAt time.Time, carrier string) Prepared {
	return Prepared{
		OrderID:         validated.OrderID,
		CustomerID:      validated.CustomerID,
		Items:           validated.Items,
		DeliveryAddress: validated.DeliveryAddress,
		TrackingNumber:  trackingNumber,
		PreparedAt:      preparedAt,
		Carrier:         carrier,
	}
}

// Delivered is the terminal success state, extending Prepared with the
// delivery confirmation details.
type Delivered struct {
	OrderID           kernel.OrderID
	CustomerID        kernel.CustomerID
	Items             []Item
	DeliveryAddress   kernel.Address
	TrackingNumber    string
	PreparedAt        time.Time
	Carrier           string
	DeliveredAt       time.Time
	RecipientName     string
	DeliverySignature string
}

func (Delivered) isShipmentState() {}

// NewDelivered promotes a Prepared shipment.
func NewDelivered(prepared Prepared, deliveredAt time.Time, recipientName, deliverySignature string) Delivered {
	return Delivered{
		OrderID:           prepared.OrderID,
		CustomerID:        prepared.CustomerID,
		Items:             prepared.Items,
		DeliveryAddress:   prepared.DeliveryAddress,
		TrackingNumber:    prepared.TrackingNumber,
		PreparedAt:        prepared.PreparedAt,
		Carrier:           prepared.Carrier,
		DeliveredAt:       deliveredAt,
		RecipientName:     recipientName,
		DeliverySignature: deliverySignature,
	}
}

// Invalid is the absorbing failure state carrying only the ordered reasons.
type Invalid struct {
	Reasons []string
}

func (Invalid) isShipmentState() {}

// NewInvalid builds the failure state from accumulated reasons.
func NewInvalid(reasons []string) Invalid {
	return Invalid{Reasons: reasons}
}
