package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// State is the closed set of order lifecycle states. Exactly one variant is
// current at any time. The marker method seals the set to this package.
type State interface {
	isOrderState()
}

// UnvalidatedItem is a raw order line as received from the caller, before
// any validation.
type UnvalidatedItem struct {
	ProductID string
	Quantity  int
}

// Item is a validated order line: a parsed product id, a positive quantity
// and the unit price looked up during validation.
type Item struct {
	ProductID kernel.ProductID
	Quantity  int
	UnitPrice kernel.Money
}

// LineTotal is the item's quantity times its unit price.
func (i Item) LineTotal() kernel.Money {
	return i.UnitPrice.Times(i.Quantity)
}

// Unvalidated is the entry state: raw strings exactly as the caller supplied
// them, nothing checked yet.
type Unvalidated struct {
	CustomerID      string
	Items           []UnvalidatedItem
	DeliveryAddress string
}

func (Unvalidated) isOrderState() {}

// Validated holds the parsed value objects produced by validation. The total
// amount is the sum of the item line totals.
type Validated struct {
	CustomerID      kernel.CustomerID
	Items           []Item
	DeliveryAddress kernel.Address
	TotalAmount     kernel.Money
}

func (Validated) isOrderState() {}

// StockReserved extends Validated with the combined reservation id covering
// every line item and the reservation timestamp.
type StockReserved struct {
	CustomerID      kernel.CustomerID
	Items           []Item
	DeliveryAddress kernel.Address
	TotalAmount     kernel.Money
	ReservationID   string
	ReservedAt      time.Time
}

func (StockReserved) isOrderState() {}

// NewStockReserved promotes a Validated order. Pure and total: the inputs are
// already validated, promotion itself cannot fail.
func NewStockReserved(validated Validated, reservationID string, reservedAt time.Time) StockReserved {
	return StockReserved{
		CustomerID:      validated.CustomerID,
		Items:           validated.Items,
		DeliveryAddress: validated.DeliveryAddress,
		TotalAmount:     validated.TotalAmount,
		ReservationID:   reservationID,
		ReservedAt:      reservedAt,
	}
}

// Prepared extends StockReserved with the assigned warehouse location and the
// preparation timestamp.
type Prepared struct {
	CustomerID        kernel.CustomerID
	Items             []Item
	DeliveryAddress   kernel.Address
	TotalAmount       kernel.Money
	ReservationID     string
	ReservedAt        time.Time
	PreparedAt        time.Time
	WarehouseLocation string
}

func (Prepared) isOrderState() {}

// NewPrepared promotes a StockReserved order.
func NewPrepared(reserved StockReserved, preparedAt time.Time, warehouseLocation string) Prepared {
	return Prepared{
		CustomerID:        reserved.CustomerID,
		Items:             reserved.Items,
		DeliveryAddress:   reserved.DeliveryAddress,
		TotalAmount:       reserved.TotalAmount,
		ReservationID:     reserved.ReservationID,
		ReservedAt:        reserved.ReservedAt,
		PreparedAt:        preparedAt,
		WarehouseLocation: warehouseLocation,
	}
}

// Delivered is the terminal success state, extending Prepared with the
// delivery timestamp and signature.
type Delivered struct {
	CustomerID        kernel.CustomerID
	Items             []Item
	DeliveryAddress   kernel.Address
	TotalAmount       kernel.Money
	ReservationID     string
	ReservedAt        time.Time
	PreparedAt        time.Time
	WarehouseLocation string
	DeliveredAt       time.Time
	DeliverySignature string
}

func (Delivered) isOrderState() {}

// NewDelivered promotes a Prepared order.
func NewDelivered(prepared Prepared, deliveredAt time.Time, deliverySignature string) Delivered {
	return Delivered{
		CustomerID:        prepared.CustomerID,
		Items:             prepared.Items,
		DeliveryAddress:   prepared.DeliveryAddress,
		TotalAmount:       prepared.TotalAmount,
		ReservationID:     prepared.ReservationID,
		ReservedAt:        prepared.ReservedAt,
		PreparedAt:        prepared.PreparedAt,
		WarehouseLocation: prepared.WarehouseLocation,
		DeliveredAt:       deliveredAt,
		DeliverySignature: deliverySignature,
	}
}

// Invalid is the absorbing failure state. It carries only the ordered reason
// list and discards all prior data. Reasons is never empty.
type Invalid struct {
	Reasons []string
}

func (Invalid) isOrderState() {}

// NewInvalid builds the failure state from accumulated reasons.
func NewInvalid(reasons []string) Invalid {
	return Invalid{Reasons: reasons}
}
