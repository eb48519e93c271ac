package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrGetDeliveredShipmentsQueryIsNotConstructed is returned when validating
// a zero-value GetDeliveredShipmentsQuery.
var ErrGetDeliveredShipmentsQueryIsNotConstructed = errors.New(
	"GetDeliveredShipmentsQuery must be created via NewGetDeliveredShipmentsQuery constructor",
)

// GetDeliveredShipmentsQuery retrieves every shipment that completed the
// prepare-shipment pipeline, newest delivery first.
type GetDeliveredShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveredShipmentsQuery creates the parameterless query.
func NewGetDeliveredShipmentsQuery() GetDeliveredShipmentsQuery {
	return GetDeliveredShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveredShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveredShipmentsQueryIsNotConstructed)
}

// GetDeliveredShipmentsQueryResponse is one delivered shipment in the read
// model.
type GetDeliveredShipmentsQueryResponse struct {
	TrackingNumber string
	OrderID        kernel.OrderID
	CustomerID     kernel.CustomerID
	Carrier        string
	RecipientName  string
	DeliveredAt    time.Time
}
