package workflows

import (
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/operations/shipmentops"
)

// PrepareShipmentDeps carries every external effect the prepare-shipment
// pipeline needs. All fields are required.
type PrepareShipmentDeps struct {
	OrderExists            shipmentops.ExistsFunc
	CustomerExists         shipmentops.ExistsFunc
	ProductExists          shipmentops.ExistsFunc
	GenerateTrackingNumber shipmentops.TrackingNumberFunc
	AssignCarrier          shipmentops.AssignCarrierFunc
	ConfirmDelivery        shipmentops.ConfirmDeliveryFunc
	GetRecipientName       shipmentops.RecipientNameFunc
}

// PrepareShipment runs an unvalidated shipment through validation,
// preparation and delivery, in that order.
type PrepareShipment struct {
	validate *shipmentops.ValidateShipment
	prepare  *shipmentops.PrepareShipment
	deliver  *shipmentops.DeliverShipment
}

// NewPrepareShipment builds the workflow, failing on any missing dependency.
func NewPrepareShipment(deps PrepareShipmentDeps) (*PrepareShipment, error) {
	validate, err := shipmentops.NewValidateShipment(deps.OrderExists, deps.CustomerExists, deps.ProductExists)
	if err != nil {
		return nil, err
	}
	prepare, err := shipmentops.NewPrepareShipment(deps.GenerateTrackingNumber, deps.AssignCarrier)
	if err != nil {
		return nil, err
	}
	deliver, err := shipmentops.NewDeliverShipment(deps.ConfirmDelivery, deps.GetRecipientName)
	if err != nil {
		return nil, err
	}
	return &PrepareShipment{validate: validate, prepare: prepare, deliver: deliver}, nil
}

// Execute runs the pipeline and converts the final state into exactly one
// outcome event.
func (w *PrepareShipment) Execute(unvalidated shipment.Unvalidated) events.ShipmentDeliveredEvent {
	var state shipment.State = unvalidated

	state = w.validate.Apply(state)
	state = w.prepare.Apply(state)
	state = w.deliver.Apply(state)

	return events.NewShipmentDeliveredEvent(state)
}
