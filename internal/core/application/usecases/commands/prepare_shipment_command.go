package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

// ErrPrepareShipmentCommandIsNotConstructed is returned when validating a
// zero-value PrepareShipmentCommand.
var ErrPrepareShipmentCommandIsNotConstructed = errors.New(
	"PrepareShipmentCommand must be created via NewPrepareShipmentCommand constructor",
)

// PrepareShipmentCommand wraps the raw shipment exactly as the transport
// layer decoded it; validation belongs to the pipeline.
type PrepareShipmentCommand struct {
	shipment shipment.Unvalidated

	guard guard.ConstructorGuard
}

// NewPrepareShipmentCommand creates a command around a raw shipment.
func NewPrepareShipmentCommand(unvalidated shipment.Unvalidated) PrepareShipmentCommand {
	return PrepareShipmentCommand{
		shipment: unvalidated,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PrepareShipmentCommand) Validate() error {
	return c.guard.Validate(ErrPrepareShipmentCommandIsNotConstructed)
}

// Shipment returns the wrapped raw shipment.
func (c PrepareShipmentCommand) Shipment() shipment.Unvalidated {
	return c.shipment
}
