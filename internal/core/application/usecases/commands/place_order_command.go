package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

// ErrPlaceOrderCommandIsNotConstructed is returned when validating a
// zero-value PlaceOrderCommand.
var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand wraps the raw order exactly as the transport layer
// decoded it. The fields are deliberately unchecked here: shape and
// consistency validation is the pipeline's job, and the reasons it produces
// are the user-facing contract.
type PlaceOrderCommand struct {
	order order.Unvalidated

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command around a raw order.
func NewPlaceOrderCommand(unvalidated order.Unvalidated) PlaceOrderCommand {
	return PlaceOrderCommand{
		order: unvalidated,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Order returns the wrapped raw order.
func (c PlaceOrderCommand) Order() order.Unvalidated {
	return c.order
}
