package workflows

import (
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/operations/orderops"
)

// PlaceOrderDeps carries every external effect the place-order pipeline
// needs. All fields are required.
type PlaceOrderDeps struct {
	CustomerExists  orderops.CustomerExistsFunc
	ProductExists   orderops.ProductExistsFunc
	UnitPriceFor    orderops.UnitPriceFunc
	AvailableStock  orderops.AvailableStockFunc
	ReserveStock    orderops.ReserveStockFunc
	AssignWarehouse orderops.AssignWarehouseFunc
	ConfirmDelivery orderops.ConfirmOrderDeliveryFunc
}

// PlaceOrder runs an unvalidated order through validation, availability
// check, stock reservation, preparation and delivery, in that order.
type PlaceOrder struct {
	validate *orderops.ValidateOrder
	check    *orderops.CheckAvailability
	reserve  *orderops.ReserveStock
	prepare  *orderops.PrepareOrder
	deliver  *orderops.DeliverOrder
}

// NewPlaceOrder builds the workflow, failing on any missing dependency.
func NewPlaceOrder(deps PlaceOrderDeps) (*PlaceOrder, error) {
	validate, err := orderops.NewValidateOrder(deps.CustomerExists, deps.ProductExists, deps.UnitPriceFor)
	if err != nil {
		return nil, err
	}
	check, err := orderops.NewCheckAvailability(deps.AvailableStock)
	if err != nil {
		return nil, err
	}
	reserve, err := orderops.NewReserveStock(deps.ReserveStock)
	if err != nil {
		return nil, err
	}
	prepare, err := orderops.NewPrepareOrder(deps.AssignWarehouse)
	if err != nil {
		return nil, err
	}
	deliver, err := orderops.NewDeliverOrder(deps.ConfirmDelivery)
	if err != nil {
		return nil, err
	}
	return &PlaceOrder{
		validate: validate,
		check:    check,
		reserve:  reserve,
		prepare:  prepare,
		deliver:  deliver,
	}, nil
}

// Execute runs the pipeline. Once a step produces order.Invalid, each later
// step passes it through untouched; the converter at the end turns whatever
// state remains into exactly one outcome event.
func (w *PlaceOrder) Execute(unvalidated order.Unvalidated) events.OrderPlacedEvent {
	var state order.State = unvalidated

	state = w.validate.Apply(state)
	state = w.check.Apply(state)
	state = w.reserve.Apply(state)
	state = w.prepare.Apply(state)
	state = w.deliver.Apply(state)

	return events.NewOrderPlacedEvent(state)
}
