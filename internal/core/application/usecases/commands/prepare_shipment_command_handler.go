package commands

import (
	"context"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/workflows"
	"fulfillment/internal/pkg/errs"
)

// PrepareShipmentCommandHandler runs the prepare-shipment pipeline and
// persists the delivered shipment when the pipeline succeeds.
type PrepareShipmentCommandHandler struct {
	workflow   *workflows.PrepareShipment
	uowFactory ShipmentUoWFactory
}

// NewPrepareShipmentCommandHandler creates the handler. Both dependencies
// are required.
func NewPrepareShipmentCommandHandler(
	workflow *workflows.PrepareShipment,
	uowFactory ShipmentUoWFactory,
) (PrepareShipmentCommandHandler, error) {
	if workflow == nil {
		return PrepareShipmentCommandHandler{}, errs.NewValueIsRequiredError("workflow")
	}
	if uowFactory == nil {
		return PrepareShipmentCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	return PrepareShipmentCommandHandler{workflow: workflow, uowFactory: uowFactory}, nil
}

// Handle executes the pipeline and, on success, stores the delivered
// shipment within a transaction.
func (h PrepareShipmentCommandHandler) Handle(ctx context.Context, cmd PrepareShipmentCommand) (events.ShipmentDeliveredEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	event := h.workflow.Execute(cmd.Shipment())

	succeeded, ok := event.(events.ShipmentDeliveredSucceeded)
	if !ok {
		return event, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().Add(ctx, succeeded.Shipment); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return event, nil
}
