package commands

import (
	"context"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/workflows"
	"fulfillment/internal/pkg/errs"
)

// PlaceOrderCommandHandler runs the place-order pipeline and persists the
// delivered order when the pipeline succeeds.
//
// The returned event is the pipeline outcome either way; the error reports
// infrastructure failures only (a failed pipeline is a failure event, not an
// error).
type PlaceOrderCommandHandler struct {
	workflow   *workflows.PlaceOrder
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates the handler. Both dependencies are
// required.
func NewPlaceOrderCommandHandler(
	workflow *workflows.PlaceOrder,
	uowFactory OrderUoWFactory,
) (PlaceOrderCommandHandler, error) {
	if workflow == nil {
		return PlaceOrderCommandHandler{}, errs.NewValueIsRequiredError("workflow")
	}
	if uowFactory == nil {
		return PlaceOrderCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	return PlaceOrderCommandHandler{workflow: workflow, uowFactory: uowFactory}, nil
}

// Handle executes the pipeline and, on success, stores the delivered order
// within a transaction.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (events.OrderPlacedEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	event := h.workflow.Execute(cmd.Order())

	succeeded, ok := event.(events.OrderPlacedSucceeded)
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

	if err := uow.OrderRepository().Add(ctx, succeeded.Order); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return event, nil
}
