package commands

import (
	"context"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/workflows"
	"fulfillment/internal/pkg/errs"
)

// GenerateInvoiceCommandHandler runs the generate-invoice pipeline and
// persists the sent invoice when the pipeline succeeds.
type GenerateInvoiceCommandHandler struct {
	workflow   *workflows.GenerateInvoice
	uowFactory InvoiceUoWFactory
}

// NewGenerateInvoiceCommandHandler creates the handler. Both dependencies
// are required.
func NewGenerateInvoiceCommandHandler(
	workflow *workflows.GenerateInvoice,
	uowFactory InvoiceUoWFactory,
) (GenerateInvoiceCommandHandler, error) {
	if workflow == nil {
		return GenerateInvoiceCommandHandler{}, errs.NewValueIsRequiredError("workflow")
	}
	if uowFactory == nil {
		return GenerateInvoiceCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	return GenerateInvoiceCommandHandler{workflow: workflow, uowFactory: uowFactory}, nil
}

// Handle executes the pipeline and, on success, stores the sent invoice
// within a transaction.
func (h GenerateInvoiceCommandHandler) Handle(ctx context.Context, cmd GenerateInvoiceCommand) (events.InvoiceGeneratedEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	event := h.workflow.Execute(cmd.Invoice())

	succeeded, ok := event.(events.InvoiceGeneratedSucceeded)
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

	if err := uow.InvoiceRepository().Add(ctx, succeeded.Invoice); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return event, nil
}
