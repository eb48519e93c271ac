package commands

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/workflows"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUoW struct {
	began      bool
	committed  bool
	rolledBack bool

	orders    []order.Delivered
	invoices  []invoice.Sent
	shipments []shipment.Delivered

	addErr error
}

func (u *fakeUoW) Begin(context.Context) error { u.began = true; return nil }
func (u *fakeUoW) Commit(context.Context) error {
	u.committed = true
	return nil
}
func (u *fakeUoW) Rollback(context.Context) error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

func (u *fakeUoW) OrderRepository() ports.OrderRepository       { return fakeOrderRepo{u} }
func (u *fakeUoW) InvoiceRepository() ports.InvoiceRepository   { return fakeInvoiceRepo{u} }
func (u *fakeUoW) ShipmentRepository() ports.ShipmentRepository { return fakeShipmentRepo{u} }

type fakeOrderRepo struct{ uow *fakeUoW }

func (r fakeOrderRepo) Add(_ context.Context, delivered order.Delivered) error {
	if r.uow.addErr != nil {
		return r.uow.addErr
	}
	r.uow.orders = append(r.uow.orders, delivered)
	return nil
}

type fakeInvoiceRepo struct{ uow *fakeUoW }

func (r fakeInvoiceRepo) Add(_ context.Context, sent invoice.Sent) error {
	if r.uow.addErr != nil {
		return r.uow.addErr
	}
	r.uow.invoices = append(r.uow.invoices, sent)
	return nil
}

type fakeShipmentRepo struct{ uow *fakeUoW }

func (r fakeShipmentRepo) Add(_ context.Context, delivered shipment.Delivered) error {
	if r.uow.addErr != nil {
		return r.uow.addErr
	}
	r.uow.shipments = append(r.uow.shipments, delivered)
	return nil
}

type fakeOrderUoWFactory struct{ uow *fakeUoW }

func (f fakeOrderUoWFactory) Create() OrderUoW { return f.uow }

type fakeInvoiceUoWFactory struct{ uow *fakeUoW }

func (f fakeInvoiceUoWFactory) Create() InvoiceUoW { return f.uow }

type fakeShipmentUoWFactory struct{ uow *fakeUoW }

func (f fakeShipmentUoWFactory) Create() ShipmentUoW { return f.uow }

func placeOrderWorkflowFixture(t *testing.T) *workflows.PlaceOrder {
	t.Helper()

	unitPrice, err := kernel.ParseMoney("10.00 USD")
	require.NoError(t, err)

	workflow, err := workflows.NewPlaceOrder(workflows.PlaceOrderDeps{
		CustomerExists:  func(string) (bool, error) { return true, nil },
		ProductExists:   func(string) (bool, error) { return true, nil },
		UnitPriceFor:    func(string) (kernel.Money, error) { return unitPrice, nil },
		AvailableStock:  func(string) (int, error) { return 100, nil },
		ReserveStock:    func(string, int) (string, error) { return "RES-1", nil },
		AssignWarehouse: func(string) (string, error) { return "WH-001", nil },
		ConfirmDelivery: func(string) (bool, error) { return true, nil },
	})
	require.NoError(t, err)
	return workflow
}

func rawOrderFixture() order.Unvalidated {
	return order.Unvalidated{
		CustomerID:      "CUST-001",
		Items:           []order.UnvalidatedItem{{ProductID: "PROD-1", Quantity: 2}},
		DeliveryAddress: "Main St 1|Bucharest|010101|Romania",
	}
}

func Test_PlaceOrderCommandHandler_PersistsOnSuccess(t *testing.T) {
	uow := &fakeUoW{}
	handler, err := NewPlaceOrderCommandHandler(placeOrderWorkflowFixture(t), fakeOrderUoWFactory{uow})
	require.NoError(t, err)

	event, err := handler.Handle(context.Background(), NewPlaceOrderCommand(rawOrderFixture()))

	require.NoError(t, err)
	_, ok := event.(events.OrderPlacedSucceeded)
	assert.True(t, ok, "expected success event, got %T", event)
	assert.True(t, uow.committed)
	require.Len(t, uow.orders, 1)
	assert.Equal(t, "RES-1", uow.orders[0].ReservationID)
}

func Test_PlaceOrderCommandHandler_NoPersistenceOnPipelineFailure(t *testing.T) {
	uow := &fakeUoW{}
	handler, err := NewPlaceOrderCommandHandler(placeOrderWorkflowFixture(t), fakeOrderUoWFactory{uow})
	require.NoError(t, err)

	raw := rawOrderFixture()
	raw.CustomerID = "garbage"
	event, err := handler.Handle(context.Background(), NewPlaceOrderCommand(raw))

	require.NoError(t, err, "a failed pipeline is an event, not an error")
	failed, ok := event.(events.OrderPlacedFailed)
	require.True(t, ok, "expected failure event, got %T", event)
	assert.NotEmpty(t, failed.Reasons)
	assert.False(t, uow.began, "no transaction for a failed pipeline")
	assert.Empty(t, uow.orders)
}

func Test_PlaceOrderCommandHandler_RepositoryErrorRollsBack(t *testing.T) {
	uow := &fakeUoW{addErr: errors.New("insert failed")}
	handler, err := NewPlaceOrderCommandHandler(placeOrderWorkflowFixture(t), fakeOrderUoWFactory{uow})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), NewPlaceOrderCommand(rawOrderFixture()))

	require.Error(t, err)
	assert.True(t, uow.rolledBack)
	assert.False(t, uow.committed)
}

func Test_PlaceOrderCommandHandler_RejectsZeroValueCommand(t *testing.T) {
	handler, err := NewPlaceOrderCommandHandler(placeOrderWorkflowFixture(t), fakeOrderUoWFactory{&fakeUoW{}})
	require.NoError(t, err)

	var cmd PlaceOrderCommand
	_, err = handler.Handle(context.Background(), cmd)

	assert.ErrorIs(t, err, ErrPlaceOrderCommandIsNotConstructed)
}
