package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/workflows"
	"fulfillment/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopUoW struct{}

func (noopUoW) Begin(context.Context) error    { return nil }
func (noopUoW) Commit(context.Context) error   { return nil }
func (noopUoW) Rollback(context.Context) error { return nil }

func (noopUoW) OrderRepository() ports.OrderRepository       { return noopOrderRepo{} }
func (noopUoW) InvoiceRepository() ports.InvoiceRepository   { return noopInvoiceRepo{} }
func (noopUoW) ShipmentRepository() ports.ShipmentRepository { return noopShipmentRepo{} }

type noopOrderRepo struct{}

func (noopOrderRepo) Add(context.Context, order.Delivered) error { return nil }

type noopInvoiceRepo struct{}

func (noopInvoiceRepo) Add(context.Context, invoice.Sent) error { return nil }

type noopShipmentRepo struct{}

func (noopShipmentRepo) Add(context.Context, shipment.Delivered) error { return nil }

type noopOrderUoWFactory struct{}

func (noopOrderUoWFactory) Create() commands.OrderUoW { return noopUoW{} }

type noopInvoiceUoWFactory struct{}

func (noopInvoiceUoWFactory) Create() commands.InvoiceUoW { return noopUoW{} }

type noopShipmentUoWFactory struct{}

func (noopShipmentUoWFactory) Create() commands.ShipmentUoW { return noopUoW{} }

func testServer(t *testing.T) *Server {
	t.Helper()

	unitPrice, err := kernel.ParseMoney("10.00 USD")
	require.NoError(t, err)

	placeOrderWorkflow, err := workflows.NewPlaceOrder(workflows.PlaceOrderDeps{
		CustomerExists:  func(string) (bool, error) { return true, nil },
		ProductExists:   func(string) (bool, error) { return true, nil },
		UnitPriceFor:    func(string) (kernel.Money, error) { return unitPrice, nil },
		AvailableStock:  func(string) (int, error) { return 100, nil },
		ReserveStock:    func(string, int) (string, error) { return "RES-1", nil },
		AssignWarehouse: func(string) (string, error) { return "WH-001", nil },
		ConfirmDelivery: func(string) (bool, error) { return true, nil },
	})
	require.NoError(t, err)

	generateInvoiceWorkflow, err := workflows.NewGenerateInvoice(workflows.GenerateInvoiceDeps{
		OrderExists:           func(string) (bool, error) { return true, nil },
		CustomerExists:        func(string) (bool, error) { return true, nil },
		ProductExists:         func(string) (bool, error) { return true, nil },
		GenerateInvoiceID:     func() (string, error) { return "INV-001", nil },
		GenerateInvoiceNumber: func() (string, error) { return "2025/000123", nil },
		SendInvoice:           func(string, string) (bool, error) { return true, nil },
		GetCustomerEmail:      func(string) (string, error) { return "ana@example.com", nil },
	})
	require.NoError(t, err)

	prepareShipmentWorkflow, err := workflows.NewPrepareShipment(workflows.PrepareShipmentDeps{
		OrderExists:            func(string) (bool, error) { return true, nil },
		CustomerExists:         func(string) (bool, error) { return true, nil },
		ProductExists:          func(string) (bool, error) { return true, nil },
		GenerateTrackingNumber: func(string) (string, error) { return "TRK-0001", nil },
		AssignCarrier:          func(string) (string, error) { return "FanCourier", nil },
		ConfirmDelivery:        func(string, string) (bool, error) { return true, nil },
		GetRecipientName:       func(string) (string, error) { return "Ana Pop", nil },
	})
	require.NoError(t, err)

	placeOrderHandler, err := commands.NewPlaceOrderCommandHandler(placeOrderWorkflow, noopOrderUoWFactory{})
	require.NoError(t, err)
	generateInvoiceHandler, err := commands.NewGenerateInvoiceCommandHandler(generateInvoiceWorkflow, noopInvoiceUoWFactory{})
	require.NoError(t, err)
	prepareShipmentHandler, err := commands.NewPrepareShipmentCommandHandler(prepareShipmentWorkflow, noopShipmentUoWFactory{})
	require.NoError(t, err)

	// The read side is not exercised here, so the query handlers never see
	// a request.
	return NewServer(
		placeOrderHandler,
		generateInvoiceHandler,
		prepareShipmentHandler,
		queries.NewGetPlacedOrdersQueryHandler(nil),
		queries.NewGetSentInvoicesQueryHandler(nil),
		queries.NewGetDeliveredShipmentsQueryHandler(nil),
	)
}

func doRequest(t *testing.T, server *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func Test_Health(t *testing.T) {
	rec := doRequest(t, testServer(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func Test_PlaceOrder_Success(t *testing.T) {
	body := `{
		"customerId": "CUST-001",
		"items": [{"productId": "PROD-1", "quantity": 2}],
		"deliveryAddress": "Main St 1|Bucharest|010101|Romania"
	}`

	rec := doRequest(t, testServer(t), http.MethodPost, "/api/v1/orders/place", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlaceOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CUST-001", resp.CustomerID)
	assert.Equal(t, "20.00 USD", resp.TotalAmount)
	assert.Equal(t, "RES-1", resp.ReservationID)
	assert.Equal(t, "CUST-001,20.00 USD,RES-1", resp.CSV)
}

func Test_PlaceOrder_PipelineFailureReturnsReasons(t *testing.T) {
	body := `{
		"customerId": "garbage",
		"items": [{"productId": "PROD-1", "quantity": 0}],
		"deliveryAddress": "not an address"
	}`

	rec := doRequest(t, testServer(t), http.MethodPost, "/api/v1/orders/place", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp FailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reasons, "Invalid customer ID (garbage)")
	assert.Contains(t, resp.Reasons, "Invalid delivery address")
	assert.Contains(t, resp.Reasons, "Invalid quantity for product (PROD-1)")
}

func Test_PlaceOrder_MalformedBody(t *testing.T) {
	rec := doRequest(t, testServer(t), http.MethodPost, "/api/v1/orders/place", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_GenerateInvoice_Success(t *testing.T) {
	body := `{
		"orderId": "ORD-001",
		"customerId": "CUST-001",
		"items": [{"productId": "PROD-1", "quantity": 2, "unitPrice": "10.00 USD"}],
		"totalAmount": "20.00 USD",
		"billingAddress": "Main St 1|Bucharest|010101|Romania"
	}`

	rec := doRequest(t, testServer(t), http.MethodPost, "/api/v1/invoices/generate", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateInvoiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INV-001", resp.InvoiceID)
	assert.Equal(t, "2025/000123", resp.InvoiceNumber)
	assert.Equal(t, "ana@example.com", resp.SentTo)
	assert.Equal(t, "INV-001,ORD-001,CUST-001,20.00,2025/000123", resp.CSV)
}

func Test_GenerateInvoice_TotalMismatchReturnsReasons(t *testing.T) {
	body := `{
		"orderId": "ORD-001",
		"customerId": "CUST-001",
		"items": [{"productId": "PROD-1", "quantity": 2, "unitPrice": "10.00 USD"}],
		"totalAmount": "20.01 USD",
		"billingAddress": "Main St 1|Bucharest|010101|Romania"
	}`

	rec := doRequest(t, testServer(t), http.MethodPost, "/api/v1/invoices/generate", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp FailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reasons, "Total amount mismatch: expected 20.00 USD, got 20.01 USD")
}

func Test_PrepareShipment_Success(t *testing.T) {
	body := `{
		"orderId": "ORD-001",
		"customerId": "CUST-001",
		"items": [{"productId": "PROD-1", "quantity": 2}],
		"deliveryAddress": "Main St 1|Bucharest|010101|Romania"
	}`

	rec := doRequest(t, testServer(t), http.MethodPost, "/api/v1/shipments/prepare", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PrepareShipmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "TRK-0001", resp.TrackingNumber)
	assert.Equal(t, "FanCourier", resp.Carrier)
	assert.Equal(t, "Ana Pop", resp.RecipientName)
	assert.Equal(t, "TRK-0001,ORD-001,CUST-001,FanCourier,Ana Pop", resp.CSV)
}
