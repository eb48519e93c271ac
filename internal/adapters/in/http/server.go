// Package http exposes the document pipelines over a REST API. A pipeline
// failure is a 400 with the reason list; infrastructure errors are 5xx.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler      commands.PlaceOrderCommandHandler
	generateInvoiceHandler commands.GenerateInvoiceCommandHandler
	prepareShipmentHandler commands.PrepareShipmentCommandHandler

	getPlacedOrdersHandler       queries.GetPlacedOrdersQueryHandler
	getSentInvoicesHandler       queries.GetSentInvoicesQueryHandler
	getDeliveredShipmentsHandler queries.GetDeliveredShipmentsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	generateInvoiceHandler commands.GenerateInvoiceCommandHandler,
	prepareShipmentHandler commands.PrepareShipmentCommandHandler,
	getPlacedOrdersHandler queries.GetPlacedOrdersQueryHandler,
	getSentInvoicesHandler queries.GetSentInvoicesQueryHandler,
	getDeliveredShipmentsHandler queries.GetDeliveredShipmentsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:            placeOrderHandler,
		generateInvoiceHandler:       generateInvoiceHandler,
		prepareShipmentHandler:       prepareShipmentHandler,
		getPlacedOrdersHandler:       getPlacedOrdersHandler,
		getSentInvoicesHandler:       getSentInvoicesHandler,
		getDeliveredShipmentsHandler: getDeliveredShipmentsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders/place", s.PlaceOrder)
	api.POST("/invoices/generate", s.GenerateInvoice)
	api.POST("/shipments/prepare", s.PrepareShipment)
	api.GET("/orders", s.GetPlacedOrders)
	api.GET("/invoices", s.GetSentInvoices)
	api.GET("/shipments", s.GetDeliveredShipments)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders/place. The body is passed to the
// pipeline as-is; any malformed field comes back as a reason, not a bind
// error.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]order.UnvalidatedItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, order.UnvalidatedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	cmd := commands.NewPlaceOrderCommand(order.Unvalidated{
		CustomerID:      req.CustomerID,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
	})

	event, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	switch e := event.(type) {
	case events.OrderPlacedSucceeded:
		return ctx.JSON(http.StatusOK, PlaceOrderResponse{
			CustomerID:        e.Order.CustomerID.String(),
			TotalAmount:       e.Order.TotalAmount.String(),
			ReservationID:     e.Order.ReservationID,
			WarehouseLocation: e.Order.WarehouseLocation,
			DeliverySignature: e.Order.DeliverySignature,
			DeliveredAt:       e.Order.DeliveredAt,
			CSV:               e.CSV,
		})
	case events.OrderPlacedFailed:
		return ctx.JSON(http.StatusBadRequest, FailureResponse{Reasons: e.Reasons})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Unknown pipeline outcome",
		})
	}
}

// GenerateInvoice handles POST /api/v1/invoices/generate.
func (s *Server) GenerateInvoice(ctx echo.Context) error {
	var req GenerateInvoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]invoice.UnvalidatedItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, invoice.UnvalidatedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd := commands.NewGenerateInvoiceCommand(invoice.Unvalidated{
		OrderID:        req.OrderID,
		CustomerID:     req.CustomerID,
		Items:          items,
		TotalAmount:    req.TotalAmount,
		BillingAddress: req.BillingAddress,
	})

	event, err := s.generateInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to generate invoice",
		})
	}

	switch e := event.(type) {
	case events.InvoiceGeneratedSucceeded:
		return ctx.JSON(http.StatusOK, GenerateInvoiceResponse{
			InvoiceID:     e.Invoice.InvoiceID.String(),
			InvoiceNumber: e.InvoiceNumber,
			TotalAmount:   e.Invoice.TotalAmount.String(),
			SentTo:        e.Invoice.SentTo,
			SentAt:        e.SentAt,
			CSV:           e.CSV,
		})
	case events.InvoiceGeneratedFailed:
		return ctx.JSON(http.StatusBadRequest, FailureResponse{Reasons: e.Reasons})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Unknown pipeline outcome",
		})
	}
}

// PrepareShipment handles POST /api/v1/shipments/prepare.
func (s *Server) PrepareShipment(ctx echo.Context) error {
	var req PrepareShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]shipment.UnvalidatedItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, shipment.UnvalidatedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	cmd := commands.NewPrepareShipmentCommand(shipment.Unvalidated{
		OrderID:         req.OrderID,
		CustomerID:      req.CustomerID,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
	})

	event, err := s.prepareShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to prepare shipment",
		})
	}

	switch e := event.(type) {
	case events.ShipmentDeliveredSucceeded:
		return ctx.JSON(http.StatusOK, PrepareShipmentResponse{
			TrackingNumber: e.TrackingNumber,
			Carrier:        e.Shipment.Carrier,
			RecipientName:  e.Shipment.RecipientName,
			DeliveredAt:    e.DeliveredAt,
			CSV:            e.CSV,
		})
	case events.ShipmentDeliveredFailed:
		return ctx.JSON(http.StatusBadRequest, FailureResponse{Reasons: e.Reasons})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Unknown pipeline outcome",
		})
	}
}

// GetPlacedOrders handles GET /api/v1/orders.
func (s *Server) GetPlacedOrders(ctx echo.Context) error {
	orders, err := s.getPlacedOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPlacedOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]PlacedOrderResponse, len(orders))
	for i, placed := range orders {
		response[i] = PlacedOrderResponse{
			ID:            placed.ID.String(),
			CustomerID:    placed.CustomerID.String(),
			TotalAmount:   placed.TotalAmount.String(),
			ReservationID: placed.ReservationID,
			DeliveredAt:   placed.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSentInvoices handles GET /api/v1/invoices.
func (s *Server) GetSentInvoices(ctx echo.Context) error {
	invoices, err := s.getSentInvoicesHandler.Handle(ctx.Request().Context(), queries.NewGetSentInvoicesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve invoices",
		})
	}

	response := make([]SentInvoiceResponse, len(invoices))
	for i, sent := range invoices {
		response[i] = SentInvoiceResponse{
			InvoiceID:     sent.InvoiceID.String(),
			InvoiceNumber: sent.InvoiceNumber,
			OrderID:       sent.OrderID.String(),
			CustomerID:    sent.CustomerID.String(),
			TotalAmount:   sent.TotalAmount.String(),
			SentTo:        sent.SentTo,
			SentAt:        sent.SentAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveredShipments handles GET /api/v1/shipments.
func (s *Server) GetDeliveredShipments(ctx echo.Context) error {
	shipments, err := s.getDeliveredShipmentsHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveredShipmentsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipments",
		})
	}

	response := make([]DeliveredShipmentResponse, len(shipments))
	for i, delivered := range shipments {
		response[i] = DeliveredShipmentResponse{
			TrackingNumber: delivered.TrackingNumber,
			OrderID:        delivered.OrderID.String(),
			CustomerID:     delivered.CustomerID.String(),
			Carrier:        delivered.Carrier,
			RecipientName:  delivered.RecipientName,
			DeliveredAt:    delivered.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
