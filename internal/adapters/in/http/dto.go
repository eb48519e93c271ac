package http

import "time"

// Request bodies mirror the unvalidated document shapes: everything is a
// raw string, and all checking happens inside the pipelines so that the
// reason lists they produce are the single source of validation messages.

// PlaceOrderRequest is the body of POST /api/v1/orders/place.
type PlaceOrderRequest struct {
	CustomerID      string                  `json:"customerId"`
	Items           []PlaceOrderItemRequest `json:"items"`
	DeliveryAddress string                  `json:"deliveryAddress"`
}

// PlaceOrderItemRequest is one requested order line.
type PlaceOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderResponse reports a successfully placed order.
type PlaceOrderResponse struct {
	CustomerID        string    `json:"customerId"`
	TotalAmount       string    `json:"totalAmount"`
	ReservationID     string    `json:"reservationId"`
	WarehouseLocation string    `json:"warehouseLocation"`
	DeliverySignature string    `json:"deliverySignature"`
	DeliveredAt       time.Time `json:"deliveredAt"`
	CSV               string    `json:"csv"`
}

// GenerateInvoiceRequest is the body of POST /api/v1/invoices/generate.
type GenerateInvoiceRequest struct {
	OrderID        string                       `json:"orderId"`
	CustomerID     string                       `json:"customerId"`
	Items          []GenerateInvoiceItemRequest `json:"items"`
	TotalAmount    string                       `json:"totalAmount"`
	BillingAddress string                       `json:"billingAddress"`
}

// GenerateInvoiceItemRequest is one invoice line as submitted.
type GenerateInvoiceItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// GenerateInvoiceResponse reports a successfully sent invoice.
type GenerateInvoiceResponse struct {
	InvoiceID     string    `json:"invoiceId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	TotalAmount   string    `json:"totalAmount"`
	SentTo        string    `json:"sentTo"`
	SentAt        time.Time `json:"sentAt"`
	CSV           string    `json:"csv"`
}

// PrepareShipmentRequest is the body of POST /api/v1/shipments/prepare.
type PrepareShipmentRequest struct {
	OrderID         string                       `json:"orderId"`
	CustomerID      string                       `json:"customerId"`
	Items           []PrepareShipmentItemRequest `json:"items"`
	DeliveryAddress string                       `json:"deliveryAddress"`
}

// PrepareShipmentItemRequest is one shipped line as submitted.
type PrepareShipmentItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PrepareShipmentResponse reports a successfully delivered shipment.
type PrepareShipmentResponse struct {
	TrackingNumber string    `json:"trackingNumber"`
	Carrier        string    `json:"carrier"`
	RecipientName  string    `json:"recipientName"`
	DeliveredAt    time.Time `json:"deliveredAt"`
	CSV            string    `json:"csv"`
}

// FailureResponse carries the pipeline's accumulated reasons verbatim.
type FailureResponse struct {
	Reasons []string `json:"reasons"`
}

// ErrorResponse reports an infrastructure problem unrelated to document
// validity.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlacedOrderResponse is one element of GET /api/v1/orders.
type PlacedOrderResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	TotalAmount   string    `json:"totalAmount"`
	ReservationID string    `json:"reservationId"`
	DeliveredAt   time.Time `json:"deliveredAt"`
}

// SentInvoiceResponse is one element of GET /api/v1/invoices.
type SentInvoiceResponse struct {
	InvoiceID     string    `json:"invoiceId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	OrderID       string    `json:"orderId"`
	CustomerID    string    `json:"customerId"`
	TotalAmount   string    `json:"totalAmount"`
	SentTo        string    `json:"sentTo"`
	SentAt        time.Time `json:"sentAt"`
}

// DeliveredShipmentResponse is one element of GET /api/v1/shipments.
type DeliveredShipmentResponse struct {
	TrackingNumber string    `json:"trackingNumber"`
	OrderID        string    `json:"orderId"`
	CustomerID     string    `json:"customerId"`
	Carrier        string    `json:"carrier"`
	RecipientName  string    `json:"recipientName"`
	DeliveredAt    time.Time `json:"deliveredAt"`
}
