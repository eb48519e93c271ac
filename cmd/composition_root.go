package cmd

import (
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"fulfillment/internal/adapters/out/catalog"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/workflows"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into the workflow dependency sets and hands
// out ready-to-use command and query handlers.
//
// Product existence and prices come from the Excel catalog. The remaining
// external effects (customer registry, stock service, carrier assignment,
// invoice mailing) have in-process implementations below; each is a single
// callback, so swapping one for a real integration touches only this file.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	catalog    *catalog.ExcelCatalog
	logger     *slog.Logger

	invoiceSeq atomic.Int64
}

// NewCompositionRoot creates the composition root.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, cat *catalog.ExcelCatalog, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    cat,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	workflow, err := workflows.NewPlaceOrder(workflows.PlaceOrderDeps{
		CustomerExists:  c.customerExists,
		ProductExists:   c.catalog.Exists,
		UnitPriceFor:    c.catalog.UnitPriceFor,
		AvailableStock:  c.availableStock,
		ReserveStock:    c.reserveStock,
		AssignWarehouse: c.assignWarehouse,
		ConfirmDelivery: c.confirmOrderDelivery,
	})
	if err != nil {
		panic(fmt.Sprintf("wiring place-order workflow: %v", err))
	}

	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler, err := commands.NewPlaceOrderCommandHandler(workflow, f)
	if err != nil {
		panic(fmt.Sprintf("wiring place-order handler: %v", err))
	}
	return handler
}

func (c *CompositionRoot) CreateGenerateInvoiceCommandHandler() commands.GenerateInvoiceCommandHandler {
	workflow, err := workflows.NewGenerateInvoice(workflows.GenerateInvoiceDeps{
		OrderExists:           c.orderExists,
		CustomerExists:        c.customerExists,
		ProductExists:         c.catalog.Exists,
		GenerateInvoiceID:     c.generateInvoiceID,
		GenerateInvoiceNumber: c.generateInvoiceNumber,
		SendInvoice:           c.sendInvoice,
		GetCustomerEmail:      c.customerEmail,
	})
	if err != nil {
		panic(fmt.Sprintf("wiring generate-invoice workflow: %v", err))
	}

	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	handler, err := commands.NewGenerateInvoiceCommandHandler(workflow, f)
	if err != nil {
		panic(fmt.Sprintf("wiring generate-invoice handler: %v", err))
	}
	return handler
}

func (c *CompositionRoot) CreatePrepareShipmentCommandHandler() commands.PrepareShipmentCommandHandler {
	workflow, err := workflows.NewPrepareShipment(workflows.PrepareShipmentDeps{
		OrderExists:            c.orderExists,
		CustomerExists:         c.customerExists,
		ProductExists:          c.catalog.Exists,
		GenerateTrackingNumber: c.generateTrackingNumber,
		AssignCarrier:          c.assignCarrier,
		ConfirmDelivery:        c.confirmShipmentDelivery,
		GetRecipientName:       c.recipientName,
	})
	if err != nil {
		panic(fmt.Sprintf("wiring prepare-shipment workflow: %v", err))
	}

	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	handler, err := commands.NewPrepareShipmentCommandHandler(workflow, f)
	if err != nil {
		panic(fmt.Sprintf("wiring prepare-shipment handler: %v", err))
	}
	return handler
}

func (c *CompositionRoot) CreateGetPlacedOrdersQueryHandler() queries.GetPlacedOrdersQueryHandler {
	return queries.NewGetPlacedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSentInvoicesQueryHandler() queries.GetSentInvoicesQueryHandler {
	return queries.NewGetSentInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveredShipmentsQueryHandler() queries.GetDeliveredShipmentsQueryHandler {
	return queries.NewGetDeliveredShipmentsQueryHandler(c.gormDB)
}

// CreateJobManager wires the catalog refresh job.
func (c *CompositionRoot) CreateJobManager(refreshSchedule string) *jobs.JobManager {
	return jobs.NewJobManager(c.catalog, refreshSchedule, c.logger)
}

// External effect callbacks. The pipelines parse and validate the
// identifiers before calling; these operate on well-formed values.

func (c *CompositionRoot) customerExists(string) (bool, error) {
	// No customer registry integration yet.
	return true, nil
}

func (c *CompositionRoot) orderExists(string) (bool, error) {
	return true, nil
}

func (c *CompositionRoot) availableStock(string) (int, error) {
	return 100, nil
}

func (c *CompositionRoot) reserveStock(string, int) (string, error) {
	return "RES-" + compactUUID(), nil
}

func (c *CompositionRoot) assignWarehouse(deliveryAddress string) (string, error) {
	warehouses := []string{"WH-BUC-01", "WH-CLJ-01", "WH-TIM-01"}
	return warehouses[pick(deliveryAddress, len(warehouses))], nil
}

func (c *CompositionRoot) confirmOrderDelivery(string) (bool, error) {
	return true, nil
}

func (c *CompositionRoot) generateInvoiceID() (string, error) {
	return "INV-" + compactUUID(), nil
}

func (c *CompositionRoot) generateInvoiceNumber() (string, error) {
	return fmt.Sprintf("%d/%06d", time.Now().UTC().Year(), c.invoiceSeq.Add(1)), nil
}

func (c *CompositionRoot) sendInvoice(string, string) (bool, error) {
	return true, nil
}

func (c *CompositionRoot) customerEmail(customerID string) (string, error) {
	return strings.ToLower(customerID) + "@customers.example.com", nil
}

func (c *CompositionRoot) generateTrackingNumber(string) (string, error) {
	return "TRK-" + compactUUID(), nil
}

func (c *CompositionRoot) assignCarrier(deliveryAddress string) (string, error) {
	carriers := []string{"FanCourier", "DHL", "Cargus"}
	return carriers[pick(deliveryAddress, len(carriers))], nil
}

func (c *CompositionRoot) confirmShipmentDelivery(string, string) (bool, error) {
	return true, nil
}

func (c *CompositionRoot) recipientName(customerID string) (string, error) {
	return "Recipient " + strings.TrimPrefix(customerID, "CUST-"), nil
}

// compactUUID returns a uuid without dashes, matching the generated
// identifier alphabets.
func compactUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// pick maps a key deterministically onto [0, n).
func pick(key string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(n))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
