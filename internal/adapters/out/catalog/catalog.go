// Package catalog serves product lookups from an Excel price list. The
// workbook is loaded into an in-memory snapshot; lookups never touch the
// file, and a background job re-reads it periodically.
package catalog

import (
	"log/slog"
	"strings"
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet read when no sheet name is configured.
const DefaultSheet = "Products"

// Product is one catalog row.
type Product struct {
	ID    kernel.ProductID
	Name  string
	Price kernel.Money
}

// ExcelCatalog reads products from an xlsx workbook. The expected layout is
// a header row followed by ProductId | ProductName | Price rows, with the
// price in "12.50 USD" form. Malformed rows are skipped and logged, never
// fatal; a price list maintained by hand always has a broken row in it
// somewhere.
type ExcelCatalog struct {
	path   string
	sheet  string
	logger *slog.Logger

	mu       sync.RWMutex
	products map[string]Product
}

// NewExcelCatalog creates a catalog and performs the initial load. A
// missing or unreadable workbook is a startup error; later refresh failures
// keep the previous snapshot.
func NewExcelCatalog(path, sheet string, logger *slog.Logger) (*ExcelCatalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if strings.TrimSpace(sheet) == "" {
		sheet = DefaultSheet
	}

	c := &ExcelCatalog{
		path:   path,
		sheet:  sheet,
		logger: logger.With("component", "excel_catalog"),
	}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Refresh re-reads the workbook and atomically swaps the snapshot. On error
// the current snapshot stays in place.
func (c *ExcelCatalog) Refresh() error {
	file, err := excelize.OpenFile(c.path)
	if err != nil {
		return err
	}
	defer file.Close()

	rows, err := file.GetRows(c.sheet)
	if err != nil {
		return err
	}

	products := make(map[string]Product)
	for i, row := range rows {
		if i == 0 {
			// header row
			continue
		}
		if len(row) < 3 {
			c.logger.Warn("Skipping catalog row with missing columns", "row", i+1)
			continue
		}

		id, ok := kernel.TryParseProductID(strings.TrimSpace(row[0]))
		if !ok {
			c.logger.Warn("Skipping catalog row with invalid product id", "row", i+1, "productId", row[0])
			continue
		}

		price, ok := kernel.TryParseMoney(row[2])
		if !ok {
			c.logger.Warn("Skipping catalog row with invalid price", "row", i+1, "productId", id.String(), "price", row[2])
			continue
		}

		products[id.String()] = Product{
			ID:    id,
			Name:  strings.TrimSpace(row[1]),
			Price: price,
		}
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	c.logger.Info("Catalog refreshed", "products", len(products))
	return nil
}

// Exists reports whether the product id is in the current snapshot.
func (c *ExcelCatalog) Exists(productID string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.products[productID]
	return ok, nil
}

// UnitPriceFor returns the product's price from the current snapshot.
func (c *ExcelCatalog) UnitPriceFor(productID string) (kernel.Money, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[productID]
	if !ok {
		return kernel.Money{}, errs.NewObjectNotFoundError("product", productID)
	}
	return product.Price, nil
}

// Size returns the number of products in the current snapshot.
func (c *ExcelCatalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.products)
}
