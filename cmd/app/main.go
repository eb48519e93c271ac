package main

import (
	"fmt"
	"log/slog"
	"os"

	"fulfillment/cmd"
	internalhttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/catalog"
	"fulfillment/internal/adapters/out/postgres/invoicerepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&invoicerepo.InvoiceDTO{}, &invoicerepo.InvoiceItemDTO{},
		&shipmentrepo.ShipmentDTO{}, &shipmentrepo.ShipmentItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	productCatalog, err := catalog.NewExcelCatalog(configs.CatalogPath, configs.CatalogSheet, logger)
	if err != nil {
		log.Fatalf("Failed to load product catalog: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, productCatalog, logger)

	jobManager := app.CreateJobManager(configs.CatalogRefreshSchedule)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		CatalogPath:            goDotEnvVariable("CATALOG_PATH"),
		CatalogSheet:           goDotEnvVariable("CATALOG_SHEET"),
		CatalogRefreshSchedule: goDotEnvVariable("CATALOG_REFRESH_SCHEDULE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Logger.SetLevel(log.INFO)

	server := internalhttp.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateGenerateInvoiceCommandHandler(),
		app.CreatePrepareShipmentCommandHandler(),
		app.CreateGetPlacedOrdersQueryHandler(),
		app.CreateGetSentInvoicesQueryHandler(),
		app.CreateGetDeliveredShipmentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
