package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *shipmentrepo.GormShipmentRepository
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.ShipmentItemDTO{})
	suite.Require().NoError(err)

	suite.repo = shipmentrepo.NewGormShipmentRepository(db)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) deliveredShipmentFixture() shipment.Delivered {
	orderID, err := kernel.ParseOrderID("ORD-001")
	suite.Require().NoError(err)
	customerID, err := kernel.ParseCustomerID("CUST-001")
	suite.Require().NoError(err)
	productID, err := kernel.ParseProductID("PROD-1")
	suite.Require().NoError(err)
	address, err := kernel.ParseAddress("Main St 1|Bucharest|010101|Romania")
	suite.Require().NoError(err)

	validated := shipment.Validated{
		OrderID:         orderID,
		CustomerID:      customerID,
		Items:           []shipment.Item{{ProductID: productID, Quantity: 2}},
		DeliveryAddress: address,
	}

	now := time.Now().UTC()
	prepared := shipment.NewPrepared(validated, "TRK-0001", now, "FanCourier")
	return shipment.NewDelivered(prepared, now, "Ana Pop", "SIG-TRK-0001-1")
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_StoresShipmentWithItems() {
	err := suite.repo.Add(context.Background(), suite.deliveredShipmentFixture())
	suite.Require().NoError(err)

	var dto shipmentrepo.ShipmentDTO
	err = suite.db.Preload("Items").First(&dto, "tracking_number = ?", "TRK-0001").Error
	suite.Require().NoError(err)

	suite.Equal("ORD-001", dto.OrderID)
	suite.Equal("CUST-001", dto.CustomerID)
	suite.Equal("FanCourier", dto.Carrier)
	suite.Equal("Ana Pop", dto.RecipientName)
	suite.Equal("SIG-TRK-0001-1", dto.DeliverySignature)
	suite.Equal("010101", dto.DeliveryAddress.PostalCode)

	suite.Require().Len(dto.Items, 1)
	suite.Equal("PROD-1", dto.Items[0].ProductID)
	suite.Equal(2, dto.Items[0].Quantity)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_RejectsDuplicateTrackingNumber() {
	err := suite.repo.Add(context.Background(), suite.deliveredShipmentFixture())
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), suite.deliveredShipmentFixture())
	suite.Error(err)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_RejectsBlankTrackingNumber() {
	err := suite.repo.Add(context.Background(), shipment.Delivered{})
	suite.Error(err)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
