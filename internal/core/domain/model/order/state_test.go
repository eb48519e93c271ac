package order

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validatedFixture(t *testing.T) Validated {
	t.Helper()

	customerID, err := kernel.ParseCustomerID("CUST-001")
	require.NoError(t, err)
	productID, err := kernel.ParseProductID("PROD-1")
	require.NoError(t, err)
	unitPrice, err := kernel.ParseMoney("10.00 USD")
	require.NoError(t, err)
	address, err := kernel.ParseAddress("Main St 1|Bucharest|010101|Romania")
	require.NoError(t, err)

	item := Item{ProductID: productID, Quantity: 2, UnitPrice: unitPrice}
	return Validated{
		CustomerID:      customerID,
		Items:           []Item{item},
		DeliveryAddress: address,
		TotalAmount:     item.LineTotal(),
	}
}

func Test_Item_LineTotal(t *testing.T) {
	validated := validatedFixture(t)

	assert.Equal(t, "20.00 USD", validated.Items[0].LineTotal().String())
}

func Test_Promotions_CarryAllPriorFields(t *testing.T) {
	validated := validatedFixture(t)
	reservedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	preparedAt := reservedAt.Add(time.Hour)
	deliveredAt := preparedAt.Add(24 * time.Hour)

	reserved := NewStockReserved(validated, "RES-1,RES-2", reservedAt)
	assert.Equal(t, validated.CustomerID, reserved.CustomerID)
	assert.Equal(t, validated.Items, reserved.Items)
	assert.Equal(t, validated.DeliveryAddress, reserved.DeliveryAddress)
	assert.True(t, validated.TotalAmount.IsEqual(reserved.TotalAmount))
	assert.Equal(t, "RES-1,RES-2", reserved.ReservationID)
	assert.Equal(t, reservedAt, reserved.ReservedAt)

	prepared := NewPrepared(reserved, preparedAt, "WH-001")
	assert.Equal(t, reserved.ReservationID, prepared.ReservationID)
	assert.Equal(t, reserved.ReservedAt, prepared.ReservedAt)
	assert.Equal(t, "WH-001", prepared.WarehouseLocation)
	assert.Equal(t, preparedAt, prepared.PreparedAt)

	delivered := NewDelivered(prepared, deliveredAt, "SIG-123")
	assert.Equal(t, prepared.WarehouseLocation, delivered.WarehouseLocation)
	assert.Equal(t, prepared.PreparedAt, delivered.PreparedAt)
	assert.Equal(t, "SIG-123", delivered.DeliverySignature)
	assert.Equal(t, deliveredAt, delivered.DeliveredAt)
}

func Test_NewInvalid_KeepsReasonOrder(t *testing.T) {
	invalid := NewInvalid([]string{"first", "second", "third"})

	assert.Equal(t, []string{"first", "second", "third"}, invalid.Reasons)
}
