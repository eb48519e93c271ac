package orderops

import (
	"errors"
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validatedOrderFixture(t *testing.T) order.Validated {
	t.Helper()

	customerID, err := kernel.ParseCustomerID("CUST-001")
	require.NoError(t, err)
	address, err := kernel.ParseAddress("Main St 1|Bucharest|010101|Romania")
	require.NoError(t, err)
	unitPrice, err := kernel.ParseMoney("10.00 USD")
	require.NoError(t, err)

	productA, err := kernel.ParseProductID("PROD-1")
	require.NoError(t, err)
	productB, err := kernel.ParseProductID("PROD-2")
	require.NoError(t, err)

	items := []order.Item{
		{ProductID: productA, Quantity: 2, UnitPrice: unitPrice},
		{ProductID: productB, Quantity: 1, UnitPrice: unitPrice},
	}
	total, err := items[0].LineTotal().Add(items[1].LineTotal())
	require.NoError(t, err)

	return order.Validated{
		CustomerID:      customerID,
		Items:           items,
		DeliveryAddress: address,
		TotalAmount:     total,
	}
}

func Test_ReserveStock_CombinesReservationIDs(t *testing.T) {
	counter := 0
	reserve := func(productID string, quantity int) (string, error) {
		counter++
		return fmt.Sprintf("RES-%d", counter), nil
	}
	op, err := NewReserveStock(reserve)
	require.NoError(t, err)

	result := op.Apply(validatedOrderFixture(t))

	reserved, ok := result.(order.StockReserved)
	require.True(t, ok, "expected StockReserved, got %T", result)
	assert.Equal(t, "RES-1,RES-2", reserved.ReservationID)
	assert.False(t, reserved.ReservedAt.IsZero())
}

func Test_ReserveStock_CollectsFailuresAcrossItems(t *testing.T) {
	reserve := func(productID string, quantity int) (string, error) {
		if productID == "PROD-1" {
			return "", errors.New("warehouse offline")
		}
		return "", nil
	}
	op, err := NewReserveStock(reserve)
	require.NoError(t, err)

	result := op.Apply(validatedOrderFixture(t))

	invalid, ok := result.(order.Invalid)
	require.True(t, ok, "expected Invalid, got %T", result)
	assert.Equal(t, []string{
		"Failed to reserve stock for product (PROD-1): warehouse offline",
		"Failed to reserve stock for product (PROD-2)",
	}, invalid.Reasons)
}

func Test_ReserveStock_NotInvokedOnInvalid(t *testing.T) {
	invoked := false
	reserve := func(productID string, quantity int) (string, error) {
		invoked = true
		return "RES-1", nil
	}
	op, err := NewReserveStock(reserve)
	require.NoError(t, err)

	invalid := order.NewInvalid([]string{"earlier failure"})
	result := op.Apply(invalid)

	assert.Equal(t, order.State(invalid), result)
	assert.False(t, invoked, "reservation must not run once the order is Invalid")
}

func Test_CheckAvailability_InsufficientStock(t *testing.T) {
	available := func(productID string) (int, error) {
		if productID == "PROD-1" {
			return 1, nil
		}
		return 100, nil
	}
	op, err := NewCheckAvailability(available)
	require.NoError(t, err)

	result := op.Apply(validatedOrderFixture(t))

	invalid, ok := result.(order.Invalid)
	require.True(t, ok, "expected Invalid, got %T", result)
	assert.Contains(t, invalid.Reasons,
		"Insufficient stock for product (PROD-1): requested 2, available 1")
}

func Test_CheckAvailability_SufficientStockPassesThrough(t *testing.T) {
	op, err := NewCheckAvailability(func(string) (int, error) { return 100, nil })
	require.NoError(t, err)

	validated := validatedOrderFixture(t)
	result := op.Apply(validated)

	assert.Equal(t, order.State(validated), result, "no state change on success")
}

func Test_CheckAvailability_CallbackErrorReportsZeroAvailable(t *testing.T) {
	op, err := NewCheckAvailability(func(string) (int, error) {
		return 0, errors.New("inventory service timeout")
	})
	require.NoError(t, err)

	result := op.Apply(validatedOrderFixture(t))

	invalid, ok := result.(order.Invalid)
	require.True(t, ok, "expected Invalid, got %T", result)
	assert.Contains(t, invalid.Reasons,
		"Insufficient stock for product (PROD-1): requested 2, available 0 (error: inventory service timeout)")
}
