// Package orderrepo persists delivered orders. Only terminal pipeline
// results reach this package; in-flight states are never stored, so the
// mapping is write-mostly and the read side is served by raw queries.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the relational shape of a delivered order. Orders have no
// business identifier of their own, so a surrogate uuid is assigned at
// insert time.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID        string          `gorm:"index"`
	DeliveryAddress   AddressDTO      `gorm:"embedded;embeddedPrefix:delivery_"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalCurrency     string          `gorm:"type:char(3)"`
	ReservationID     string
	ReservedAt        time.Time
	WarehouseLocation string
	PreparedAt        time.Time
	DeliverySignature string
	DeliveredAt       time.Time `gorm:"index"`
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the embedded postal address within the orders table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// OrderItemDTO is one order line. Unit prices keep their own currency
// column even though a stored order is always single-currency; the schema
// mirrors the domain item rather than assuming the invariant.
type OrderItemDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID       `gorm:"type:uuid;index"`
	ProductID         string
	Quantity          int
	UnitPriceAmount   decimal.Decimal `gorm:"type:numeric(14,2)"`
	UnitPriceCurrency string          `gorm:"type:char(3)"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain flattens a delivered order into its database representation,
// assigning the surrogate ids.
func fromDomain(delivered order.Delivered) OrderDTO {
	id := uuid.New()

	items := make([]OrderItemDTO, 0, len(delivered.Items))
	for _, item := range delivered.Items {
		items = append(items, OrderItemDTO{
			ID:                uuid.New(),
			OrderID:           id,
			ProductID:         item.ProductID.String(),
			Quantity:          item.Quantity,
			UnitPriceAmount:   item.UnitPrice.Amount(),
			UnitPriceCurrency: item.UnitPrice.Currency(),
		})
	}

	return OrderDTO{
		ID:         id,
		CustomerID: delivered.CustomerID.String(),
		DeliveryAddress: AddressDTO{
			Street:     delivered.DeliveryAddress.Street(),
			City:       delivered.DeliveryAddress.City(),
			PostalCode: delivered.DeliveryAddress.PostalCode(),
			Country:    delivered.DeliveryAddress.Country(),
		},
		TotalAmount:       delivered.TotalAmount.Amount(),
		TotalCurrency:     delivered.TotalAmount.Currency(),
		ReservationID:     delivered.ReservationID,
		ReservedAt:        delivered.ReservedAt,
		WarehouseLocation: delivered.WarehouseLocation,
		PreparedAt:        delivered.PreparedAt,
		DeliverySignature: delivered.DeliverySignature,
		DeliveredAt:       delivered.DeliveredAt,
		Items:             items,
	}
}
