// Package shipmentrepo persists delivered shipments keyed by their
// tracking number.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the relational shape of a delivered shipment. The tracking
// number is the natural primary key.
type ShipmentDTO struct {
	TrackingNumber    string     `gorm:"primaryKey;size:100"`
	OrderID           string     `gorm:"index"`
	CustomerID        string     `gorm:"index"`
	DeliveryAddress   AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Carrier           string
	PreparedAt        time.Time
	RecipientName     string
	DeliverySignature string
	DeliveredAt       time.Time `gorm:"index"`
	Items             []ShipmentItemDTO `gorm:"foreignKey:TrackingNumber;references:TrackingNumber;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AddressDTO is the embedded delivery address within the shipments table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// ShipmentItemDTO is one shipped line. Shipments carry no pricing, only
// what physically left the warehouse.
type ShipmentItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"size:100;index"`
	ProductID      string
	Quantity       int
}

// TableName overrides GORM's default naming to use "shipment_items".
func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

// fromDomain flattens a delivered shipment into its database representation.
func fromDomain(delivered shipment.Delivered) ShipmentDTO {
	items := make([]ShipmentItemDTO, 0, len(delivered.Items))
	for _, item := range delivered.Items {
		items = append(items, ShipmentItemDTO{
			ID:             uuid.New(),
			TrackingNumber: delivered.TrackingNumber,
			ProductID:      item.ProductID.String(),
			Quantity:       item.Quantity,
		})
	}

	return ShipmentDTO{
		TrackingNumber: delivered.TrackingNumber,
		OrderID:        delivered.OrderID.String(),
		CustomerID:     delivered.CustomerID.String(),
		DeliveryAddress: AddressDTO{
			Street:     delivered.DeliveryAddress.Street(),
			City:       delivered.DeliveryAddress.City(),
			PostalCode: delivered.DeliveryAddress.PostalCode(),
			Country:    delivered.DeliveryAddress.Country(),
		},
		Carrier:           delivered.Carrier,
		PreparedAt:        delivered.PreparedAt,
		RecipientName:     delivered.RecipientName,
		DeliverySignature: delivered.DeliverySignature,
		DeliveredAt:       delivered.DeliveredAt,
		Items:             items,
	}
}
