// Package invoicerepo persists sent invoices keyed by their generated
// invoice identifier.
package invoicerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/invoice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO is the relational shape of a sent invoice. The generated
// invoice id is the natural primary key.
type InvoiceDTO struct {
	InvoiceID      string          `gorm:"primaryKey;size:50"`
	InvoiceNumber  string          `gorm:"index"`
	OrderID        string          `gorm:"index"`
	CustomerID     string          `gorm:"index"`
	BillingAddress AddressDTO      `gorm:"embedded;embeddedPrefix:billing_"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalCurrency  string          `gorm:"type:char(3)"`
	GeneratedAt    time.Time
	SentAt         time.Time
	SentTo         string
	DeliveryMethod string
	Items          []InvoiceItemDTO `gorm:"foreignKey:InvoiceID;references:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// AddressDTO is the embedded billing address within the invoices table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// InvoiceItemDTO is one invoice line with its reconciled line total.
type InvoiceItemDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID         string          `gorm:"size:50;index"`
	ProductID         string
	Quantity          int
	UnitPriceAmount   decimal.Decimal `gorm:"type:numeric(14,2)"`
	UnitPriceCurrency string          `gorm:"type:char(3)"`
	LineTotalAmount   decimal.Decimal `gorm:"type:numeric(14,2)"`
	LineTotalCurrency string          `gorm:"type:char(3)"`
}

// TableName overrides GORM's default naming to use "invoice_items".
func (InvoiceItemDTO) TableName() string {
	return "invoice_items"
}

// fromDomain flattens a sent invoice into its database representation.
func fromDomain(sent invoice.Sent) InvoiceDTO {
	items := make([]InvoiceItemDTO, 0, len(sent.Items))
	for _, item := range sent.Items {
		items = append(items, InvoiceItemDTO{
			ID:                uuid.New(),
			InvoiceID:         sent.InvoiceID.String(),
			ProductID:         item.ProductID.String(),
			Quantity:          item.Quantity,
			UnitPriceAmount:   item.UnitPrice.Amount(),
			UnitPriceCurrency: item.UnitPrice.Currency(),
			LineTotalAmount:   item.LineTotal.Amount(),
			LineTotalCurrency: item.LineTotal.Currency(),
		})
	}

	return InvoiceDTO{
		InvoiceID:     sent.InvoiceID.String(),
		InvoiceNumber: sent.InvoiceNumber,
		OrderID:       sent.OrderID.String(),
		CustomerID:    sent.CustomerID.String(),
		BillingAddress: AddressDTO{
			Street:     sent.BillingAddress.Street(),
			City:       sent.BillingAddress.City(),
			PostalCode: sent.BillingAddress.PostalCode(),
			Country:    sent.BillingAddress.Country(),
		},
		TotalAmount:    sent.TotalAmount.Amount(),
		TotalCurrency:  sent.TotalAmount.Currency(),
		GeneratedAt:    sent.GeneratedAt,
		SentAt:         sent.SentAt,
		SentTo:         sent.SentTo,
		DeliveryMethod: sent.DeliveryMethod,
		Items:          items,
	}
}
