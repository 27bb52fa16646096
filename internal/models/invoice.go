package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	InvoiceNumber   string          `json:"invoiceNumber" gorm:"uniqueIndex;not null"`
	OrderID         string          `json:"orderId" gorm:"not null;uniqueIndex"`
	CustomerName    string          `json:"customerName" gorm:"not null"`
	CustomerAddress string          `json:"customerAddress" gorm:"not null"`
	DeliveryAddress string          `json:"deliveryAddress" gorm:"not null"`
	Items           string          `json:"items" gorm:"type:text;not null"` // JSON list of LineItem
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	TaxAmount       decimal.Decimal `json:"taxAmount" gorm:"type:decimal(12,2);not null"`
	TotalAmount     decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	PaymentStatus   string          `json:"paymentStatus" gorm:"not null;default:'pending'"` // pending, paid, overdue
	InvoiceDate     time.Time       `json:"invoiceDate" gorm:"not null;index"`
	DueDate         *time.Time      `json:"dueDate"`
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// LineItem is one priced row of an invoice. Amount is always Quantity × Rate.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

func NewLineItem(description string, quantity int, rate decimal.Decimal) LineItem {
	return LineItem{
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      rate.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func EncodeItems(items []LineItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode invoice items: %w", err)
	}
	return string(data), nil
}

func DecodeItems(raw string) ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode invoice items: %w", err)
	}
	return items, nil
}

// ParsedItems decodes the serialized item list of the invoice.
func (i Invoice) ParsedItems() ([]LineItem, error) {
	return DecodeItems(i.Items)
}

type InvoiceInput struct {
	OrderID         string           `json:"orderId" binding:"required"`
	CustomerName    string           `json:"customerName" binding:"required"`
	CustomerAddress string           `json:"customerAddress" binding:"required"`
	DeliveryAddress string           `json:"deliveryAddress" binding:"required"`
	Items           string           `json:"items" binding:"required"`
	Subtotal        *decimal.Decimal `json:"subtotal" binding:"required"`
	TaxAmount       *decimal.Decimal `json:"taxAmount" binding:"required"`
	TotalAmount     *decimal.Decimal `json:"totalAmount" binding:"required"`
	PaymentStatus   string           `json:"paymentStatus" binding:"omitempty,oneof=pending paid overdue"`
	DueDate         *time.Time       `json:"dueDate"`
}

func (in InvoiceInput) ToInvoice() Invoice {
	status := in.PaymentStatus
	if status == "" {
		status = string(PaymentPending)
	}
	invoice := Invoice{
		OrderID:         in.OrderID,
		CustomerName:    in.CustomerName,
		CustomerAddress: in.CustomerAddress,
		DeliveryAddress: in.DeliveryAddress,
		Items:           in.Items,
		PaymentStatus:   status,
		DueDate:         in.DueDate,
	}
	if in.Subtotal != nil {
		invoice.Subtotal = *in.Subtotal
	}
	if in.TaxAmount != nil {
		invoice.TaxAmount = *in.TaxAmount
	}
	if in.TotalAmount != nil {
		invoice.TotalAmount = *in.TotalAmount
	}
	return invoice
}

type InvoicePatch struct {
	OrderID         *string                      `json:"orderId" binding:"omitempty,min=1"`
	CustomerName    *string                      `json:"customerName" binding:"omitempty,min=1"`
	CustomerAddress *string                      `json:"customerAddress" binding:"omitempty,min=1"`
	DeliveryAddress *string                      `json:"deliveryAddress" binding:"omitempty,min=1"`
	Items           *string                      `json:"items" binding:"omitempty,min=1"`
	Subtotal        *decimal.Decimal             `json:"subtotal"`
	TaxAmount       *decimal.Decimal             `json:"taxAmount"`
	TotalAmount     *decimal.Decimal             `json:"totalAmount"`
	PaymentStatus   *string                      `json:"paymentStatus" binding:"omitempty,oneof=pending paid overdue"`
	DueDate         nullable.Nullable[time.Time] `json:"dueDate"`
}

func (p InvoicePatch) Apply(i *Invoice) {
	if p.OrderID != nil {
		i.OrderID = *p.OrderID
	}
	if p.CustomerName != nil {
		i.CustomerName = *p.CustomerName
	}
	if p.CustomerAddress != nil {
		i.CustomerAddress = *p.CustomerAddress
	}
	if p.DeliveryAddress != nil {
		i.DeliveryAddress = *p.DeliveryAddress
	}
	if p.Items != nil {
		i.Items = *p.Items
	}
	if p.Subtotal != nil {
		i.Subtotal = *p.Subtotal
	}
	if p.TaxAmount != nil {
		i.TaxAmount = *p.TaxAmount
	}
	if p.TotalAmount != nil {
		i.TotalAmount = *p.TotalAmount
	}
	if p.PaymentStatus != nil {
		i.PaymentStatus = *p.PaymentStatus
	}
	applyNullable(&i.DueDate, p.DueDate)
}
