// Package billing turns an order into invoice figures. Everything here is
// pure: the clock and the settings are passed in.
package billing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"brick_manager/internal/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultDueDays = 30

	DeliveryDescription = "Delivery Charges"
	LaborDescription    = "Labor Charges"
)

var (
	DefaultDeliveryCharge = decimal.NewFromInt(2500)
	DefaultLaborCharge    = decimal.NewFromInt(1000)
	DefaultTaxRate        = decimal.RequireFromString("0.18")
)

var ErrBrickNotFound = errors.New("brick not found")

// Pricing holds the flat charges and tax rate applied to every invoice.
type Pricing struct {
	DeliveryCharge decimal.Decimal
	LaborCharge    decimal.Decimal
	TaxRate        decimal.Decimal
}

func DefaultPricing() Pricing {
	return Pricing{
		DeliveryCharge: DefaultDeliveryCharge,
		LaborCharge:    DefaultLaborCharge,
		TaxRate:        DefaultTaxRate,
	}
}

// PricingFromSettings reads the billing settings, falling back to the
// defaults for keys that are missing or do not hold a number.
func PricingFromSettings(settings []models.Setting) Pricing {
	pricing := DefaultPricing()
	for _, s := range settings {
		value, err := decimal.NewFromString(strings.TrimSpace(s.Value))
		if err != nil {
			continue
		}
		switch s.Key {
		case models.SettingDeliveryCharge:
			pricing.DeliveryCharge = value
		case models.SettingLaborCharge:
			pricing.LaborCharge = value
		case models.SettingTaxRate:
			pricing.TaxRate = value
		}
	}
	return pricing
}

// Draft is a computed, unsaved invoice.
type Draft struct {
	InvoiceNumber   string            `json:"invoiceNumber"`
	OrderID         string            `json:"orderId"`
	CustomerName    string            `json:"customerName"`
	CustomerAddress string            `json:"customerAddress"`
	DeliveryAddress string            `json:"deliveryAddress"`
	Items           []models.LineItem `json:"items"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	TaxAmount       decimal.Decimal   `json:"taxAmount"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	PaymentStatus   string            `json:"paymentStatus"`
	DueDate         time.Time         `json:"dueDate"`
}

// Calculator computes drafts with a fixed payment term.
type Calculator struct {
	DueDays int
}

func NewCalculator(dueDays int) *Calculator {
	if dueDays <= 0 {
		dueDays = DefaultDueDays
	}
	return &Calculator{DueDays: dueDays}
}

// Calculate prices the order: the bricks at the order's unit price, then
// one delivery and one labor line, then tax on the subtotal.
func (c *Calculator) Calculate(order models.Order, bricks []models.Brick, pricing Pricing, now time.Time) (*Draft, error) {
	brick, ok := findBrick(bricks, order.BrickType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBrickNotFound, order.BrickType)
	}

	items := []models.LineItem{
		models.NewLineItem(brick.Type+" (Standard Size)", order.Quantity, order.UnitPrice),
		models.NewLineItem(DeliveryDescription, 1, pricing.DeliveryCharge),
		models.NewLineItem(LaborDescription, 1, pricing.LaborCharge),
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}
	tax := subtotal.Mul(pricing.TaxRate).Round(2)

	dueDays := c.DueDays
	if dueDays <= 0 {
		dueDays = DefaultDueDays
	}

	return &Draft{
		InvoiceNumber:   InvoiceNumber(order),
		OrderID:         order.ID,
		CustomerName:    order.CustomerName,
		CustomerAddress: order.CustomerAddress,
		DeliveryAddress: order.DeliveryAddress,
		Items:           items,
		Subtotal:        subtotal,
		TaxAmount:       tax,
		TotalAmount:     subtotal.Add(tax),
		PaymentStatus:   string(models.PaymentPending),
		DueDate:         now.AddDate(0, 0, dueDays),
	}, nil
}

// Calculate uses the default 30 day payment term.
func Calculate(order models.Order, bricks []models.Brick, pricing Pricing, now time.Time) (*Draft, error) {
	return NewCalculator(DefaultDueDays).Calculate(order, bricks, pricing, now)
}

// InvoiceNumber derives the reference shown on a draft: the order number,
// or the first eight characters of the order id when it has none.
func InvoiceNumber(order models.Order) string {
	if order.OrderNumber != "" {
		return "INV-" + order.OrderNumber
	}
	id := order.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return "INV-" + strings.ToUpper(id)
}

// Invoice converts the draft into an invoice ready for the store, which
// assigns the id, number and date.
func (d *Draft) Invoice() (models.Invoice, error) {
	items, err := models.EncodeItems(d.Items)
	if err != nil {
		return models.Invoice{}, err
	}
	due := d.DueDate
	return models.Invoice{
		OrderID:         d.OrderID,
		CustomerName:    d.CustomerName,
		CustomerAddress: d.CustomerAddress,
		DeliveryAddress: d.DeliveryAddress,
		Items:           items,
		Subtotal:        d.Subtotal,
		TaxAmount:       d.TaxAmount,
		TotalAmount:     d.TotalAmount,
		PaymentStatus:   d.PaymentStatus,
		DueDate:         &due,
	}, nil
}

func findBrick(bricks []models.Brick, id string) (models.Brick, bool) {
	for _, b := range bricks {
		if b.ID == id {
			return b, true
		}
	}
	return models.Brick{}, false
}
