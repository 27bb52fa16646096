package billing

import (
	"testing"
	"time"

	"brick_manager/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func sampleOrder() models.Order {
	return models.Order{
		ID:              "3f2a9c1e-77aa-4b1d-9f00-1234567890ab",
		OrderNumber:     "ORD001",
		CustomerName:    "Asha Builders",
		CustomerAddress: "12 Kiln Road",
		DeliveryAddress: "Site 4",
		BrickType:       "b1",
		Quantity:        100,
		UnitPrice:       decimal.NewFromInt(10),
		TotalAmount:     decimal.NewFromInt(1000),
	}
}

func sampleBricks() []models.Brick {
	return []models.Brick{{ID: "b1", Type: "Red Clay", UnitPrice: decimal.NewFromInt(12)}}
}

func TestCalculateWithDefaults(t *testing.T) {
	draft, err := Calculate(sampleOrder(), sampleBricks(), PricingFromSettings(nil), fixedNow)
	require.NoError(t, err)

	require.Len(t, draft.Items, 3)
	assert.Equal(t, "Red Clay (Standard Size)", draft.Items[0].Description)
	assert.Equal(t, 100, draft.Items[0].Quantity)
	assert.True(t, draft.Items[0].Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, DeliveryDescription, draft.Items[1].Description)
	assert.True(t, draft.Items[1].Amount.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, LaborDescription, draft.Items[2].Description)
	assert.True(t, draft.Items[2].Amount.Equal(decimal.NewFromInt(1000)))

	assert.True(t, draft.Subtotal.Equal(decimal.NewFromInt(4500)), draft.Subtotal.String())
	assert.True(t, draft.TaxAmount.Equal(decimal.NewFromInt(810)), draft.TaxAmount.String())
	assert.True(t, draft.TotalAmount.Equal(decimal.NewFromInt(5310)), draft.TotalAmount.String())
	assert.Equal(t, "INV-ORD001", draft.InvoiceNumber)
	assert.Equal(t, string(models.PaymentPending), draft.PaymentStatus)
	assert.Equal(t, fixedNow.AddDate(0, 0, 30), draft.DueDate)
}

func TestCalculateUsesOrderUnitPrice(t *testing.T) {
	order := sampleOrder()
	order.UnitPrice = decimal.RequireFromString("9.75")

	draft, err := Calculate(order, sampleBricks(), DefaultPricing(), fixedNow)
	require.NoError(t, err)
	assert.True(t, draft.Items[0].Rate.Equal(order.UnitPrice))
	assert.True(t, draft.Items[0].Amount.Equal(decimal.RequireFromString("975")))
}

func TestPricingFromSettings(t *testing.T) {
	pricing := PricingFromSettings([]models.Setting{
		{Key: models.SettingDeliveryCharge, Value: "3000"},
		{Key: models.SettingLaborCharge, Value: "not a number"},
		{Key: models.SettingTaxRate, Value: " 0.05 "},
		{Key: "currency", Value: "INR"},
	})

	assert.True(t, pricing.DeliveryCharge.Equal(decimal.NewFromInt(3000)))
	assert.True(t, pricing.LaborCharge.Equal(DefaultLaborCharge))
	assert.True(t, pricing.TaxRate.Equal(decimal.RequireFromString("0.05")))
}

func TestCalculateMissingBrick(t *testing.T) {
	order := sampleOrder()
	order.BrickType = "missing"

	_, err := Calculate(order, sampleBricks(), DefaultPricing(), fixedNow)
	assert.ErrorIs(t, err, ErrBrickNotFound)
}

func TestTotalsAreConsistent(t *testing.T) {
	pricing := Pricing{
		DeliveryCharge: decimal.RequireFromString("123.45"),
		LaborCharge:    decimal.RequireFromString("67.89"),
		TaxRate:        decimal.RequireFromString("0.175"),
	}
	for _, qty := range []int{1, 7, 333, 10000} {
		order := sampleOrder()
		order.Quantity = qty
		order.UnitPrice = decimal.RequireFromString("13.37")

		draft, err := Calculate(order, sampleBricks(), pricing, fixedNow)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, item := range draft.Items {
			assert.True(t, item.Amount.Equal(item.Rate.Mul(decimal.NewFromInt(int64(item.Quantity)))))
			sum = sum.Add(item.Amount)
		}
		assert.True(t, draft.Subtotal.Equal(sum))
		assert.True(t, draft.TotalAmount.Equal(draft.Subtotal.Add(draft.TaxAmount)))
		assert.True(t, draft.TaxAmount.Equal(draft.TaxAmount.Round(2)))
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	first, err := Calculate(sampleOrder(), sampleBricks(), DefaultPricing(), fixedNow)
	require.NoError(t, err)
	second, err := Calculate(sampleOrder(), sampleBricks(), DefaultPricing(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInvoiceNumberFallsBackToOrderID(t *testing.T) {
	order := sampleOrder()
	order.OrderNumber = ""
	assert.Equal(t, "INV-3F2A9C1E", InvoiceNumber(order))
}

func TestCalculatorDueDays(t *testing.T) {
	draft, err := NewCalculator(45).Calculate(sampleOrder(), sampleBricks(), DefaultPricing(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.AddDate(0, 0, 45), draft.DueDate)
}

func TestDraftInvoice(t *testing.T) {
	draft, err := Calculate(sampleOrder(), sampleBricks(), DefaultPricing(), fixedNow)
	require.NoError(t, err)

	invoice, err := draft.Invoice()
	require.NoError(t, err)
	assert.Equal(t, "3f2a9c1e-77aa-4b1d-9f00-1234567890ab", invoice.OrderID)
	require.NotNil(t, invoice.DueDate)
	assert.Equal(t, draft.DueDate, *invoice.DueDate)

	items, err := invoice.ParsedItems()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Red Clay (Standard Size)", items[0].Description)
	assert.True(t, items[1].Amount.Equal(DefaultDeliveryCharge))
}
