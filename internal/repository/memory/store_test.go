package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrick(stock int) *models.Brick {
	return &models.Brick{
		Type:         "Red Clay",
		Description:  "Standard red clay brick",
		CurrentStock: stock,
		MinStock:     models.DefaultMinStock,
		UnitPrice:    decimal.RequireFromString("12.50"),
	}
}

func newOrder(brickID string) *models.Order {
	return &models.Order{
		CustomerName:    "Asha Builders",
		CustomerAddress: "12 Kiln Road",
		DeliveryAddress: "Site 4",
		BrickType:       brickID,
		Quantity:        100,
		UnitPrice:       decimal.RequireFromString("12.50"),
		TotalAmount:     decimal.RequireFromString("1250"),
	}
}

func TestBrickCRUD(t *testing.T) {
	ctx := context.Background()
	store := New()

	brick := newBrick(5000)
	require.NoError(t, store.Bricks().Create(ctx, brick))
	assert.NotEmpty(t, brick.ID)
	assert.False(t, brick.LastUpdated.IsZero())

	got, err := store.Bricks().GetByID(ctx, brick.ID)
	require.NoError(t, err)
	assert.Equal(t, "Red Clay", got.Type)

	desc := "Fired red clay"
	updated, err := store.Bricks().Update(ctx, brick.ID, models.BrickPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)
	assert.Equal(t, 5000, updated.CurrentStock)
	assert.Equal(t, brick.ID, updated.ID)
	assert.False(t, updated.LastUpdated.Before(brick.LastUpdated))

	stocked, err := store.Bricks().UpdateStock(ctx, brick.ID, 4900)
	require.NoError(t, err)
	assert.Equal(t, 4900, stocked.CurrentStock)

	deleted, err := store.Bricks().Delete(ctx, brick.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Bricks().Delete(ctx, brick.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = store.Bricks().GetByID(ctx, brick.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMissingRecordsReportNotFound(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.Bricks().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Tractors().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Laborers().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Orders().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Invoices().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Invoices().GetByOrderID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = store.Bricks().Update(ctx, "missing", models.BrickPatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Tractors().Update(ctx, "missing", models.TractorPatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Laborers().Update(ctx, "missing", models.LaborerPatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Orders().Update(ctx, "missing", models.OrderPatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Invoices().Update(ctx, "missing", models.InvoicePatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderNumbersAreSequential(t *testing.T) {
	ctx := context.Background()
	store := New()

	first := newOrder("b1")
	second := newOrder("b1")
	require.NoError(t, store.Orders().Create(ctx, first))
	require.NoError(t, store.Orders().Create(ctx, second))

	assert.Equal(t, "ORD001", first.OrderNumber)
	assert.Equal(t, "ORD002", second.OrderNumber)
	assert.Equal(t, string(models.OrderPending), first.Status)
	assert.NotNil(t, first.AssignedLaborerIDs)
	assert.Empty(t, first.AssignedLaborerIDs)

	invoice := &models.Invoice{OrderID: first.ID, Items: "[]"}
	require.NoError(t, store.Invoices().Create(ctx, invoice))
	assert.Equal(t, "INV001", invoice.InvoiceNumber)
	assert.Equal(t, string(models.PaymentPending), invoice.PaymentStatus)
}

func TestOrdersListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := New()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Orders().Create(ctx, newOrder("b1")))
		time.Sleep(time.Millisecond)
	}

	orders, err := store.Orders().List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD003", orders[0].OrderNumber)
	assert.Equal(t, "ORD001", orders[2].OrderNumber)

	status := string(models.OrderDelivered)
	_, err = store.Orders().Update(ctx, orders[1].ID, models.OrderPatch{Status: &status})
	require.NoError(t, err)

	delivered, err := store.Orders().ListByStatus(ctx, status)
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, "ORD002", delivered[0].OrderNumber)
}

func TestSameInstantOrdersSortPastNumber999(t *testing.T) {
	ctx := context.Background()
	store := New()
	store.state.orderCounter = 998
	store.state.invoiceCounter = 998

	for i := 0; i < 2; i++ {
		order := newOrder("b1")
		require.NoError(t, store.Orders().Create(ctx, order))
		require.NoError(t, store.Invoices().Create(ctx, &models.Invoice{OrderID: order.ID, Items: "[]"}))
	}

	instant := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	for id, o := range store.state.orders {
		o.OrderDate = instant
		store.state.orders[id] = o
	}
	for id, inv := range store.state.invoices {
		inv.InvoiceDate = instant
		store.state.invoices[id] = inv
	}

	orders, err := store.Orders().List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD1000", orders[0].OrderNumber)
	assert.Equal(t, "ORD999", orders[1].OrderNumber)

	invoices, err := store.Invoices().List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "INV1000", invoices[0].InvoiceNumber)
	assert.Equal(t, "INV999", invoices[1].InvoiceNumber)
}

func TestStatusFilters(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Tractors().Create(ctx, &models.Tractor{RegistrationNumber: "KA-01", Model: "Mahindra 575"}))
	require.NoError(t, store.Tractors().Create(ctx, &models.Tractor{RegistrationNumber: "KA-02", Model: "Swaraj 744", Status: string(models.TractorMaintenance)}))
	require.NoError(t, store.Laborers().Create(ctx, &models.Laborer{Name: "Ravi", Phone: "555-0101"}))
	require.NoError(t, store.Laborers().Create(ctx, &models.Laborer{Name: "Meena", Phone: "555-0102", Status: string(models.LaborerOnLeave)}))

	available, err := store.Tractors().ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "KA-01", available[0].RegistrationNumber)

	active, err := store.Laborers().ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Ravi", active[0].Name)
}

func TestDuplicateRegistrationNumber(t *testing.T) {
	ctx := context.Background()
	store := New()

	first := &models.Tractor{RegistrationNumber: "KA-01", Model: "Mahindra 575"}
	second := &models.Tractor{RegistrationNumber: "KA-02", Model: "Swaraj 744"}
	require.NoError(t, store.Tractors().Create(ctx, first))
	require.NoError(t, store.Tractors().Create(ctx, second))

	err := store.Tractors().Create(ctx, &models.Tractor{RegistrationNumber: "KA-01", Model: "Eicher"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	taken := "KA-01"
	_, err = store.Tractors().Update(ctx, second.ID, models.TractorPatch{RegistrationNumber: &taken})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	same := "KA-02"
	_, err = store.Tractors().Update(ctx, second.ID, models.TractorPatch{RegistrationNumber: &same})
	assert.NoError(t, err)
}

func TestSettingsUpsert(t *testing.T) {
	ctx := context.Background()
	store := New()

	all, err := store.Settings().Upsert(ctx, []models.Setting{
		{Key: models.SettingTaxRate, Value: "0.18"},
		{Key: models.SettingDeliveryCharge, Value: "2500"},
	})
	require.NoError(t, err)
	require.Len(t, all, 2)

	all, err = store.Settings().Upsert(ctx, []models.Setting{{Key: models.SettingTaxRate, Value: "0.12"}})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.Setting{Key: models.SettingDeliveryCharge, Value: "2500"}, all[0])
	assert.Equal(t, models.Setting{Key: models.SettingTaxRate, Value: "0.12"}, all[1])
}

func TestInvoiceByOrderReturnsEarliest(t *testing.T) {
	ctx := context.Background()
	store := New()

	first := &models.Invoice{OrderID: "o1", Items: "[]"}
	require.NoError(t, store.Invoices().Create(ctx, first))
	time.Sleep(time.Millisecond)
	require.NoError(t, store.Invoices().Create(ctx, &models.Invoice{OrderID: "o1", Items: "[]"}))

	got, err := store.Invoices().GetByOrderID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	invoices, err := store.Invoices().List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "INV002", invoices[0].InvoiceNumber)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := New()

	brick := newBrick(5000)
	require.NoError(t, store.Bricks().Create(ctx, brick))

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.Orders().Create(ctx, newOrder(brick.ID)); err != nil {
			return err
		}
		if _, err := tx.Bricks().UpdateStock(ctx, brick.ID, 4900); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	orders, err := store.Orders().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	got, err := store.Bricks().GetByID(ctx, brick.ID)
	require.NoError(t, err)
	assert.Equal(t, 5000, got.CurrentStock)

	order := newOrder(brick.ID)
	require.NoError(t, store.Orders().Create(ctx, order))
	assert.Equal(t, "ORD001", order.OrderNumber)
}

func TestTransactionCommits(t *testing.T) {
	ctx := context.Background()
	store := New()

	brick := newBrick(5000)
	require.NoError(t, store.Bricks().Create(ctx, brick))

	err := store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.Orders().Create(ctx, newOrder(brick.ID)); err != nil {
			return err
		}
		_, err := tx.Bricks().UpdateStock(ctx, brick.ID, 4900)
		return err
	})
	require.NoError(t, err)

	got, err := store.Bricks().GetByID(ctx, brick.ID)
	require.NoError(t, err)
	assert.Equal(t, 4900, got.CurrentStock)
}

func TestReturnedOrdersDoNotAliasStoredState(t *testing.T) {
	ctx := context.Background()
	store := New()

	order := newOrder("b1")
	order.AssignedLaborerIDs = []string{"l1"}
	require.NoError(t, store.Orders().Create(ctx, order))

	got, err := store.Orders().GetByID(ctx, order.ID)
	require.NoError(t, err)
	got.AssignedLaborerIDs[0] = "changed"

	again, err := store.Orders().GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "l1", again.AssignedLaborerIDs[0])
}
