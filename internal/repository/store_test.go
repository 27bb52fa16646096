package repository

import (
	"context"
	"errors"
	"testing"

	"brick_manager/internal/models"
	"brick_manager/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStoreCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewStore(db, nil)
	ctx := context.Background()

	brick := &models.Brick{Type: "Red Clay", Description: "Standard", CurrentStock: 5000, MinStock: 1000, UnitPrice: decimal.RequireFromString("12.00")}
	require.NoError(t, store.Bricks().Create(ctx, brick))

	got, err := store.Bricks().GetByID(ctx, brick.ID)
	require.NoError(t, err)
	assert.True(t, got.UnitPrice.Equal(brick.UnitPrice))

	updated, err := store.Bricks().UpdateStock(ctx, brick.ID, 4900)
	require.NoError(t, err)
	assert.Equal(t, 4900, updated.CurrentStock)

	_, err = store.Bricks().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err := store.Bricks().Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGormStoreKeepsZeroMinStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewStore(db, nil)
	ctx := context.Background()

	zero := 0
	brick := models.BrickInput{
		Type:        "Fly Ash",
		Description: "Made to order",
		MinStock:    &zero,
		UnitPrice:   func() *decimal.Decimal { d := decimal.RequireFromString("9.50"); return &d }(),
	}.ToBrick()
	require.NoError(t, store.Bricks().Create(ctx, &brick))
	assert.Equal(t, 0, brick.MinStock)

	got, err := store.Bricks().GetByID(ctx, brick.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.MinStock)
	assert.False(t, got.IsLowStock())

	defaulted := models.BrickInput{Type: "Red Clay", Description: "Standard"}.ToBrick()
	require.NoError(t, store.Bricks().Create(ctx, &defaulted))
	got, err = store.Bricks().GetByID(ctx, defaulted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMinStock, got.MinStock)
}

func TestGormStoreNumbering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewStore(db, nil)
	ctx := context.Background()

	for _, want := range []string{"ORD001", "ORD002"} {
		order := &models.Order{
			CustomerName: "Asha", CustomerAddress: "a", DeliveryAddress: "b",
			BrickType: "b1", Quantity: 1,
		}
		require.NoError(t, store.Orders().Create(ctx, order))
		assert.Equal(t, want, order.OrderNumber)
		assert.NotNil(t, order.AssignedLaborerIDs)
	}

	orders, err := store.Orders().List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD002", orders[0].OrderNumber)
}

func TestGormStoreDuplicateRegistration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewStore(db, nil)
	ctx := context.Background()

	require.NoError(t, store.Tractors().Create(ctx, &models.Tractor{RegistrationNumber: "KA-01", Model: "Mahindra"}))
	err := store.Tractors().Create(ctx, &models.Tractor{RegistrationNumber: "KA-01", Model: "Eicher"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGormStoreOneInvoicePerOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewStore(db, nil)
	ctx := context.Background()

	require.NoError(t, store.Invoices().Create(ctx, &models.Invoice{OrderID: "o1", Items: "[]"}))
	err := store.Invoices().Create(ctx, &models.Invoice{OrderID: "o1", Items: "[]"})
	assert.ErrorIs(t, err, ErrDuplicate)

	second := &models.Invoice{OrderID: "o2", Items: "[]"}
	require.NoError(t, store.Invoices().Create(ctx, second))
	moved := "o1"
	_, err = store.Invoices().Update(ctx, second.ID, models.InvoicePatch{OrderID: &moved})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGormStoreTransactionRollback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewStore(db, nil)
	ctx := context.Background()

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx Store) error {
		order := &models.Order{CustomerName: "Asha", CustomerAddress: "a", DeliveryAddress: "b", BrickType: "b1", Quantity: 1}
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	orders, err := store.Orders().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	order := &models.Order{CustomerName: "Asha", CustomerAddress: "a", DeliveryAddress: "b", BrickType: "b1", Quantity: 1}
	require.NoError(t, store.Orders().Create(ctx, order))
	assert.Equal(t, "ORD001", order.OrderNumber)
}

func TestGormSettingsUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewStore(db, nil)
	ctx := context.Background()

	_, err := store.Settings().Upsert(ctx, []models.Setting{{Key: models.SettingTaxRate, Value: "0.18"}})
	require.NoError(t, err)
	all, err := store.Settings().Upsert(ctx, []models.Setting{{Key: models.SettingTaxRate, Value: "0.12"}})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "0.12", all[0].Value)
}

type recordingFloors map[string]int64

func (r recordingFloors) EnsureAtLeast(_ context.Context, name string, floor int64) error {
	r[name] = floor
	return nil
}

func TestAlignSequences(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := NewStore(db, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		order := &models.Order{CustomerName: "Asha", CustomerAddress: "a", DeliveryAddress: "b", BrickType: "b1", Quantity: 1}
		require.NoError(t, store.Orders().Create(ctx, order))
	}

	floors := recordingFloors{}
	require.NoError(t, AlignSequences(ctx, db, floors))
	assert.Equal(t, int64(3), floors[OrderSequence])
	assert.Equal(t, int64(0), floors[InvoiceSequence])
}
