package repository

import (
	"context"
	"errors"

	"brick_manager/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type BrickRepository interface {
	List(ctx context.Context) ([]models.Brick, error)
	GetByID(ctx context.Context, id string) (*models.Brick, error)
	Create(ctx context.Context, brick *models.Brick) error
	Update(ctx context.Context, id string, patch models.BrickPatch) (*models.Brick, error)
	Delete(ctx context.Context, id string) (bool, error)
	// UpdateStock overwrites the stock level; callers own any floor check.
	UpdateStock(ctx context.Context, id string, newStock int) (*models.Brick, error)
}

type TractorRepository interface {
	List(ctx context.Context) ([]models.Tractor, error)
	GetByID(ctx context.Context, id string) (*models.Tractor, error)
	Create(ctx context.Context, tractor *models.Tractor) error
	Update(ctx context.Context, id string, patch models.TractorPatch) (*models.Tractor, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListAvailable(ctx context.Context) ([]models.Tractor, error)
}

type LaborerRepository interface {
	List(ctx context.Context) ([]models.Laborer, error)
	GetByID(ctx context.Context, id string) (*models.Laborer, error)
	Create(ctx context.Context, laborer *models.Laborer) error
	Update(ctx context.Context, id string, patch models.LaborerPatch) (*models.Laborer, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListActive(ctx context.Context) ([]models.Laborer, error)
}

type OrderRepository interface {
	// List returns orders newest first.
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByStatus(ctx context.Context, status string) ([]models.Order, error)
}

type InvoiceRepository interface {
	// List returns invoices newest first.
	List(ctx context.Context) ([]models.Invoice, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, id string, patch models.InvoicePatch) (*models.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.Invoice, error)
}

type SettingRepository interface {
	List(ctx context.Context) ([]models.Setting, error)
	// Upsert writes every pair keyed by Key and returns the full set.
	Upsert(ctx context.Context, settings []models.Setting) ([]models.Setting, error)
}

// Store is the entity store. Implementations own ID generation and
// order/invoice numbering; they have no cross-entity behaviour.
type Store interface {
	Bricks() BrickRepository
	Tractors() TractorRepository
	Laborers() LaborerRepository
	Orders() OrderRepository
	Invoices() InvoiceRepository
	Settings() SettingRepository
	// Transaction runs fn against a store whose writes are applied
	// all-or-nothing. Nested calls join the outer transaction.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
