package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brick_manager/internal/billing"
	"brick_manager/internal/metrics"
	"brick_manager/internal/models"
	"brick_manager/internal/repository"

	"go.uber.org/zap"
)

type InvoiceService interface {
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
	GetInvoiceByOrder(ctx context.Context, orderID string) (*models.Invoice, error)
	CreateInvoice(ctx context.Context, input models.InvoiceInput) (*models.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, patch models.InvoicePatch) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
	// PreviewInvoice prices the order with the current settings without
	// storing anything.
	PreviewInvoice(ctx context.Context, orderID string) (*billing.Draft, error)
	// GenerateInvoice prices the order and stores the result.
	GenerateInvoice(ctx context.Context, orderID string) (*models.Invoice, error)
}

type invoiceService struct {
	store      repository.Store
	calculator *billing.Calculator
	logger     *zap.Logger
	now        func() time.Time
}

func NewInvoiceService(store repository.Store, calculator *billing.Calculator, logger *zap.Logger) InvoiceService {
	if calculator == nil {
		calculator = billing.NewCalculator(billing.DefaultDueDays)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &invoiceService{store: store, calculator: calculator, logger: logger, now: time.Now}
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.store.Invoices().List(ctx)
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	return s.store.Invoices().GetByID(ctx, id)
}

func (s *invoiceService) GetInvoiceByOrder(ctx context.Context, orderID string) (*models.Invoice, error) {
	return s.store.Invoices().GetByOrderID(ctx, orderID)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, input models.InvoiceInput) (*models.Invoice, error) {
	invoice := input.ToInvoice()
	if _, err := models.DecodeItems(invoice.Items); err != nil {
		return nil, invalid("items", "must be a JSON list of line items")
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := ensureNoInvoice(ctx, tx, invoice.OrderID); err != nil {
			return err
		}
		if err := tx.Invoices().Create(ctx, &invoice); err != nil {
			return conflictOnDuplicate(fmt.Errorf("failed to create invoice: %w", err), "order %s already has an invoice", invoice.OrderID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordInvoiceIssued("manual")
	return &invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, patch models.InvoicePatch) (*models.Invoice, error) {
	if patch.Items != nil {
		if _, err := models.DecodeItems(*patch.Items); err != nil {
			return nil, invalid("items", "must be a JSON list of line items")
		}
	}
	var invoice *models.Invoice
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if patch.OrderID != nil {
			existing, err := tx.Invoices().GetByOrderID(ctx, *patch.OrderID)
			if err == nil && existing.ID != id {
				return fmt.Errorf("order %s already has invoice %s: %w", *patch.OrderID, existing.InvoiceNumber, ErrConflict)
			}
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
		}
		var err error
		invoice, err = tx.Invoices().Update(ctx, id, patch)
		return conflictOnDuplicate(err, "order already has an invoice")
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	deleted, err := s.store.Invoices().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if !deleted {
		return notFound("invoice", id)
	}
	return nil
}

func (s *invoiceService) PreviewInvoice(ctx context.Context, orderID string) (*billing.Draft, error) {
	return s.draft(ctx, s.store, orderID)
}

func (s *invoiceService) GenerateInvoice(ctx context.Context, orderID string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := ensureNoInvoice(ctx, tx, orderID); err != nil {
			return err
		}
		draft, err := s.draft(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if invoice, err = draft.Invoice(); err != nil {
			return err
		}
		if err := tx.Invoices().Create(ctx, &invoice); err != nil {
			return conflictOnDuplicate(fmt.Errorf("failed to create invoice: %w", err), "order %s already has an invoice", invoice.OrderID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordInvoiceIssued("generated")
	s.logger.Info("Invoice generated",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("order_id", orderID),
		zap.String("total", invoice.TotalAmount.StringFixed(2)),
	)
	return &invoice, nil
}

func (s *invoiceService) draft(ctx context.Context, store repository.Store, orderID string) (*billing.Draft, error) {
	order, err := store.Orders().GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	bricks, err := store.Bricks().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bricks: %w", err)
	}
	pricing, err := loadPricing(ctx, store)
	if err != nil {
		return nil, err
	}

	draft, err := s.calculator.Calculate(*order, bricks, pricing, s.now())
	if errors.Is(err, billing.ErrBrickNotFound) {
		return nil, invalid("brickType", "brick %s of order %s no longer exists", order.BrickType, order.OrderNumber)
	}
	return draft, err
}

func ensureNoInvoice(ctx context.Context, tx repository.Store, orderID string) error {
	existing, err := tx.Invoices().GetByOrderID(ctx, orderID)
	switch {
	case err == nil:
		return fmt.Errorf("order %s already has invoice %s: %w", orderID, existing.InvoiceNumber, ErrConflict)
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return err
	}
}
