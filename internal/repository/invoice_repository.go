package repository

import (
	"context"
	"time"

	"brick_manager/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db  *gorm.DB
	seq Sequencer
}

func NewInvoiceRepository(db *gorm.DB, seq Sequencer) InvoiceRepository {
	return &invoiceRepository{db: db, seq: seq}
}

func (r *invoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).Order("invoice_date DESC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &invoice, nil
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	number, err := r.seq.Next(ctx, InvoiceSequence)
	if err != nil {
		return err
	}

	invoice.ID = uuid.NewString()
	invoice.InvoiceNumber = FormatSequence(InvoiceNumberPrefix, number)
	invoice.InvoiceDate = time.Now()
	if invoice.PaymentStatus == "" {
		invoice.PaymentStatus = string(models.PaymentPending)
	}
	return translateError(r.db.WithContext(ctx).Create(invoice).Error)
}

func (r *invoiceRepository) Update(ctx context.Context, id string, patch models.InvoicePatch) (*models.Invoice, error) {
	invoice, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(invoice)
	if err := r.db.WithContext(ctx).Save(invoice).Error; err != nil {
		return nil, translateError(err)
	}
	return invoice, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *invoiceRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("invoice_date ASC").First(&invoice).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &invoice, nil
}
