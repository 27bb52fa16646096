package memory

import (
	"context"
	"sort"
	"time"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"

	"github.com/google/uuid"
)

type invoiceRepository struct {
	s *Store
}

func (r *invoiceRepository) List(_ context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	r.s.read(func(st *state) {
		for _, inv := range st.invoices {
			invoices = append(invoices, inv)
		}
	})
	sort.Slice(invoices, func(i, j int) bool {
		if !invoices[i].InvoiceDate.Equal(invoices[j].InvoiceDate) {
			return invoices[i].InvoiceDate.After(invoices[j].InvoiceDate)
		}
		return numberAfter(invoices[i].InvoiceNumber, invoices[j].InvoiceNumber)
	})
	return invoices, nil
}

func (r *invoiceRepository) GetByID(_ context.Context, id string) (*models.Invoice, error) {
	var (
		invoice models.Invoice
		ok      bool
	)
	r.s.read(func(st *state) {
		invoice, ok = st.invoices[id]
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &invoice, nil
}

// GetByOrderID returns the earliest invoice raised for the order.
func (r *invoiceRepository) GetByOrderID(_ context.Context, orderID string) (*models.Invoice, error) {
	var found *models.Invoice
	r.s.read(func(st *state) {
		for _, inv := range st.invoices {
			if inv.OrderID != orderID {
				continue
			}
			if found == nil || inv.InvoiceDate.Before(found.InvoiceDate) ||
				(inv.InvoiceDate.Equal(found.InvoiceDate) && inv.InvoiceNumber < found.InvoiceNumber) {
				inv := inv
				found = &inv
			}
		}
	})
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return found, nil
}

func (r *invoiceRepository) Create(_ context.Context, invoice *models.Invoice) error {
	invoice.ID = uuid.NewString()
	invoice.InvoiceDate = time.Now()
	if invoice.PaymentStatus == "" {
		invoice.PaymentStatus = string(models.PaymentPending)
	}
	r.s.write(func(st *state) {
		st.invoiceCounter++
		invoice.InvoiceNumber = repository.FormatSequence(repository.InvoiceNumberPrefix, st.invoiceCounter)
		st.invoices[invoice.ID] = *invoice
	})
	return nil
}

func (r *invoiceRepository) Update(_ context.Context, id string, patch models.InvoicePatch) (*models.Invoice, error) {
	var (
		invoice models.Invoice
		ok      bool
	)
	r.s.write(func(st *state) {
		invoice, ok = st.invoices[id]
		if !ok {
			return
		}
		patch.Apply(&invoice)
		st.invoices[id] = invoice
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &invoice, nil
}

func (r *invoiceRepository) Delete(_ context.Context, id string) (bool, error) {
	var existed bool
	r.s.write(func(st *state) {
		_, existed = st.invoices[id]
		delete(st.invoices, id)
	})
	return existed, nil
}
