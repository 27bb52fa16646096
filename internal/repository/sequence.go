package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const (
	OrderSequence   = "order"
	InvoiceSequence = "invoice"

	OrderNumberPrefix   = "ORD"
	InvoiceNumberPrefix = "INV"
)

// Sequencer hands out strictly increasing numbers per sequence name.
type Sequencer interface {
	Next(ctx context.Context, name string) (int64, error)
}

// FormatSequence renders a sequence value the way order and invoice numbers
// are shown, e.g. ORD001. Values past 999 simply grow wider.
func FormatSequence(prefix string, value int64) string {
	return fmt.Sprintf("%s%03d", prefix, value)
}

type tableSequencer struct {
	db *gorm.DB
}

// NewTableSequencer keeps counters in the sequences table. The increment
// takes part in the caller's transaction when db is a transaction handle.
func NewTableSequencer(db *gorm.DB) Sequencer {
	return &tableSequencer{db: db}
}

func (s *tableSequencer) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(
		`INSERT INTO sequences (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		 RETURNING value`, name).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", name, err)
	}
	return value, nil
}

// FloorSetter is implemented by sequencers whose counters live outside the
// database and may lag behind it.
type FloorSetter interface {
	EnsureAtLeast(ctx context.Context, name string, floor int64) error
}

// AlignSequences raises the counters of seq past the highest order and
// invoice numbers already stored.
func AlignSequences(ctx context.Context, db *gorm.DB, seq FloorSetter) error {
	sources := []struct {
		name, table, column, prefix string
	}{
		{OrderSequence, "orders", "order_number", OrderNumberPrefix},
		{InvoiceSequence, "invoices", "invoice_number", InvoiceNumberPrefix},
	}
	for _, src := range sources {
		var highest int64
		query := fmt.Sprintf(
			`SELECT COALESCE(MAX(CAST(SUBSTRING(%s FROM ?) AS BIGINT)), 0) FROM %s WHERE %s ~ ?`,
			src.column, src.table, src.column)
		err := db.WithContext(ctx).Raw(query, len(src.prefix)+1, "^"+src.prefix+"[0-9]+$").Scan(&highest).Error
		if err != nil {
			return fmt.Errorf("failed to read highest %s number: %w", src.name, err)
		}
		if err := seq.EnsureAtLeast(ctx, src.name, highest); err != nil {
			return err
		}
	}
	return nil
}
