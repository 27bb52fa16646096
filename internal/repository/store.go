package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type gormStore struct {
	db  *gorm.DB
	seq Sequencer
}

// NewStore returns the PostgreSQL-backed store. A nil sequencer numbers
// orders and invoices from the sequences table.
func NewStore(db *gorm.DB, seq Sequencer) Store {
	return &gormStore{db: db, seq: seq}
}

func (s *gormStore) sequencer() Sequencer {
	if s.seq != nil {
		return s.seq
	}
	return NewTableSequencer(s.db)
}

func (s *gormStore) Bricks() BrickRepository { return NewBrickRepository(s.db) }
func (s *gormStore) Tractors() TractorRepository { return NewTractorRepository(s.db) }
func (s *gormStore) Laborers() LaborerRepository { return NewLaborerRepository(s.db) }
func (s *gormStore) Orders() OrderRepository { return NewOrderRepository(s.db, s.sequencer()) }
func (s *gormStore) Invoices() InvoiceRepository { return NewInvoiceRepository(s.db, s.sequencer()) }
func (s *gormStore) Settings() SettingRepository { return NewSettingRepository(s.db) }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx, seq: s.seq})
	})
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
