// Package memory implements repository.Store on process memory. Nothing is
// persisted across restarts; order and invoice numbers restart at 001.
package memory

import (
	"context"
	"sort"
	"sync"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"

	"gorm.io/datatypes"
)

type state struct {
	bricks   map[string]models.Brick
	tractors map[string]models.Tractor
	laborers map[string]models.Laborer
	orders   map[string]models.Order
	invoices map[string]models.Invoice
	settings map[string]models.Setting

	orderCounter   int64
	invoiceCounter int64
}

func newState() *state {
	return &state{
		bricks:   map[string]models.Brick{},
		tractors: map[string]models.Tractor{},
		laborers: map[string]models.Laborer{},
		orders:   map[string]models.Order{},
		invoices: map[string]models.Invoice{},
		settings: map[string]models.Setting{},
	}
}

func (st *state) clone() state {
	c := state{
		bricks:         make(map[string]models.Brick, len(st.bricks)),
		tractors:       make(map[string]models.Tractor, len(st.tractors)),
		laborers:       make(map[string]models.Laborer, len(st.laborers)),
		orders:         make(map[string]models.Order, len(st.orders)),
		invoices:       make(map[string]models.Invoice, len(st.invoices)),
		settings:       make(map[string]models.Setting, len(st.settings)),
		orderCounter:   st.orderCounter,
		invoiceCounter: st.invoiceCounter,
	}
	for k, v := range st.bricks {
		c.bricks[k] = v
	}
	for k, v := range st.tractors {
		c.tractors[k] = v
	}
	for k, v := range st.laborers {
		c.laborers[k] = v
	}
	for k, v := range st.orders {
		c.orders[k] = cloneOrder(v)
	}
	for k, v := range st.invoices {
		c.invoices[k] = v
	}
	for k, v := range st.settings {
		c.settings[k] = v
	}
	return c
}

// Store keeps every collection in maps behind one RWMutex. A Store handed
// to a Transaction callback already holds the write lock.
type Store struct {
	mu    *sync.RWMutex
	state *state
	inTx  bool
}

func New() *Store {
	return &Store{mu: &sync.RWMutex{}, state: newState()}
}

func (s *Store) read(fn func(st *state)) {
	if !s.inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(s.state)
}

func (s *Store) write(fn func(st *state)) {
	if !s.inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn(s.state)
}

func (s *Store) Bricks() repository.BrickRepository     { return &brickRepository{s: s} }
func (s *Store) Tractors() repository.TractorRepository { return &tractorRepository{s: s} }
func (s *Store) Laborers() repository.LaborerRepository { return &laborerRepository{s: s} }
func (s *Store) Orders() repository.OrderRepository     { return &orderRepository{s: s} }
func (s *Store) Invoices() repository.InvoiceRepository { return &invoiceRepository{s: s} }
func (s *Store) Settings() repository.SettingRepository { return &settingRepository{s: s} }

// Transaction serializes fn against all other store access and restores the
// previous state, counters included, when fn returns an error.
func (s *Store) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	tx := &Store{mu: s.mu, state: s.state, inTx: true}
	if err := fn(tx); err != nil {
		*s.state = snapshot
		return err
	}
	return nil
}

func cloneOrder(o models.Order) models.Order {
	if o.AssignedLaborerIDs != nil {
		o.AssignedLaborerIDs = append(datatypes.JSONSlice[string]{}, o.AssignedLaborerIDs...)
	}
	if o.AssignedTractorID != nil {
		id := *o.AssignedTractorID
		o.AssignedTractorID = &id
	}
	return o
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// numberAfter orders ORD/INV numbers by value. Past 999 the numbers grow
// wider, so a longer number is always the later one.
func numberAfter(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a > b
}
