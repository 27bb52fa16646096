package memory

import (
	"context"
	"sort"
	"time"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type orderRepository struct {
	s *Store
}

func (r *orderRepository) List(_ context.Context) ([]models.Order, error) {
	return r.filter(func(models.Order) bool { return true }), nil
}

func (r *orderRepository) ListByStatus(_ context.Context, status string) ([]models.Order, error) {
	return r.filter(func(o models.Order) bool { return o.Status == status }), nil
}

func (r *orderRepository) filter(keep func(models.Order) bool) []models.Order {
	orders := []models.Order{}
	r.s.read(func(st *state) {
		for _, o := range st.orders {
			if keep(o) {
				orders = append(orders, cloneOrder(o))
			}
		}
	})
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].OrderDate.Equal(orders[j].OrderDate) {
			return orders[i].OrderDate.After(orders[j].OrderDate)
		}
		return numberAfter(orders[i].OrderNumber, orders[j].OrderNumber)
	})
	return orders
}

func (r *orderRepository) GetByID(_ context.Context, id string) (*models.Order, error) {
	var (
		order models.Order
		ok    bool
	)
	r.s.read(func(st *state) {
		order, ok = st.orders[id]
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	order = cloneOrder(order)
	return &order, nil
}

func (r *orderRepository) Create(_ context.Context, order *models.Order) error {
	order.ID = uuid.NewString()
	order.OrderDate = time.Now()
	if order.Status == "" {
		order.Status = string(models.OrderPending)
	}
	if order.AssignedLaborerIDs == nil {
		order.AssignedLaborerIDs = datatypes.JSONSlice[string]{}
	}
	r.s.write(func(st *state) {
		st.orderCounter++
		order.OrderNumber = repository.FormatSequence(repository.OrderNumberPrefix, st.orderCounter)
		st.orders[order.ID] = cloneOrder(*order)
	})
	return nil
}

func (r *orderRepository) Update(_ context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	var (
		order models.Order
		ok    bool
	)
	r.s.write(func(st *state) {
		order, ok = st.orders[id]
		if !ok {
			return
		}
		order = cloneOrder(order)
		patch.Apply(&order)
		st.orders[id] = cloneOrder(order)
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &order, nil
}

func (r *orderRepository) Delete(_ context.Context, id string) (bool, error) {
	var existed bool
	r.s.write(func(st *state) {
		_, existed = st.orders[id]
		delete(st.orders, id)
	})
	return existed, nil
}
