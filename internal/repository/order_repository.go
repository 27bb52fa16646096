package repository

import (
	"context"
	"time"

	"brick_manager/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type orderRepository struct {
	db  *gorm.DB
	seq Sequencer
}

func NewOrderRepository(db *gorm.DB, seq Sequencer) OrderRepository {
	return &orderRepository{db: db, seq: seq}
}

func (r *orderRepository) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	number, err := r.seq.Next(ctx, OrderSequence)
	if err != nil {
		return err
	}

	order.ID = uuid.NewString()
	order.OrderNumber = FormatSequence(OrderNumberPrefix, number)
	order.OrderDate = time.Now()
	if order.Status == "" {
		order.Status = string(models.OrderPending)
	}
	if order.AssignedLaborerIDs == nil {
		order.AssignedLaborerIDs = datatypes.JSONSlice[string]{}
	}
	return translateError(r.db.WithContext(ctx).Create(order).Error)
}

func (r *orderRepository) Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	order, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(order)
	if err := r.db.WithContext(ctx).Save(order).Error; err != nil {
		return nil, translateError(err)
	}
	return order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *orderRepository) ListByStatus(ctx context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("order_date DESC").Find(&orders).Error
	return orders, err
}
