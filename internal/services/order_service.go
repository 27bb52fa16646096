package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brick_manager/internal/metrics"
	"brick_manager/internal/models"
	"brick_manager/internal/repository"

	"go.uber.org/zap"
)

type OrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByStatus(ctx context.Context, status string) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, input models.OrderInput) (*models.Order, error)
	UpdateOrder(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type orderService struct {
	store  repository.Store
	logger *zap.Logger
}

func NewOrderService(store repository.Store, logger *zap.Logger) OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &orderService{store: store, logger: logger}
}

func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.Orders().List(ctx)
}

func (s *orderService) ListOrdersByStatus(ctx context.Context, status string) ([]models.Order, error) {
	return s.store.Orders().ListByStatus(ctx, status)
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.store.Orders().GetByID(ctx, id)
}

// CreateOrder stores the order, takes its quantity out of stock and marks
// the assigned tractor as assigned. Either all three happen or none do.
func (s *orderService) CreateOrder(ctx context.Context, input models.OrderInput) (*models.Order, error) {
	defer metrics.TrackStoreOperation("create_order")(time.Now())

	order := input.ToOrder()
	if order.UnitPrice.IsNegative() {
		return nil, invalid("unitPrice", "must not be negative")
	}
	if order.TotalAmount.IsNegative() {
		return nil, invalid("totalAmount", "must not be negative")
	}

	var brickName string
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		brick, err := tx.Bricks().GetByID(ctx, order.BrickType)
		if errors.Is(err, repository.ErrNotFound) {
			return invalid("brickType", "brick %s does not exist", order.BrickType)
		}
		if err != nil {
			return err
		}
		if order.Quantity > brick.CurrentStock {
			return invalid("quantity", "only %d bricks of %s in stock", brick.CurrentStock, brick.Type)
		}
		brickName = brick.Type

		if order.AssignedTractorID != nil {
			if _, err := tx.Tractors().GetByID(ctx, *order.AssignedTractorID); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return invalid("assignedTractorId", "tractor %s does not exist", *order.AssignedTractorID)
				}
				return err
			}
		}
		for _, laborerID := range order.AssignedLaborerIDs {
			if _, err := tx.Laborers().GetByID(ctx, laborerID); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return invalid("assignedLaborerIds", "laborer %s does not exist", laborerID)
				}
				return err
			}
		}

		if err := tx.Orders().Create(ctx, &order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if _, err := tx.Bricks().UpdateStock(ctx, brick.ID, brick.CurrentStock-order.Quantity); err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}
		if order.AssignedTractorID != nil {
			status := string(models.TractorAssigned)
			if _, err := tx.Tractors().Update(ctx, *order.AssignedTractorID, models.TractorPatch{Status: &status}); err != nil {
				return fmt.Errorf("failed to assign tractor: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}

	metrics.RecordOrderCreated(brickName, order.Quantity)
	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("brick_id", order.BrickType),
		zap.Int("quantity", order.Quantity),
	)
	return &order, nil
}

func (s *orderService) recordFailure(err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		metrics.RecordOrderFailure("invalid_" + vErr.Field)
		return
	}
	metrics.RecordOrderFailure("store_error")
	s.logger.Error("Order creation rolled back", zap.Error(err))
}

func (s *orderService) UpdateOrder(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	if patch.UnitPrice != nil && patch.UnitPrice.IsNegative() {
		return nil, invalid("unitPrice", "must not be negative")
	}
	if patch.TotalAmount != nil && patch.TotalAmount.IsNegative() {
		return nil, invalid("totalAmount", "must not be negative")
	}
	if tractorID, err := patch.AssignedTractorID.Get(); err == nil && tractorID == "" {
		patch.AssignedTractorID.SetNull()
	}
	return s.store.Orders().Update(ctx, id, patch)
}

func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	deleted, err := s.store.Orders().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if !deleted {
		return notFound("order", id)
	}
	return nil
}
