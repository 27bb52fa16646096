package services

import (
	"context"
	"fmt"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"

	"github.com/shopspring/decimal"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context) (*models.Statistics, error)
}

type statisticsService struct {
	store repository.Store
}

func NewStatisticsService(store repository.Store) StatisticsService {
	return &statisticsService{store: store}
}

// GetStatistics recomputes the dashboard figures from the store on every
// call.
func (s *statisticsService) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	bricks, err := s.store.Bricks().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bricks: %w", err)
	}
	tractors, err := s.store.Tractors().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tractors: %w", err)
	}
	laborers, err := s.store.Laborers().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load laborers: %w", err)
	}
	orders, err := s.store.Orders().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	invoices, err := s.store.Invoices().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	return Aggregate(bricks, tractors, laborers, orders, invoices), nil
}

// Aggregate is the pure rollup behind GetStatistics.
func Aggregate(bricks []models.Brick, tractors []models.Tractor, laborers []models.Laborer, orders []models.Order, invoices []models.Invoice) *models.Statistics {
	stats := &models.Statistics{LowStockBricks: []models.Brick{}}

	for _, b := range bricks {
		stats.TotalBricks += b.CurrentStock
		if b.IsLowStock() {
			stats.LowStockBricks = append(stats.LowStockBricks, b)
		}
	}
	for _, t := range tractors {
		if t.Status == string(models.TractorAvailable) {
			stats.AvailableTractors++
		}
	}
	for _, l := range laborers {
		if l.Status == string(models.LaborerActive) {
			stats.ActiveLaborers++
		}
	}
	for _, o := range orders {
		if o.Status == string(models.OrderPending) {
			stats.PendingOrders++
		}
	}

	sales := decimal.Zero
	for _, inv := range invoices {
		if inv.PaymentStatus == string(models.PaymentPaid) {
			sales = sales.Add(inv.TotalAmount)
		}
	}
	stats.TotalSales = sales.InexactFloat64()

	return stats
}
