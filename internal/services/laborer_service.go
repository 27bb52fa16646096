package services

import (
	"context"
	"fmt"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"
)

type LaborerService interface {
	ListLaborers(ctx context.Context) ([]models.Laborer, error)
	ListActiveLaborers(ctx context.Context) ([]models.Laborer, error)
	GetLaborer(ctx context.Context, id string) (*models.Laborer, error)
	CreateLaborer(ctx context.Context, input models.LaborerInput) (*models.Laborer, error)
	UpdateLaborer(ctx context.Context, id string, patch models.LaborerPatch) (*models.Laborer, error)
	DeleteLaborer(ctx context.Context, id string) error
}

type laborerService struct {
	store repository.Store
}

func NewLaborerService(store repository.Store) LaborerService {
	return &laborerService{store: store}
}

func (s *laborerService) ListLaborers(ctx context.Context) ([]models.Laborer, error) {
	return s.store.Laborers().List(ctx)
}

func (s *laborerService) ListActiveLaborers(ctx context.Context) ([]models.Laborer, error) {
	return s.store.Laborers().ListActive(ctx)
}

func (s *laborerService) GetLaborer(ctx context.Context, id string) (*models.Laborer, error) {
	return s.store.Laborers().GetByID(ctx, id)
}

func (s *laborerService) CreateLaborer(ctx context.Context, input models.LaborerInput) (*models.Laborer, error) {
	laborer := input.ToLaborer()
	if laborer.MonthlySalary.IsNegative() {
		return nil, invalid("monthlySalary", "must not be negative")
	}
	if err := s.store.Laborers().Create(ctx, &laborer); err != nil {
		return nil, fmt.Errorf("failed to create laborer: %w", err)
	}
	return &laborer, nil
}

func (s *laborerService) UpdateLaborer(ctx context.Context, id string, patch models.LaborerPatch) (*models.Laborer, error) {
	if patch.MonthlySalary != nil && patch.MonthlySalary.IsNegative() {
		return nil, invalid("monthlySalary", "must not be negative")
	}
	return s.store.Laborers().Update(ctx, id, patch)
}

func (s *laborerService) DeleteLaborer(ctx context.Context, id string) error {
	deleted, err := s.store.Laborers().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete laborer: %w", err)
	}
	if !deleted {
		return notFound("laborer", id)
	}
	return nil
}
