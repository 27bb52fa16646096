package services

import (
	"context"
	"fmt"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"
)

type TractorService interface {
	ListTractors(ctx context.Context) ([]models.Tractor, error)
	ListAvailableTractors(ctx context.Context) ([]models.Tractor, error)
	GetTractor(ctx context.Context, id string) (*models.Tractor, error)
	CreateTractor(ctx context.Context, input models.TractorInput) (*models.Tractor, error)
	UpdateTractor(ctx context.Context, id string, patch models.TractorPatch) (*models.Tractor, error)
	DeleteTractor(ctx context.Context, id string) error
}

type tractorService struct {
	store repository.Store
}

func NewTractorService(store repository.Store) TractorService {
	return &tractorService{store: store}
}

func (s *tractorService) ListTractors(ctx context.Context) ([]models.Tractor, error) {
	return s.store.Tractors().List(ctx)
}

func (s *tractorService) ListAvailableTractors(ctx context.Context) ([]models.Tractor, error) {
	return s.store.Tractors().ListAvailable(ctx)
}

func (s *tractorService) GetTractor(ctx context.Context, id string) (*models.Tractor, error) {
	return s.store.Tractors().GetByID(ctx, id)
}

func (s *tractorService) CreateTractor(ctx context.Context, input models.TractorInput) (*models.Tractor, error) {
	tractor := input.ToTractor()
	if err := s.store.Tractors().Create(ctx, &tractor); err != nil {
		return nil, conflictOnDuplicate(err, "registration number %s is already registered", tractor.RegistrationNumber)
	}
	return &tractor, nil
}

func (s *tractorService) UpdateTractor(ctx context.Context, id string, patch models.TractorPatch) (*models.Tractor, error) {
	tractor, err := s.store.Tractors().Update(ctx, id, patch)
	if err != nil {
		return nil, conflictOnDuplicate(err, "registration number is already registered")
	}
	return tractor, nil
}

func (s *tractorService) DeleteTractor(ctx context.Context, id string) error {
	deleted, err := s.store.Tractors().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete tractor: %w", err)
	}
	if !deleted {
		return notFound("tractor", id)
	}
	return nil
}
