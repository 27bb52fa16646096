package services

import (
	"context"
	"fmt"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"
)

type BrickService interface {
	ListBricks(ctx context.Context) ([]models.Brick, error)
	GetBrick(ctx context.Context, id string) (*models.Brick, error)
	CreateBrick(ctx context.Context, input models.BrickInput) (*models.Brick, error)
	UpdateBrick(ctx context.Context, id string, patch models.BrickPatch) (*models.Brick, error)
	DeleteBrick(ctx context.Context, id string) error
}

type brickService struct {
	store repository.Store
}

func NewBrickService(store repository.Store) BrickService {
	return &brickService{store: store}
}

func (s *brickService) ListBricks(ctx context.Context) ([]models.Brick, error) {
	return s.store.Bricks().List(ctx)
}

func (s *brickService) GetBrick(ctx context.Context, id string) (*models.Brick, error) {
	return s.store.Bricks().GetByID(ctx, id)
}

func (s *brickService) CreateBrick(ctx context.Context, input models.BrickInput) (*models.Brick, error) {
	brick := input.ToBrick()
	if err := validateBrick(brick); err != nil {
		return nil, err
	}
	if err := s.store.Bricks().Create(ctx, &brick); err != nil {
		return nil, fmt.Errorf("failed to create brick: %w", err)
	}
	return &brick, nil
}

func (s *brickService) UpdateBrick(ctx context.Context, id string, patch models.BrickPatch) (*models.Brick, error) {
	if patch.CurrentStock != nil && *patch.CurrentStock < 0 {
		return nil, invalid("currentStock", "must not be negative")
	}
	if patch.MinStock != nil && *patch.MinStock < 0 {
		return nil, invalid("minStock", "must not be negative")
	}
	if patch.UnitPrice != nil && patch.UnitPrice.IsNegative() {
		return nil, invalid("unitPrice", "must not be negative")
	}
	return s.store.Bricks().Update(ctx, id, patch)
}

func (s *brickService) DeleteBrick(ctx context.Context, id string) error {
	deleted, err := s.store.Bricks().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete brick: %w", err)
	}
	if !deleted {
		return notFound("brick", id)
	}
	return nil
}

func validateBrick(b models.Brick) error {
	switch {
	case b.CurrentStock < 0:
		return invalid("currentStock", "must not be negative")
	case b.MinStock < 0:
		return invalid("minStock", "must not be negative")
	case b.UnitPrice.IsNegative():
		return invalid("unitPrice", "must not be negative")
	}
	return nil
}
