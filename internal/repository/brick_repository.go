package repository

import (
	"context"
	"time"

	"brick_manager/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type brickRepository struct {
	db *gorm.DB
}

func NewBrickRepository(db *gorm.DB) BrickRepository {
	return &brickRepository{db: db}
}

func (r *brickRepository) List(ctx context.Context) ([]models.Brick, error) {
	var bricks []models.Brick
	err := r.db.WithContext(ctx).Find(&bricks).Error
	return bricks, err
}

func (r *brickRepository) GetByID(ctx context.Context, id string) (*models.Brick, error) {
	var brick models.Brick
	err := r.db.WithContext(ctx).First(&brick, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &brick, nil
}

func (r *brickRepository) Create(ctx context.Context, brick *models.Brick) error {
	brick.ID = uuid.NewString()
	brick.LastUpdated = time.Now()
	return translateError(r.db.WithContext(ctx).Create(brick).Error)
}

func (r *brickRepository) Update(ctx context.Context, id string, patch models.BrickPatch) (*models.Brick, error) {
	brick, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(brick)
	brick.LastUpdated = time.Now()
	if err := r.db.WithContext(ctx).Save(brick).Error; err != nil {
		return nil, translateError(err)
	}
	return brick, nil
}

func (r *brickRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Brick{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *brickRepository) UpdateStock(ctx context.Context, id string, newStock int) (*models.Brick, error) {
	return r.Update(ctx, id, models.BrickPatch{CurrentStock: &newStock})
}
