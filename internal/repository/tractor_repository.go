package repository

import (
	"context"

	"brick_manager/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tractorRepository struct {
	db *gorm.DB
}

func NewTractorRepository(db *gorm.DB) TractorRepository {
	return &tractorRepository{db: db}
}

func (r *tractorRepository) List(ctx context.Context) ([]models.Tractor, error) {
	var tractors []models.Tractor
	err := r.db.WithContext(ctx).Find(&tractors).Error
	return tractors, err
}

func (r *tractorRepository) GetByID(ctx context.Context, id string) (*models.Tractor, error) {
	var tractor models.Tractor
	err := r.db.WithContext(ctx).First(&tractor, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &tractor, nil
}

func (r *tractorRepository) Create(ctx context.Context, tractor *models.Tractor) error {
	tractor.ID = uuid.NewString()
	if tractor.Status == "" {
		tractor.Status = string(models.TractorAvailable)
	}
	return translateError(r.db.WithContext(ctx).Create(tractor).Error)
}

func (r *tractorRepository) Update(ctx context.Context, id string, patch models.TractorPatch) (*models.Tractor, error) {
	tractor, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(tractor)
	if err := r.db.WithContext(ctx).Save(tractor).Error; err != nil {
		return nil, translateError(err)
	}
	return tractor, nil
}

func (r *tractorRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Tractor{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *tractorRepository) ListAvailable(ctx context.Context) ([]models.Tractor, error) {
	var tractors []models.Tractor
	err := r.db.WithContext(ctx).Where("status = ?", string(models.TractorAvailable)).Find(&tractors).Error
	return tractors, err
}
