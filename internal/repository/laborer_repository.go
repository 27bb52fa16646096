package repository

import (
	"context"

	"brick_manager/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type laborerRepository struct {
	db *gorm.DB
}

func NewLaborerRepository(db *gorm.DB) LaborerRepository {
	return &laborerRepository{db: db}
}

func (r *laborerRepository) List(ctx context.Context) ([]models.Laborer, error) {
	var laborers []models.Laborer
	err := r.db.WithContext(ctx).Find(&laborers).Error
	return laborers, err
}

func (r *laborerRepository) GetByID(ctx context.Context, id string) (*models.Laborer, error) {
	var laborer models.Laborer
	err := r.db.WithContext(ctx).First(&laborer, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &laborer, nil
}

func (r *laborerRepository) Create(ctx context.Context, laborer *models.Laborer) error {
	laborer.ID = uuid.NewString()
	if laborer.Status == "" {
		laborer.Status = string(models.LaborerActive)
	}
	return translateError(r.db.WithContext(ctx).Create(laborer).Error)
}

func (r *laborerRepository) Update(ctx context.Context, id string, patch models.LaborerPatch) (*models.Laborer, error) {
	laborer, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(laborer)
	if err := r.db.WithContext(ctx).Save(laborer).Error; err != nil {
		return nil, translateError(err)
	}
	return laborer, nil
}

func (r *laborerRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Laborer{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *laborerRepository) ListActive(ctx context.Context) ([]models.Laborer, error) {
	var laborers []models.Laborer
	err := r.db.WithContext(ctx).Where("status = ?", string(models.LaborerActive)).Find(&laborers).Error
	return laborers, err
}
