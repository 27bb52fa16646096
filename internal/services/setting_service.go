package services

import (
	"context"
	"fmt"
	"strings"

	"brick_manager/internal/billing"
	"brick_manager/internal/models"
	"brick_manager/internal/repository"
)

type SettingService interface {
	ListSettings(ctx context.Context) ([]models.Setting, error)
	UpdateSettings(ctx context.Context, inputs []models.SettingInput) ([]models.Setting, error)
}

type settingService struct {
	store repository.Store
}

func NewSettingService(store repository.Store) SettingService {
	return &settingService{store: store}
}

func (s *settingService) ListSettings(ctx context.Context) ([]models.Setting, error) {
	return s.store.Settings().List(ctx)
}

// UpdateSettings upserts every pair. A key repeated within one request
// takes its last value.
func (s *settingService) UpdateSettings(ctx context.Context, inputs []models.SettingInput) ([]models.Setting, error) {
	settings := make([]models.Setting, 0, len(inputs))
	position := make(map[string]int, len(inputs))
	for i, in := range inputs {
		key := strings.TrimSpace(in.Key)
		if key == "" {
			return nil, invalid(fmt.Sprintf("[%d].key", i), "must not be empty")
		}
		if at, seen := position[key]; seen {
			settings[at].Value = in.Value
			continue
		}
		position[key] = len(settings)
		settings = append(settings, models.Setting{Key: key, Value: in.Value})
	}
	updated, err := s.store.Settings().Upsert(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return updated, nil
}

// loadPricing resolves the billing figures from the stored settings.
func loadPricing(ctx context.Context, store repository.Store) (billing.Pricing, error) {
	settings, err := store.Settings().List(ctx)
	if err != nil {
		return billing.Pricing{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return billing.PricingFromSettings(settings), nil
}
