package memory

import (
	"context"

	"brick_manager/internal/models"
)

type settingRepository struct {
	s *Store
}

func (r *settingRepository) List(_ context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	r.s.read(func(st *state) {
		settings = listSettings(st)
	})
	return settings, nil
}

func (r *settingRepository) Upsert(_ context.Context, settings []models.Setting) ([]models.Setting, error) {
	var all []models.Setting
	r.s.write(func(st *state) {
		for _, setting := range settings {
			st.settings[setting.Key] = setting
		}
		all = listSettings(st)
	})
	return all, nil
}

func listSettings(st *state) []models.Setting {
	settings := make([]models.Setting, 0, len(st.settings))
	for _, key := range sortedKeys(st.settings) {
		settings = append(settings, st.settings[key])
	}
	return settings
}
