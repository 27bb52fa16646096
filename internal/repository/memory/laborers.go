package memory

import (
	"context"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"

	"github.com/google/uuid"
)

type laborerRepository struct {
	s *Store
}

func (r *laborerRepository) List(_ context.Context) ([]models.Laborer, error) {
	return r.filter(func(models.Laborer) bool { return true }), nil
}

func (r *laborerRepository) ListActive(_ context.Context) ([]models.Laborer, error) {
	return r.filter(func(l models.Laborer) bool {
		return l.Status == string(models.LaborerActive)
	}), nil
}

func (r *laborerRepository) filter(keep func(models.Laborer) bool) []models.Laborer {
	laborers := []models.Laborer{}
	r.s.read(func(st *state) {
		for _, id := range sortedKeys(st.laborers) {
			if l := st.laborers[id]; keep(l) {
				laborers = append(laborers, l)
			}
		}
	})
	return laborers
}

func (r *laborerRepository) GetByID(_ context.Context, id string) (*models.Laborer, error) {
	var (
		laborer models.Laborer
		ok      bool
	)
	r.s.read(func(st *state) {
		laborer, ok = st.laborers[id]
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &laborer, nil
}

func (r *laborerRepository) Create(_ context.Context, laborer *models.Laborer) error {
	laborer.ID = uuid.NewString()
	if laborer.Status == "" {
		laborer.Status = string(models.LaborerActive)
	}
	r.s.write(func(st *state) {
		st.laborers[laborer.ID] = *laborer
	})
	return nil
}

func (r *laborerRepository) Update(_ context.Context, id string, patch models.LaborerPatch) (*models.Laborer, error) {
	var (
		laborer models.Laborer
		ok      bool
	)
	r.s.write(func(st *state) {
		laborer, ok = st.laborers[id]
		if !ok {
			return
		}
		patch.Apply(&laborer)
		st.laborers[id] = laborer
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &laborer, nil
}

func (r *laborerRepository) Delete(_ context.Context, id string) (bool, error) {
	var existed bool
	r.s.write(func(st *state) {
		_, existed = st.laborers[id]
		delete(st.laborers, id)
	})
	return existed, nil
}
