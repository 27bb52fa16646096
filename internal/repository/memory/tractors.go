package memory

import (
	"context"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"

	"github.com/google/uuid"
)

type tractorRepository struct {
	s *Store
}

func (r *tractorRepository) List(_ context.Context) ([]models.Tractor, error) {
	return r.filter(func(models.Tractor) bool { return true }), nil
}

func (r *tractorRepository) ListAvailable(_ context.Context) ([]models.Tractor, error) {
	return r.filter(func(t models.Tractor) bool {
		return t.Status == string(models.TractorAvailable)
	}), nil
}

func (r *tractorRepository) filter(keep func(models.Tractor) bool) []models.Tractor {
	tractors := []models.Tractor{}
	r.s.read(func(st *state) {
		for _, id := range sortedKeys(st.tractors) {
			if t := st.tractors[id]; keep(t) {
				tractors = append(tractors, t)
			}
		}
	})
	return tractors
}

func (r *tractorRepository) GetByID(_ context.Context, id string) (*models.Tractor, error) {
	var (
		tractor models.Tractor
		ok      bool
	)
	r.s.read(func(st *state) {
		tractor, ok = st.tractors[id]
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &tractor, nil
}

func (r *tractorRepository) Create(_ context.Context, tractor *models.Tractor) error {
	var err error
	r.s.write(func(st *state) {
		if registrationTaken(st, tractor.RegistrationNumber, "") {
			err = repository.ErrDuplicate
			return
		}
		tractor.ID = uuid.NewString()
		if tractor.Status == "" {
			tractor.Status = string(models.TractorAvailable)
		}
		st.tractors[tractor.ID] = *tractor
	})
	return err
}

func (r *tractorRepository) Update(_ context.Context, id string, patch models.TractorPatch) (*models.Tractor, error) {
	var (
		tractor models.Tractor
		err     error
	)
	r.s.write(func(st *state) {
		current, ok := st.tractors[id]
		if !ok {
			err = repository.ErrNotFound
			return
		}
		patch.Apply(&current)
		if registrationTaken(st, current.RegistrationNumber, id) {
			err = repository.ErrDuplicate
			return
		}
		st.tractors[id] = current
		tractor = current
	})
	if err != nil {
		return nil, err
	}
	return &tractor, nil
}

func (r *tractorRepository) Delete(_ context.Context, id string) (bool, error) {
	var existed bool
	r.s.write(func(st *state) {
		_, existed = st.tractors[id]
		delete(st.tractors, id)
	})
	return existed, nil
}

func registrationTaken(st *state, registration, exceptID string) bool {
	for id, t := range st.tractors {
		if id != exceptID && t.RegistrationNumber == registration {
			return true
		}
	}
	return false
}
