package memory

import (
	"context"
	"time"

	"brick_manager/internal/models"
	"brick_manager/internal/repository"

	"github.com/google/uuid"
)

type brickRepository struct {
	s *Store
}

func (r *brickRepository) List(_ context.Context) ([]models.Brick, error) {
	var bricks []models.Brick
	r.s.read(func(st *state) {
		bricks = make([]models.Brick, 0, len(st.bricks))
		for _, id := range sortedKeys(st.bricks) {
			bricks = append(bricks, st.bricks[id])
		}
	})
	return bricks, nil
}

func (r *brickRepository) GetByID(_ context.Context, id string) (*models.Brick, error) {
	var (
		brick models.Brick
		ok    bool
	)
	r.s.read(func(st *state) {
		brick, ok = st.bricks[id]
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &brick, nil
}

func (r *brickRepository) Create(_ context.Context, brick *models.Brick) error {
	brick.ID = uuid.NewString()
	brick.LastUpdated = time.Now()
	r.s.write(func(st *state) {
		st.bricks[brick.ID] = *brick
	})
	return nil
}

func (r *brickRepository) Update(_ context.Context, id string, patch models.BrickPatch) (*models.Brick, error) {
	var (
		brick models.Brick
		ok    bool
	)
	r.s.write(func(st *state) {
		brick, ok = st.bricks[id]
		if !ok {
			return
		}
		patch.Apply(&brick)
		brick.LastUpdated = time.Now()
		st.bricks[id] = brick
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &brick, nil
}

func (r *brickRepository) Delete(_ context.Context, id string) (bool, error) {
	var existed bool
	r.s.write(func(st *state) {
		_, existed = st.bricks[id]
		delete(st.bricks, id)
	})
	return existed, nil
}

func (r *brickRepository) UpdateStock(ctx context.Context, id string, newStock int) (*models.Brick, error) {
	return r.Update(ctx, id, models.BrickPatch{CurrentStock: &newStock})
}
