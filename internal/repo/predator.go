package repo

import (
	"context"

	"github.com/uptrace/bun"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/repo/selector"
)

type Predator struct {
	db  *bun.DB
	sel selector.S[model.Predator]
}

func NewPredator(db *bun.DB) *Predator {
	return &Predator{db: db, sel: selector.New[model.Predator](db)}
}

func (r *Predator) GetPredators(ctx context.Context) ([]*model.Predator, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("predator_id ASC")
	})
}

func (r *Predator) GetPredatorById(ctx context.Context, predatorId int) (*model.Predator, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("predator_id = ?", predatorId)
	})
}

func (r *Predator) CreatePredator(ctx context.Context, predator *model.Predator) error {
	_, err := r.db.NewInsert().
		Model(predator).
		Exec(ctx)
	return wrapDuplicate(err, "a predator sub-type with the same name")
}
