package repo

import (
	"context"

	"github.com/uptrace/bun"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/repo/selector"
)

type Objective struct {
	db  *bun.DB
	sel selector.S[model.Objective]
}

func NewObjective(db *bun.DB) *Objective {
	return &Objective{db: db, sel: selector.New[model.Objective](db)}
}

func (r *Objective) GetObjectives(ctx context.Context) ([]*model.Objective, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("objective_id ASC")
	})
}

func (r *Objective) GetObjectiveById(ctx context.Context, objectiveId int) (*model.Objective, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("objective_id = ?", objectiveId)
	})
}

func (r *Objective) CreateObjective(ctx context.Context, objective *model.Objective) error {
	_, err := r.db.NewInsert().
		Model(objective).
		Exec(ctx)
	return wrapDuplicate(err, "an objective with the same title")
}
