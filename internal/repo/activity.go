package repo

import (
	"context"

	"github.com/uptrace/bun"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/repo/selector"
)

type Activity struct {
	db  *bun.DB
	sel selector.S[model.Activity]
}

func NewActivity(db *bun.DB) *Activity {
	return &Activity{db: db, sel: selector.New[model.Activity](db)}
}

func (r *Activity) GetActivityById(ctx context.Context, activityId int) (*model.Activity, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("activity_id = ?", activityId)
	})
}

func (r *Activity) GetActivitiesByProjectId(ctx context.Context, projectId int) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("project_id = ?", projectId).Order("date ASC")
	})
}
