package repo

import (
	"context"

	"github.com/uptrace/bun"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/repo/selector"
)

type Project struct {
	db  *bun.DB
	sel selector.S[model.Project]
}

func NewProject(db *bun.DB) *Project {
	return &Project{db: db, sel: selector.New[model.Project](db)}
}

func (r *Project) GetProjectById(ctx context.Context, projectId int) (*model.Project, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("project_id = ?", projectId)
	})
}
