package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/pkg/fterr"
)

type ProjectObjective struct {
	db *bun.DB
}

func NewProjectObjective(db *bun.DB) *ProjectObjective {
	return &ProjectObjective{db: db}
}

func (r *ProjectObjective) GetProjectObjectivesByProjectId(ctx context.Context, projectId int) ([]*model.ProjectObjective, error) {
	var pairs []*model.ProjectObjective
	err := r.db.NewSelect().
		Model(&pairs).
		Where("project_id = ?", projectId).
		Order("objective_id ASC").
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return pairs, nil
}

func (r *ProjectObjective) CreateProjectObjective(ctx context.Context, pair *model.ProjectObjective) error {
	_, err := r.db.NewInsert().
		Model(pair).
		Exec(ctx)
	return wrapDuplicate(err, "a link between this project and objective")
}

// DeleteProjectObjective removes the project-level bridge row only. Already
// materialized per-activity rows for the objective are left in place; see
// DESIGN.md on orphaned activity_objectives rows.
func (r *ProjectObjective) DeleteProjectObjective(ctx context.Context, projectId, objectiveId int) error {
	res, err := r.db.NewDelete().
		Model((*model.ProjectObjective)(nil)).
		Where("project_id = ?", projectId).
		Where("objective_id = ?", objectiveId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fterr.ErrNotFound
	}
	return nil
}
