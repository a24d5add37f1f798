package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/pkg/fterr"
)

type ActivityObjective struct {
	db *bun.DB
}

func NewActivityObjective(db *bun.DB) *ActivityObjective {
	return &ActivityObjective{db: db}
}

// InsertPlaceholders provisions bridge rows in a single batched write.
// The insert ignores conflicts on the (activity_id, objective_id) unique
// index, so concurrent first-time provisioning for the same activity never
// produces duplicate rows.
func (r *ActivityObjective) InsertPlaceholders(ctx context.Context, rows []*model.ActivityObjective) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := r.db.NewInsert().
		Model(&rows).
		On("CONFLICT (activity_id, objective_id) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *ActivityObjective) GetRowsByActivityId(ctx context.Context, activityId int) ([]*model.ActivityObjectiveRow, error) {
	rows := make([]*model.ActivityObjectiveRow, 0)
	err := r.db.NewSelect().
		TableExpr("activity_objectives AS ao").
		Join("JOIN objectives AS o ON o.objective_id = ao.objective_id").
		ColumnExpr("ao.objective_id").
		ColumnExpr("o.title").
		ColumnExpr("o.unit").
		ColumnExpr("o.category").
		ColumnExpr("ao.amount").
		Where("ao.activity_id = ?", activityId).
		Order("ao.objective_id ASC").
		Scan(ctx, &rows)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return rows, nil
}

func (r *ActivityObjective) UpdateAmount(ctx context.Context, activityId, objectiveId int, amount null.Float) error {
	res, err := r.db.NewUpdate().
		Model((*model.ActivityObjective)(nil)).
		Set("amount = ?", amount).
		Where("activity_id = ?", activityId).
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

/**
 * @param startDate inclusive
 * @param endDate inclusive
 */
func (r *ActivityObjective) GetGenericReportRows(
	ctx context.Context, projectId int, objectiveId int, startDate time.Time, endDate time.Time,
) ([]*model.GenericReportRow, error) {
	rows := make([]*model.GenericReportRow, 0)
	err := r.db.NewSelect().
		TableExpr("activity_objectives AS ao").
		Join("JOIN activities AS a ON a.activity_id = ao.activity_id").
		ColumnExpr("a.activity_id").
		ColumnExpr("a.name AS activity_name").
		ColumnExpr("a.date AS activity_date").
		ColumnExpr("ao.amount").
		Where("a.project_id = ?", projectId).
		Where("ao.objective_id = ?", objectiveId).
		Where("a.date >= ?", startDate).
		Where("a.date <= ?", endDate).
		Order("activity_date ASC").
		Scan(ctx, &rows)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return rows, nil
}
