package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"fieldtrack.dev/backend/internal/model"
)

type ActivityPredator struct {
	db *bun.DB
}

func NewActivityPredator(db *bun.DB) *ActivityPredator {
	return &ActivityPredator{db: db}
}

func (r *ActivityPredator) CreateActivityPredator(ctx context.Context, record *model.ActivityPredator) error {
	_, err := r.db.NewInsert().
		Model(record).
		Exec(ctx)
	return err
}

func (r *ActivityPredator) GetActivityPredatorsByActivityId(ctx context.Context, activityId int) ([]*model.ActivityPredator, error) {
	records := make([]*model.ActivityPredator, 0)
	err := r.db.NewSelect().
		Model(&records).
		Where("activity_id = ?", activityId).
		Order("date_start ASC").
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return records, nil
}

/**
 * @param startDate inclusive
 * @param endDate inclusive
 */
func (r *ActivityPredator) GetReportRows(
	ctx context.Context, projectId int, startDate time.Time, endDate time.Time,
) ([]*model.PredatorReportRow, error) {
	rows := make([]*model.PredatorReportRow, 0)
	err := r.db.NewSelect().
		TableExpr("activity_predators AS ap").
		Join("JOIN activities AS a ON a.activity_id = ap.activity_id").
		Join("JOIN predators AS pd ON pd.predator_id = ap.predator_id").
		ColumnExpr("a.activity_id").
		ColumnExpr("a.name AS activity_name").
		ColumnExpr("a.date AS activity_date").
		ColumnExpr("pd.sub_type").
		ColumnExpr("ap.measurement").
		ColumnExpr("ap.rats").
		ColumnExpr("ap.possums").
		ColumnExpr("ap.mustelids").
		ColumnExpr("ap.hedgehogs").
		ColumnExpr("ap.others").
		Where("a.project_id = ?", projectId).
		Where("a.date >= ?", startDate).
		Where("a.date <= ?", endDate).
		Order("activity_date ASC").
		Scan(ctx, &rows)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return rows, nil
}
