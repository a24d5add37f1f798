package repo

import (
	"context"

	"github.com/uptrace/bun"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/pkg/fterr"
	"fieldtrack.dev/backend/internal/repo/selector"
)

type RiskTitle struct {
	db  *bun.DB
	sel selector.S[model.RiskTitle]
}

func NewRiskTitle(db *bun.DB) *RiskTitle {
	return &RiskTitle{db: db, sel: selector.New[model.RiskTitle](db)}
}

func (r *RiskTitle) GetRiskTitles(ctx context.Context) ([]*model.RiskTitle, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("risk_title_id ASC")
	})
}

func (r *RiskTitle) GetRiskTitleById(ctx context.Context, riskTitleId int) (*model.RiskTitle, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("risk_title_id = ?", riskTitleId)
	})
}

func (r *RiskTitle) CreateRiskTitle(ctx context.Context, title *model.RiskTitle) error {
	_, err := r.db.NewInsert().
		Model(title).
		Exec(ctx)
	return wrapDuplicate(err, "a risk title with the same name")
}

func (r *RiskTitle) UpdateRiskTitle(ctx context.Context, riskTitleId int, title string) error {
	res, err := r.db.NewUpdate().
		Model((*model.RiskTitle)(nil)).
		Set("title = ?", title).
		Where("risk_title_id = ?", riskTitleId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fterr.ErrNotFound
	}
	return nil
}
