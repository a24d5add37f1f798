package repo

import (
	"context"

	"github.com/uptrace/bun"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/pkg/fterr"
	"fieldtrack.dev/backend/internal/repo/selector"
)

type RiskControl struct {
	db  *bun.DB
	sel selector.S[model.RiskControl]
}

func NewRiskControl(db *bun.DB) *RiskControl {
	return &RiskControl{db: db, sel: selector.New[model.RiskControl](db)}
}

func (r *RiskControl) GetRiskControlsByTitleId(ctx context.Context, riskTitleId int) ([]*model.RiskControl, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("risk_title_id = ?", riskTitleId).Order("risk_control_id ASC")
	})
}

func (r *RiskControl) GetRiskControlById(ctx context.Context, riskControlId int) (*model.RiskControl, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("risk_control_id = ?", riskControlId)
	})
}

func (r *RiskControl) CreateRiskControl(ctx context.Context, control *model.RiskControl) error {
	_, err := r.db.NewInsert().
		Model(control).
		Exec(ctx)
	return wrapDuplicate(err, "a control with the same text for this risk title")
}

func (r *RiskControl) UpdateRiskControl(ctx context.Context, riskControlId int, control string) error {
	res, err := r.db.NewUpdate().
		Model((*model.RiskControl)(nil)).
		Set("control = ?", control).
		Where("risk_control_id = ?", riskControlId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fterr.ErrNotFound
	}
	return nil
}

func (r *RiskControl) DeleteRiskControl(ctx context.Context, riskControlId int) error {
	_, err := r.db.NewDelete().
		Model((*model.RiskControl)(nil)).
		Where("risk_control_id = ?", riskControlId).
		Exec(ctx)
	return err
}
