package repo

import (
	"context"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/repo/selector"
)

type Risk struct {
	db  *bun.DB
	sel selector.S[model.Risk]
}

func NewRisk(db *bun.DB) *Risk {
	return &Risk{db: db, sel: selector.New[model.Risk](db)}
}

func (r *Risk) GetRiskById(ctx context.Context, riskId int) (*model.Risk, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("risk_id = ?", riskId)
	})
}

// RiskUpdateParams is the unit of work applied by ApplyUpdate.
type RiskUpdateParams struct {
	RiskID       int
	RiskTitleID  int
	Likelihood   string
	Consequences string

	// RenameTitle renames the owning risk title when valid. Read-only titles
	// silently keep their name; the rest of the update still proceeds.
	RenameTitle null.String

	ActivityID       int
	ChosenControlIDs []int
}

// renameApplies reports whether a rename submitted alongside a rating update
// may touch the owning title. Read-only titles keep their name; the rest of
// the update still proceeds.
func renameApplies(rename null.String, isReadOnly bool) bool {
	return rename.Valid && !isReadOnly
}

// chosenControlRows builds the bridge rows reinserted by ApplyUpdate. The
// result depends only on the submitted control set, never on what was
// selected before.
func chosenControlRows(activityId int, controlIds []int) []*model.ActivityRiskControl {
	chosen := make([]*model.ActivityRiskControl, 0, len(controlIds))
	for _, controlId := range controlIds {
		chosen = append(chosen, &model.ActivityRiskControl{
			ActivityID:    activityId,
			RiskControlID: controlId,
			IsChecked:     true,
		})
	}
	return chosen
}

// ApplyUpdate re-rates the risk and makes the activity's selected-control set
// for the owning title exactly equal to ChosenControlIDs. The whole sequence
// runs in one transaction so no reader ever observes the transient state
// between the scoped delete and the reinsert.
func (r *Risk) ApplyUpdate(ctx context.Context, p *RiskUpdateParams) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*model.Risk)(nil)).
			Set("likelihood = ?", p.Likelihood).
			Set("consequences = ?", p.Consequences).
			Where("risk_id = ?", p.RiskID).
			Exec(ctx)
		if err != nil {
			return err
		}

		if p.RenameTitle.Valid {
			// lock the title row so the read-only check and the rename
			// cannot interleave with a concurrent flag flip
			title := new(model.RiskTitle)
			err = tx.NewSelect().
				Model(title).
				Where("risk_title_id = ?", p.RiskTitleID).
				For("UPDATE").
				Scan(ctx)
			if err != nil {
				return err
			}

			if renameApplies(p.RenameTitle, title.IsReadOnly) {
				_, err = tx.NewUpdate().
					Model((*model.RiskTitle)(nil)).
					Set("title = ?", p.RenameTitle.String).
					Where("risk_title_id = ?", p.RiskTitleID).
					Exec(ctx)
				if err != nil {
					return err
				}
			}
		}

		// The delete is scoped by title, not by risk instance: controls are
		// shared catalog items across instances of the same title.
		titleControlIds := tx.NewSelect().
			Model((*model.RiskControl)(nil)).
			Column("risk_control_id").
			Where("risk_title_id = ?", p.RiskTitleID)

		_, err = tx.NewDelete().
			Model((*model.ActivityRiskControl)(nil)).
			Where("activity_id = ?", p.ActivityID).
			Where("risk_control_id IN (?)", titleControlIds).
			Exec(ctx)
		if err != nil {
			return err
		}

		chosen := chosenControlRows(p.ActivityID, p.ChosenControlIDs)
		if len(chosen) == 0 {
			return nil
		}

		_, err = tx.NewInsert().Model(&chosen).Exec(ctx)
		return err
	})
}

func (r *Risk) GetActivityRiskControls(ctx context.Context, activityId int, riskTitleId int) ([]*model.ActivityRiskControl, error) {
	titleControlIds := r.db.NewSelect().
		Model((*model.RiskControl)(nil)).
		Column("risk_control_id").
		Where("risk_title_id = ?", riskTitleId)

	controls := make([]*model.ActivityRiskControl, 0)
	err := r.db.NewSelect().
		Model(&controls).
		Where("activity_id = ?", activityId).
		Where("risk_control_id IN (?)", titleControlIds).
		Order("risk_control_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return controls, nil
}
