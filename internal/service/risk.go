package service

import (
	"context"

	"github.com/samber/lo"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/model/types"
	"fieldtrack.dev/backend/internal/repo"
)

type Risk struct {
	RiskRepo *repo.Risk
}

func NewRisk(riskRepo *repo.Risk) *Risk {
	return &Risk{RiskRepo: riskRepo}
}

// UpdateRisk re-rates a risk instance and replaces the activity's
// selected-control set for the risk's owning title with exactly
// req.ChosenControlIDs. A requested rename of a read-only title is silently
// skipped; the rating and control updates still proceed. Returns the
// activity's resulting control rows for the title.
func (s *Risk) UpdateRisk(ctx context.Context, riskId int, req *types.UpdateRiskRequest) ([]*model.ActivityRiskControl, error) {
	risk, err := s.RiskRepo.GetRiskById(ctx, riskId)
	if err != nil {
		return nil, err
	}

	err = s.RiskRepo.ApplyUpdate(ctx, &repo.RiskUpdateParams{
		RiskID:           risk.RiskID,
		RiskTitleID:      risk.RiskTitleID,
		Likelihood:       req.Likelihood,
		Consequences:     req.Consequences,
		RenameTitle:      req.Title,
		ActivityID:       req.ActivityID,
		ChosenControlIDs: lo.Uniq(req.ChosenControlIDs),
	})
	if err != nil {
		return nil, err
	}

	return s.RiskRepo.GetActivityRiskControls(ctx, req.ActivityID, risk.RiskTitleID)
}
