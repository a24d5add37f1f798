package service

import (
	"context"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/model/types"
	"fieldtrack.dev/backend/internal/pkg/fterr"
	"fieldtrack.dev/backend/internal/repo"
)

// RiskCatalog manages the risk title and control catalogs. Unlike the
// in-transaction rename of Risk.UpdateRisk, catalog edits of read-only rows
// are rejected outright.
type RiskCatalog struct {
	RiskTitleRepo   *repo.RiskTitle
	RiskControlRepo *repo.RiskControl
}

func NewRiskCatalog(riskTitleRepo *repo.RiskTitle, riskControlRepo *repo.RiskControl) *RiskCatalog {
	return &RiskCatalog{
		RiskTitleRepo:   riskTitleRepo,
		RiskControlRepo: riskControlRepo,
	}
}

func (s *RiskCatalog) GetRiskTitles(ctx context.Context) ([]*model.RiskTitle, error) {
	return s.RiskTitleRepo.GetRiskTitles(ctx)
}

func (s *RiskCatalog) CreateRiskTitle(ctx context.Context, req *types.CreateRiskTitleRequest) (*model.RiskTitle, error) {
	title := &model.RiskTitle{
		Title:      req.Title,
		IsReadOnly: req.IsReadOnly,
	}
	if err := s.RiskTitleRepo.CreateRiskTitle(ctx, title); err != nil {
		return nil, err
	}
	return title, nil
}

func (s *RiskCatalog) RenameRiskTitle(ctx context.Context, riskTitleId int, title string) (*model.RiskTitle, error) {
	existing, err := s.RiskTitleRepo.GetRiskTitleById(ctx, riskTitleId)
	if err != nil {
		return nil, err
	}
	if existing.IsReadOnly {
		return nil, fterr.ErrReadOnly.Msg("risk title %d is read-only and cannot be renamed", riskTitleId)
	}

	if err := s.RiskTitleRepo.UpdateRiskTitle(ctx, riskTitleId, title); err != nil {
		return nil, err
	}
	existing.Title = title
	return existing, nil
}

func (s *RiskCatalog) GetRiskControls(ctx context.Context, riskTitleId int) ([]*model.RiskControl, error) {
	if _, err := s.RiskTitleRepo.GetRiskTitleById(ctx, riskTitleId); err != nil {
		return nil, err
	}
	return s.RiskControlRepo.GetRiskControlsByTitleId(ctx, riskTitleId)
}

func (s *RiskCatalog) CreateRiskControl(ctx context.Context, riskTitleId int, req *types.CreateRiskControlRequest) (*model.RiskControl, error) {
	if _, err := s.RiskTitleRepo.GetRiskTitleById(ctx, riskTitleId); err != nil {
		return nil, err
	}

	control := &model.RiskControl{
		RiskTitleID: riskTitleId,
		Control:     req.Control,
		IsReadOnly:  req.IsReadOnly,
	}
	if err := s.RiskControlRepo.CreateRiskControl(ctx, control); err != nil {
		return nil, err
	}
	return control, nil
}

func (s *RiskCatalog) UpdateRiskControl(ctx context.Context, riskControlId int, req *types.UpdateRiskControlRequest) (*model.RiskControl, error) {
	existing, err := s.RiskControlRepo.GetRiskControlById(ctx, riskControlId)
	if err != nil {
		return nil, err
	}
	if existing.IsReadOnly {
		return nil, fterr.ErrReadOnly.Msg("risk control %d is read-only and cannot be edited", riskControlId)
	}

	if err := s.RiskControlRepo.UpdateRiskControl(ctx, riskControlId, req.Control); err != nil {
		return nil, err
	}
	existing.Control = req.Control
	return existing, nil
}

func (s *RiskCatalog) DeleteRiskControl(ctx context.Context, riskControlId int) error {
	existing, err := s.RiskControlRepo.GetRiskControlById(ctx, riskControlId)
	if err != nil {
		return err
	}
	if existing.IsReadOnly {
		return fterr.ErrReadOnly.Msg("risk control %d is read-only and cannot be deleted", riskControlId)
	}

	return s.RiskControlRepo.DeleteRiskControl(ctx, riskControlId)
}
