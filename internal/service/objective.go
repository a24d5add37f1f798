package service

import (
	"context"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/model/types"
	"fieldtrack.dev/backend/internal/repo"
)

type Objective struct {
	ObjectiveRepo *repo.Objective
}

func NewObjective(objectiveRepo *repo.Objective) *Objective {
	return &Objective{ObjectiveRepo: objectiveRepo}
}

func (s *Objective) GetObjectives(ctx context.Context) ([]*model.Objective, error) {
	return s.ObjectiveRepo.GetObjectives(ctx)
}

func (s *Objective) GetObjectiveById(ctx context.Context, objectiveId int) (*model.Objective, error) {
	return s.ObjectiveRepo.GetObjectiveById(ctx, objectiveId)
}

func (s *Objective) CreateObjective(ctx context.Context, req *types.CreateObjectiveRequest) (*model.Objective, error) {
	category := req.Category
	if category == "" {
		category = model.DeriveObjectiveCategory(req.Title)
	}

	objective := &model.Objective{
		Title:    req.Title,
		Unit:     req.Unit,
		Category: category,
	}
	if err := s.ObjectiveRepo.CreateObjective(ctx, objective); err != nil {
		return nil, err
	}
	return objective, nil
}
