package service

import (
	"context"

	"fieldtrack.dev/backend/internal/constant"
	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/model/types"
	"fieldtrack.dev/backend/internal/repo"
	"fieldtrack.dev/backend/internal/util"
)

type Predator struct {
	PredatorRepo         *repo.Predator
	ActivityRepo         *repo.Activity
	ActivityPredatorRepo *repo.ActivityPredator
}

func NewPredator(
	predatorRepo *repo.Predator,
	activityRepo *repo.Activity,
	activityPredatorRepo *repo.ActivityPredator,
) *Predator {
	return &Predator{
		PredatorRepo:         predatorRepo,
		ActivityRepo:         activityRepo,
		ActivityPredatorRepo: activityPredatorRepo,
	}
}

func (s *Predator) GetPredators(ctx context.Context) ([]*model.Predator, error) {
	return s.PredatorRepo.GetPredators(ctx)
}

func (s *Predator) CreatePredator(ctx context.Context, req *types.CreatePredatorRequest) (*model.Predator, error) {
	predator := &model.Predator{SubType: req.SubType}
	if err := s.PredatorRepo.CreatePredator(ctx, predator); err != nil {
		return nil, err
	}
	return predator, nil
}

func (s *Predator) GetActivityPredators(ctx context.Context, activityId int) ([]*model.ActivityPredator, error) {
	if _, err := s.ActivityRepo.GetActivityById(ctx, activityId); err != nil {
		return nil, err
	}
	return s.ActivityPredatorRepo.GetActivityPredatorsByActivityId(ctx, activityId)
}

// CreateActivityPredator records one predator monitoring entry against an
// activity. Both range dates are clamped to the record epoch floor.
func (s *Predator) CreateActivityPredator(ctx context.Context, activityId int, req *types.CreateActivityPredatorRequest) (*model.ActivityPredator, error) {
	if _, err := s.ActivityRepo.GetActivityById(ctx, activityId); err != nil {
		return nil, err
	}
	if _, err := s.PredatorRepo.GetPredatorById(ctx, req.PredatorID); err != nil {
		return nil, err
	}

	dateStart, err := util.ParseCalendarDate(req.DateStart)
	if err != nil {
		return nil, err
	}
	dateEnd, err := util.ParseCalendarDate(req.DateEnd)
	if err != nil {
		return nil, err
	}

	record := &model.ActivityPredator{
		ActivityID:  activityId,
		PredatorID:  req.PredatorID,
		Measurement: req.Measurement,
		DateStart:   util.ClampDateFloor(dateStart, constant.PredatorRecordEpoch),
		DateEnd:     util.ClampDateFloor(dateEnd, constant.PredatorRecordEpoch),
		Rats:        req.Rats,
		Possums:     req.Possums,
		Mustelids:   req.Mustelids,
		Hedgehogs:   req.Hedgehogs,
		Others:      req.Others,
	}
	if err := s.ActivityPredatorRepo.CreateActivityPredator(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
