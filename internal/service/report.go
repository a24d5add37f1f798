package service

import (
	"context"
	"strings"

	"fieldtrack.dev/backend/internal/constant"
	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/model/types"
	"fieldtrack.dev/backend/internal/repo"
	"fieldtrack.dev/backend/internal/util"
	"fieldtrack.dev/backend/internal/util/rekuest"
)

// Report aggregates per-activity measurements into date-ranged compliance
// reports, routed by the objective's catalog category.
type Report struct {
	ObjectiveRepo         *repo.Objective
	ActivityObjectiveRepo *repo.ActivityObjective
	ActivityPredatorRepo  *repo.ActivityPredator
}

func NewReport(
	objectiveRepo *repo.Objective,
	activityObjectiveRepo *repo.ActivityObjective,
	activityPredatorRepo *repo.ActivityPredator,
) *Report {
	return &Report{
		ObjectiveRepo:         objectiveRepo,
		ActivityObjectiveRepo: activityObjectiveRepo,
		ActivityPredatorRepo:  activityPredatorRepo,
	}
}

func (s *Report) BuildObjectiveReport(ctx context.Context, req *types.ObjectiveReportRequest) (*model.ObjectiveReport, error) {
	if err := rekuest.ValidStruct(req); err != nil {
		return nil, err
	}

	startDate, err := util.ParseCalendarDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := util.ParseCalendarDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	objective, err := s.ObjectiveRepo.GetObjectiveById(ctx, req.ObjectiveID)
	if err != nil {
		return nil, err
	}

	if objective.Category == model.ObjectiveCategoryPredatorControl {
		rows, err := s.ActivityPredatorRepo.GetReportRows(ctx, req.ProjectID, startDate, endDate)
		if err != nil {
			return nil, err
		}
		return &model.ObjectiveReport{
			Category: objective.Category,
			Predator: aggregatePredator(rows),
		}, nil
	}

	rows, err := s.ActivityObjectiveRepo.GetGenericReportRows(ctx, req.ProjectID, req.ObjectiveID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return &model.ObjectiveReport{
		Category: objective.Category,
		Generic:  aggregateGeneric(rows),
	}, nil
}

// aggregateGeneric sums row amounts into the grand total, treating NULL
// amounts as 0. Rows arrive ordered by activity date ascending.
func aggregateGeneric(rows []*model.GenericReportRow) *model.GenericObjectiveReport {
	report := &model.GenericObjectiveReport{
		Rows: rows,
	}
	for _, row := range rows {
		report.TotalAmount += row.Amount.ValueOrZero()
	}
	return report
}

// aggregatePredator accumulates each row into at most one of three mutually
// exclusive buckets keyed by the row's catalog sub-type. Rows with an
// unrecognized sub-type stay in the detail list but feed no total; that is
// policy, not an error.
func aggregatePredator(rows []*model.PredatorReportRow) *model.PredatorObjectiveReport {
	report := &model.PredatorObjectiveReport{
		Rows: rows,
	}
	for _, row := range rows {
		switch strings.ToLower(row.SubType) {
		case constant.PredatorSubTypeTrapsEstablished:
			report.TrapsEstablishedTotal += row.Measurement.ValueOrZero()
		case constant.PredatorSubTypeTrapsChecked:
			report.TrapsCheckedTotal += row.Measurement.ValueOrZero()
		case constant.PredatorSubTypeCatches:
			report.CatchesBreakdown.Rats += row.Rats.ValueOrZero()
			report.CatchesBreakdown.Possums += row.Possums.ValueOrZero()
			report.CatchesBreakdown.Mustelids += row.Mustelids.ValueOrZero()
			report.CatchesBreakdown.Hedgehogs += row.Hedgehogs.ValueOrZero()
			report.CatchesBreakdown.Others += row.Others.ValueOrZero()
		}
	}
	return report
}
