package service

import (
	"context"

	"github.com/samber/lo"

	"fieldtrack.dev/backend/internal/model"
	"fieldtrack.dev/backend/internal/repo"
)

// ObjectiveLink keeps the activity-objective bridge complete against the
// owning project's objective catalog.
type ObjectiveLink struct {
	ActivityRepo          *repo.Activity
	ProjectObjectiveRepo  *repo.ProjectObjective
	ActivityObjectiveRepo *repo.ActivityObjective
}

func NewObjectiveLink(
	activityRepo *repo.Activity,
	projectObjectiveRepo *repo.ProjectObjective,
	activityObjectiveRepo *repo.ActivityObjective,
) *ObjectiveLink {
	return &ObjectiveLink{
		ActivityRepo:          activityRepo,
		ProjectObjectiveRepo:  projectObjectiveRepo,
		ActivityObjectiveRepo: activityObjectiveRepo,
	}
}

// EnsureActivityObjectives lazily provisions one bridge row per project
// objective of the activity's owning project, then returns the activity's
// full (objective, amount) set. Placeholders are written with a NULL amount.
// Repeated and concurrent calls never increase the row count beyond one row
// per project objective: the insert is a single batched conflict-ignoring
// write over the composite unique index.
func (s *ObjectiveLink) EnsureActivityObjectives(ctx context.Context, activityId int) ([]*model.ActivityObjectiveRow, error) {
	activity, err := s.ActivityRepo.GetActivityById(ctx, activityId)
	if err != nil {
		return nil, err
	}

	pairs, err := s.ProjectObjectiveRepo.GetProjectObjectivesByProjectId(ctx, activity.ProjectID)
	if err != nil {
		return nil, err
	}

	existing, err := s.ActivityObjectiveRepo.GetRowsByActivityId(ctx, activityId)
	if err != nil {
		return nil, err
	}

	missing := missingObjectivePlaceholders(activityId, pairs, existing)
	if len(missing) > 0 {
		if err := s.ActivityObjectiveRepo.InsertPlaceholders(ctx, missing); err != nil {
			return nil, err
		}
		// re-read so the response reflects rows won by concurrent calls too
		return s.ActivityObjectiveRepo.GetRowsByActivityId(ctx, activityId)
	}

	return existing, nil
}

// missingObjectivePlaceholders computes the bridge rows an activity still
// lacks for the given project objective pairs. Amounts are left NULL.
func missingObjectivePlaceholders(
	activityId int,
	pairs []*model.ProjectObjective,
	existing []*model.ActivityObjectiveRow,
) []*model.ActivityObjective {
	existingIds := lo.SliceToMap(existing, func(row *model.ActivityObjectiveRow) (int, struct{}) {
		return row.ObjectiveID, struct{}{}
	})

	missing := make([]*model.ActivityObjective, 0)
	for _, pair := range pairs {
		if _, ok := existingIds[pair.ObjectiveID]; ok {
			continue
		}
		missing = append(missing, &model.ActivityObjective{
			ActivityID:  activityId,
			ObjectiveID: pair.ObjectiveID,
		})
	}
	return missing
}
