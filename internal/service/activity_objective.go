package service

import (
	"context"

	"gopkg.in/guregu/null.v3"

	"fieldtrack.dev/backend/internal/repo"
)

type ActivityObjective struct {
	ActivityObjectiveRepo *repo.ActivityObjective
}

func NewActivityObjective(activityObjectiveRepo *repo.ActivityObjective) *ActivityObjective {
	return &ActivityObjective{ActivityObjectiveRepo: activityObjectiveRepo}
}

// UpdateAmount fills or clears one bridge row's measurement. The row must
// already be materialized; reading the activity's objectives provisions it.
func (s *ActivityObjective) UpdateAmount(ctx context.Context, activityId, objectiveId int, amount null.Float) error {
	return s.ActivityObjectiveRepo.UpdateAmount(ctx, activityId, objectiveId, amount)
}
