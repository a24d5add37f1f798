package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"fieldtrack.dev/backend/internal/model"
)

func TestMissingObjectivePlaceholders(t *testing.T) {
	pairs := []*model.ProjectObjective{
		{ProjectID: 1, ObjectiveID: 10},
		{ProjectID: 1, ObjectiveID: 11},
		{ProjectID: 1, ObjectiveID: 12},
	}

	t.Run("provisions every pair for a fresh activity", func(t *testing.T) {
		missing := missingObjectivePlaceholders(7, pairs, nil)
		assert.Len(t, missing, 3)
		for i, row := range missing {
			assert.Equal(t, 7, row.ActivityID)
			assert.Equal(t, pairs[i].ObjectiveID, row.ObjectiveID)
			assert.False(t, row.Amount.Valid, "placeholder amount must be NULL")
		}
	})

	t.Run("skips already materialized rows", func(t *testing.T) {
		existing := []*model.ActivityObjectiveRow{
			{ObjectiveID: 10, Amount: null.FloatFrom(5)},
			{ObjectiveID: 12},
		}
		missing := missingObjectivePlaceholders(7, pairs, existing)
		assert.Len(t, missing, 1)
		assert.Equal(t, 11, missing[0].ObjectiveID)
	})

	t.Run("idempotent once every pair exists", func(t *testing.T) {
		existing := []*model.ActivityObjectiveRow{
			{ObjectiveID: 10}, {ObjectiveID: 11}, {ObjectiveID: 12},
		}
		assert.Empty(t, missingObjectivePlaceholders(7, pairs, existing))
	})
}
