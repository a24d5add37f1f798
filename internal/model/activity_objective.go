package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// ActivityObjective holds one activity's measurement against one project
// objective. Rows are provisioned lazily with a NULL amount so the UI can
// render every objective of the owning project, even unfilled ones. The
// (activity_id, objective_id) pair carries a unique index; provisioning
// relies on it for conflict-ignoring inserts.
type ActivityObjective struct {
	bun.BaseModel `bun:"activity_objectives,alias:ao"`

	ActivityObjectiveID int        `bun:",pk,autoincrement" json:"id"`
	ActivityID          int        `json:"activityId"`
	ObjectiveID         int        `json:"objectiveId"`
	Amount              null.Float `json:"amount"`
}

// ActivityObjectiveRow is an ActivityObjective joined with its catalog
// objective, as returned to the UI after provisioning.
type ActivityObjectiveRow struct {
	ObjectiveID int               `bun:"objective_id" json:"objectiveId"`
	Title       string            `bun:"title" json:"title"`
	Unit        string            `bun:"unit" json:"unit"`
	Category    ObjectiveCategory `bun:"category" json:"category"`
	Amount      null.Float        `bun:"amount" json:"amount"`
}
