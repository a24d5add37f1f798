package model

import (
	"github.com/uptrace/bun"
)

// ProjectObjective links a project to a catalog objective. The
// (project_id, objective_id) pair is unique.
type ProjectObjective struct {
	bun.BaseModel `bun:"project_objectives,alias:po"`

	ProjectObjectiveID int `bun:",pk,autoincrement" json:"id"`
	ProjectID          int `json:"projectId"`
	ObjectiveID        int `json:"objectiveId"`
}
