package model

import (
	"strings"

	"github.com/uptrace/bun"
)

// ObjectiveCategory selects the aggregation strategy for an objective's
// compliance report. It is fixed at catalog creation; report code dispatches
// on it and never inspects title text.
type ObjectiveCategory string

const (
	ObjectiveCategoryGeneral         ObjectiveCategory = "general"
	ObjectiveCategoryPredatorControl ObjectiveCategory = "predator_control"
)

// DeriveObjectiveCategory maps a legacy objective title onto a category.
// Titles containing "predator control" anywhere, in any case, were routed
// to the predator aggregation path before the category column existed; the
// same convention seeds the column when a client omits it on creation.
func DeriveObjectiveCategory(title string) ObjectiveCategory {
	if strings.Contains(strings.ToLower(title), "predator control") {
		return ObjectiveCategoryPredatorControl
	}
	return ObjectiveCategoryGeneral
}

type Objective struct {
	bun.BaseModel `bun:"objectives,alias:o"`

	ObjectiveID int               `bun:",pk,autoincrement" json:"id"`
	Title       string            `json:"title"`
	Unit        string            `json:"unit"`
	Category    ObjectiveCategory `json:"category"`
}
