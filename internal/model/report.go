package model

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// GenericReportRow is one activity's contribution to a generic objective
// report, scanned from the activity_objectives JOIN activities query.
type GenericReportRow struct {
	ActivityID   int        `bun:"activity_id" json:"activityId"`
	ActivityName string     `bun:"activity_name" json:"activityName"`
	ActivityDate time.Time  `bun:"activity_date" json:"activityDate"`
	Amount       null.Float `bun:"amount" json:"amount"`
}

// GenericObjectiveReport is the flat-total report shape used by every
// objective category except predator control.
type GenericObjectiveReport struct {
	TotalAmount float64             `json:"totalAmount"`
	Rows        []*GenericReportRow `json:"rows"`
}

// PredatorReportRow carries the raw per-row fields of one predator
// monitoring record, regardless of which total (if any) the row feeds.
type PredatorReportRow struct {
	ActivityID   int        `bun:"activity_id" json:"activityId"`
	ActivityName string     `bun:"activity_name" json:"activityName"`
	ActivityDate time.Time  `bun:"activity_date" json:"activityDate"`
	SubType      string     `bun:"sub_type" json:"subType"`
	Measurement  null.Float `bun:"measurement" json:"measurement"`
	Rats         null.Int   `bun:"rats" json:"rats"`
	Possums      null.Int   `bun:"possums" json:"possums"`
	Mustelids    null.Int   `bun:"mustelids" json:"mustelids"`
	Hedgehogs    null.Int   `bun:"hedgehogs" json:"hedgehogs"`
	Others       null.Int   `bun:"others" json:"others"`
}

// CatchesBreakdown sums the five species counters independently, with NULL
// counters defaulted to 0.
type CatchesBreakdown struct {
	Rats      int64 `json:"rats"`
	Possums   int64 `json:"possums"`
	Mustelids int64 `json:"mustelids"`
	Hedgehogs int64 `json:"hedgehogs"`
	Others    int64 `json:"others"`
}

// PredatorObjectiveReport is the multi-bucket report shape for predator
// control objectives.
type PredatorObjectiveReport struct {
	TrapsEstablishedTotal float64              `json:"trapsEstablishedTotal"`
	TrapsCheckedTotal     float64              `json:"trapsCheckedTotal"`
	CatchesBreakdown      CatchesBreakdown     `json:"catchesBreakdown"`
	Rows                  []*PredatorReportRow `json:"rows"`
}

// ObjectiveReport is the envelope returned to the HTTP boundary. Consumers
// branch on Category: exactly one of Generic and Predator is set.
type ObjectiveReport struct {
	Category ObjectiveCategory        `json:"category"`
	Generic  *GenericObjectiveReport  `json:"generic,omitempty"`
	Predator *PredatorObjectiveReport `json:"predator,omitempty"`
}
