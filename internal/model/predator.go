package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Predator is a catalog sub-type of predator monitoring work, e.g.
// "traps established", "traps checked", "catches".
type Predator struct {
	bun.BaseModel `bun:"predators,alias:pd"`

	PredatorID int    `bun:",pk,autoincrement" json:"id"`
	SubType    string `json:"subType"`
}

// ActivityPredator is one activity's predator monitoring record. DateStart
// and DateEnd never precede constant.PredatorRecordEpoch; creation clamps
// them to it.
type ActivityPredator struct {
	bun.BaseModel `bun:"activity_predators,alias:ap"`

	ActivityPredatorID int        `bun:",pk,autoincrement" json:"id"`
	ActivityID         int        `json:"activityId"`
	PredatorID         int        `json:"predatorId"`
	Measurement        null.Float `json:"measurement"`
	DateStart          time.Time  `json:"dateStart"`
	DateEnd            time.Time  `json:"dateEnd"`
	Rats               null.Int   `json:"rats"`
	Possums            null.Int   `json:"possums"`
	Mustelids          null.Int   `json:"mustelids"`
	Hedgehogs          null.Int   `json:"hedgehogs"`
	Others             null.Int   `json:"others"`
}
