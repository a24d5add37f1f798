package model

import (
	"github.com/uptrace/bun"
)

// RiskTitle is a catalog entry naming a class of risk. Read-only titles are
// immutable by ordinary update paths.
type RiskTitle struct {
	bun.BaseModel `bun:"risk_titles,alias:rt"`

	RiskTitleID int    `bun:",pk,autoincrement" json:"id"`
	Title       string `json:"title"`
	IsReadOnly  bool   `json:"isReadOnly"`
}

// RiskControl is a catalog mitigation belonging to a RiskTitle. Controls are
// shared across all rating instances of the same title.
type RiskControl struct {
	bun.BaseModel `bun:"risk_controls,alias:rc"`

	RiskControlID int    `bun:",pk,autoincrement" json:"id"`
	RiskTitleID   int    `json:"riskTitleId"`
	Control       string `json:"control"`
	IsReadOnly    bool   `json:"isReadOnly"`
}

// Risk is a per-activity rating instance of a RiskTitle.
type Risk struct {
	bun.BaseModel `bun:"risks,alias:r"`

	RiskID       int    `bun:",pk,autoincrement" json:"id"`
	RiskTitleID  int    `json:"riskTitleId"`
	Likelihood   string `json:"likelihood"`
	Consequences string `json:"consequences"`
}

// ActivityRiskControl records that a control is selected for an activity.
type ActivityRiskControl struct {
	bun.BaseModel `bun:"activity_risk_controls,alias:arc"`

	ActivityRiskControlID int  `bun:",pk,autoincrement" json:"id"`
	ActivityID            int  `json:"activityId"`
	RiskControlID         int  `json:"riskControlId"`
	IsChecked             bool `json:"isChecked"`
}
