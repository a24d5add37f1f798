package types

import (
	"gopkg.in/guregu/null.v3"

	"fieldtrack.dev/backend/internal/model"
)

type CreateObjectiveRequest struct {
	Title string `json:"title" validate:"required"`
	Unit  string `json:"unit" validate:"required"`
	// Category defaults from the title's naming convention when omitted.
	Category model.ObjectiveCategory `json:"category" validate:"omitempty,oneof=general predator_control"`
}

type UpdateActivityObjectiveRequest struct {
	Amount null.Float `json:"amount"`
}

type UpdateRiskRequest struct {
	Likelihood   string `json:"likelihood" validate:"required"`
	Consequences string `json:"consequences" validate:"required"`
	ActivityID   int    `json:"activityId" validate:"required"`
	// ChosenControlIDs may be empty, meaning "deselect everything".
	ChosenControlIDs []int `json:"chosenControlIds"`
	// Title renames the owning risk title; ignored when the title is read-only.
	Title null.String `json:"title"`
}

type CreateRiskTitleRequest struct {
	Title      string `json:"title" validate:"required"`
	IsReadOnly bool   `json:"isReadOnly"`
}

type CreateRiskControlRequest struct {
	Control    string `json:"control" validate:"required"`
	IsReadOnly bool   `json:"isReadOnly"`
}

type UpdateRiskControlRequest struct {
	Control string `json:"control" validate:"required"`
}

type CreatePredatorRequest struct {
	SubType string `json:"subType" validate:"required"`
}

type CreateActivityPredatorRequest struct {
	PredatorID  int        `json:"predatorId" validate:"required"`
	Measurement null.Float `json:"measurement"`
	DateStart   string     `json:"dateStart" validate:"required"`
	DateEnd     string     `json:"dateEnd" validate:"required"`
	Rats        null.Int   `json:"rats"`
	Possums     null.Int   `json:"possums"`
	Mustelids   null.Int   `json:"mustelids"`
	Hedgehogs   null.Int   `json:"hedgehogs"`
	Others      null.Int   `json:"others"`
}

// ObjectiveReportRequest carries the query parameters of the report
// endpoint. Dates are calendar dates (YYYY-MM-DD).
type ObjectiveReportRequest struct {
	ProjectID   int    `validate:"required"`
	ObjectiveID int    `validate:"required"`
	StartDate   string `validate:"required"`
	EndDate     string `validate:"required"`
}
