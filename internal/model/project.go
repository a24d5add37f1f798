package model

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
)

type Project struct {
	bun.BaseModel `bun:"projects,alias:p"`

	ProjectID int             `bun:",pk,autoincrement" json:"id"`
	Name      string          `json:"name"`
	StartDate *time.Time      `json:"startDate"`
	EndDate   *time.Time      `json:"endDate"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}
