package model

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/uptrace/bun"
)

type Activity struct {
	bun.BaseModel `bun:"activities,alias:a"`

	ActivityID int             `bun:",pk,autoincrement" json:"id"`
	ProjectID  int             `json:"projectId"`
	Name       string          `json:"name"`
	Date       *time.Time      `json:"date"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
}
