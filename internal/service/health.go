package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var ErrDatabaseNotReachable = errors.New("database not reachable")

type Health struct {
	DB *bun.DB
}

func NewHealth(db *bun.DB) *Health {
	return &Health{DB: db}
}

func (s *Health) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return errors.Wrap(ErrDatabaseNotReachable, err.Error())
	}

	return nil
}
