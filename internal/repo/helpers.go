package repo

import (
	"github.com/pkg/errors"
	"github.com/uptrace/bun/driver/pgdriver"

	"fieldtrack.dev/backend/internal/pkg/fterr"
)

// pgUniqueViolation is the SQLSTATE of a unique-constraint violation.
const pgUniqueViolation = "23505"

// wrapDuplicate maps a unique-constraint violation onto fterr.ErrDuplicate,
// keeping any other error untouched.
func wrapDuplicate(err error, what string) error {
	if err == nil {
		return nil
	}
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
		return fterr.ErrDuplicate.Msg("%s already exists", what)
	}
	return err
}
