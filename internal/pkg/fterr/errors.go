package fterr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeReadOnly       = "READ_ONLY"
	CodeDuplicate      = "DUPLICATE_ENTRY"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrReadOnly is returned on an attempted mutation of a read-only catalog entry.
	ErrReadOnly = New(fiber.StatusForbidden, CodeReadOnly, "catalog entry is read-only and cannot be modified")

	// ErrDuplicate is returned when a catalog insert violates a uniqueness constraint.
	ErrDuplicate = New(fiber.StatusBadRequest, CodeDuplicate, "an entry with the same value already exists")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type FieldError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *FieldError {
	return &FieldError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e FieldError) Msg(format string, parts ...interface{}) *FieldError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e FieldError) WithExtras(extras Extras) *FieldError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *FieldError {
	// copy ErrInvalidRequest as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
