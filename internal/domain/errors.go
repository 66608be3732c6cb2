package domain

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by repositories and services. Callers branch with
// errors.Is; the concrete *Error carries entity/field context so the
// transport layer can render a precise message.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("already exists")
	ErrUnavailable = errors.New("storage unavailable")
)

type Error struct {
	kind   error
	Entity string
	Field  string
	Value  any
	cause  error
}

func (e *Error) Error() string {
	switch e.kind {
	case ErrNotFound:
		return fmt.Sprintf("%s with %s %v not found", e.Entity, e.Field, e.Value)
	case ErrConflict:
		return fmt.Sprintf("%s with %s %v already exists", e.Entity, e.Field, e.Value)
	case ErrUnavailable:
		if e.cause != nil {
			return fmt.Sprintf("storage unavailable: %v", e.cause)
		}
		return "storage unavailable"
	}
	return e.kind.Error()
}

func (e *Error) Is(target error) bool { return target == e.kind }
func (e *Error) Unwrap() error        { return e.cause }

// NotFound reports a missing entity looked up by primary key.
func NotFound(entity string, id any) *Error {
	return &Error{kind: ErrNotFound, Entity: entity, Field: "ID", Value: id}
}

// NotFoundBy reports a missing entity looked up by another key, e.g. a
// settings row by user id.
func NotFoundBy(entity, field string, value any) *Error {
	return &Error{kind: ErrNotFound, Entity: entity, Field: field, Value: value}
}

// Conflict reports a uniqueness violation on the given field.
func Conflict(entity, field string, value any) *Error {
	return &Error{kind: ErrConflict, Entity: entity, Field: field, Value: value}
}

// Unavailable wraps a lost or unreachable datastore connection.
func Unavailable(cause error) *Error {
	return &Error{kind: ErrUnavailable, cause: cause}
}
