package domain

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state optional used in update payloads for nullable
// columns: absent (leave unchanged), set to a value, or set to NULL.
// Plain pointers cannot tell a missing JSON key from an explicit null.
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// Set returns a Field carrying v.
func Set[T any](v T) Field[T] { return Field[T]{value: v, present: true} }

// Null returns a Field that clears the column.
func Null[T any]() Field[T] { return Field[T]{present: true, null: true} }

func (f Field[T]) Present() bool { return f.present }
func (f Field[T]) IsNull() bool  { return f.null }
func (f Field[T]) Value() T      { return f.value }

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.present = true
	if bytes.Equal(b, []byte("null")) {
		var zero T
		f.value = zero
		f.null = true
		return nil
	}
	f.null = false
	return json.Unmarshal(b, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
