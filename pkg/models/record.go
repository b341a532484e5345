// Package models defines the typed records returned by the TMDB API and the
// validation contract every raw entity must satisfy before it becomes one.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is implemented by every typed API entity. Validate reports whether
// the decoded value satisfies the record's required shape.
type Record interface {
	Validate() error
}

// SchemaError reports a raw entity mapping that does not satisfy a record's
// required shape. Entity names the record type, Field the offending field.
type SchemaError struct {
	Entity string
	Field  string
	Err    error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("%s: field %q: %v", e.Entity, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: field %q does not satisfy the record shape", e.Entity, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Entity, e.Err)
	default:
		return fmt.Sprintf("%s: invalid entity", e.Entity)
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Decode unmarshals a raw entity mapping into a record and validates it.
// Any failure is reported as a *SchemaError; no partial record is usable
// on error.
func Decode[T Record](raw json.RawMessage) (T, error) {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, decodeError(entityName(rec), err)
	}
	if err := rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}

// decodeError converts a json unmarshal failure into a SchemaError,
// preserving the offending field name when the decoder reports one.
func decodeError(entity string, err error) *SchemaError {
	if ute, ok := err.(*json.UnmarshalTypeError); ok {
		return &SchemaError{Entity: entity, Field: ute.Field, Err: err}
	}
	return &SchemaError{Entity: entity, Err: err}
}

func entityName(v any) string {
	name := fmt.Sprintf("%T", v)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
