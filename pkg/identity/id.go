// Package identity provides the stable identifiers carried by every model,
// view, control and behavior, and an immutable store keyed by them.
package identity

import (
	"github.com/google/uuid"
)

// ID is a stable identity token. Copies made with With* helpers keep the ID
// of the value they were copied from.
type ID uuid.UUID

// Nil is the zero ID.
var Nil ID

// New returns a fresh random ID.
func New() ID {
	return ID(uuid.New())
}

// Parse parses the canonical string form of an ID.
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, err
	}
	return ID(u), nil
}

// String returns the canonical string form.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first eight hex digits, for logs.
func (id ID) Short() string {
	return id.String()[:8]
}

// IsNil reports whether id is the zero ID.
func (id ID) IsNil() bool {
	return id == Nil
}

// Identified is implemented by everything reconciliation can key on.
type Identified interface {
	ID() ID
}
