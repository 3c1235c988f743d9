package model

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrDanglingConnection = errors.New("connection endpoint does not resolve to a socket")
	ErrDegenerateNode     = errors.New("node has no sockets on either side")
	ErrDuplicateID        = errors.New("duplicate object id")
	ErrVariantChanged     = errors.New("rewrite changed the object variant")
	ErrParse              = errors.New("malformed graph text")
)

// GraphError provides structured error information for model operations.
type GraphError struct {
	Op      string // Operation that failed (e.g., "NewGraph", "Rewrite")
	Entity  string // Entity type (e.g., "connection", "node")
	Name    string // Entity id or label, if known
	Cause   error  // Underlying error
	Context string // Additional context
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	switch {
	case e.Name != "" && e.Context != "":
		return fmt.Sprintf("%s %s %s (%s): %v", e.Op, e.Entity, e.Name, e.Context, e.Cause)
	case e.Name != "":
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.Name, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

// Node sets the entity to "node" with the given label.
func (b *ErrorBuilder) Node(label string) *ErrorBuilder {
	b.err.Entity = "node"
	b.err.Name = label
	return b
}

// Connection sets the entity to "connection" with the given id.
func (b *ErrorBuilder) Connection(id fmt.Stringer) *ErrorBuilder {
	b.err.Entity = "connection"
	b.err.Name = id.String()
	return b
}

// Object sets the entity to "object" with the given id.
func (b *ErrorBuilder) Object(id fmt.Stringer) *ErrorBuilder {
	b.err.Entity = "object"
	b.err.Name = id.String()
	return b
}

// Line sets the entity to "line" with the given line number.
func (b *ErrorBuilder) Line(n int) *ErrorBuilder {
	b.err.Entity = "line"
	b.err.Name = fmt.Sprint(n)
	return b
}

// Cause sets the underlying error.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Context adds free-form context.
func (b *ErrorBuilder) Context(ctx string) *ErrorBuilder {
	b.err.Context = ctx
	return b
}

// Build returns the constructed error.
func (b *ErrorBuilder) Build() *GraphError {
	if b.err.Entity == "" {
		b.err.Entity = "graph"
	}
	e := b.err
	return &e
}
