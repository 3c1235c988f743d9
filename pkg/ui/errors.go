package ui

import (
	"errors"
	"fmt"

	"github.com/dd0wney/peacock/pkg/identity"
)

var (
	// ErrDuplicateID is returned when a factory emits two controls with the
	// same id in one tree.
	ErrDuplicateID = errors.New("duplicate control id")
	// ErrIdentityChanged is returned when a control or behavior patch
	// returns an object with a different id.
	ErrIdentityChanged = errors.New("patch changed object identity")
	// ErrPatchPanicked is wrapped by the FoldError of a patch that panicked.
	ErrPatchPanicked = errors.New("patch panicked")
)

// FoldError reports a ledger patch that could not be applied. The object it
// targets keeps the value reached before the failing patch.
type FoldError struct {
	Target identity.ID
	Kind   PatchKind
	// Index is the position of the failing patch in the ledger.
	Index int
	Cause error
}

func (e *FoldError) Error() string {
	return fmt.Sprintf("fold %s patch %d for %s: %v", e.Kind, e.Index, e.Target.Short(), e.Cause)
}

func (e *FoldError) Unwrap() error {
	return e.Cause
}
