package ui

import (
	"fmt"

	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/model"
)

// PatchKind selects which table a patch targets.
type PatchKind int

const (
	PatchModel PatchKind = iota
	PatchControl
	PatchBehavior
	PatchAddBehavior
)

func (k PatchKind) String() string {
	switch k {
	case PatchModel:
		return "model"
	case PatchControl:
		return "control"
	case PatchBehavior:
		return "behavior"
	case PatchAddBehavior:
		return "add_behavior"
	default:
		return "unknown"
	}
}

// Patch is one deferred change. Exactly one of the function fields, or
// added for PatchAddBehavior, is set according to Kind.
type Patch struct {
	Target identity.ID
	Kind   PatchKind

	model    func(model.Object) model.Object
	control  func(Control) Control
	behavior func(Behavior) Behavior
	added    Behavior
}

// Updates is the ledger of changes proposed while routing one input event.
// Registering a patch never touches the target; the manager folds the
// ledger once routing is done. The zero value is an empty ledger.
type Updates struct {
	patches []Patch
}

// NewUpdates returns an empty ledger.
func NewUpdates() *Updates {
	return &Updates{}
}

func (u *Updates) add(p Patch) *Updates {
	u.patches = append(u.patches, p)
	return u
}

// UpdateModel schedules f for the model object m.
func (u *Updates) UpdateModel(m identity.Identified, f func(model.Object) model.Object) *Updates {
	return u.add(Patch{Target: m.ID(), Kind: PatchModel, model: f})
}

// UpdateControl schedules f for control c. The result must keep c's id.
func (u *Updates) UpdateControl(c identity.Identified, f func(Control) Control) *Updates {
	return u.add(Patch{Target: c.ID(), Kind: PatchControl, control: f})
}

// UpdateBehavior schedules f for behavior b.
func (u *Updates) UpdateBehavior(b identity.Identified, f func(Behavior) Behavior) *Updates {
	return u.add(Patch{Target: b.ID(), Kind: PatchBehavior, behavior: f})
}

// AddBehavior attaches b to the control c when the ledger is applied.
func (u *Updates) AddBehavior(c identity.Identified, b Behavior) *Updates {
	return u.add(Patch{Target: c.ID(), Kind: PatchAddBehavior, added: b})
}

// UpdateModelAs schedules f for a model object of a known variant. The
// patch fails the fold if the object is of another variant.
func UpdateModelAs[M model.Object](u *Updates, m M, f func(M) M) *Updates {
	return u.UpdateModel(m, func(o model.Object) model.Object {
		return f(as[M](o))
	})
}

// UpdateControlAs is UpdateModelAs for controls.
func UpdateControlAs[C Control](u *Updates, c C, f func(C) C) *Updates {
	return u.UpdateControl(c, func(o Control) Control {
		return f(as[C](o))
	})
}

// UpdateBehaviorAs is UpdateModelAs for behaviors.
func UpdateBehaviorAs[B Behavior](u *Updates, b B, f func(B) B) *Updates {
	return u.UpdateBehavior(b, func(o Behavior) Behavior {
		return f(as[B](o))
	})
}

func as[T any](v any) T {
	t, ok := v.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("ui: patch expects %T, got %T", zero, v))
	}
	return t
}

// Len returns the number of registered patches.
func (u *Updates) Len() int {
	if u == nil {
		return 0
	}
	return len(u.patches)
}

// Patches returns a copy of the registered patches in registration order.
func (u *Updates) Patches() []Patch {
	if u == nil {
		return nil
	}
	out := make([]Patch, len(u.patches))
	copy(out, u.patches)
	return out
}

// UpdatedModels returns the distinct model ids with patches, in order of
// first registration.
func (u *Updates) UpdatedModels() []identity.ID { return u.targets(PatchModel) }

// UpdatedControls is UpdatedModels for control patches.
func (u *Updates) UpdatedControls() []identity.ID { return u.targets(PatchControl) }

// UpdatedBehaviors is UpdatedModels for behavior patches.
func (u *Updates) UpdatedBehaviors() []identity.ID { return u.targets(PatchBehavior) }

func (u *Updates) targets(kind PatchKind) []identity.ID {
	if u == nil {
		return nil
	}
	seen := make(map[identity.ID]bool)
	var out []identity.ID
	for _, p := range u.patches {
		if p.Kind == kind && !seen[p.Target] {
			seen[p.Target] = true
			out = append(out, p.Target)
		}
	}
	return out
}

// NewBehaviors returns the behaviors added to the given control.
func (u *Updates) NewBehaviors(controlID identity.ID) []Behavior {
	if u == nil {
		return nil
	}
	var out []Behavior
	for _, p := range u.patches {
		if p.Kind == PatchAddBehavior && p.Target == controlID {
			out = append(out, p.added)
		}
	}
	return out
}

// ApplyToModel folds every model patch for m's id over m in registration
// order. If a patch panics the fold stops and the value reached so far is
// returned with a *FoldError.
func (u *Updates) ApplyToModel(m model.Object) (model.Object, error) {
	return fold(u, PatchModel, m, func(p Patch, v model.Object) model.Object { return p.model(v) })
}

// ApplyToControl folds the control patches for c's id like ApplyToModel. A
// fold that ends on a different id is rejected with ErrIdentityChanged.
func (u *Updates) ApplyToControl(c Control) (Control, error) {
	out, err := fold(u, PatchControl, c, func(p Patch, v Control) Control { return p.control(v) })
	if err == nil && out.ID() != c.ID() {
		return c, &FoldError{Target: c.ID(), Kind: PatchControl, Cause: ErrIdentityChanged}
	}
	return out, err
}

// ApplyToBehavior is ApplyToControl for behaviors.
func (u *Updates) ApplyToBehavior(b Behavior) (Behavior, error) {
	out, err := fold(u, PatchBehavior, b, func(p Patch, v Behavior) Behavior { return p.behavior(v) })
	if err == nil && out.ID() != b.ID() {
		return b, &FoldError{Target: b.ID(), Kind: PatchBehavior, Cause: ErrIdentityChanged}
	}
	return out, err
}

func fold[T identity.Identified](u *Updates, kind PatchKind, v T, apply func(Patch, T) T) (out T, err error) {
	out = v
	if u == nil {
		return out, nil
	}
	id := v.ID()
	for i, p := range u.patches {
		if p.Kind != kind || p.Target != id {
			continue
		}
		next, ferr := applyOne(p, out, apply)
		if ferr != nil {
			ferr.Index = i
			return out, ferr
		}
		out = next
	}
	return out, nil
}

func applyOne[T any](p Patch, v T, apply func(Patch, T) T) (out T, err *FoldError) {
	defer func() {
		if r := recover(); r != nil {
			err = &FoldError{Target: p.Target, Kind: p.Kind, Cause: fmt.Errorf("%w: %v", ErrPatchPanicked, r)}
		}
	}()
	return apply(p, v), nil
}

func (u *Updates) countOf(kind PatchKind) int {
	if u == nil {
		return 0
	}
	n := 0
	for _, p := range u.patches {
		if p.Kind == kind {
			n++
		}
	}
	return n
}
