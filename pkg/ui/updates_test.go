package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/model"
)

func relabel(suffix string) func(model.Slot) model.Slot {
	return func(s model.Slot) model.Slot {
		s.Label += suffix
		return s
	}
}

func TestUpdatesFoldInRegistrationOrder(t *testing.T) {
	s := model.NewSlot("x", "Number", false, nil, nil)
	u := NewUpdates()
	UpdateModelAs(u, s, relabel("1"))
	UpdateModelAs(u, s, relabel("2"))

	got, err := u.ApplyToModel(s)
	if err != nil {
		t.Fatalf("ApplyToModel() error = %v", err)
	}
	if label := got.(model.Slot).Label; label != "x12" {
		t.Errorf("label = %q, want x12", label)
	}
	if s.Label != "x" {
		t.Error("ApplyToModel modified the original")
	}
}

func TestUpdatesUnknownIDIsUnchanged(t *testing.T) {
	s := model.NewSlot("x", "Number", false, nil, nil)
	other := model.NewSlot("y", "Number", false, nil, nil)
	u := NewUpdates()
	UpdateModelAs(u, other, relabel("!"))

	got, err := u.ApplyToModel(s)
	if err != nil || got.(model.Slot).Label != "x" {
		t.Errorf("ApplyToModel() = %v, %v, want unchanged", got, err)
	}

	var empty *Updates
	if got, err := empty.ApplyToModel(s); err != nil || got.ID() != s.ID() {
		t.Errorf("nil ledger ApplyToModel() = %v, %v", got, err)
	}
}

func TestUpdatesFailureIsPerObject(t *testing.T) {
	a := model.NewSlot("a", "Number", false, nil, nil)
	b := model.NewSlot("b", "Number", false, nil, nil)
	u := NewUpdates()
	UpdateModelAs(u, a, relabel("1"))
	UpdateModelAs(u, b, relabel("1"))
	UpdateModelAs(u, a, func(model.Slot) model.Slot { panic("boom") })
	UpdateModelAs(u, a, relabel("3"))
	UpdateModelAs(u, b, relabel("2"))

	gotA, err := u.ApplyToModel(a)
	var fe *FoldError
	if !errors.As(err, &fe) {
		t.Fatalf("ApplyToModel(a) error = %v, want *FoldError", err)
	}
	if fe.Target != a.ID() || fe.Kind != PatchModel || fe.Index != 2 {
		t.Errorf("FoldError = %+v", fe)
	}
	if !errors.Is(err, ErrPatchPanicked) {
		t.Errorf("error %v should wrap ErrPatchPanicked", err)
	}
	if label := gotA.(model.Slot).Label; label != "a1" {
		t.Errorf("a label = %q, want last good value a1", label)
	}

	gotB, err := u.ApplyToModel(b)
	if err != nil || gotB.(model.Slot).Label != "b12" {
		t.Errorf("ApplyToModel(b) = %v, %v, want b12", gotB, err)
	}
}

func TestTypedPatchRejectsOtherVariant(t *testing.T) {
	c := counter{BehaviorBase: NewBehaviorBase(identity.New())}
	u := NewUpdates()
	UpdateBehaviorAs(u, c, func(c counter) counter {
		c.n++
		return c
	})

	// *counter shares the id but is not the variant the patch expects.
	_, err := u.ApplyToBehavior(&c)
	if !errors.Is(err, ErrPatchPanicked) {
		t.Fatalf("ApplyToBehavior() error = %v, want ErrPatchPanicked", err)
	}

	got, err := u.ApplyToBehavior(c)
	if err != nil || got.(counter).n != 1 {
		t.Errorf("ApplyToBehavior() = %+v, %v", got, err)
	}
}

func TestUpdatesIntrospection(t *testing.T) {
	a := model.NewSlot("a", "Number", false, nil, nil)
	b := model.NewSlot("b", "Number", false, nil, nil)
	controlID := identity.New()
	c1 := counter{BehaviorBase: NewBehaviorBase(controlID)}
	c2 := counter{BehaviorBase: NewBehaviorBase(controlID)}

	u := NewUpdates()
	UpdateModelAs(u, b, relabel("1"))
	UpdateModelAs(u, a, relabel("1"))
	UpdateModelAs(u, b, relabel("2"))
	UpdateBehaviorAs(u, c1, func(c counter) counter { return c })
	u.AddBehavior(idOnly(controlID), c2)

	if u.Len() != 5 {
		t.Errorf("Len() = %d, want 5", u.Len())
	}
	if diff := cmp.Diff([]identity.ID{b.ID(), a.ID()}, u.UpdatedModels()); diff != "" {
		t.Errorf("UpdatedModels() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]identity.ID{c1.ID()}, u.UpdatedBehaviors()); diff != "" {
		t.Errorf("UpdatedBehaviors() mismatch (-want +got):\n%s", diff)
	}
	if len(u.UpdatedControls()) != 0 {
		t.Errorf("UpdatedControls() = %v, want none", u.UpdatedControls())
	}
	added := u.NewBehaviors(controlID)
	if len(added) != 1 || added[0].ID() != c2.ID() {
		t.Errorf("NewBehaviors() = %v", added)
	}
	kinds := make([]PatchKind, 0, u.Len())
	for _, p := range u.Patches() {
		kinds = append(kinds, p.Kind)
	}
	want := []PatchKind{PatchModel, PatchModel, PatchModel, PatchBehavior, PatchAddBehavior}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Patches() kinds mismatch (-want +got):\n%s", diff)
	}
}

type idOnly identity.ID

func (i idOnly) ID() identity.ID { return identity.ID(i) }

func TestApplyToBehaviorRejectsIdentityChange(t *testing.T) {
	b := counter{BehaviorBase: NewBehaviorBase(identity.New())}
	u := NewUpdates()
	u.UpdateBehavior(b, func(Behavior) Behavior {
		return counter{BehaviorBase: NewBehaviorBase(identity.New())}
	})
	got, err := u.ApplyToBehavior(b)
	if !errors.Is(err, ErrIdentityChanged) {
		t.Fatalf("ApplyToBehavior() error = %v, want ErrIdentityChanged", err)
	}
	if got.ID() != b.ID() {
		t.Error("ApplyToBehavior() should return the original on identity change")
	}
}

// TestFoldOrderProperty checks that any sequence of patches on one object
// composes left to right.
func TestFoldOrderProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("patches compose in registration order", prop.ForAll(
		func(suffixes []string) bool {
			s := model.NewSlot("", "Number", false, nil, nil)
			u := NewUpdates()
			for _, sfx := range suffixes {
				UpdateModelAs(u, s, relabel(sfx))
			}
			got, err := u.ApplyToModel(s)
			return err == nil && got.(model.Slot).Label == strings.Join(suffixes, "")
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
