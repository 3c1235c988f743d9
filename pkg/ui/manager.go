package ui

import (
	"errors"
	"time"

	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/identity"
	"github.com/dd0wney/peacock/pkg/input"
	"github.com/dd0wney/peacock/pkg/logging"
	"github.com/dd0wney/peacock/pkg/model"
)

// Recorder receives frame-loop measurements.
type Recorder interface {
	Event(kind string)
	Patches(kind string, n int)
	Rebuild(d time.Duration, controls, behaviors int)
	FoldError(kind string)
	ConnectionsCreated(n int)
}

type nopRecorder struct{}

func (nopRecorder) Event(string)                    {}
func (nopRecorder) Patches(string, int)             {}
func (nopRecorder) Rebuild(time.Duration, int, int) {}
func (nopRecorder) FoldError(string)                {}
func (nopRecorder) ConnectionsCreated(int)          {}

// Manager owns the control tree and the behavior table and drives one
// input event at a time through them. It is not safe for concurrent use.
type Manager struct {
	factory   Factory
	tree      *Tree
	behaviors map[identity.ID][]Behavior
	logger    logging.Logger
	recorder  Recorder
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger logs through l under the "ui" component.
func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.logger = l.With(logging.Component("ui")) }
}

// WithRecorder sends frame-loop measurements to r.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) { m.recorder = r }
}

// NewManager returns a manager with no tree; call Rebuild before routing
// input.
func NewManager(f Factory, opts ...Option) *Manager {
	m := &Manager{
		factory:   f,
		behaviors: make(map[identity.ID][]Behavior),
		logger:    logging.NewNopLogger(),
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Rebuild regenerates the control tree for g, merging it with the current
// tree, and syncs the behavior table.
func (m *Manager) Rebuild(g model.Graph) error {
	start := time.Now()
	root, err := m.factory.Root(g)
	if err != nil {
		return err
	}
	tree, err := Reconcile(m.tree, root, m.factory)
	if err != nil {
		return err
	}
	m.tree = tree
	added, dropped := m.syncBehaviors()

	elapsed := time.Since(start)
	m.recorder.Rebuild(elapsed, tree.Len(), m.behaviorCount())
	m.logger.Debug("rebuilt control tree",
		logging.Controls(tree.Len()),
		logging.Int("behaviors_added", added),
		logging.Int("behaviors_dropped", dropped),
		logging.Latency(elapsed))
	return nil
}

// SetFactory replaces the factory and rebuilds from scratch. Controls and
// behaviors made by the previous factory are discarded.
func (m *Manager) SetFactory(f Factory, g model.Graph) error {
	m.factory = f
	m.tree = nil
	m.behaviors = make(map[identity.ID][]Behavior)
	return m.Rebuild(g)
}

func (m *Manager) syncBehaviors() (added, dropped int) {
	for _, el := range m.tree.Elements() {
		id := el.ID()
		if _, ok := m.behaviors[id]; ok {
			continue
		}
		bs := el.Control().DefaultBehaviors()
		m.behaviors[id] = bs
		added += len(bs)
	}
	for id, bs := range m.behaviors {
		if !m.tree.Contains(id) {
			dropped += len(bs)
			delete(m.behaviors, id)
		}
	}
	return added, dropped
}

func (m *Manager) behaviorCount() int {
	n := 0
	for _, bs := range m.behaviors {
		n += len(bs)
	}
	return n
}

// ProcessInput routes in to every element in depth-first pre-order, the
// element's behaviors first and then its control, and returns the ledger
// they filled.
func (m *Manager) ProcessInput(in input.Event) *Updates {
	kind := input.Kind(in)
	m.recorder.Event(kind)
	u := NewUpdates()
	if m.tree == nil {
		return u
	}
	for _, el := range m.tree.Elements() {
		for _, b := range m.behaviors[el.ID()] {
			u = b.Process(el, in, u)
		}
		u = el.Control().Process(el, in, u)
	}
	if u.Len() > 0 && m.logger.Enabled(logging.DebugLevel) {
		m.logger.Debug("routed input", logging.EventKind(kind), logging.Patches(u.Len()))
	}
	return u
}

// ApplyChanges folds u into the behaviors, the controls and g, then
// rebuilds the tree from the new graph. Patches that fail leave their
// target at the last good value; their errors are returned joined with any
// rebuild error. If the folded graph does not validate or cannot be
// rebuilt, g is returned unchanged.
func (m *Manager) ApplyChanges(u *Updates, g model.Graph) (model.Graph, error) {
	for _, kind := range []PatchKind{PatchModel, PatchControl, PatchBehavior, PatchAddBehavior} {
		if n := u.countOf(kind); n > 0 {
			m.recorder.Patches(kind.String(), n)
		}
	}
	if u.Len() == 0 {
		return g, nil
	}
	if m.logger.Enabled(logging.DebugLevel) {
		m.logger.Debug("folding ledger",
			logging.Int("models", len(u.UpdatedModels())),
			logging.Int("controls", len(u.UpdatedControls())),
			logging.Int("behaviors", len(u.UpdatedBehaviors())))
	}

	var errs []error
	report := func(err error) {
		if err == nil {
			return
		}
		var fe *FoldError
		kind := "model"
		if errors.As(err, &fe) {
			kind = fe.Kind.String()
		}
		m.recorder.FoldError(kind)
		m.logger.Error("ledger fold failed", logging.Operation(kind), logging.Error(err))
		errs = append(errs, err)
	}

	if m.tree != nil {
		for _, el := range m.tree.Elements() {
			id := el.ID()
			bs := m.behaviors[id]
			next := make([]Behavior, 0, len(bs))
			for _, b := range bs {
				nb, err := u.ApplyToBehavior(b)
				report(err)
				next = append(next, nb)
			}
			m.behaviors[id] = append(next, u.NewBehaviors(id)...)
		}
		m.tree = m.tree.withControls(func(c Control) Control {
			nc, err := u.ApplyToControl(c)
			report(err)
			return nc
		})
	}

	next, err := model.Rewrite(g, func(o model.Object) (model.Object, error) {
		return u.ApplyToModel(o)
	})
	report(err)
	if err := next.Validate(); err != nil {
		m.logger.Error("folded graph is invalid", logging.Error(err))
		return g, errors.Join(append(errs, err)...)
	}
	if n := len(next.Connections) - len(g.Connections); n > 0 {
		m.recorder.ConnectionsCreated(n)
	}
	if err := m.Rebuild(next); err != nil {
		m.logger.Error("rebuild after fold failed", logging.Error(err))
		return g, errors.Join(append(errs, err)...)
	}
	return next, errors.Join(errs...)
}

// Handle processes one input event to completion.
func (m *Manager) Handle(in input.Event, g model.Graph) (model.Graph, error) {
	return m.ApplyChanges(m.ProcessInput(in), g)
}

// Draw draws the tree depth-first: each control inside its frame, then its
// children, then its behaviors' overlays.
func (m *Manager) Draw(cv canvas.Canvas) canvas.Canvas {
	if m.tree.Len() == 0 {
		return cv
	}
	return m.draw(m.tree.Root(), cv)
}

func (m *Manager) draw(el Element, cv canvas.Canvas) (out canvas.Canvas) {
	c := el.Control()
	if f := c.Frame(); !f.IsEmpty() {
		pushed := cv.PushClipAndTranslate(f)
		cv = pushed
		defer func() {
			if out == nil {
				pushed.Pop()
				return
			}
			out = out.Pop()
		}()
	}
	cv = c.Draw(cv)
	for _, ch := range el.Children() {
		cv = m.draw(ch, cv)
	}
	for _, b := range m.behaviors[el.ID()] {
		cv = b.Draw(el, cv)
	}
	return cv
}

// Tree returns the current control tree, nil before the first Rebuild.
func (m *Manager) Tree() *Tree { return m.tree }

// Behaviors returns the behaviors attached to a control id.
func (m *Manager) Behaviors(id identity.ID) []Behavior {
	bs := m.behaviors[id]
	out := make([]Behavior, len(bs))
	copy(out, bs)
	return out
}

// Controls returns the controls of the current tree in depth-first
// pre-order.
func (m *Manager) Controls() []Control {
	els := m.tree.Elements()
	out := make([]Control, len(els))
	for i, el := range els {
		out[i] = el.Control()
	}
	return out
}
