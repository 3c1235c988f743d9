package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/peacock/pkg/canvas"
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/input"
	"github.com/dd0wney/peacock/pkg/logging"
	"github.com/dd0wney/peacock/pkg/model"
)

type fakeRecorder struct {
	events      map[string]int
	patches     map[string]int
	rebuilds    int
	foldErrors  map[string]int
	connections int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{
		events:     make(map[string]int),
		patches:    make(map[string]int),
		foldErrors: make(map[string]int),
	}
}

func (r *fakeRecorder) Event(kind string)               { r.events[kind]++ }
func (r *fakeRecorder) Patches(kind string, n int)      { r.patches[kind] += n }
func (r *fakeRecorder) Rebuild(time.Duration, int, int) { r.rebuilds++ }
func (r *fakeRecorder) FoldError(kind string)           { r.foldErrors[kind]++ }
func (r *fakeRecorder) ConnectionsCreated(n int)        { r.connections += n }

func newManager(t *testing.T, g model.Graph) (*Manager, stubFactory, *fakeRecorder) {
	t.Helper()
	f := newStubFactory()
	rec := newFakeRecorder()
	m := NewManager(f, WithRecorder(rec))
	require.NoError(t, m.Rebuild(g))
	return m, f, rec
}

func TestManagerBehaviorLifecycle(t *testing.T) {
	g, _, _ := twoNodes(t)
	m, _, _ := newManager(t, g)
	a, b := g.Nodes[0], g.Nodes[1]

	assert.Len(t, m.Behaviors(a.ID()), 1)
	assert.Len(t, m.Behaviors(b.ID()), 1)
	assert.Empty(t, m.Behaviors(g.ID()))
	first := m.Behaviors(a.ID())[0].ID()

	require.NoError(t, m.Rebuild(g.WithNode(a.MoveTo(geom.Pt(0, 0)))))
	assert.Equal(t, first, m.Behaviors(a.ID())[0].ID(), "behavior should survive the rebuild")

	onlyA, err := model.NewGraph(g.Nodes[:1], nil)
	require.NoError(t, err)
	require.NoError(t, m.Rebuild(onlyA))
	assert.Empty(t, m.Behaviors(b.ID()), "behaviors of a removed control are dropped")
	assert.Equal(t, first, m.Behaviors(a.ID())[0].ID())
	assert.Len(t, m.Controls(), 5)
}

func TestManagerRoutesBehaviorsBeforeControls(t *testing.T) {
	g, _, _ := twoNodes(t)
	m, f, rec := newManager(t, g)

	u := m.ProcessInput(input.Hover(geom.Pt(1, 1)))
	want := []string{
		"control:graph",
		"behavior:A", "control:A", "control:slot:A", "control:slot:X", "control:socket",
		"behavior:B", "control:B", "control:slot:B", "control:slot:Y", "control:socket",
		"control:connection",
	}
	assert.Equal(t, want, *f.log)
	assert.Equal(t, 2, u.Len())
	assert.Equal(t, 1, rec.events["mouse_move"])
}

func TestManagerBehaviorStateSurvivesEvents(t *testing.T) {
	g, _, _ := twoNodes(t)
	m, _, rec := newManager(t, g)
	a := g.Nodes[0]

	var err error
	for i := 0; i < 3; i++ {
		g, err = m.Handle(input.Clock{Elapsed: time.Second}, g)
		require.NoError(t, err)
	}
	require.Len(t, m.Behaviors(a.ID()), 1)
	assert.Equal(t, 3, m.Behaviors(a.ID())[0].(counter).n)
	assert.Equal(t, 6, rec.patches["behavior"])
}

func TestManagerApplyChangesFoldsModel(t *testing.T) {
	g, _, _ := twoNodes(t)
	m, _, _ := newManager(t, g)
	a := g.Nodes[0]

	u := NewUpdates()
	UpdateModelAs(u, a, func(n model.Node) model.Node { return n.MoveTo(geom.Pt(200, 200)) })
	next, err := m.ApplyChanges(u, g)
	require.NoError(t, err)

	moved, ok := next.Node(a.ID())
	require.True(t, ok)
	assert.Equal(t, geom.R(200, 200, 100, 45), moved.Rect)
	el, ok := m.Tree().Lookup(a.ID())
	require.True(t, ok)
	assert.Equal(t, geom.R(200, 200, 100, 45), el.Absolute())

	original, _ := g.Node(a.ID())
	assert.Equal(t, geom.R(10, 20, 100, 45), original.Rect, "input graph must not change")
}

func TestManagerApplyChangesReportsFoldErrors(t *testing.T) {
	g, _, _ := twoNodes(t)
	var logs bytes.Buffer
	f := newStubFactory()
	rec := newFakeRecorder()
	m := NewManager(f, WithRecorder(rec), WithLogger(logging.NewJSONLogger(&logs, logging.DebugLevel)))
	require.NoError(t, m.Rebuild(g))
	a, b := g.Nodes[0], g.Nodes[1]

	u := NewUpdates()
	UpdateModelAs(u, a, func(model.Node) model.Node { panic("bad patch") })
	UpdateModelAs(u, b, func(n model.Node) model.Node { return n.MoveTo(geom.Pt(0, 100)) })
	next, err := m.ApplyChanges(u, g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPatchPanicked)

	gotA, _ := next.Node(a.ID())
	gotB, _ := next.Node(b.ID())
	assert.Equal(t, a.Rect, gotA.Rect)
	assert.Equal(t, geom.R(0, 100, 100, 45), gotB.Rect)
	assert.Equal(t, 1, rec.foldErrors["model"])
	assert.True(t, strings.Contains(logs.String(), "ledger fold failed"))
	assert.True(t, strings.Contains(logs.String(), `"msg":"folding ledger"`))
	assert.True(t, strings.Contains(logs.String(), `"models":2`))
}

func TestManagerApplyChangesRejectsInvalidGraph(t *testing.T) {
	g, out, _ := twoNodes(t)
	m, _, _ := newManager(t, g)

	u := NewUpdates()
	UpdateModelAs(u, g, func(g model.Graph) model.Graph {
		return g.WithConnection(model.NewConnection(out.ID(), model.NewSocket("Number", true).ID()))
	})
	next, err := m.ApplyChanges(u, g)
	assert.ErrorIs(t, err, model.ErrDanglingConnection)
	assert.Len(t, next.Connections, 1, "the previous graph is kept")
}

// brokenFactory fails every Root call once broken is set.
type brokenFactory struct {
	stubFactory
	broken *bool
}

func (f brokenFactory) Root(g model.Graph) (Control, error) {
	if *f.broken {
		return nil, errors.New("factory unavailable")
	}
	return f.stubFactory.Root(g)
}

func TestManagerApplyChangesKeepsGraphWhenRebuildFails(t *testing.T) {
	g, _, _ := twoNodes(t)
	f := brokenFactory{stubFactory: newStubFactory(), broken: new(bool)}
	m := NewManager(f)
	require.NoError(t, m.Rebuild(g))
	a := g.Nodes[0]

	*f.broken = true
	u := NewUpdates()
	UpdateModelAs(u, a, func(n model.Node) model.Node { return n.MoveTo(geom.Pt(200, 200)) })
	next, err := m.ApplyChanges(u, g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "factory unavailable")

	kept, ok := next.Node(a.ID())
	require.True(t, ok)
	assert.Equal(t, a.Rect, kept.Rect, "graph must match the tree that is still shown")
	el, ok := m.Tree().Lookup(a.ID())
	require.True(t, ok)
	assert.Equal(t, a.Rect, el.Absolute())
}

func TestManagerCountsCreatedConnections(t *testing.T) {
	g, out, in := twoNodes(t)
	m, _, rec := newManager(t, g)

	u := NewUpdates()
	UpdateModelAs(u, g, func(g model.Graph) model.Graph {
		return g.WithConnection(model.NewConnection(in.ID(), out.ID()))
	})
	next, err := m.ApplyChanges(u, g)
	require.NoError(t, err)
	assert.Len(t, next.Connections, 2)
	assert.Equal(t, 1, rec.connections)
	assert.Equal(t, 1, rec.patches["model"])
}

func TestManagerAddBehavior(t *testing.T) {
	g, _, _ := twoNodes(t)
	m, f, _ := newManager(t, g)

	extra := counter{BehaviorBase: NewBehaviorBase(g.ID()), log: f.log}
	u := NewUpdates().AddBehavior(g, extra)
	_, err := m.ApplyChanges(u, g)
	require.NoError(t, err)
	bs := m.Behaviors(g.ID())
	require.Len(t, bs, 1)
	assert.Equal(t, extra.ID(), bs[0].ID())
}

func TestManagerDrawOrderAndFrames(t *testing.T) {
	g, _, _ := twoNodes(t)
	m, _, _ := newManager(t, g)

	rec := canvas.NewRecorder()
	m.Draw(rec)

	var texts []string
	for _, op := range rec.Filter(canvas.OpText) {
		texts = append(texts, op.Text)
	}
	want := []string{
		"graph",
		"A", "slot:A", "slot:X", "socket", "overlay",
		"B", "slot:B", "slot:Y", "socket", "overlay",
		"connection",
	}
	assert.Equal(t, want, texts)
	assert.Len(t, rec.Filter(canvas.OpPush), 6)
	assert.Len(t, rec.Filter(canvas.OpPop), 6)
	assert.Equal(t, 0, rec.Depth())

	for _, op := range rec.Filter(canvas.OpText) {
		if op.Text == "socket" {
			assert.Equal(t, 2, op.Depth, "sockets draw inside node and slot frames")
		}
		if op.Text == "overlay" {
			assert.Equal(t, 1, op.Depth, "overlays draw in the node frame")
		}
	}
}

// panicky panics while drawing.
type panicky struct{ stub }

func (p panicky) Draw(canvas.Canvas) canvas.Canvas { panic("draw failed") }

func TestManagerDrawPopsOnPanic(t *testing.T) {
	g, _, _ := twoNodes(t)
	m, _, _ := newManager(t, g)
	a := g.Nodes[0]
	m.tree = m.tree.withControls(func(c Control) Control {
		if c.ID() == a.ID() {
			return panicky{c.(stub)}
		}
		return c
	})

	rec := canvas.NewRecorder()
	assert.Panics(t, func() { m.Draw(rec) })
	assert.Equal(t, 0, rec.Depth(), "frames must be released when drawing panics")
}
