// Package term hosts the editor in a terminal with bubbletea. Terminal
// cells are scaled to graph units so the editor sees the same coordinates it
// would under a pixel canvas.
package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/input"
	"github.com/dd0wney/peacock/pkg/layout"
	"github.com/dd0wney/peacock/pkg/logging"
	"github.com/dd0wney/peacock/pkg/model"
	"github.com/dd0wney/peacock/pkg/ui"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true).
			PaddingLeft(1)
)

// GraphObserver is told about every graph the editor produces.
type GraphObserver interface {
	UpdateGraphMetrics(g model.Graph)
}

type tickMsg time.Time

// Options configures an App.
type Options struct {
	CellWidth  float64
	CellHeight float64
	// Tick is the Clock interval. Zero disables the clock.
	Tick     time.Duration
	Logger   logging.Logger
	Observer GraphObserver
	// Layout is applied by the arrange key. Nil disables the key.
	Layout layout.Layout
}

// App is the bubbletea model driving a ui.Manager.
type App struct {
	manager *ui.Manager
	graph   model.Graph
	opts    Options
	keys    KeyMap
	help    help.Model

	cols, rows int
	mouse      input.MouseStatus
	lastTick   time.Time
	err        error
}

// New returns an App editing g. The manager must already be built for g.
func New(m *ui.Manager, g model.Graph, opts Options) *App {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	return &App{
		manager: m,
		graph:   g,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		cols:    80,
		rows:    24,
	}
}

// Graph returns the current graph.
func (a *App) Graph() model.Graph { return a.graph }

// Err returns the error from the last event, if any.
func (a *App) Err() error { return a.err }

func (a *App) Init() tea.Cmd {
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	if a.opts.Tick <= 0 {
		return nil
	}
	return tea.Tick(a.opts.Tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		case key.Matches(msg, a.keys.Arrange) && a.opts.Layout != nil:
			a.arrange()
			return a, nil
		}
		a.handle(input.KeyDown{Status: a.mouse, Key: msg.String()})

	case tea.MouseMsg:
		if e := a.MouseEvent(msg); e != nil {
			a.handle(e)
		}

	case tea.WindowSizeMsg:
		a.cols, a.rows = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.handle(input.Resize{Status: a.mouse, Size: geom.Size{
			Width:  float64(msg.Width) * a.opts.CellWidth,
			Height: float64(msg.Height) * a.opts.CellHeight,
		}})

	case tickMsg:
		now := time.Time(msg)
		var elapsed time.Duration
		if !a.lastTick.IsZero() {
			elapsed = now.Sub(a.lastTick)
		}
		a.lastTick = now
		a.handle(input.Clock{Status: a.mouse, Elapsed: elapsed})
		return a, a.tick()
	}
	return a, nil
}

// Point returns the graph location of the middle of a terminal cell.
func (a *App) Point(col, row int) geom.Point {
	return geom.Pt((float64(col)+0.5)*a.opts.CellWidth, (float64(row)+0.5)*a.opts.CellHeight)
}

// MouseEvent converts a terminal mouse message and updates the tracked
// button state. Unsupported messages return nil.
func (a *App) MouseEvent(msg tea.MouseMsg) input.Event {
	a.mouse.Location = a.Point(msg.X, msg.Y)

	if tea.MouseEvent(msg).IsWheel() {
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		delta := 1.0
		if msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight {
			delta = -1
		}
		return input.MouseWheel{Status: a.mouse, Delta: delta}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		b := button(msg.Button)
		a.setButton(b, true)
		return input.MouseDown{Status: a.mouse, Button: b}
	case tea.MouseActionRelease:
		b := button(msg.Button)
		if b == input.ButtonNone {
			b = a.held()
		}
		a.setButton(b, false)
		return input.MouseUp{Status: a.mouse, Button: b}
	case tea.MouseActionMotion:
		if b := button(msg.Button); b != input.ButtonNone {
			a.setButton(b, true)
		}
		return input.MouseMove{Status: a.mouse}
	}
	return nil
}

func button(b tea.MouseButton) input.Button {
	switch b {
	case tea.MouseButtonLeft:
		return input.ButtonLeft
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle
	case tea.MouseButtonRight:
		return input.ButtonRight
	default:
		return input.ButtonNone
	}
}

func (a *App) setButton(b input.Button, down bool) {
	switch b {
	case input.ButtonLeft:
		a.mouse.LeftDown = down
	case input.ButtonMiddle:
		a.mouse.MiddleDown = down
	case input.ButtonRight:
		a.mouse.RightDown = down
	}
}

// held returns the pressed button, left first.
func (a *App) held() input.Button {
	switch {
	case a.mouse.LeftDown:
		return input.ButtonLeft
	case a.mouse.RightDown:
		return input.ButtonRight
	case a.mouse.MiddleDown:
		return input.ButtonMiddle
	default:
		return input.ButtonNone
	}
}

func (a *App) handle(e input.Event) {
	g, err := a.manager.Handle(e, a.graph)
	a.graph, a.err = g, err
	if err != nil {
		a.opts.Logger.Warn("event failed", logging.EventKind(input.Kind(e)), logging.Error(err))
	}
	if a.opts.Observer != nil {
		a.opts.Observer.UpdateGraphMetrics(g)
	}
}

// arrange moves every node with the configured layout. Behaviors keep
// their state across the rebuild.
func (a *App) arrange() {
	g := layout.Apply(a.graph, a.opts.Layout)
	if err := a.manager.Rebuild(g); err != nil {
		a.err = err
		a.opts.Logger.Error("arrange failed", logging.Error(err))
		return
	}
	a.graph, a.err = g, nil
	a.opts.Logger.Info("nodes arranged", logging.Int("nodes", len(g.Nodes)))
	if a.opts.Observer != nil {
		a.opts.Observer.UpdateGraphMetrics(g)
	}
}

// Frame draws the editor onto a grid of the given size.
func (a *App) Frame(cols, rows int) *Grid {
	grid := NewGrid(cols, rows, a.opts.CellWidth, a.opts.CellHeight)
	a.manager.Draw(grid)
	return grid
}

func (a *App) View() string {
	helpView := a.help.View(a.keys)
	status := a.status()
	rows := a.rows - lipgloss.Height(helpView) - lipgloss.Height(status)
	return lipgloss.JoinVertical(lipgloss.Left,
		a.Frame(a.cols, max(rows, 0)).Render(),
		status,
		helpView,
	)
}

func (a *App) status() string {
	if a.err != nil {
		return errorStyle.Render(a.err.Error())
	}
	return statusStyle.Render(fmt.Sprintf("%d nodes  %d connections",
		len(a.graph.Nodes), len(a.graph.Connections)))
}
