package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"logpanel/internal/app/ui/components"
)

// Resizer receives pointer events from the panel handle in surface units
type Resizer interface {
	SetViewport(height int)
	PointerDown(y int) bool
	PointerMove(y int) bool
	PointerUp()
	Dragging() bool
}

// screenMsg is delivered after the screen signals a change
type screenMsg struct{}

// tickMsg drives the pulse animation
type tickMsg time.Time

// Model draws a Screen at the bottom of the terminal
type Model struct {
	screen   *Screen
	resizer  Resizer
	snapshot Snapshot
	viewport viewport.Model
	help     help.Model
	keys     components.KeyMap
	pulse    *components.Pulse
	width    int
	height   int
	ready    bool
}

// NewModel creates a model for the screen, forwarding handle drags to resizer
func NewModel(screen *Screen, resizer Resizer) Model {
	return Model{
		screen:   screen,
		resizer:  resizer,
		snapshot: screen.Snapshot(),
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     components.DefaultKeyMap(),
		pulse:    components.NewPulse(),
	}
}

// Init starts listening to the screen and the animation tick
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForScreen(), tick())
}

func (m Model) waitForScreen() tea.Cmd {
	changed := m.screen.Changed()

	return func() tea.Msg {
		<-changed
		return screenMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// SetSize updates the terminal dimensions and the resize viewport
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ready = width > 0 && height > 0
	m.resizer.SetViewport(height * components.CellHeight)
	m.layout()
}

// panelRows is the number of terminal rows taken by the panel, handle included
func (m Model) panelRows() int {
	rows := m.snapshot.Height / components.CellHeight

	return max(min(rows, m.height), components.HandleRows+1)
}

// handleRow is the terminal row of the resize handle
func (m Model) handleRow() int {
	return max(m.height-m.panelRows(), 0)
}

func (m *Model) layout() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.panelRows()-components.HandleRows, 1)
	m.help.Width = m.width
	m.viewport.SetContent(m.renderEntries())
}

// refresh pulls a new snapshot and follows the newest entry after each batch
func (m *Model) refresh() {
	snapshot := m.screen.Snapshot()
	batch := snapshot.Scrolls != m.snapshot.Scrolls

	m.snapshot = snapshot
	m.layout()

	if batch {
		m.viewport.GotoBottom()
		m.pulse.Trigger()
	}
}
