package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"logpanel/internal/app/ui/components"
)

// Update handles terminal, screen and timer messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case screenMsg:
		m.refresh()
		return m, m.waitForScreen()

	case tickMsg:
		m.pulse.Update()
		return m, tick()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := msg.Y * components.CellHeight

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y == m.handleRow() {
			m.resizer.PointerDown(y)
		}

		return m, nil

	case msg.Action == tea.MouseActionMotion:
		m.resizer.PointerMove(y)
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		m.resizer.PointerUp()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Follow):
		m.viewport.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.Grow):
		m.nudge(1)
		return m, nil
	case key.Matches(msg, m.keys.Shrink):
		m.nudge(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// nudge moves the handle by whole rows as a one-step drag
func (m Model) nudge(rows int) {
	y := m.handleRow() * components.CellHeight

	if !m.resizer.PointerDown(y) {
		return
	}

	m.resizer.PointerMove(y - rows*components.CellHeight)
	m.resizer.PointerUp()
}
