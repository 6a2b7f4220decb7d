package ui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"logpanel/internal/config/logger"
)

// UI creates a Bubble Tea program drawing the screen; handle drags go to resizer
type UI func(ctx context.Context, resizer Resizer) *tea.Program

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(screen *Screen, log logger.Logger) UI {
	return func(ctx context.Context, resizer Resizer) *tea.Program {
		model := NewModel(screen, resizer)

		if width, height, err := term.GetSize(os.Stdout.Fd()); err == nil {
			model.SetSize(width, height)
		}

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(ctx),
		)

		log.Debug().Msg("TUI: Program created via factory")

		return p
	}
}
