package components

import (
	"github.com/charmbracelet/lipgloss"

	"logpanel/internal/app/surface"
)

// Common styles shared across the panel views
var (
	// HandleStyle for the resize handle row
	HandleStyle = lipgloss.NewStyle().
			Foreground(FgPrimary).
			Bold(true)

	// HandleDraggingStyle for the handle row during a drag
	HandleDraggingStyle = lipgloss.NewStyle().
				Foreground(HandleDragColor).
				Bold(true)

	// TimestampStyle for the bracketed timestamp
	TimestampStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// ContinuationStyle for the gutter of wrapped lines
	ContinuationStyle = lipgloss.NewStyle().
				Foreground(FgBorder)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// EmptyStateStyle for an attached panel with no entries yet
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Italic(true)

	// PulseStyle for the activity indicator
	PulseStyle = lipgloss.NewStyle().
			Foreground(FgPrimary)
)

var levelStyles = map[string]lipgloss.Style{
	surface.ClassInfo:  lipgloss.NewStyle().Foreground(FgInfo),
	surface.ClassWarn:  lipgloss.NewStyle().Foreground(FgWarn).Bold(true),
	surface.ClassError: lipgloss.NewStyle().Foreground(FgError).Bold(true),
}

// LevelStyle returns the label style for a fragment class
func LevelStyle(class string) lipgloss.Style {
	if style, ok := levelStyles[class]; ok {
		return style
	}

	return levelStyles[surface.ClassInfo]
}
