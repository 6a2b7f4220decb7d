package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the panel with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - handle and focus
	FgMuted   = lipgloss.Color("7")       // Light gray - timestamps
	FgBorder  = lipgloss.Color("8")       // Gray - separators and help text

	// Level colors
	FgInfo  = lipgloss.Color("12") // Blue
	FgWarn  = lipgloss.Color("11") // Yellow
	FgError = lipgloss.Color("9")  // Red
)

// HandleDragColor is used for the handle while a drag is in progress
var HandleDragColor = lipgloss.AdaptiveColor{Light: "#5b21b6", Dark: "#c4b5fd"}
