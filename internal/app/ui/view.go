package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"logpanel/internal/app/surface"
	"logpanel/internal/app/ui/components"
)

const (
	handleGlyph       = "─"
	continuationGlyph = "│ "
)

// View draws blank rows above the panel, then the handle and the entries
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	var b strings.Builder

	b.WriteString(strings.Repeat("\n", m.handleRow()))
	b.WriteString(m.renderHandle())
	b.WriteString("\n")

	switch {
	case !m.snapshot.Mounted:
		b.WriteString(components.EmptyStateStyle.Render("Panel detached"))
	case len(m.snapshot.Entries) == 0:
		b.WriteString(components.EmptyStateStyle.Render("Waiting for messages…"))
	default:
		b.WriteString(m.viewport.View())
	}

	return b.String()
}

func (m Model) renderHandle() string {
	style := components.HandleStyle
	if m.resizer.Dragging() {
		style = components.HandleDraggingStyle
	}

	title := fmt.Sprintf(" %s logs %d ", m.pulse.Render(components.PulseStyle), len(m.snapshot.Entries))
	helpView := " " + m.help.ShortHelpView(m.keys.ShortHelp()) + " "

	fill := max(m.width-lipgloss.Width(title)-lipgloss.Width(helpView)-2, 0)

	return style.Render(handleGlyph+handleGlyph) + title + style.Render(strings.Repeat(handleGlyph, fill)) + helpView
}

func (m Model) renderEntries() string {
	width := m.width
	if width <= 0 {
		width = components.DefaultViewportWidth
	}

	var b strings.Builder

	for i, fragment := range m.snapshot.Entries {
		if i > 0 {
			b.WriteString("\n")
		}

		renderEntry(&b, fragment, width)
	}

	return b.String()
}

// renderEntry writes one fragment, wrapping its text under the message column
func renderEntry(b *strings.Builder, fragment surface.Fragment, width int) {
	prefix := fragment.Timestamp + " " + fragment.Label + " "
	prefixWidth := lipgloss.Width(prefix)

	textWidth := max(width-prefixWidth, components.LogMessageMinWidth)
	text := strings.TrimRight(fragment.Text, "\n\r")
	lines := strings.Split(lipgloss.NewStyle().Width(textWidth).Render(text), "\n")

	b.WriteString(components.TimestampStyle.Render(fragment.Timestamp))
	b.WriteString(" ")
	b.WriteString(components.LevelStyle(fragment.Class).Render(fragment.Label))
	b.WriteString(" ")
	b.WriteString(strings.TrimRight(lines[0], " "))

	indent := strings.Repeat(" ", max(prefixWidth-lipgloss.Width(continuationGlyph), 0))

	for _, line := range lines[1:] {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(components.ContinuationStyle.Render(continuationGlyph))
		b.WriteString(strings.TrimRight(line, " "))
	}
}
