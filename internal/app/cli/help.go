package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHelp returns the usage screen
func renderHelp() string {
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("logpanel [run]")+"                  Attach the panel and follow the configured sources"),
		bodyMedium.Render("  "+commandName.Render("logpanel version")+"                Show version"),
		bodyMedium.Render("  "+commandName.Render("logpanel help")+"                   Show help"),
	)

	flags := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("--tail <dir>")+"                    Follow *.log files under dir"),
		bodyMedium.Render("  "+commandName.Render("--stats")+"                         Log a cpu/memory heartbeat"),
		bodyMedium.Render("  "+commandName.Render("--no-ui")+"                         Print batches instead of drawing the panel"),
	)

	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+exampleCode.Render("logpanel --tail ./logs")+"          Follow a log directory"),
		bodyMedium.Render("  "+exampleCode.Render("logpanel --stats --no-ui")+"        Heartbeat on stdout"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		usage,
		sectionHeader.Render("Flags:"),
		flags,
		sectionHeader.Render("Examples:"),
		examples,
		helpText.Render("Drag the panel handle with the mouse to resize it"),
	) + "\n"
}
