package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"logpanel/internal/app/surface"
)

func Test_LevelStyle(t *testing.T) {
	tests := []struct {
		name  string
		class string
		want  lipgloss.TerminalColor
	}{
		{name: "Info", class: surface.ClassInfo, want: FgInfo},
		{name: "Warn", class: surface.ClassWarn, want: FgWarn},
		{name: "Error", class: surface.ClassError, want: FgError},
		{name: "Unknown falls back to info", class: "log-debug", want: FgInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelStyle(tt.class).GetForeground())
		})
	}
}

func Test_DefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Equal(t, []string{"q"}, keys.Quit.Keys())
	assert.Equal(t, []string{"ctrl+c"}, keys.ForceQuit.Keys())
	assert.Len(t, keys.ShortHelp(), 4)
}
