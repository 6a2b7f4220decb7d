package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func Test_NewPulse(t *testing.T) {
	p := NewPulse()

	assert.NotNil(t, p)
	assert.False(t, p.IsActive())
	assert.Equal(t, pulseIdle, p.Frame())
	assert.Equal(t, 0, p.Count())
}

func Test_Pulse_Trigger(t *testing.T) {
	p := NewPulse()
	p.Trigger()

	assert.True(t, p.IsActive())
	assert.Equal(t, pulseBright, p.Frame())
	assert.Equal(t, 1, p.Count())
}

func Test_Pulse_Update_FadesToIdle(t *testing.T) {
	p := NewPulse()
	p.Trigger()

	frames := make(map[string]bool)

	for i := 0; i < 200 && p.IsActive(); i++ {
		p.Update()
		frames[p.Frame()] = true
	}

	assert.False(t, p.IsActive())
	assert.Equal(t, pulseIdle, p.Frame())
	assert.True(t, frames[pulseLow], "Should pass through the low frame while fading")
}

func Test_Pulse_Update_WhenIdle(t *testing.T) {
	p := NewPulse()
	p.Update()

	assert.False(t, p.IsActive())
	assert.Equal(t, pulseIdle, p.Frame())
}

func Test_Pulse_Render(t *testing.T) {
	p := NewPulse()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))

	assert.Contains(t, p.Render(style), pulseIdle)
}
