package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseIdle   = "○"
	pulseLow    = "◎"
	pulseBright = "●"

	pulseFPS = UITicksPerSecond

	// Spring physics parameters
	pulseAngularFrequency = 6.0
	pulseDampingRatio     = 0.8

	// Visual thresholds
	pulseBrightThreshold = 0.6
	pulseLowThreshold    = 0.15

	// Position below which the spring is considered at rest
	pulseRestThreshold = 0.01

	pulsePositionFull  = 1.0
	pulsePositionEmpty = 0.0
)

// Pulse flashes when a batch lands on the panel and fades back to idle
type Pulse struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	count    int
}

// NewPulse creates an idle pulse
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(pulseFPS), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Trigger kicks the pulse to full brightness
func (p *Pulse) Trigger() {
	p.position = pulsePositionFull
	p.count++
}

// Update moves the spring one frame towards rest (called on each UI tick)
func (p *Pulse) Update() {
	if !p.IsActive() {
		return
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, pulsePositionEmpty)

	if p.position < pulseRestThreshold && p.velocity > -pulseRestThreshold && p.velocity < pulseRestThreshold {
		p.position = pulsePositionEmpty
		p.velocity = pulsePositionEmpty
	}
}

// Frame returns the glyph for the current spring position
func (p *Pulse) Frame() string {
	switch {
	case p.position >= pulseBrightThreshold:
		return pulseBright
	case p.position >= pulseLowThreshold:
		return pulseLow
	default:
		return pulseIdle
	}
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// IsActive reports whether the pulse is still fading
func (p *Pulse) IsActive() bool {
	return p.position != pulsePositionEmpty || p.velocity != pulsePositionEmpty
}

// Count returns how many times the pulse was triggered
func (p *Pulse) Count() int {
	return p.count
}
