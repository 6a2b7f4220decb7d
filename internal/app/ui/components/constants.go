package components

import "time"

// UI timing constants
const (
	// UITickInterval drives animations
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is the animation frame rate derived from UITickInterval
	UITicksPerSecond = int(time.Second / UITickInterval)
)

// Layout constants
const (
	// CellHeight converts terminal rows to panel height units
	CellHeight = 16

	// HandleRows is the number of rows taken by the resize handle
	HandleRows = 1

	// DefaultViewportWidth is used until the terminal reports its size
	DefaultViewportWidth  = 80
	DefaultViewportHeight = 24

	// LogMessageMinWidth keeps messages readable on narrow terminals
	LogMessageMinWidth = 20
)
