package ui

import (
	"fmt"
	"io"
	"sync"

	"logpanel/internal/app/surface"
	"logpanel/internal/app/ui/components"
)

// Console is a Surface for running without the terminal UI.
// Each batch is printed as styled lines when the pipeline scrolls to the bottom.
// Evicted entries are only dropped from memory; printed lines stay on the terminal.
type Console struct {
	*surface.Memory
	mu      sync.Mutex
	out     io.Writer
	pending []surface.Fragment
}

// NewConsole creates an unmounted console surface writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{
		Memory: surface.NewMemory(),
		out:    out,
	}
}

// Append records the fragment and queues it for printing
func (c *Console) Append(fragment surface.Fragment) error {
	if err := c.Memory.Append(fragment); err != nil {
		return err
	}

	c.mu.Lock()
	c.pending = append(c.pending, fragment)
	c.mu.Unlock()

	return nil
}

// ScrollToBottom prints the queued batch
func (c *Console) ScrollToBottom() {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, fragment := range pending {
		fmt.Fprintln(c.out, formatLine(fragment))
	}

	c.Memory.ScrollToBottom()
}

// Unmount drops entries and anything not yet printed
func (c *Console) Unmount() {
	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()

	c.Memory.Unmount()
}

func formatLine(fragment surface.Fragment) string {
	return components.TimestampStyle.Render(fragment.Timestamp) + " " +
		components.LevelStyle(fragment.Class).Render(fragment.Label) + " " +
		fragment.Text
}
