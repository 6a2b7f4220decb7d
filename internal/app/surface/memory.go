package surface

import (
	"fmt"
	"sync"

	"logpanel/internal/app/errors"
)

// Memory is a headless Surface that keeps entries in insertion order
type Memory struct {
	mu      sync.Mutex
	mounted bool
	entries []Fragment
	height  int
	scrolls int
	peak    int
}

// NewMemory creates an unmounted in-memory surface
func NewMemory() *Memory {
	return &Memory{}
}

// Mount makes the surface ready to receive entries
func (m *Memory) Mount(height int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mounted = true
	m.height = height
	m.entries = nil
	m.scrolls = 0
	m.peak = 0

	return nil
}

// Unmount drops every entry
func (m *Memory) Unmount() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mounted = false
	m.entries = nil
}

// Mounted reports whether the surface is mounted
func (m *Memory) Mounted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mounted
}

// Append adds a fragment after the newest entry
func (m *Memory) Append(fragment Fragment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.mounted {
		return errors.ErrPanelNotAttached
	}

	m.entries = append(m.entries, fragment)
	m.peak = max(m.peak, len(m.entries))

	return nil
}

// Remove deletes the entry with the given id
func (m *Memory) Remove(id EntryID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.mounted {
		return errors.ErrPanelNotAttached
	}

	for i, entry := range m.entries {
		if entry.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %d", errors.ErrEntryNotFound, id)
}

// ScrollToBottom counts scroll requests
func (m *Memory) ScrollToBottom() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scrolls++
}

// SetHeight records the panel height
func (m *Memory) SetHeight(height int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.height = height
}

// Entries returns a copy of the current entries, oldest first
func (m *Memory) Entries() []Fragment {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Fragment(nil), m.entries...)
}

// Texts returns the message text of every entry, oldest first
func (m *Memory) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	texts := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		texts = append(texts, entry.Text)
	}

	return texts
}

// Height returns the last applied height
func (m *Memory) Height() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.height
}

// Scrolls returns how many times the surface was scrolled to the bottom since mount
func (m *Memory) Scrolls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.scrolls
}

// Peak returns the largest entry count observed since mount
func (m *Memory) Peak() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.peak
}
