package ui

import (
	"fmt"
	"sync"

	"logpanel/internal/app/errors"
	"logpanel/internal/app/surface"
)

// Snapshot is a consistent copy of the screen state for one frame
type Snapshot struct {
	Mounted bool
	Entries []surface.Fragment
	Height  int
	Scrolls uint64
}

// Screen is the Surface drawn by the terminal program.
// The pipeline writes to it and the Bubble Tea model reads snapshots after each change.
type Screen struct {
	mu      sync.Mutex
	mounted bool
	entries []surface.Fragment
	height  int
	scrolls uint64
	changed chan struct{}
}

// NewScreen creates an unmounted screen
func NewScreen() *Screen {
	return &Screen{
		changed: make(chan struct{}, 1),
	}
}

// Mount makes the screen ready to receive entries
func (s *Screen) Mount(height int) error {
	s.mu.Lock()
	s.mounted = true
	s.entries = nil
	s.height = height
	s.mu.Unlock()

	s.notify()

	return nil
}

// Unmount drops every entry
func (s *Screen) Unmount() {
	s.mu.Lock()
	s.mounted = false
	s.entries = nil
	s.mu.Unlock()

	s.notify()
}

// Mounted reports whether the screen is mounted
func (s *Screen) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mounted
}

// Append adds a fragment after the newest entry
func (s *Screen) Append(fragment surface.Fragment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return errors.ErrPanelNotAttached
	}

	s.entries = append(s.entries, fragment)

	return nil
}

// Remove deletes the entry with the given id
func (s *Screen) Remove(id surface.EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mounted {
		return errors.ErrPanelNotAttached
	}

	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %d", errors.ErrEntryNotFound, id)
}

// ScrollToBottom marks the end of a batch and wakes the program
func (s *Screen) ScrollToBottom() {
	s.mu.Lock()
	s.scrolls++
	s.mu.Unlock()

	s.notify()
}

// SetHeight applies a new panel height
func (s *Screen) SetHeight(height int) {
	s.mu.Lock()
	s.height = height
	s.mu.Unlock()

	s.notify()
}

// Snapshot returns a copy of the current state
func (s *Screen) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Mounted: s.mounted,
		Entries: append([]surface.Fragment(nil), s.entries...),
		Height:  s.height,
		Scrolls: s.scrolls,
	}
}

// Changed is signalled after the screen changes; bursts collapse into one signal
func (s *Screen) Changed() <-chan struct{} {
	return s.changed
}

func (s *Screen) notify() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}
