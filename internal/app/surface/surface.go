//go:generate mockgen -source=surface.go -destination=surface_mock.go -package=surface
package surface

import (
	"logpanel/internal/app/message"
)

// EntryID identifies a rendered entry for the lifetime of an attach
type EntryID uint64

// Fragment is one rendered log entry ready to be placed on a surface
type Fragment struct {
	ID        EntryID
	Level     message.Severity
	Timestamp string // "[15:04:05]" in local time
	Label     string // "[WARN]"
	Class     string // level style class, e.g. "log-warn"
	Text      string
}

// String joins the visible parts of the fragment
func (f Fragment) String() string {
	return f.Timestamp + " " + f.Label + " " + f.Text
}

// Surface is where the panel draws its entries.
// Append, Remove and ScrollToBottom are only called by the pipeline goroutine.
type Surface interface {
	Mount(height int) error
	Unmount()
	Mounted() bool
	Append(fragment Fragment) error
	Remove(id EntryID) error
	ScrollToBottom()
	SetHeight(height int)
}

// Style classes attached to fragments by severity
const (
	ClassInfo  = "log-info"
	ClassWarn  = "log-warn"
	ClassError = "log-error"
)

// ClassFor returns the style class for a severity
func ClassFor(level message.Severity) string {
	switch level {
	case message.Warn:
		return ClassWarn
	case message.Error:
		return ClassError
	default:
		return ClassInfo
	}
}
