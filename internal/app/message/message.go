package message

import (
	"fmt"
	"strings"
	"time"

	"logpanel/internal/app/errors"
)

// Severity is the ordered level of a log message
type Severity int

// Severity values; filtering compares them numerically
const (
	Info  Severity = 1
	Warn  Severity = 2
	Error Severity = 4
)

// String returns the upper-case label of the severity
func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Valid reports whether s is one of the known severities
func (s Severity) Valid() bool {
	return s == Info || s == Warn || s == Error
}

// ParseSeverity converts a config or CLI value into a Severity
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error", "err":
		return Error, nil
	default:
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidSeverity, value)
	}
}

// Message is a single timestamped log message
type Message struct {
	Text      string
	Level     Severity
	Timestamp time.Time
}

// New creates a message stamped with the current time
func New(level Severity, text string) Message {
	return Message{
		Text:      text,
		Level:     level,
		Timestamp: time.Now(),
	}
}
