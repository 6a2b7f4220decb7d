package message

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logpanel/internal/app/errors"
)

func Test_Severity_String(t *testing.T) {
	tests := []struct {
		name     string
		level    Severity
		expected string
	}{
		{name: "Info", level: Info, expected: "INFO"},
		{name: "Warn", level: Warn, expected: "WARN"},
		{name: "Error", level: Error, expected: "ERROR"},
		{name: "Unknown", level: Severity(3), expected: "Severity(3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func Test_Severity_Ordering(t *testing.T) {
	assert.Less(t, Info, Warn)
	assert.Less(t, Warn, Error)
	assert.False(t, Severity(3).Valid())
	assert.True(t, Error.Valid())
}

func Test_ParseSeverity(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected Severity
		error    error
	}{
		{name: "Info lower case", value: "info", expected: Info},
		{name: "Warn mixed case", value: "Warn", expected: Warn},
		{name: "Warning alias", value: "warning", expected: Warn},
		{name: "Error with spaces", value: " ERROR ", expected: Error},
		{name: "Err alias", value: "err", expected: Error},
		{name: "Unknown value", value: "debug", error: errors.ErrInvalidSeverity},
		{name: "Empty value", value: "", error: errors.ErrInvalidSeverity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseSeverity(tt.value)
			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func Test_New(t *testing.T) {
	msg := New(Warn, "disk almost full")

	assert.Equal(t, "disk almost full", msg.Text)
	assert.Equal(t, Warn, msg.Level)
	assert.False(t, msg.Timestamp.IsZero())
}
