package source

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logpanel/internal/app/message"
)

func Test_InferSeverity(t *testing.T) {
	tests := []struct {
		line string
		want message.Severity
	}{
		{line: "server started on :8080", want: message.Info},
		{line: "WARN disk almost full", want: message.Warn},
		{line: "call to deprecated endpoint", want: message.Warn},
		{line: "ERROR connection refused", want: message.Error},
		{line: "panic: runtime error", want: message.Error},
		{line: "request failed err=timeout", want: message.Error},
		{line: "", want: message.Info},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, InferSeverity(tt.line))
		})
	}
}
