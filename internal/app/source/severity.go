package source

import (
	"strings"

	"logpanel/internal/app/message"
)

var (
	errorKeywords = []string{"error", "fatal", "panic", "err="}
	warnKeywords  = []string{"warn", "deprecated"}
)

// InferSeverity guesses the level of a plain log line from its keywords
func InferSeverity(line string) message.Severity {
	lower := strings.ToLower(line)

	for _, kw := range errorKeywords {
		if strings.Contains(lower, kw) {
			return message.Error
		}
	}

	for _, kw := range warnKeywords {
		if strings.Contains(lower, kw) {
			return message.Warn
		}
	}

	return message.Info
}
