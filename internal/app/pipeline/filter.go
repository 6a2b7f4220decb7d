package pipeline

import "logpanel/internal/app/message"

// Filter drops messages below a minimum severity
type Filter struct {
	min message.Severity
}

// NewFilter creates a filter passing min and everything above it
func NewFilter(min message.Severity) Filter {
	return Filter{min: min}
}

// Accept reports whether msg passes the filter
func (f Filter) Accept(msg message.Message) bool {
	return msg.Level >= f.min
}
