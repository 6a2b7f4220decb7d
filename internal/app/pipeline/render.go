package pipeline

import (
	"time"

	"logpanel/internal/app/message"
	"logpanel/internal/app/surface"
)

// TimeLayout is the local wall-clock format shown in front of each entry
const TimeLayout = "15:04:05"

// Renderer converts messages into fragments with increasing ids
type Renderer struct {
	next     surface.EntryID
	location *time.Location
}

// NewRenderer creates a renderer formatting timestamps in local time
func NewRenderer() *Renderer {
	return &Renderer{location: time.Local}
}

// Render builds the fragment for one message
func (r *Renderer) Render(msg message.Message) surface.Fragment {
	r.next++

	return surface.Fragment{
		ID:        r.next,
		Level:     msg.Level,
		Timestamp: "[" + msg.Timestamp.In(r.location).Format(TimeLayout) + "]",
		Label:     "[" + msg.Level.String() + "]",
		Class:     surface.ClassFor(msg.Level),
		Text:      msg.Text,
	}
}

// RenderBatch renders every message of a batch in order
func (r *Renderer) RenderBatch(batch []message.Message) []surface.Fragment {
	fragments := make([]surface.Fragment, 0, len(batch))
	for _, msg := range batch {
		fragments = append(fragments, r.Render(msg))
	}

	return fragments
}
