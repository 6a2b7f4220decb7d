package pipeline

import "logpanel/internal/app/message"

// Window collects the messages that arrive during one batching interval
type Window struct {
	pending []message.Message
}

// Add appends msg to the open window
func (w *Window) Add(msg message.Message) {
	w.pending = append(w.pending, msg)
}

// Len returns the number of messages in the open window
func (w *Window) Len() int {
	return len(w.pending)
}

// Flush closes the window and returns its messages in arrival order, nil when empty
func (w *Window) Flush() []message.Message {
	if len(w.pending) == 0 {
		return nil
	}

	batch := w.pending
	w.pending = nil

	return batch
}
