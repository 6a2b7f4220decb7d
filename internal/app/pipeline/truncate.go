package pipeline

import "logpanel/internal/app/message"

// Truncate keeps the first limit messages of a batch; the rest are dropped
func Truncate(batch []message.Message, limit int) []message.Message {
	if len(batch) <= limit {
		return batch
	}

	return batch[:limit]
}
