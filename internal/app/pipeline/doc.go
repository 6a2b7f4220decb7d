// Package pipeline turns a stream of log messages into surface updates.
//
// Messages pass through four single-purpose stages: Filter drops messages
// below the minimum severity, Window groups the survivors into fixed time
// windows, Truncate caps each window at the message limit, and Renderer
// builds one Fragment per message. The Evictor keeps a sliding window over
// rendered entries so the surface never holds more than the limit.
// Pipeline drives the stages from a ticker on a single goroutine.
package pipeline
