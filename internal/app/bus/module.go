package bus

import (
	"logpanel/internal/config"
	"logpanel/internal/config/logger"
)

// Factory creates a fresh stream for every panel attach
type Factory func() Bus

// NewFactory returns a Factory sized from the stream config
func NewFactory(cfg *config.Config, log logger.Logger) Factory {
	streamLog := log.WithComponent("STREAM")

	return func() Bus {
		return New(cfg.Stream.Buffer, streamLog)
	}
}
