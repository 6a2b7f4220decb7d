//go:generate mockgen -source=source.go -destination=source_mock.go -package=source
package source

import (
	"context"

	"logpanel/internal/app/errors"
	"logpanel/internal/app/message"
	"logpanel/internal/config"
	"logpanel/internal/config/logger"
)

// Sink receives the messages a source produces
type Sink interface {
	Log(level message.Severity, text string) error
}

// Source produces log messages until its context is cancelled
type Source interface {
	Name() string
	Run(ctx context.Context, sink Sink) error
}

// Factory builds the configured sources
type Factory interface {
	Build(sources config.Sources) ([]Source, error)
}

type factory struct {
	log logger.Logger
}

// NewFactory creates a source factory
func NewFactory(log logger.Logger) Factory {
	return &factory{log: log.WithComponent("SOURCE")}
}

// Build returns one source per configured section, file follower first
func (f *factory) Build(sources config.Sources) ([]Source, error) {
	var result []Source

	if sources.Tail != nil {
		tail, err := NewTail(sources.Tail, f.log)
		if err != nil {
			return nil, err
		}

		result = append(result, tail)
	}

	if sources.Stats != nil {
		result = append(result, NewStats(sources.Stats.Interval, NewProcessSampler(), f.log))
	}

	return result, nil
}

// IsClosed reports whether err means the panel stopped accepting messages
func IsClosed(err error) bool {
	return errors.Is(err, errors.ErrStreamClosed) || errors.Is(err, errors.ErrPanelNotAttached)
}
