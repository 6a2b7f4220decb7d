//go:generate mockgen -source=sink.go -destination=sink_mock.go -package=diag
package diag

import (
	"time"

	"logpanel/internal/config"
	"logpanel/internal/config/logger"
)

// Sink receives failures that terminated a log stream
type Sink interface {
	Report(err error)
	Flush(timeout time.Duration) bool
}

// NewSink builds the diagnostic sink: the app log always, Sentry when a DSN is configured
func NewSink(cfg *config.Config, log logger.Logger) (Sink, error) {
	sinks := []Sink{NewLogSink(log)}

	if cfg.Diagnostics.SentryDSN != "" {
		sentrySink, err := NewSentrySink(cfg)
		if err != nil {
			return nil, err
		}

		sinks = append(sinks, sentrySink)
	}

	if len(sinks) == 1 {
		return sinks[0], nil
	}

	return Multi(sinks...), nil
}

// logSink writes reports to the application logger
type logSink struct {
	log logger.Logger
}

// NewLogSink creates a sink that logs reports at error level
func NewLogSink(log logger.Logger) Sink {
	return &logSink{log: log.WithComponent("DIAG")}
}

func (s *logSink) Report(err error) {
	s.log.Error().Err(err).Msg("Log stream terminated")
}

func (s *logSink) Flush(time.Duration) bool {
	return true
}

// multiSink fans reports out to several sinks
type multiSink []Sink

// Multi combines sinks; every report reaches each of them in order
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Report(err error) {
	for _, s := range m {
		s.Report(err)
	}
}

func (m multiSink) Flush(timeout time.Duration) bool {
	ok := true

	for _, s := range m {
		if !s.Flush(timeout) {
			ok = false
		}
	}

	return ok
}

// NoOp returns a sink that discards reports
func NoOp() Sink {
	return noOpSink{}
}

type noOpSink struct{}

func (noOpSink) Report(error)             {}
func (noOpSink) Flush(time.Duration) bool { return true }
