package diag

import (
	"time"

	"github.com/getsentry/sentry-go"

	"logpanel/internal/config"
)

// sentrySink reports stream failures through a dedicated Sentry hub
type sentrySink struct {
	hub *sentry.Hub
}

// NewSentrySink creates a Sentry-backed sink from the diagnostics config
func NewSentrySink(cfg *config.Config) (Sink, error) {
	return newSentrySink(sentry.ClientOptions{
		Dsn:         cfg.Diagnostics.SentryDSN,
		Environment: cfg.Diagnostics.Environment,
		Release:     config.AppName + "@" + config.Version,
	})
}

func newSentrySink(opts sentry.ClientOptions) (Sink, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, err
	}

	hub := sentry.NewHub(client, sentry.NewScope())
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "logpanel.stream")
	})

	return &sentrySink{hub: hub}, nil
}

func (s *sentrySink) Report(err error) {
	s.hub.CaptureException(err)
}

func (s *sentrySink) Flush(timeout time.Duration) bool {
	return s.hub.Flush(timeout)
}
