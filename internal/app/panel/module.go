package panel

import (
	"go.uber.org/fx"

	"logpanel/internal/app/bus"
	"logpanel/internal/app/diag"
	"logpanel/internal/app/surface"
	"logpanel/internal/config/logger"
)

// Builder creates a detached panel drawing on the given surface
type Builder func(s surface.Surface) *Panel

// NewBuilder binds the per-attach stream factory and the diagnostic sink
func NewBuilder(streams bus.Factory, sink diag.Sink, log logger.Logger) Builder {
	return func(s surface.Surface) *Panel {
		return New(s, streams, sink, log)
	}
}

// Module provides the panel builder and its per-attach stream factory
var Module = fx.Options(
	fx.Provide(
		bus.NewFactory,
		NewBuilder,
	),
)
