package diag

import (
	"context"
	"time"

	"go.uber.org/fx"
)

const flushTimeout = 2 * time.Second

// Module provides the diagnostic sink and flushes it on shutdown
var Module = fx.Options(
	fx.Provide(NewSink),
	fx.Invoke(func(lc fx.Lifecycle, sink Sink) {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				sink.Flush(flushTimeout)
				return nil
			},
		})
	}),
)
