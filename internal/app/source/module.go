package source

import "go.uber.org/fx"

// Module provides the source factory
var Module = fx.Options(
	fx.Provide(NewFactory),
)
