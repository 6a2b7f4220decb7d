package ui

import "go.uber.org/fx"

// Module provides the terminal screen and the program factory
var Module = fx.Options(
	fx.Provide(
		NewScreen,
		NewUI,
	),
)
