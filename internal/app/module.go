package app

import (
	"go.uber.org/fx"

	"logpanel/internal/app/cli"
	"logpanel/internal/app/diag"
	"logpanel/internal/app/panel"
	"logpanel/internal/app/source"
	"logpanel/internal/app/ui"
	"logpanel/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	diag.Module,
	panel.Module,
	source.Module,
	ui.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
