package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"logpanel/internal/app"
	"logpanel/internal/config"
	"logpanel/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	noUI := hasNoUIFlag(os.Args[1:])
	application := createApp(cfg, noUI)
	application.Run()
}

// hasNoUIFlag checks if --no-ui flag is present in args
func hasNoUIFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--no-ui" {
			return true
		}
	}

	return false
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application with the given config.
// The terminal UI owns stdout, so the app logger is silenced unless --no-ui is set.
func createApp(cfg *config.Config, noUI bool) *fx.App {
	options := []fx.Option{
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		app.Module,
	}

	if !noUI {
		options = append(options, fx.Decorate(func(logger.Logger) logger.Logger {
			return logger.NewLoggerWithOutput(cfg, io.Discard)
		}))
	}

	return fx.New(options...)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		}

		return fxevent.NopLogger
	}
}
