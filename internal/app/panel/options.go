package panel

import (
	"fmt"
	"time"

	"logpanel/internal/app/errors"
	"logpanel/internal/app/message"
	"logpanel/internal/app/pipeline"
	"logpanel/internal/config"
)

// MinHeight is the smallest height the panel can be given, by config or by dragging
const MinHeight = 200

// Options configures a panel for the lifetime of one attach.
// Zero values select the defaults.
type Options struct {
	MessageLimit int
	MinHeight    int
	MinLevel     message.Severity
	Window       time.Duration
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		MessageLimit: config.MessageLimit,
		MinHeight:    config.MinHeight,
		MinLevel:     message.Info,
		Window:       config.BatchWindow,
	}
}

// OptionsFromConfig converts the panel section of the config
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	level, err := message.ParseSeverity(cfg.Panel.MinLevel)
	if err != nil {
		return Options{}, err
	}

	return Options{
		MessageLimit: cfg.Panel.MessageLimit,
		MinHeight:    cfg.Panel.MinHeight,
		MinLevel:     level,
		Window:       cfg.Panel.Window,
	}.normalize()
}

// normalize fills defaults, floors MinHeight and rejects invalid values
func (o Options) normalize() (Options, error) {
	defaults := DefaultOptions()

	switch {
	case o.MessageLimit < 0:
		return Options{}, fmt.Errorf("%w: %d", errors.ErrInvalidMessageLimit, o.MessageLimit)
	case o.MessageLimit == 0:
		o.MessageLimit = defaults.MessageLimit
	}

	switch {
	case o.MinHeight < 0:
		return Options{}, fmt.Errorf("%w: %d", errors.ErrInvalidMinHeight, o.MinHeight)
	case o.MinHeight == 0:
		o.MinHeight = defaults.MinHeight
	}

	o.MinHeight = max(o.MinHeight, MinHeight)

	switch {
	case o.MinLevel == 0:
		o.MinLevel = defaults.MinLevel
	case !o.MinLevel.Valid():
		return Options{}, fmt.Errorf("%w: %d", errors.ErrInvalidSeverity, int(o.MinLevel))
	}

	switch {
	case o.Window < 0:
		return Options{}, fmt.Errorf("%w: %s", errors.ErrInvalidWindow, o.Window)
	case o.Window == 0:
		o.Window = defaults.Window
	}

	return o, nil
}

func (o Options) pipeline() pipeline.Config {
	return pipeline.Config{
		MessageLimit: o.MessageLimit,
		MinLevel:     o.MinLevel,
		Window:       o.Window,
	}
}
