package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logpanel/internal/app/errors"
	"logpanel/internal/app/message"
	"logpanel/internal/config"
)

func Test_Options_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected Options
		error    error
	}{
		{
			name:     "Zero values take defaults",
			opts:     Options{},
			expected: Options{MessageLimit: 50, MinHeight: 400, MinLevel: message.Info, Window: 500 * time.Millisecond},
		},
		{
			name:     "Min height is floored",
			opts:     Options{MessageLimit: 3, MinHeight: 120, MinLevel: message.Warn},
			expected: Options{MessageLimit: 3, MinHeight: MinHeight, MinLevel: message.Warn, Window: 500 * time.Millisecond},
		},
		{
			name:     "Explicit values kept",
			opts:     Options{MessageLimit: 7, MinHeight: 650, MinLevel: message.Error, Window: time.Second},
			expected: Options{MessageLimit: 7, MinHeight: 650, MinLevel: message.Error, Window: time.Second},
		},
		{name: "Negative limit", opts: Options{MessageLimit: -1}, error: errors.ErrInvalidMessageLimit},
		{name: "Negative height", opts: Options{MinHeight: -5}, error: errors.ErrInvalidMinHeight},
		{name: "Unknown level", opts: Options{MinLevel: message.Severity(3)}, error: errors.ErrInvalidSeverity},
		{name: "Negative window", opts: Options{Window: -time.Second}, error: errors.ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.opts.normalize()
			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func Test_OptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Panel.MessageLimit = 3
	cfg.Panel.MinLevel = "warn"
	cfg.Panel.MinHeight = 100

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, opts.MessageLimit)
	assert.Equal(t, message.Warn, opts.MinLevel)
	assert.Equal(t, MinHeight, opts.MinHeight)
	assert.Equal(t, config.BatchWindow, opts.Window)

	cfg.Panel.MinLevel = "chatty"
	_, err = OptionsFromConfig(cfg)
	assert.ErrorIs(t, err, errors.ErrInvalidSeverity)
}

func Test_Options_Pipeline(t *testing.T) {
	cfg := Options{MessageLimit: 9, MinLevel: message.Error, Window: time.Second}.pipeline()

	assert.Equal(t, 9, cfg.MessageLimit)
	assert.Equal(t, message.Error, cfg.MinLevel)
	assert.Equal(t, time.Second, cfg.Window)
}
