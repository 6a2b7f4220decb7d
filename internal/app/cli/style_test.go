package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logpanel/internal/app/errors"
	"logpanel/internal/config"
)

func Test_RenderTitle(t *testing.T) {
	result := RenderTitle()

	assert.NotEmpty(t, result)
	assert.Contains(t, result, config.AppName)
	assert.Contains(t, result, config.Version)
	assert.Contains(t, result, config.AppDescription)
}

func Test_RenderError(t *testing.T) {
	result := RenderError(errors.ErrStreamClosed)

	assert.Contains(t, result, "Error:")
	assert.Contains(t, result, errors.ErrStreamClosed.Error())
}

func Test_renderHelp(t *testing.T) {
	result := renderHelp()

	assert.Contains(t, result, "Usage:")
	assert.Contains(t, result, "--tail <dir>")
	assert.Contains(t, result, "--no-ui")
	assert.Contains(t, result, "logpanel version")
}
