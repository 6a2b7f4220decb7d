package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrPanelNotAttached     = errors.New("panel is not attached")
	ErrPanelAlreadyAttached = errors.New("panel is already attached")
	ErrStreamClosed         = errors.New("log stream is closed")
	ErrStreamFailed         = errors.New("log stream failed")
	ErrEntryNotFound        = errors.New("rendered entry not found")

	ErrInvalidSeverity     = errors.New("invalid severity")
	ErrInvalidMessageLimit = errors.New("message limit must be greater than zero")
	ErrInvalidMinHeight    = errors.New("min height must not be negative")
	ErrInvalidWindow       = errors.New("batch window must be greater than zero")
	ErrInvalidBufferSize   = errors.New("stream buffer must be greater than zero")
	ErrInvalidInterval     = errors.New("interval must be greater than zero")
	ErrInvalidGlobPattern  = errors.New("invalid glob pattern")

	ErrUnknownCommand = errors.New("unknown command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
