package config

import "time"

// app constants
const (
	AppName        = "logpanel"
	AppDescription = "A terminal log panel that batches, caps and follows your logs"
	Version        = "0.1.0"

	ConfigFile = "logpanel.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "LOGPANEL"

	LogLevel  = "info"
	LogFormat = "console"
)

// panel constants
const (
	MessageLimit = 50
	MinHeight    = 400
	MinLevel     = "info"
	BatchWindow  = 500 * time.Millisecond
)

// stream constants
const (
	StreamBuffer = 1024
)

// source constants
const (
	StatsInterval = 5 * time.Second
	TailInclude   = "**/*.log"
)
