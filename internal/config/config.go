package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"logpanel/internal/app/errors"
	"logpanel/internal/app/message"
)

// Config represents the application configuration
type Config struct {
	Panel   Panel `yaml:"panel" mapstructure:"panel"`
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`
	Stream struct {
		Buffer int `yaml:"buffer" mapstructure:"buffer"`
	} `yaml:"stream" mapstructure:"stream"`
	Diagnostics Diagnostics `yaml:"diagnostics" mapstructure:"diagnostics"`
	Sources     Sources     `yaml:"sources" mapstructure:"sources"`
}

// Panel holds the options applied when the panel is attached
type Panel struct {
	MessageLimit int           `yaml:"message_limit" mapstructure:"message_limit"`
	MinHeight    int           `yaml:"min_height" mapstructure:"min_height"`
	MinLevel     string        `yaml:"min_level" mapstructure:"min_level"`
	Window       time.Duration `yaml:"window" mapstructure:"window"`
}

// Diagnostics configures where stream failures are reported
type Diagnostics struct {
	SentryDSN   string `yaml:"sentry_dsn" mapstructure:"sentry_dsn"`
	Environment string `yaml:"environment" mapstructure:"environment"`
}

// Sources configures the producers that feed the panel
type Sources struct {
	Tail  *Tail  `yaml:"tail" mapstructure:"tail"`
	Stats *Stats `yaml:"stats" mapstructure:"stats"`
}

// Tail follows log files in a directory
type Tail struct {
	Dir     string   `yaml:"dir" mapstructure:"dir"`
	Include []string `yaml:"include" mapstructure:"include"`
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`
}

// Stats emits a periodic process resource heartbeat
type Stats struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Panel.MessageLimit = MessageLimit
	cfg.Panel.MinHeight = MinHeight
	cfg.Panel.MinLevel = MinLevel
	cfg.Panel.Window = BatchWindow

	cfg.Logging.Level = LogLevel
	cfg.Logging.Format = LogFormat

	cfg.Stream.Buffer = StreamBuffer

	return cfg
}

// Load reads .env and logpanel.yaml from the working directory and applies LOGPANEL_ environment overrides
func Load() (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	data, err := os.ReadFile(ConfigFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	return Parse(data)
}

// Parse builds a config from yaml data layered over defaults and environment overrides
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(bytes.TrimSpace(data)) > 0 {
		if err := checkSections(data); err != nil {
			return nil, err
		}
	}

	v := newViper()

	if len(data) > 0 {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

var sections = map[string]struct{}{
	"panel":       {},
	"logging":     {},
	"stream":      {},
	"diagnostics": {},
	"sources":     {},
}

// checkSections requires the document and each known top-level section to be a mapping
func checkSections(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.ErrFailedToParseConfig
	}

	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: document is not a mapping", errors.ErrFailedToParseConfig)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		if _, known := sections[key.Value]; !known {
			continue
		}

		if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
			continue
		}

		if value.Kind != yaml.MappingNode {
			return fmt.Errorf("%w: %q at line %d is not a mapping", errors.ErrFailedToParseConfig, key.Value, key.Line)
		}
	}

	return nil
}

// newViper creates a viper instance bound to the LOGPANEL_ environment keys
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		"panel.message_limit",
		"panel.min_height",
		"panel.min_level",
		"panel.window",
		"logging.level",
		"logging.format",
		"stream.buffer",
		"diagnostics.sentry_dsn",
		"diagnostics.environment",
	} {
		_ = v.BindEnv(key)
	}

	return v
}

// ApplyDefaults fills optional sections left empty by the config file
func (c *Config) ApplyDefaults() {
	if c.Panel.Window == 0 {
		c.Panel.Window = BatchWindow
	}

	if c.Panel.MinLevel == "" {
		c.Panel.MinLevel = MinLevel
	}

	if c.Sources.Tail != nil && len(c.Sources.Tail.Include) == 0 {
		c.Sources.Tail.Include = []string{TailInclude}
	}

	if c.Sources.Stats != nil && c.Sources.Stats.Interval == 0 {
		c.Sources.Stats.Interval = StatsInterval
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validatePanel(); err != nil {
		return err
	}

	if err := c.validateStream(); err != nil {
		return err
	}

	return c.validateSources()
}

// validatePanel validates panel settings
func (c *Config) validatePanel() error {
	if c.Panel.MessageLimit <= 0 {
		return errors.ErrInvalidMessageLimit
	}

	if c.Panel.MinHeight < 0 {
		return errors.ErrInvalidMinHeight
	}

	if c.Panel.Window <= 0 {
		return errors.ErrInvalidWindow
	}

	_, err := message.ParseSeverity(c.Panel.MinLevel)

	return err
}

// validateStream validates stream settings
func (c *Config) validateStream() error {
	if c.Stream.Buffer <= 0 {
		return errors.ErrInvalidBufferSize
	}

	return nil
}

// validateSources validates source settings
func (c *Config) validateSources() error {
	if c.Sources.Stats != nil && c.Sources.Stats.Interval < 0 {
		return errors.ErrInvalidInterval
	}

	return nil
}
