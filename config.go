package sequel

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of the package:
//
//	log_level: dev
//	templates:
//	  upsert: [insert, columns, values, conflict]
type Config struct {
	LogLevel        string              `yaml:"log_level"`
	CustomTemplates map[string][]string `yaml:"templates"`
}

// LoadConfig decodes a Config. Unknown keys are rejected. An empty document
// gives the zero Config.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("sequel: decoding config: %w", err)
	}
	logger.Infof("config loaded with %d custom templates", len(c.CustomTemplates))
	return &c, nil
}

// Templates validates the configured custom templates.
func (c *Config) Templates() (*Templates, error) {
	return NewTemplates(c.CustomTemplates)
}

// Logger builds the configured logger. An unset level means dev.
func (c *Config) Logger() (Logger, error) {
	level := LogLevelDev
	if c.LogLevel != "" {
		var err error
		level, err = ParseLogLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
	}
	return NewLogger(level)
}
