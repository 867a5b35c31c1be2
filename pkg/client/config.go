package client

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/traduki/traduki-go/pkg/detector"
)

// Config describes one translation client instance. It is treated as
// immutable: changing any field means replacing the instance.
type Config struct {
	// ProjectID identifies the translation project. Required.
	ProjectID string `env:"TRADUKI_PROJECT_ID" yaml:"project_id"`

	// PublicKey authenticates read access to the project. Required.
	PublicKey string `env:"TRADUKI_PUBLIC_KEY" yaml:"public_key"`

	// Locale pins the active locale. When empty the client negotiates one,
	// consulting Detector if set.
	Locale string `env:"TRADUKI_LOCALE" yaml:"locale"`

	// BaseURL overrides the service endpoint. Empty means the default.
	BaseURL string `env:"TRADUKI_BASE_URL" yaml:"base_url"`

	// Detector supplies the locale when Locale is empty. Excluded from
	// Identity: function values are not comparable, so swapping only the
	// detector requires an explicit reconfigure.
	Detector detector.Detector `env:"-" yaml:"-"`
}

// Identity is the comparable projection of a Config used to decide whether
// an existing client instance can be kept.
type Identity struct {
	ProjectID string
	PublicKey string
	Locale    string
	BaseURL   string
}

// Identity returns the comparable projection of the config.
func (c Config) Identity() Identity {
	return Identity{
		ProjectID: c.ProjectID,
		PublicKey: c.PublicKey,
		Locale:    c.Locale,
		BaseURL:   c.BaseURL,
	}
}

// Validate checks that the required fields are present.
func (c Config) Validate() error {
	if c.ProjectID == "" {
		return ErrEmptyProjectID
	}
	if c.PublicKey == "" {
		return ErrEmptyPublicKey
	}
	return nil
}

// ConfigFromEnv builds a Config from TRADUKI_* environment variables and
// validates it.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromYAML decodes a Config from a YAML document and validates it.
func ConfigFromYAML(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
