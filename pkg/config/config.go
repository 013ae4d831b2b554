// Package config loads socialnet settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dd0wney/cluso-social/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvDataPath    = "SOCIALNET_DATA"
	EnvLogLevel    = "LOG_LEVEL"
	EnvListen      = "SOCIALNET_LISTEN"
	EnvIterations  = "SOCIALNET_ITERATIONS"
	EnvDatabaseURL = "SOCIALNET_DATABASE_URL"
	EnvJWTSecret   = "SOCIALNET_JWT_SECRET"
	EnvEvents      = "SOCIALNET_EVENTS"
)

// Default values
const (
	DefaultDataPath   = "social_network.csv"
	DefaultTable      = "people"
	DefaultListen     = ":8080"
	DefaultIterations = 1
	DefaultTokenTTL   = time.Hour
)

// Config is the top-level configuration shared by the socialnet commands.
type Config struct {
	Source    SourceConfig    `yaml:"source"`
	LogLevel  string          `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat string          `yaml:"log_format" validate:"oneof=json text"`
	Community CommunityConfig `yaml:"community"`
	Server    ServerConfig    `yaml:"server"`
	Events    EventsConfig    `yaml:"events"`
}

// SourceConfig says where person records come from.
type SourceConfig struct {
	Kind        string `yaml:"kind" validate:"oneof=file s3 postgres"`
	Path        string `yaml:"path"`
	Bucket      string `yaml:"bucket"`
	Key         string `yaml:"key"`
	Region      string `yaml:"region"`
	DatabaseURL string `yaml:"database_url"`
	Table       string `yaml:"table"`

	// Static S3 credentials. When both are empty the default AWS chain is used.
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// CommunityConfig tunes Girvan-Newman runs that do not name an iteration count.
type CommunityConfig struct {
	DefaultIterations int `yaml:"default_iterations" validate:"gte=0"`
}

// ServerConfig is read by socialnet-server.
type ServerConfig struct {
	Listen string `yaml:"listen" validate:"required"`
	// JWTSecret enables bearer-token checks on mutations when set.
	JWTSecret string        `yaml:"jwt_secret" validate:"omitempty,min=32"`
	TokenTTL  time.Duration `yaml:"token_ttl" validate:"gte=0"`
}

// EventsConfig enables the mutation feed when Listen is set,
// e.g. "tcp://*:7070".
type EventsConfig struct {
	Listen string `yaml:"listen"`
	Buffer int    `yaml:"buffer" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:  "file",
			Path:  DefaultDataPath,
			Table: DefaultTable,
		},
		LogLevel:  "info",
		LogFormat: "json",
		Community: CommunityConfig{DefaultIterations: DefaultIterations},
		Server:    ServerConfig{Listen: DefaultListen, TokenTTL: DefaultTokenTTL},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDataPath); v != "" {
		c.Source.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvListen); v != "" {
		c.Server.Listen = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.Source.DatabaseURL = v
	}
	if v := os.Getenv(EnvJWTSecret); v != "" {
		c.Server.JWTSecret = v
	}
	if v := os.Getenv(EnvEvents); v != "" {
		c.Events.Listen = v
	}
	if v := os.Getenv(EnvIterations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvIterations, v, err)
		}
		c.Community.DefaultIterations = n
	}
	return nil
}

// Validate checks struct tags, then the fields each source kind needs.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cv := validation.NewConfigValidator("source")
	cv.When(c.Source.Kind == "file", func(cv *validation.ConfigValidator) {
		cv.Required("path", c.Source.Path)
	})
	cv.When(c.Source.Kind == "s3", func(cv *validation.ConfigValidator) {
		cv.Required("bucket", c.Source.Bucket).Required("key", c.Source.Key)
		cv.Together("access_key_id", c.Source.AccessKeyID, "secret_access_key", c.Source.SecretAccessKey)
	})
	cv.When(c.Source.Kind == "postgres", func(cv *validation.ConfigValidator) {
		cv.Required("database_url", c.Source.DatabaseURL).
			Required("table", c.Source.Table)
	})

	events := validation.NewConfigValidator("events").
		SocketAddress("listen", c.Events.Listen, "tcp", "ipc", "inproc", "ws")

	if err := errors.Join(cv.Validate(), events.Validate()); err != nil {
		return errors.Join(errors.New("invalid config"), err)
	}
	return nil
}
