package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Zhima-Mochi/brewterm/internal/pkg/logging"
)

const (
	DefaultService = "brewterm"
	DefaultEnv     = "dev"
	DefaultLevel   = "warn"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Service string `yaml:"service"`
	Env     string `yaml:"env"`

	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`

	// MetricsAddr enables the Prometheus endpoint when non-empty.
	MetricsAddr string `yaml:"metrics_addr"`
	// TraceFile enables span export to a file when non-empty.
	TraceFile string `yaml:"trace_file"`
}

func Default() Config {
	var c Config
	c.Service = DefaultService
	c.Env = DefaultEnv
	c.Log.Level = DefaultLevel
	return c
}

// Load reads the optional YAML file at path, applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	override(&cfg.Service, "SERVICE_NAME")
	override(&cfg.Env, "ENV")
	override(&cfg.Log.Level, "LOG_LEVEL")
	override(&cfg.Log.File, "LOG_FILE")
	override(&cfg.MetricsAddr, "METRICS_ADDR")
	override(&cfg.TraceFile, "TRACE_FILE")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Service) == "" {
		return fmt.Errorf("%w: service name is empty", ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// LoggingOptions maps the config onto logger construction options.
func (c Config) LoggingOptions() logging.Options {
	return logging.Options{
		Service: c.Service,
		Env:     c.Env,
		Level:   c.Log.Level,
		File:    c.Log.File,
	}
}

func override(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
