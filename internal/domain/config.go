package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds service configuration loaded from .kraftreview.yaml.
type Config struct {
	Server  ServerConfig  `yaml:"server"  json:"server"`
	Log     LogConfig     `yaml:"log"     json:"log"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr              string        `yaml:"addr"                json:"addr"                validate:"required,hostname_port"`
	StaticDir         string        `yaml:"static_dir"          json:"static_dir"`
	AllowedOrigins    []string      `yaml:"allowed_origins"     json:"allowed_origins"     validate:"min=1,dive,required"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" json:"read_header_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"    json:"shutdown_timeout"    validate:"gt=0"`
}

// LogConfig configures structured logging. An empty File logs to stderr.
type LogConfig struct {
	Level      string `yaml:"level"        json:"level"        validate:"oneof=debug info warn error"`
	Format     string `yaml:"format"       json:"format"       validate:"oneof=json console"`
	File       string `yaml:"file"         json:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"  json:"max_size_mb"  validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups"  json:"max_backups"  validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress"     json:"compress"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Path    string `yaml:"path"    json:"path" validate:"omitempty,startswith=/"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:              ":8000",
			StaticDir:         "build",
			AllowedOrigins:    []string{"*"},
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the config and reports every invalid key by its yaml path.
func (c Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", key, fe.Tag(), fe.Param(), fe.Value()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: failed %s (got %v)", key, fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
