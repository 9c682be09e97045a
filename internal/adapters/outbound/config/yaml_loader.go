package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/openkraft/kraftreview/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".kraftreview.yaml"

// YAMLLoader implements domain.ConfigLoader by reading a YAML file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the config at path (FileName when empty) over the defaults.
// A missing file yields DefaultConfig.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	if path == "" {
		path = FileName
	}

	cfg := domain.DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
