package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jj05y/MTT/core/logger"
	"gopkg.in/yaml.v3"
)

// Enum value emission modes.
const (
	EnumValuesNumeric = "numeric"
	EnumValuesString  = "string"
)

// Output path/name styles.
const (
	PathStyleDefault = "default"
	PathStyleKebab   = "kebab"
)

type Config struct {
	// WorkingDirectory holds one or more input roots; multiple roots are
	// separated by semicolons. Empty means the current working directory.
	WorkingDirectory string `yaml:"working_dir"`
	// ConvertDirectory is the output root, cleared and recreated on each run.
	ConvertDirectory string `yaml:"convert_dir"`
	AutoGeneratedTag bool   `yaml:"auto_generated_tag"`
	EnumValues       string `yaml:"enum_values"`
	PathStyle        string `yaml:"path_style"`
}

func Default() *Config {
	return &Config{
		WorkingDirectory: "",
		ConvertDirectory: "models",
		AutoGeneratedTag: true,
		EnumValues:       EnumValuesNumeric,
		PathStyle:        PathStyleDefault,
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	paths := []string{
		filepath.Join(wd, "mtt.yaml"),
		filepath.Join(wd, "mtt.yml"),
	}

	var filePath string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			filePath = p
			break
		}
	}

	if filePath == "" {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}

// WorkingDirectories splits the semicolon-separated root list. An empty
// configuration yields the current working directory.
func (c *Config) WorkingDirectories() ([]string, error) {
	if strings.TrimSpace(c.WorkingDirectory) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working dir: %w", err)
		}
		return []string{wd}, nil
	}

	var roots []string
	for _, part := range strings.Split(c.WorkingDirectory, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			roots = append(roots, part)
		}
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("working_dir %q contains no usable paths", c.WorkingDirectory)
	}
	return roots, nil
}

func (c *Config) Validate() error {
	switch c.EnumValues {
	case EnumValuesNumeric, EnumValuesString:
	default:
		return fmt.Errorf("invalid enum_values %q: must be %q or %q", c.EnumValues, EnumValuesNumeric, EnumValuesString)
	}

	switch c.PathStyle {
	case PathStyleDefault, PathStyleKebab:
	default:
		return fmt.Errorf("invalid path_style %q: must be %q or %q", c.PathStyle, PathStyleDefault, PathStyleKebab)
	}

	if strings.TrimSpace(c.ConvertDirectory) == "" {
		return fmt.Errorf("convert_dir must not be empty")
	}

	return nil
}
