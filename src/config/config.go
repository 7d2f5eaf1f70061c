// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/multilog/src/format"
	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/registry"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// FileEnvKey names the configuration file when [Load] is called without a path.
const FileEnvKey = "MULTILOG_CONFIG_FILE"

// ErrInvalidConfig is returned when a file does not match the schema.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed schema.json
var schema []byte

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Overrides are read from the environment after the file.
// Empty variables leave the loaded value alone.
type Overrides struct {
	Type         string `env:"MULTILOG_TYPE"`
	Dir          string `env:"MULTILOG_DIR"`
	Encoding     string `env:"MULTILOG_ENCODING"`
	FileLevel    string `env:"MULTILOG_FILE_LEVEL"`
	ConsoleLevel string `env:"MULTILOG_CONSOLE_LEVEL"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// Anything other than .yaml or .yml is read as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// Load reads the configuration at configPath, or at [FileEnvKey] when
// configPath is empty, over the defaults. Without any file it returns the
// defaults with environment overrides applied.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//
// Returns:
//   - A pointer to the loaded registry.Config
//   - An error wrapping [ErrInvalidConfig] for schema violations, or the
//     read, parse or override error
func Load(configPath string) (*registry.Config, error) {
	cfg := registry.DefaultConfig()

	if configPath == "" {
		configPath = os.Getenv(FileEnvKey)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := Parse(data, detectConfigFormat(configPath) == configFormatYAML, &cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Parse validates data against the schema and merges it into cfg.
// isYAML selects the YAML decoder; otherwise data is JSON.
func Parse(data []byte, isYAML bool, cfg *registry.Config) error {
	var doc any
	if isYAML {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}

	if err := validate(doc); err != nil {
		return err
	}

	if isYAML {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse JSON config file: %w", err)
	}
	return nil
}

func validate(doc any) error {
	if doc == nil {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func applyEnv(cfg *registry.Config) error {
	var ov Overrides
	if err := cleanenv.ReadEnv(&ov); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}

	if ov.Type != "" {
		cfg.Type = ov.Type
	}
	if ov.Dir != "" {
		cfg.Dir = ov.Dir
	}
	if ov.Encoding != "" {
		cfg.Encoding = format.NormalizeEncoding(ov.Encoding)
	}
	if ov.FileLevel != "" {
		l, err := level.Parse(ov.FileLevel)
		if err != nil {
			return fmt.Errorf("MULTILOG_FILE_LEVEL: %w", err)
		}
		cfg.Level = l
	}
	if ov.ConsoleLevel != "" {
		l, err := level.Parse(ov.ConsoleLevel)
		if err != nil {
			return fmt.Errorf("MULTILOG_CONSOLE_LEVEL: %w", err)
		}
		cfg.ConsoleLevel = l
	}

	return nil
}
