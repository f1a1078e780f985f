package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/templates"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "VPHP_CONFIG"

const defaultConfigPath = "~/.config/valet-php/config.toml"

// ErrConfigValidation wraps config validation failures, as opposed to TOML
// syntax or filesystem errors.
var ErrConfigValidation = errors.New(messages.ConfigValidationFailed)

var (
	readFileFunc = os.ReadFile
	getenvFunc   = os.Getenv
)

// ResolvePath returns the config file location, honoring VPHP_CONFIG.
func ResolvePath() (string, error) {
	path := strings.TrimSpace(getenvFunc(EnvConfigPath))
	if path == "" {
		path = defaultConfigPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return expanded, nil
}

// Load resolves the config path and loads it. A missing file yields the defaults.
func Load() (*Config, string, error) {
	path, err := ResolvePath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := LoadConfig(path)
	return cfg, path, err
}

// LoadConfig reads path and validates it. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := readFileFunc(path)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadTemplateConfig()
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return ParseConfig(data, path)
}

// LoadTemplateConfig returns the embedded default config.
func LoadTemplateConfig() (*Config, error) {
	data, err := templates.Read("config.toml")
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigFailedReadTemplateFmt, err)
	}
	return parse(nil, data, "template config.toml")
}

// ParseConfig parses data over the embedded defaults and validates the result.
// source is used in error messages.
func ParseConfig(data []byte, source string) (*Config, error) {
	defaults, err := LoadTemplateConfig()
	if err != nil {
		return nil, err
	}
	return parse(defaults, data, source)
}

func parse(base *Config, data []byte, source string) (*Config, error) {
	var cfg Config
	if base != nil {
		cfg = *base
		cfg.Extensions.Install = append([]string(nil), base.Extensions.Install...)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	home, err := homedir.Expand(strings.TrimSpace(cfg.Home))
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigExpandPathFmt, cfg.Home, err)
	}
	cfg.Home = home
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data rejecting unknown keys, which
// toml.Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}
