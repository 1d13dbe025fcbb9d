package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/legible/internal/adjuster"
)

// ErrUnsupportedFormat is returned for config files whose extension is not
// .yaml, .yml, .toml or .json.
var ErrUnsupportedFormat = errors.New("unsupported config format")

var keyMap = map[string]string{
	"base":            "base",
	"background":      "base",
	"mode":            "mode",
	"contrast":        "contrast",
	"ratio":           "contrast",
	"resolver_plugin": "resolver_plugin",
	"plugin":          "resolver_plugin",
	"preview":         "preview",
}

// Load reads a config file. An empty path yields an empty layer.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	var decode func([]byte, any) error
	switch ext {
	case ".yaml", ".yml":
		decode = yaml.Unmarshal
	case ".toml":
		decode = toml.Unmarshal
	case ".json":
		decode = json.Unmarshal
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := decode(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if raw == nil {
		return cfg, nil
	}

	cfg, err = decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	for key, value := range raw {
		canonical, ok := keyMap[normalizeKey(key)]
		if !ok {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}

		switch canonical {
		case "base":
			s, err := expectString(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Base = &s
		case "mode":
			m, err := expectMode(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Mode = &m
		case "contrast":
			f, err := expectFloat(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Contrast = &f
		case "resolver_plugin":
			s, err := expectString(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.ResolverPlugin = &s
		case "preview":
			b, err := expectBool(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Preview = &b
		}
	}
	return cfg, nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return parseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectFloat(value any, field string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return parseFloat(v, field)
	default:
		return 0, fmt.Errorf("expected number for %s, got %T", field, value)
	}
}

func expectMode(value any, field string) (adjuster.Mode, error) {
	switch v := value.(type) {
	case string:
		return adjuster.ParseMode(v)
	case int:
		return adjuster.Mode(v), nil
	case int64:
		return adjuster.Mode(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return adjuster.Mode(int(v)), nil
	default:
		return 0, fmt.Errorf("expected mode name or number for %s, got %T", field, value)
	}
}

func parseBool(raw, field string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %q", field, raw)
	}
	return b, nil
}

func parseFloat(raw, field string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %q", field, raw)
	}
	return f, nil
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(norm, "-", "_")
}
