package config

import (
	"errors"
	"strings"

	"github.com/jmylchreest/legible/internal/adjuster"
)

// FromEnv reads a config layer through getenv, normally os.Getenv. Blank
// variables are treated as unset.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	lookup := func(key string) (string, bool) {
		raw := strings.TrimSpace(getenv(key))
		return raw, raw != ""
	}

	if raw, ok := lookup(EnvBase); ok {
		cfg.Base = &raw
	}
	if raw, ok := lookup(EnvMode); ok {
		m, err := adjuster.ParseMode(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Mode = &m
		}
	}
	if raw, ok := lookup(EnvContrast); ok {
		f, err := parseFloat(raw, EnvContrast)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Contrast = &f
		}
	}
	if raw, ok := lookup(EnvResolverPlugin); ok {
		cfg.ResolverPlugin = &raw
	}
	if raw, ok := lookup(EnvPreview); ok {
		b, err := parseBool(raw, EnvPreview)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Preview = &b
		}
	}

	return cfg, errors.Join(errs...)
}

// PathFromEnv returns the config file named by LEGIBLE_CONFIG, if any.
func PathFromEnv(getenv func(string) string) string {
	if getenv == nil {
		return ""
	}
	return strings.TrimSpace(getenv(EnvConfig))
}
