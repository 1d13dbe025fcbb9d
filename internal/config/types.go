// Package config loads legible settings from config files and the
// environment and layers them over the built-in defaults.
package config

import "github.com/jmylchreest/legible/internal/adjuster"

// Environment variables read by FromEnv.
const (
	EnvBase           = "LEGIBLE_BASE"
	EnvMode           = "LEGIBLE_MODE"
	EnvContrast       = "LEGIBLE_CONTRAST"
	EnvResolverPlugin = "LEGIBLE_RESOLVER_PLUGIN"
	EnvPreview        = "LEGIBLE_PREVIEW"
	EnvConfig         = "LEGIBLE_CONFIG"
)

// Config is one layer of settings. Nil fields are unset and leave lower
// layers in place.
type Config struct {
	Base           *string
	Mode           *adjuster.Mode
	Contrast       *float64
	ResolverPlugin *string
	Preview        *bool
}

// Settings is the fully resolved configuration.
type Settings struct {
	Base           string        `json:"base"`
	Mode           adjuster.Mode `json:"mode"`
	Contrast       float64       `json:"contrast"`
	ResolverPlugin string        `json:"resolver_plugin,omitempty"`
	Preview        bool          `json:"preview"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Base:     adjuster.DefaultBase,
		Mode:     adjuster.ModePassthrough,
		Contrast: adjuster.DefaultContrast,
	}
}

// AdjusterOptions converts s into adjuster options.
func (s Settings) AdjusterOptions() []adjuster.Option {
	return []adjuster.Option{
		adjuster.WithBase(s.Base),
		adjuster.WithMode(s.Mode),
		adjuster.WithContrast(s.Contrast),
	}
}
