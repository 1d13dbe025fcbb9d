package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/legible/internal/colour"
	pluginapi "github.com/jmylchreest/legible/pkg/plugin"
)

// EnvPaletteFile names the palette file to serve.
const EnvPaletteFile = "LEGIBLE_PALETTE_FILE"

// Palette resolves names from a YAML map of name to hex colour.
type Palette struct {
	path   string
	colors map[string][]uint8
}

func palettePath(getenv func(string) string) (string, error) {
	if p := strings.TrimSpace(getenv(EnvPaletteFile)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "legible", "palette.yaml"), nil
}

// Load reads and validates the palette file.
func (p *Palette) Load() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return err
	}
	return p.parse(data)
}

func (p *Palette) parse(data []byte) error {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse %s: %w", p.path, err)
	}

	colors := make(map[string][]uint8, len(raw))
	for name, hex := range raw {
		c, err := colour.ParseHex(hex)
		if err != nil {
			return fmt.Errorf("%s: colour %q: %w", p.path, name, err)
		}
		colors[normalizeName(name)] = []uint8{
			uint8(c.R),
			uint8(c.G),
			uint8(c.B),
			uint8(c.A*255 + 0.5),
		}
	}
	p.colors = colors
	return nil
}

// ResolveName implements pluginapi.Resolver.
func (p *Palette) ResolveName(name string) ([]uint8, error) {
	c, ok := p.colors[normalizeName(name)]
	if !ok {
		return nil, pluginapi.ErrUnknownName
	}
	return c, nil
}

// GetMetadata implements pluginapi.Resolver.
func (p *Palette) GetMetadata() pluginapi.PluginInfo {
	return pluginapi.PluginInfo{
		Name:            "palette",
		Version:         "0.1.0",
		ProtocolVersion: pluginapi.ProtocolVersion,
		Description:     "Resolve colour names from a YAML palette file",
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
