// palette - Named Colour Palette (legible resolver plugin)
//
// Resolves colour names from a YAML palette file so that project or brand
// names such as "brand-primary" can be used anywhere legible accepts a
// colour.
//
// Palette file (LEGIBLE_PALETTE_FILE, default $XDG_CONFIG_HOME/legible/palette.yaml):
//
//	brand-primary: "#1d4ed8"
//	brand-accent: "#f59e0bcc"
//
// Build:
//
//	go build -o legible-palette ./contrib/plugins/resolver/palette
//
// Usage:
//
//	legible --resolver-plugin ./legible-palette convert brand-primary
package main

import (
	"fmt"
	"os"

	pluginapi "github.com/jmylchreest/legible/pkg/plugin"
)

func main() {
	path, err := palettePath(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating palette: %v\n", err)
		os.Exit(1)
	}

	p := &Palette{path: path}
	if len(os.Args) <= 1 || os.Args[1] != pluginapi.InfoFlag {
		if err := p.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading palette: %v\n", err)
			os.Exit(1)
		}
	}

	pluginapi.Serve(p)
}
