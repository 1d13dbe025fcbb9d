package resolver

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/jmylchreest/legible/internal/colour"
)

// terminalColour is one of the 16 basic ANSI terminal colours.
type terminalColour struct {
	name    string
	r, g, b uint8
	aliases []string
}

// terminalColours holds typical xterm values. Real terminals vary.
var terminalColours = []terminalColour{
	{"black", 0, 0, 0, []string{"color0"}},
	{"red", 205, 49, 49, []string{"color1"}},
	{"green", 13, 188, 121, []string{"color2"}},
	{"yellow", 229, 229, 16, []string{"color3"}},
	{"blue", 36, 114, 200, []string{"color4"}},
	{"magenta", 188, 63, 188, []string{"color5"}},
	{"cyan", 17, 168, 205, []string{"color6"}},
	{"white", 229, 229, 229, []string{"color7"}},

	{"brightblack", 102, 102, 102, []string{"color8", "darkgray", "darkgrey"}},
	{"brightred", 241, 76, 76, []string{"color9"}},
	{"brightgreen", 35, 209, 139, []string{"color10"}},
	{"brightyellow", 245, 245, 67, []string{"color11"}},
	{"brightblue", 59, 142, 234, []string{"color12"}},
	{"brightmagenta", 214, 112, 214, []string{"color13", "brightpurple"}},
	{"brightcyan", 41, 184, 219, []string{"color14"}},
	{"brightwhite", 255, 255, 255, []string{"color15"}},
}

// Terminal resolves the 16 ANSI terminal colour names: "color0" to
// "color15", "bright-red" style names, and the same names prefixed with
// "ansi", such as "ansi-red". Spaces, dashes and case are ignored. Placed
// after Keywords in a chain, plain CSS names keep their CSS values.
type Terminal struct{}

// ResolveName implements colour.NameResolver.
func (Terminal) ResolveName(name string) ([]uint8, error) {
	key := normalizeTerminalName(name)
	if base, ok := strings.CutPrefix(key, "ansi"); ok {
		key = base
	}

	for _, tc := range terminalColours {
		if tc.name == key || slices.Contains(tc.aliases, key) {
			return []uint8{tc.r, tc.g, tc.b, 255}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not a terminal colour", colour.ErrUnresolvable, name)
}

// NearestTerminalName returns the name of the ANSI colour closest to c
// using a weighted RGB distance.
func NearestTerminalName(c colour.RGBA) string {
	best := ""
	minDistance := math.MaxFloat64
	for _, tc := range terminalColours {
		dr := c.R - float64(tc.r)
		dg := c.G - float64(tc.g)
		db := c.B - float64(tc.b)
		// Green weighted highest to follow perceived sensitivity.
		d := 2*dr*dr + 4*dg*dg + 3*db*db
		if d < minDistance {
			minDistance = d
			best = tc.name
		}
	}
	return best
}

// TerminalNames returns the canonical terminal colour names.
func TerminalNames() []string {
	names := make([]string, len(terminalColours))
	for i, tc := range terminalColours {
		names[i] = tc.name
	}
	return names
}

func normalizeTerminalName(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}
