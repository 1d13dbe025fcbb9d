package resolver

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/jmylchreest/legible/internal/colour"
)

// Keywords resolves the CSS named colours plus "transparent".
type Keywords struct{}

// ResolveName implements colour.NameResolver. Names are case-insensitive.
func (Keywords) ResolveName(name string) ([]uint8, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "transparent" {
		return []uint8{0, 0, 0, 0}, nil
	}

	c, ok := colornames.Map[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a CSS colour keyword", colour.ErrUnresolvable, name)
	}
	return []uint8{c.R, c.G, c.B, c.A}, nil
}

// KeywordNames returns every keyword Keywords resolves, in sorted order.
func KeywordNames() []string {
	names := make([]string, 0, len(colornames.Names)+1)
	names = append(names, colornames.Names...)
	names = append(names, "transparent")
	slices.Sort(names)
	return names
}
