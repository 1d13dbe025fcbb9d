package colour

import (
	"errors"
	"strconv"
)

var (
	// ErrEmpty is returned when parsing blank input.
	ErrEmpty = errors.New("empty colour")

	// ErrInvalidHex is returned for malformed hex colour text.
	ErrInvalidHex = errors.New("invalid hex colour")

	// ErrNoResolver is returned when a colour name needs resolving but no
	// resolver is available.
	ErrNoResolver = errors.New("no colour name resolver available")

	// ErrUnresolvable is returned when a resolver cannot map a name to a colour.
	ErrUnresolvable = errors.New("unresolvable colour name")

	// ErrInvalidCVDMatrix is returned when daltonizing with an unknown matrix name.
	ErrInvalidCVDMatrix = errors.New("invalid CVD matrix")
)

// Colour is implemented by the five colour representations in this package.
// Every representation can convert to every other one and format itself as
// CSS or hex text by way of RGBA.
type Colour interface {
	// Eq converts other into the receiver's representation and compares
	// channels exactly. A nil other is never equal.
	Eq(other Colour, ignoreAlpha bool) bool

	CSS() string
	Hex() string

	ToRGBA() RGBA
	ToHSVA() HSVA
	ToHSLA() HSLA
	ToXYZA() XYZA
	ToLUVA() LUVA

	isColour()
}

// NameResolver maps a colour name to raw 8-bit components.
// A well-formed result has exactly four components: red, green, blue and
// alpha, each 0-255.
type NameResolver interface {
	ResolveName(name string) ([]uint8, error)
}

// NameResolverFunc adapts a function to NameResolver.
type NameResolverFunc func(name string) ([]uint8, error)

// ResolveName calls f(name).
func (f NameResolverFunc) ResolveName(name string) ([]uint8, error) {
	return f(name)
}

// Luminance returns the WCAG relative luminance of any colour.
func Luminance(c Colour) float64 {
	return c.ToRGBA().Luminance()
}

// ContrastRatio returns the WCAG contrast ratio between two colours, from 1
// (identical luminance) to 21 (black against white).
func ContrastRatio(a, b Colour) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// formatFloat renders v in the shortest form that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
