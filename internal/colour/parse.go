package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCSS parses colour text. Input starting with '#' is read as hex;
// anything else is handed to resolver.
func ParseCSS(input string, resolver NameResolver) (RGBA, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return RGBA{}, ErrEmpty
	}

	if input[0] == '#' {
		return ParseHex(input)
	}

	return RGBAFromName(input, resolver)
}

// ParseHex parses #rgb, #rgba, #rrggbb or #rrggbbaa text. The leading '#' is
// optional and digits are case-insensitive. Forms without an alpha digit are
// fully opaque.
func ParseHex(input string) (RGBA, error) {
	digits := strings.TrimPrefix(input, "#")

	var r, g, b, a uint64
	var err error
	switch len(digits) {
	case 3, 4:
		vals := make([]uint64, len(digits))
		for i := range digits {
			vals[i], err = strconv.ParseUint(digits[i:i+1], 16, 8)
			if err != nil {
				return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, input)
			}
			vals[i] *= 17
		}
		r, g, b, a = vals[0], vals[1], vals[2], 255
		if len(vals) == 4 {
			a = vals[3]
		}
	case 6, 8:
		raw, perr := strconv.ParseUint(digits, 16, 32)
		if perr != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, input)
		}
		a = 255
		if len(digits) == 8 {
			a = raw & 0xff
			raw >>= 8
		}
		r, g, b = raw>>16, raw>>8&0xff, raw&0xff
	default:
		return RGBA{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidHex, input, len(digits))
	}

	return NewRGBA(float64(r), float64(g), float64(b), float64(a)/255), nil
}

// RGBAFromName resolves a colour name through resolver. The resolver must
// return exactly four 0-255 components; alpha is scaled to 0-1.
func RGBAFromName(name string, resolver NameResolver) (RGBA, error) {
	if resolver == nil {
		return RGBA{}, ErrNoResolver
	}

	data, err := resolver.ResolveName(name)
	if err != nil {
		return RGBA{}, fmt.Errorf("resolve %q: %w", name, err)
	}
	if len(data) != 4 {
		return RGBA{}, fmt.Errorf("%w: %q resolved to %d components", ErrUnresolvable, name, len(data))
	}

	return NewRGBA(float64(data[0]), float64(data[1]), float64(data[2]), float64(data[3])/255), nil
}
