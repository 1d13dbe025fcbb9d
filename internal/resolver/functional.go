package resolver

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/legible/internal/colour"
)

// errMalformed marks functional notation that was recognised but could not
// be parsed.
var errMalformed = errors.New("malformed colour function")

// Functional resolves CSS functional notation: rgb(), rgba(), hsl() and
// hsla(). Both the comma separated and the space separated forms are
// accepted, the latter with an optional "/ alpha".
type Functional struct{}

// ResolveName implements colour.NameResolver.
func (Functional) ResolveName(name string) ([]uint8, error) {
	fn, args, ok := splitFunction(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a colour function", colour.ErrUnresolvable, name)
	}

	parts, err := splitArgs(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s(): %w", colour.ErrUnresolvable, fn, err)
	}

	var c colour.RGBA
	switch fn {
	case "rgb", "rgba":
		c, err = parseRGBArgs(parts)
	case "hsl", "hsla":
		c, err = parseHSLArgs(parts)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s(): %w", colour.ErrUnresolvable, fn, err)
	}

	return []uint8{
		to8(c.R),
		to8(c.G),
		to8(c.B),
		to8(c.A * 255),
	}, nil
}

func splitFunction(s string) (string, string, bool) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}

	fn := strings.ToLower(strings.TrimSpace(s[:open]))
	switch fn {
	case "rgb", "rgba", "hsl", "hsla":
		return fn, s[open+1 : len(s)-1], true
	}
	return "", "", false
}

// splitArgs returns three or four arguments, the fourth being alpha.
func splitArgs(args string) ([]string, error) {
	var parts []string
	if strings.Contains(args, ",") {
		for p := range strings.SplitSeq(args, ",") {
			parts = append(parts, strings.TrimSpace(p))
		}
	} else {
		main, alpha, hasAlpha := strings.Cut(args, "/")
		parts = strings.Fields(main)
		if hasAlpha {
			alpha = strings.TrimSpace(alpha)
			if alpha == "" || len(parts) != 3 {
				return nil, fmt.Errorf("%w: bad alpha separator", errMalformed)
			}
			parts = append(parts, alpha)
		}
	}

	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("%w: want 3 or 4 arguments, got %d", errMalformed, len(parts))
	}
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: empty argument", errMalformed)
		}
	}
	return parts, nil
}

func parseRGBArgs(parts []string) (colour.RGBA, error) {
	var ch [3]float64
	for i := range ch {
		v, err := parseNumberOrPercent(parts[i], 255)
		if err != nil {
			return colour.RGBA{}, err
		}
		ch[i] = v
	}

	a, err := parseAlpha(parts)
	if err != nil {
		return colour.RGBA{}, err
	}
	return colour.NewRGBA(ch[0], ch[1], ch[2], a), nil
}

func parseHSLArgs(parts []string) (colour.RGBA, error) {
	h, err := parseHue(parts[0])
	if err != nil {
		return colour.RGBA{}, err
	}
	s, err := parseNumberOrPercent(parts[1], 100)
	if err != nil {
		return colour.RGBA{}, err
	}
	l, err := parseNumberOrPercent(parts[2], 100)
	if err != nil {
		return colour.RGBA{}, err
	}
	a, err := parseAlpha(parts)
	if err != nil {
		return colour.RGBA{}, err
	}

	return colour.RGBAFromHSLA(h/360, clamp01(s/100), clamp01(l/100), a), nil
}

func parseAlpha(parts []string) (float64, error) {
	if len(parts) < 4 {
		return 1, nil
	}
	a, err := parseNumberOrPercent(parts[3], 1)
	if err != nil {
		return 0, err
	}
	return clamp01(a), nil
}

// parseNumberOrPercent parses a bare number, or a percentage scaled so that
// 100% equals full.
func parseNumberOrPercent(s string, full float64) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseFloat(p)
		if err != nil {
			return 0, err
		}
		return v * full / 100, nil
	}
	return parseFloat(s)
}

// parseHue returns the hue in degrees, normalised to [0, 360).
func parseHue(s string) (float64, error) {
	s = strings.ToLower(s)
	units := []struct {
		suffix string
		scale  float64
	}{
		{"deg", 1},
		{"grad", 0.9},
		{"rad", 180 / math.Pi},
		{"turn", 360},
	}

	scale := 1.0
	for _, u := range units {
		if v, ok := strings.CutSuffix(s, u.suffix); ok {
			s, scale = v, u.scale
			break
		}
	}

	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	h := math.Mod(v*scale, 360)
	if h < 0 {
		h += 360
	}
	return h, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: bad number %q", errMalformed, s)
	}
	return v, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func to8(v float64) uint8 {
	return uint8(math.Floor(math.Max(0, math.Min(255, v)) + 0.5))
}
