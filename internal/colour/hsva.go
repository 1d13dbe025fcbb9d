package colour

import "math"

// HSVA is a colour in hue/saturation/value form. All channels are 0-1 and
// H wraps at 1.
type HSVA struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
	A float64 `json:"a"`
}

// NewHSVA creates an HSVA from raw channels. NaN channels become 0.
func NewHSVA(h, s, v, a float64) HSVA {
	return HSVA{H: orZero(h), S: orZero(s), V: orZero(v), A: orZero(a)}
}

func (HSVA) isColour() {}

// Eq reports whether other, converted to HSVA, has identical channels.
func (c HSVA) Eq(other Colour, ignoreAlpha bool) bool {
	if other == nil {
		return false
	}
	o := other.ToHSVA()
	return c.H == o.H && c.S == o.S && c.V == o.V && (ignoreAlpha || c.A == o.A)
}

func (c HSVA) WithH(h float64) HSVA { return NewHSVA(h, c.S, c.V, c.A) }
func (c HSVA) WithS(s float64) HSVA { return NewHSVA(c.H, s, c.V, c.A) }
func (c HSVA) WithV(v float64) HSVA { return NewHSVA(c.H, c.S, v, c.A) }
func (c HSVA) WithA(a float64) HSVA { return NewHSVA(c.H, c.S, c.V, a) }

// HSVAFromRGBA converts 0-255 RGB channels to HSV. Alpha defaults to 1.
func HSVAFromRGBA(r, g, b float64, alpha ...float64) HSVA {
	r /= 255
	g /= 255
	b /= 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	d := clamp(maxVal-minVal, 0, 1)

	s := 0.0
	if maxVal != 0 {
		s = d / maxVal
	}

	return NewHSVA(hexHue(r, g, b, maxVal, d), s, maxVal, alphaOr(alpha))
}

// hexHue returns the hue in [0,1) on the RGB hexagon. A zero delta is grey
// and has hue 0.
func hexHue(r, g, b, maxVal, d float64) float64 {
	if d == 0 {
		return 0
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

func (c HSVA) CSS() string { return c.ToRGBA().CSS() }
func (c HSVA) Hex() string { return c.ToRGBA().Hex() }

func (c HSVA) ToRGBA() RGBA { return RGBAFromHSVA(c.H, c.S, c.V, c.A) }
func (c HSVA) ToHSVA() HSVA { return c }
func (c HSVA) ToHSLA() HSLA { return c.ToRGBA().ToHSLA() }
func (c HSVA) ToXYZA() XYZA { return c.ToRGBA().ToXYZA() }
func (c HSVA) ToLUVA() LUVA { return c.ToRGBA().ToLUVA() }
