package colour

import (
	"fmt"
	"math"
)

const (
	// maxBisectionSteps bounds the lightness search in TargetLuminance.
	maxBisectionSteps = 64

	// bisectionResolution is the interval width at which the search stops.
	bisectionResolution = 1.0 / 65536
)

// HSLA is a colour in hue/saturation/lightness form. All channels are 0-1
// and H wraps at 1.
type HSLA struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
	A float64 `json:"a"`
}

// NewHSLA creates an HSLA from raw channels. NaN channels become 0.
func NewHSLA(h, s, l, a float64) HSLA {
	return HSLA{H: orZero(h), S: orZero(s), L: orZero(l), A: orZero(a)}
}

func (HSLA) isColour() {}

// Eq reports whether other, converted to HSLA, has identical channels.
func (c HSLA) Eq(other Colour, ignoreAlpha bool) bool {
	if other == nil {
		return false
	}
	o := other.ToHSLA()
	return c.H == o.H && c.S == o.S && c.L == o.L && (ignoreAlpha || c.A == o.A)
}

func (c HSLA) WithH(h float64) HSLA { return NewHSLA(h, c.S, c.L, c.A) }
func (c HSLA) WithS(s float64) HSLA { return NewHSLA(c.H, s, c.L, c.A) }
func (c HSLA) WithL(l float64) HSLA { return NewHSLA(c.H, c.S, l, c.A) }
func (c HSLA) WithA(a float64) HSLA { return NewHSLA(c.H, c.S, c.L, a) }

// HSLAFromRGBA converts 0-255 RGB channels to HSL. Alpha defaults to 1.
func HSLAFromRGBA(r, g, b float64, alpha ...float64) HSLA {
	r /= 255
	g /= 255
	b /= 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	l := clamp((maxVal+minVal)/2, 0, 1)
	d := clamp(maxVal-minVal, 0, 1)

	if d == 0 {
		return NewHSLA(0, 0, l, alphaOr(alpha))
	}

	var s float64
	if l > 0.5 {
		s = d / (2 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	return NewHSLA(hexHue(r, g, b, maxVal, d), s, l, alphaOr(alpha))
}

// CSS returns hsl(h,s%,l%) for opaque colours and hsla(h,s%,l%,a) otherwise.
// Hue is in whole degrees.
func (c HSLA) CSS() string {
	h := roundHalfUp(c.H * 360)
	s := roundHalfUp(c.S * 100)
	l := roundHalfUp(c.L * 100)

	if c.A != 1 {
		return fmt.Sprintf("hsla(%s,%s%%,%s%%,%s)", formatFloat(h), formatFloat(s), formatFloat(l), formatFloat(c.A))
	}
	return fmt.Sprintf("hsl(%s,%s%%,%s%%)", formatFloat(h), formatFloat(s), formatFloat(l))
}

func (c HSLA) Hex() string { return c.ToRGBA().Hex() }

func (c HSLA) ToRGBA() RGBA { return RGBAFromHSLA(c.H, c.S, c.L, c.A) }
func (c HSLA) ToHSVA() HSVA { return c.ToRGBA().ToHSVA() }
func (c HSLA) ToHSLA() HSLA { return c }
func (c HSLA) ToXYZA() XYZA { return c.ToRGBA().ToXYZA() }
func (c HSLA) ToLUVA() LUVA { return c.ToRGBA().ToLUVA() }

// TargetLuminance searches for the lightness whose relative luminance is
// closest to target, keeping hue fixed. Saturation is first damped towards
// the extremes of lightness, where it otherwise skews perceived luminance.
// The returned colour carries the damped saturation and c's alpha.
func (c HSLA) TargetLuminance(target float64) HSLA {
	s := c.S
	if c.L > 0.5 {
		s *= math.Pow(-c.L, 7) + 1
	} else {
		s *= math.Pow(c.L-1, 7) + 1
	}

	lo := 0.0
	d := 0.5
	mid := lo + d

	for i := 0; i < maxBisectionSteps && d > bisectionResolution; i++ {
		if RGBAFromHSLA(c.H, s, mid, 1).Luminance() <= target {
			lo = mid
		}
		d /= 2
		mid = lo + d
	}

	return NewHSLA(c.H, s, mid, c.A)
}
