package colour

import (
	"fmt"
	"math"
)

// RGBA is a colour in device space. R, G and B are 0-255 and may be
// fractional; A is 0-1.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// NewRGBA creates an RGBA from raw channels. NaN channels become 0.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: orZero(r), G: orZero(g), B: orZero(b), A: orZero(a)}
}

func (RGBA) isColour() {}

// Eq reports whether other, converted to RGBA, has identical channels.
func (c RGBA) Eq(other Colour, ignoreAlpha bool) bool {
	if other == nil {
		return false
	}
	o := other.ToRGBA()
	return c.R == o.R && c.G == o.G && c.B == o.B && (ignoreAlpha || c.A == o.A)
}

// WithR returns a copy of c with red replaced.
func (c RGBA) WithR(r float64) RGBA { return NewRGBA(r, c.G, c.B, c.A) }

// WithG returns a copy of c with green replaced.
func (c RGBA) WithG(g float64) RGBA { return NewRGBA(c.R, g, c.B, c.A) }

// WithB returns a copy of c with blue replaced.
func (c RGBA) WithB(b float64) RGBA { return NewRGBA(c.R, c.G, b, c.A) }

// WithA returns a copy of c with alpha replaced.
func (c RGBA) WithA(a float64) RGBA { return NewRGBA(c.R, c.G, c.B, a) }

// RGBAFromHSVA converts HSV to RGB. Alpha defaults to 1.
func RGBAFromHSVA(h, s, v float64, alpha ...float64) RGBA {
	i := int(math.Floor(h * 6))
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch ((i % 6) + 6) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return NewRGBA(to8Bit(r), to8Bit(g), to8Bit(b), alphaOr(alpha))
}

// RGBAFromHSLA converts HSL to RGB. Alpha defaults to 1.
func RGBAFromHSLA(h, s, l float64, alpha ...float64) RGBA {
	if s == 0 {
		v := to8Bit(l)
		return NewRGBA(v, v, v, alphaOr(alpha))
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return NewRGBA(
		to8Bit(hueToChannel(p, q, h+1.0/3)),
		to8Bit(hueToChannel(p, q, h)),
		to8Bit(hueToChannel(p, q, h-1.0/3)),
		alphaOr(alpha),
	)
}

// RGBAFromXYZA converts CIE XYZ to RGB. The result is clamped to the sRGB
// gamut but not rounded. Alpha defaults to 1.
func RGBAFromXYZA(x, y, z float64, alpha ...float64) RGBA {
	r := 3.240479*x - 1.537150*y - 0.498535*z
	g := -0.969256*x + 1.875992*y + 0.041556*z
	b := 0.055648*x - 0.204043*y + 1.057311*z

	return NewRGBA(
		clamp(255*Delinearize(r), 0, 255),
		clamp(255*Delinearize(g), 0, 255),
		clamp(255*Delinearize(b), 0, 255),
		alphaOr(alpha),
	)
}

// to8Bit scales a [0,1] channel to a rounded, clamped 0-255 value.
func to8Bit(v float64) float64 {
	return roundHalfUp(clamp(v*255, 0, 255))
}

// CSS returns rgba(r,g,b,a) for translucent colours and #rrggbb otherwise.
func (c RGBA) CSS() string {
	if c.A != 1 {
		return fmt.Sprintf("rgba(%s,%s,%s,%s)", formatFloat(c.R), formatFloat(c.G), formatFloat(c.B), formatFloat(c.A))
	}
	return c.Hex()
}

// Hex returns the colour as #rrggbb. Alpha is dropped.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", hexByte(c.R), hexByte(c.G), hexByte(c.B))
}

func hexByte(v float64) uint8 {
	return uint8(clamp(roundHalfUp(v), 0, 255))
}

// ToRGBA returns c.
func (c RGBA) ToRGBA() RGBA { return c }

// ToHSVA converts c to HSV.
func (c RGBA) ToHSVA() HSVA { return HSVAFromRGBA(c.R, c.G, c.B, c.A) }

// ToHSLA converts c to HSL.
func (c RGBA) ToHSLA() HSLA { return HSLAFromRGBA(c.R, c.G, c.B, c.A) }

// ToXYZA converts c to CIE XYZ.
func (c RGBA) ToXYZA() XYZA { return XYZAFromRGBA(c.R, c.G, c.B, c.A) }

// ToLUVA converts c to CIE LUV relative to D65.
func (c RGBA) ToLUVA() LUVA { return c.ToXYZA().ToLUVA() }

// Luminance returns the WCAG 2.0 relative luminance, 0 for black to 1 for white.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func (c RGBA) Luminance() float64 {
	r := Linearize(c.R / 255)
	g := Linearize(c.G / 255)
	b := Linearize(c.B / 255)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Luma returns NTSC perceptual luma scaled to [0,1]. It works on the gamma
// encoded channels and is cheaper but less accurate than Luminance.
func (c RGBA) Luma() float64 {
	return (0.299*c.R + 0.587*c.G + 0.114*c.B) / 255
}

// Brighten adds amount percent of full scale to every channel, clamping to
// [0,255]. amount defaults to 1; negative values darken.
func (c RGBA) Brighten(amount ...float64) RGBA {
	a := 1.0
	if len(amount) > 0 {
		a = amount[0]
	}
	step := roundHalfUp(255 * (a / 100))

	return NewRGBA(
		clamp(c.R+step, 0, 255),
		clamp(c.G+step, 0, 255),
		clamp(c.B+step, 0, 255),
		c.A,
	)
}
