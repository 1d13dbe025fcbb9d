package colour

import "math"

// LUVA is a CIE 1976 L*u*v* colour. L is 0-100, U and V are unbounded.
type LUVA struct {
	L float64 `json:"l"`
	U float64 `json:"u"`
	V float64 `json:"v"`
	A float64 `json:"a"`
}

// NewLUVA creates an LUVA from raw channels. NaN channels become 0.
func NewLUVA(l, u, v, a float64) LUVA {
	return LUVA{L: orZero(l), U: orZero(u), V: orZero(v), A: orZero(a)}
}

func (LUVA) isColour() {}

// Eq reports whether other, converted to LUVA, has identical channels.
func (c LUVA) Eq(other Colour, ignoreAlpha bool) bool {
	if other == nil {
		return false
	}
	o := other.ToLUVA()
	return c.L == o.L && c.U == o.U && c.V == o.V && (ignoreAlpha || c.A == o.A)
}

func (c LUVA) WithL(l float64) LUVA { return NewLUVA(l, c.U, c.V, c.A) }
func (c LUVA) WithU(u float64) LUVA { return NewLUVA(c.L, u, c.V, c.A) }
func (c LUVA) WithV(v float64) LUVA { return NewLUVA(c.L, c.U, v, c.A) }
func (c LUVA) WithA(a float64) LUVA { return NewLUVA(c.L, c.U, c.V, a) }

// LUVAFromXYZA converts XYZ to LUV relative to D65. Alpha defaults to 1.
func LUVAFromXYZA(x, y, z float64, alpha ...float64) LUVA {
	return LUVAFromXYZAWith(x, y, z, D65, alpha...)
}

// LUVAFromXYZAWith applies the CIE 1976 L*u*v* transform relative to w.
func LUVAFromXYZAWith(x, y, z float64, w WhitePoint, alpha ...float64) LUVA {
	un, vn := w.uvPrime()
	yr := y / w.Y

	f := 1 / nonZero(x+15*y+3*z)
	uPrime := 4 * x * f
	vPrime := 9 * y * f

	var l float64
	if yr > cieEpsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = cieKappa * yr
	}

	return NewLUVA(l, 13*l*(uPrime-un), 13*l*(vPrime-vn), alphaOr(alpha))
}

func (c LUVA) CSS() string { return c.ToRGBA().CSS() }
func (c LUVA) Hex() string { return c.ToRGBA().Hex() }

func (c LUVA) ToRGBA() RGBA { return c.ToXYZA().ToRGBA() }
func (c LUVA) ToHSVA() HSVA { return c.ToRGBA().ToHSVA() }
func (c LUVA) ToHSLA() HSLA { return c.ToRGBA().ToHSLA() }
func (c LUVA) ToLUVA() LUVA { return c }

// ToXYZA converts c to XYZ relative to D65.
func (c LUVA) ToXYZA() XYZA { return c.ToXYZAWith(D65) }

// ToXYZAWith converts c to XYZ relative to w.
func (c LUVA) ToXYZAWith(w WhitePoint) XYZA {
	return XYZAFromLUVAWith(c.L, c.U, c.V, w, c.A)
}
