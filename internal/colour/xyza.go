package colour

import "math"

var (
	// cieEpsilon is the CIE standard's (6/29)^3 threshold.
	cieEpsilon = math.Pow(6.0/29, 3)

	// cieKappa is the CIE standard's (29/3)^3 slope. cieEpsilon*cieKappa == 8.
	cieKappa = math.Pow(29.0/3, 3)
)

// WhitePoint is the reference white for LUV conversions.
type WhitePoint struct {
	X, Y, Z float64
}

// D65 is the white point of pure sRGB white, computed once at start-up and
// used by ToLUVA and LUVA.ToXYZA.
var D65 = NewWhitePoint(XYZAFromRGBA(255, 255, 255, 1))

// NewWhitePoint returns the white point at the given tristimulus values.
func NewWhitePoint(white XYZA) WhitePoint {
	return WhitePoint{X: white.X, Y: white.Y, Z: white.Z}
}

// uvPrime returns the u' and v' chromaticity of the white point.
func (w WhitePoint) uvPrime() (float64, float64) {
	f := 1 / (w.X + 15*w.Y + 3*w.Z)
	return 4 * w.X * f, 9 * w.Y * f
}

// XYZA is a CIE XYZ colour in linear light. Y is relative luminance.
type XYZA struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	A float64 `json:"a"`
}

// NewXYZA creates an XYZA from raw channels. NaN channels become 0.
func NewXYZA(x, y, z, a float64) XYZA {
	return XYZA{X: orZero(x), Y: orZero(y), Z: orZero(z), A: orZero(a)}
}

func (XYZA) isColour() {}

// Eq reports whether other, converted to XYZA, has identical channels.
func (c XYZA) Eq(other Colour, ignoreAlpha bool) bool {
	if other == nil {
		return false
	}
	o := other.ToXYZA()
	return c.X == o.X && c.Y == o.Y && c.Z == o.Z && (ignoreAlpha || c.A == o.A)
}

func (c XYZA) WithX(x float64) XYZA { return NewXYZA(x, c.Y, c.Z, c.A) }
func (c XYZA) WithY(y float64) XYZA { return NewXYZA(c.X, y, c.Z, c.A) }
func (c XYZA) WithZ(z float64) XYZA { return NewXYZA(c.X, c.Y, z, c.A) }
func (c XYZA) WithA(a float64) XYZA { return NewXYZA(c.X, c.Y, c.Z, a) }

// XYZAFromRGBA converts 0-255 sRGB channels to XYZ using the D65 sRGB
// matrix. Alpha defaults to 1.
func XYZAFromRGBA(r, g, b float64, alpha ...float64) XYZA {
	rl := Linearize(r / 255)
	gl := Linearize(g / 255)
	bl := Linearize(b / 255)

	return NewXYZA(
		0.412453*rl+0.357580*gl+0.180423*bl,
		0.212671*rl+0.715160*gl+0.072169*bl,
		0.019334*rl+0.119193*gl+0.950227*bl,
		alphaOr(alpha),
	)
}

// XYZAFromLUVA converts LUV relative to D65 to XYZ. Alpha defaults to 1.
func XYZAFromLUVA(l, u, v float64, alpha ...float64) XYZA {
	return XYZAFromLUVAWith(l, u, v, D65, alpha...)
}

// XYZAFromLUVAWith inverts the CIE 1976 L*u*v* transform relative to w.
// Divisors that come out exactly zero are replaced by 1, so black maps to
// XYZ zero rather than NaN.
func XYZAFromLUVAWith(l, u, v float64, w WhitePoint, alpha ...float64) XYZA {
	un, vn := w.uvPrime()

	var y float64
	if l > 8 {
		y = math.Pow((l+16)/116, 3)
	} else {
		y = l / cieKappa
	}
	y *= w.Y

	a := 1.0 / 3 * (52*l/nonZero(u+13*l*un) - 1)
	b := -5 * y
	c := -1.0 / 3
	d := y * (39*l/nonZero(v+13*l*vn) - 5)

	x := (d - b) / nonZero(a-c)
	z := x*a + b

	return NewXYZA(x, y, z, alphaOr(alpha))
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func (c XYZA) CSS() string { return c.ToRGBA().CSS() }
func (c XYZA) Hex() string { return c.ToRGBA().Hex() }

func (c XYZA) ToRGBA() RGBA { return RGBAFromXYZA(c.X, c.Y, c.Z, c.A) }
func (c XYZA) ToHSVA() HSVA { return c.ToRGBA().ToHSVA() }
func (c XYZA) ToHSLA() HSLA { return c.ToRGBA().ToHSLA() }
func (c XYZA) ToXYZA() XYZA { return c }

// ToLUVA converts c to LUV relative to D65.
func (c XYZA) ToLUVA() LUVA { return c.ToLUVAWith(D65) }

// ToLUVAWith converts c to LUV relative to w.
func (c XYZA) ToLUVAWith(w WhitePoint) LUVA {
	return LUVAFromXYZAWith(c.X, c.Y, c.Z, w, c.A)
}
