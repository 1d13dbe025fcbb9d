// Package colour provides immutable colour values in RGB, HSV, HSL, CIE XYZ and
// CIE LUV form, with exact conversions between them, CSS/hex parsing and
// formatting, and the luminance helpers used for contrast calculations.
package colour

import "math"

// Linearize converts an sRGB channel in [0,1] to linear light.
// Uses the 0.04045 breakpoint from http://www.brucelindbloom.com/Eqn_RGB_to_XYZ.html.
func Linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Delinearize converts a linear-light channel back to sRGB in [0,1].
func Delinearize(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// hueToChannel is the hue-to-RGB helper for HSL conversion.
// t is wrapped by at most one turn in either direction.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// roundHalfUp rounds to the nearest integer with halves going towards +Inf,
// so -2.5 becomes -2 rather than math.Round's -3.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// orZero replaces NaN with 0.
func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// alphaOr returns the first supplied alpha, or 1 when none was given.
func alphaOr(alpha []float64) float64 {
	if len(alpha) == 0 {
		return 1
	}
	return alpha[0]
}
