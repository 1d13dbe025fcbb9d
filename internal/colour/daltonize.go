package colour

import (
	"fmt"
	"maps"
	"slices"
)

// CVDMatrix is a row-major 3x3 matrix simulating a colour vision deficiency
// in LMS space.
type CVDMatrix [9]float64

// CVDMatrices holds the built-in deficiency simulations by name.
var CVDMatrices = map[string]CVDMatrix{
	// Reds greatly reduced (1% of men).
	"protanope": {
		0.0, 2.02344, -2.52581,
		0.0, 1.0, 0.0,
		0.0, 0.0, 1.0,
	},
	// Greens greatly reduced (1% of men).
	"deuteranope": {
		1.0, 0.0, 0.0,
		0.494207, 0.0, 1.24827,
		0.0, 0.0, 1.0,
	},
	// Blues greatly reduced (0.003% of the population).
	"tritanope": {
		1.0, 0.0, 0.0,
		0.0, 1.0, 0.0,
		-0.395913, 0.801109, 0.0,
	},
}

// CVDMatrixNames returns the built-in matrix names in sorted order.
func CVDMatrixNames() []string {
	return slices.Sorted(maps.Keys(CVDMatrices))
}

// Daltonize shifts c so that detail lost to the named deficiency is moved
// into channels that remain visible.
func (c RGBA) Daltonize(name string) (RGBA, error) {
	m, ok := CVDMatrices[name]
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q (valid: %v)", ErrInvalidCVDMatrix, name, CVDMatrixNames())
	}
	return c.DaltonizeMatrix(m), nil
}

// DaltonizeMatrix daltonizes c with a caller-supplied simulation matrix.
func (c RGBA) DaltonizeMatrix(m CVDMatrix) RGBA {
	// RGB to LMS.
	lL := 17.8824*c.R + 43.5161*c.G + 4.11935*c.B
	lM := 3.45565*c.R + 27.1554*c.G + 3.86714*c.B
	lS := 0.0299566*c.R + 0.184309*c.G + 1.46709*c.B

	// Simulate the deficiency.
	l := m[0]*lL + m[1]*lM + m[2]*lS
	mm := m[3]*lL + m[4]*lM + m[5]*lS
	s := m[6]*lL + m[7]*lM + m[8]*lS

	// LMS back to RGB.
	r := 0.0809444479*l - 0.130504409*mm + 0.116721066*s
	g := -0.0102485335*l + 0.0540193266*mm - 0.113614708*s
	b := -0.000365296938*l - 0.00412161469*mm + 0.693511405*s

	// Error between what was there and what is seen.
	r = c.R - r
	g = c.G - g
	b = c.B - b

	// Shift the error towards the visible spectrum. Red error is not
	// compensated in the red channel.
	gg := 0.7*r + g
	bb := 0.7*r + b

	return NewRGBA(
		clamp(c.R, 0, 255),
		clamp(gg+c.G, 0, 255),
		clamp(bb+c.B, 0, 255),
		c.A,
	)
}
