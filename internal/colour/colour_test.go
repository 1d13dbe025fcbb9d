package colour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// channelSteps is a coarse grid over the 8-bit range used by round-trip tests.
var channelSteps = []float64{0, 1, 17, 51, 64, 128, 170, 200, 254, 255}

func forEachGridColour(fn func(c RGBA)) {
	for _, r := range channelSteps {
		for _, g := range channelSteps {
			for _, b := range channelSteps {
				fn(NewRGBA(r, g, b, 1))
			}
		}
	}
}

func withinOne(a, b RGBA) bool {
	return math.Abs(a.R-b.R) <= 1 && math.Abs(a.G-b.G) <= 1 && math.Abs(a.B-b.B) <= 1 && a.A == b.A
}

func TestLinearizeRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := float64(i) / 255
		got := Delinearize(Linearize(v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("Delinearize(Linearize(%v)) = %v", v, got)
		}
	}

	if Linearize(0) != 0 {
		t.Errorf("Linearize(0) = %v, want 0", Linearize(0))
	}
	if math.Abs(Linearize(1)-1) > 1e-12 {
		t.Errorf("Linearize(1) = %v, want 1", Linearize(1))
	}
	if got := Linearize(0.04); math.Abs(got-0.04/12.92) > 1e-15 {
		t.Errorf("Linearize(0.04) = %v, want linear segment", got)
	}
}

func TestHueToChannel(t *testing.T) {
	const p, q = 0.2, 0.8

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"rising", 1.0 / 12, p + (q-p)*6*(1.0/12)},
		{"plateau", 0.25, q},
		{"falling", 0.6, p + (q-p)*(2.0/3-0.6)*6},
		{"floor", 0.9, p},
		{"wraps negative", -0.75, q},
		{"wraps above one", 1.25, q},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hueToChannel(p, q, tt.t); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("hueToChannel(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestKnownFixedPoints(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		got  func(RGBA) Colour
		want Colour
	}{
		{"white to HSLA", "#ffffff", func(c RGBA) Colour { return c.ToHSLA() }, HSLA{H: 0, S: 0, L: 1, A: 1}},
		{"black to HSLA", "#000000", func(c RGBA) Colour { return c.ToHSLA() }, HSLA{H: 0, S: 0, L: 0, A: 1}},
		{"red to HSVA", "#ff0000", func(c RGBA) Colour { return c.ToHSVA() }, HSVA{H: 0, S: 1, V: 1, A: 1}},
		{"red to HSLA", "#ff0000", func(c RGBA) Colour { return c.ToHSLA() }, HSLA{H: 0, S: 1, L: 0.5, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseHex(tt.hex)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.hex, err)
			}
			if diff := cmp.Diff(tt.want, tt.got(c)); diff != "" {
				t.Errorf("conversion mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrips(t *testing.T) {
	tests := []struct {
		name string
		via  func(RGBA) RGBA
	}{
		{"HSVA", func(c RGBA) RGBA { return c.ToHSVA().ToRGBA() }},
		{"HSLA", func(c RGBA) RGBA { return c.ToHSLA().ToRGBA() }},
		{"XYZA", func(c RGBA) RGBA { return c.ToXYZA().ToRGBA() }},
		{"XYZA via LUVA", func(c RGBA) RGBA { return c.ToXYZA().ToLUVA().ToXYZA().ToRGBA() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachGridColour(func(c RGBA) {
				if got := tt.via(c); !withinOne(got, c) {
					t.Errorf("%+v round-tripped to %+v", c, got)
				}
			})
		})
	}
}

func TestRoundTripPreservesAlpha(t *testing.T) {
	c := NewRGBA(10, 200, 30, 0.25)
	for _, got := range []RGBA{c.ToHSVA().ToRGBA(), c.ToHSLA().ToRGBA(), c.ToLUVA().ToRGBA()} {
		if got.A != 0.25 {
			t.Errorf("alpha = %v, want 0.25", got.A)
		}
	}
}

func TestToOwnRepresentationIsIdentity(t *testing.T) {
	colours := []Colour{
		NewRGBA(12, 34, 56, 0.5),
		NewHSVA(0.3, 0.4, 0.5, 1),
		NewHSLA(0.6, 0.7, 0.2, 1),
		NewXYZA(0.2, 0.3, 0.4, 1),
		NewLUVA(50, 10, -20, 1),
	}

	if c := colours[0].(RGBA); !c.ToRGBA().Eq(c, false) {
		t.Errorf("RGBA.ToRGBA() not equal to itself")
	}
	if c := colours[1].(HSVA); c.ToHSVA() != c {
		t.Errorf("HSVA.ToHSVA() changed value")
	}
	if c := colours[2].(HSLA); c.ToHSLA() != c {
		t.Errorf("HSLA.ToHSLA() changed value")
	}
	if c := colours[3].(XYZA); c.ToXYZA() != c {
		t.Errorf("XYZA.ToXYZA() changed value")
	}
	if c := colours[4].(LUVA); c.ToLUVA() != c {
		t.Errorf("LUVA.ToLUVA() changed value")
	}
}

func TestEq(t *testing.T) {
	red := NewRGBA(255, 0, 0, 1)

	tests := []struct {
		name        string
		a           Colour
		b           Colour
		ignoreAlpha bool
		want        bool
	}{
		{"same RGBA", red, NewRGBA(255, 0, 0, 1), false, true},
		{"RGBA vs HSVA", red, NewHSVA(0, 1, 1, 1), false, true},
		{"HSVA vs RGBA", NewHSVA(0, 1, 1, 1), red, false, true},
		{"HSLA vs RGBA", NewHSLA(0, 1, 0.5, 1), red, false, true},
		{"alpha differs", red, NewRGBA(255, 0, 0, 0.5), false, false},
		{"alpha ignored", red, NewRGBA(255, 0, 0, 0.5), true, true},
		{"channel differs", red, NewRGBA(254, 0, 0, 1), false, false},
		{"nil other", red, nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Eq(tt.b, tt.ignoreAlpha); got != tt.want {
				t.Errorf("Eq() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlphaDefaults(t *testing.T) {
	if got := NewRGBA(1, 2, 3, math.NaN()); got.A != 0 {
		t.Errorf("NewRGBA with NaN alpha: A = %v, want 0", got.A)
	}
	if got := (HSLA{H: 0.5}); got.A != 0 {
		t.Errorf("zero-value HSLA alpha = %v, want 0", got.A)
	}

	factories := map[string]float64{
		"RGBAFromHSVA": RGBAFromHSVA(0.1, 0.2, 0.3).A,
		"RGBAFromHSLA": RGBAFromHSLA(0.1, 0.2, 0.3).A,
		"RGBAFromXYZA": RGBAFromXYZA(0.1, 0.2, 0.3).A,
		"HSVAFromRGBA": HSVAFromRGBA(10, 20, 30).A,
		"HSLAFromRGBA": HSLAFromRGBA(10, 20, 30).A,
		"XYZAFromRGBA": XYZAFromRGBA(10, 20, 30).A,
		"XYZAFromLUVA": XYZAFromLUVA(10, 20, 30).A,
		"LUVAFromXYZA": LUVAFromXYZA(0.1, 0.2, 0.3).A,
	}
	for name, a := range factories {
		if a != 1 {
			t.Errorf("%s default alpha = %v, want 1", name, a)
		}
	}

	if got := RGBAFromHSLA(0.1, 0.2, 0.3, 0.4).A; got != 0.4 {
		t.Errorf("explicit alpha = %v, want 0.4", got)
	}
}

func TestWithUpdatesReturnCopies(t *testing.T) {
	orig := NewHSLA(0.1, 0.2, 0.3, 1)
	updated := orig.WithL(0.9)

	if orig.L != 0.3 {
		t.Errorf("original mutated: L = %v", orig.L)
	}
	want := HSLA{H: 0.1, S: 0.2, L: 0.9, A: 1}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Errorf("WithL mismatch (-want +got):\n%s", diff)
	}
	if got := NewRGBA(1, 2, 3, 1).WithG(math.NaN()).G; got != 0 {
		t.Errorf("WithG(NaN) = %v, want 0", got)
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want float64
	}{
		{"white", NewRGBA(255, 255, 255, 1), 1},
		{"black", NewRGBA(0, 0, 0, 1), 0},
		{"red", NewRGBA(255, 0, 0, 1), 0.2126},
		{"green", NewRGBA(0, 255, 0, 1), 0.7152},
		{"blue", NewRGBA(0, 0, 255, 1), 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Luminance(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Luminance() = %v, want %v", got, tt.want)
			}
		})
	}

	forEachGridColour(func(c RGBA) {
		if l := c.Luminance(); l < 0 || l > 1+1e-9 {
			t.Errorf("Luminance(%+v) = %v out of [0,1]", c, l)
		}
	})
}

func TestLuma(t *testing.T) {
	if got := NewRGBA(255, 255, 255, 1).Luma(); math.Abs(got-1) > 1e-9 {
		t.Errorf("white Luma() = %v, want 1", got)
	}
	if got := NewRGBA(0, 0, 255, 1).Luma(); math.Abs(got-0.114) > 1e-9 {
		t.Errorf("blue Luma() = %v, want 0.114", got)
	}
}

func TestContrastRatio(t *testing.T) {
	black := NewRGBA(0, 0, 0, 1)
	white := NewRGBA(255, 255, 255, 1)

	if got := ContrastRatio(black, white); math.Abs(got-21) > 1e-9 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", got)
	}
	if got := ContrastRatio(white, black); math.Abs(got-21) > 1e-9 {
		t.Errorf("ContrastRatio is not symmetric: %v", got)
	}
	if got := ContrastRatio(white.ToHSLA(), white); got != 1 {
		t.Errorf("ContrastRatio(white, white) = %v, want 1", got)
	}
}

func TestBrighten(t *testing.T) {
	tests := []struct {
		name   string
		c      RGBA
		amount []float64
		want   RGBA
	}{
		{"default step", NewRGBA(0, 10, 20, 1), nil, NewRGBA(3, 13, 23, 1)},
		{"darken", NewRGBA(2, 10, 20, 0.5), []float64{-1}, NewRGBA(0, 7, 17, 0.5)},
		{"clamps high", NewRGBA(250, 0, 0, 1), []float64{10}, NewRGBA(255, 26, 26, 1)},
		{"full scale", NewRGBA(0, 0, 0, 1), []float64{100}, NewRGBA(255, 255, 255, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Brighten(tt.amount...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Brighten mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTargetLuminance(t *testing.T) {
	bases := []HSLA{
		NewRGBA(35, 35, 35, 1).ToHSLA(),
		NewRGBA(255, 0, 0, 1).ToHSLA(),
		NewRGBA(0, 0, 255, 0.5).ToHSLA(),
		NewRGBA(30, 160, 90, 1).ToHSLA(),
	}
	targets := []float64{0.05, 0.18, 0.25, 0.5, 0.75}

	for _, base := range bases {
		for _, target := range targets {
			got := base.TargetLuminance(target)
			if l := got.ToRGBA().Luminance(); math.Abs(l-target) > 0.02 {
				t.Errorf("%+v.TargetLuminance(%v) luminance = %v", base, target, l)
			}
			if got.H != base.H {
				t.Errorf("hue changed: %v -> %v", base.H, got.H)
			}
			if got.A != base.A {
				t.Errorf("alpha changed: %v -> %v", base.A, got.A)
			}
		}
	}
}

func TestTargetLuminanceDampsSaturation(t *testing.T) {
	base := NewHSLA(0, 1, 0.5, 1)
	got := base.TargetLuminance(0.5)

	want := 1 + math.Pow(-0.5, 7)
	if math.Abs(got.S-want) > 1e-12 {
		t.Errorf("S = %v, want %v", got.S, want)
	}
}

func TestLUVBlackIsFinite(t *testing.T) {
	got := NewLUVA(0, 0, 0, 1).ToXYZA()
	for _, v := range []float64{got.X, got.Y, got.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v != 0 {
			t.Fatalf("LUVA(0,0,0).ToXYZA() = %+v, want zeros", got)
		}
	}

	luv := NewXYZA(0, 0, 0, 1).ToLUVA()
	for _, v := range []float64{luv.L, luv.U, luv.V} {
		if math.IsNaN(v) || v != 0 {
			t.Fatalf("XYZA(0,0,0).ToLUVA() = %+v, want zeros", luv)
		}
	}
}

func TestLUVWhite(t *testing.T) {
	got := NewRGBA(255, 255, 255, 1).ToLUVA()
	want := LUVA{L: 100, U: 0, V: 0, A: 1}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("white LUVA mismatch (-want +got):\n%s", diff)
	}
}

func TestWhitePoint(t *testing.T) {
	want := WhitePoint{X: 0.950456, Y: 1, Z: 1.088754}
	if diff := cmp.Diff(want, D65, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("D65 mismatch (-want +got):\n%s", diff)
	}

	// A different white point moves the chromaticity origin.
	xyz := NewRGBA(200, 100, 50, 1).ToXYZA()
	other := NewWhitePoint(NewXYZA(0.9642, 1, 0.8251, 1))
	if xyz.ToLUVAWith(other).Eq(xyz.ToLUVA(), false) {
		t.Error("expected LUV to depend on white point")
	}
	back := xyz.ToLUVAWith(other).ToXYZAWith(other)
	if diff := cmp.Diff(xyz, back, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("custom white round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCSS(t *testing.T) {
	tests := []struct {
		name string
		c    Colour
		want string
	}{
		{"opaque RGBA", NewRGBA(255, 0, 0, 1), "#ff0000"},
		{"translucent RGBA", NewRGBA(255, 0, 0, 0.5), "rgba(255,0,0,0.5)"},
		{"fractional RGBA", NewRGBA(10.5, 0, 0, 0.25), "rgba(10.5,0,0,0.25)"},
		{"opaque HSLA", NewHSLA(0, 1, 0.5, 1), "hsl(0,100%,50%)"},
		{"translucent HSLA", NewHSLA(0.5, 0.25, 0.75, 0.5), "hsla(180,25%,75%,0.5)"},
		{"HSVA via RGBA", NewHSVA(0, 1, 1, 1), "#ff0000"},
		{"zero alpha", RGBA{R: 1, G: 2, B: 3}, "rgba(1,2,3,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		c    Colour
		want string
	}{
		{"red", NewRGBA(255, 0, 0, 1), "#ff0000"},
		{"rounds", NewRGBA(127.5, 0.4, 15.6, 1), "#800010"},
		{"drops alpha", NewRGBA(17, 34, 51, 0.1), "#112233"},
		{"clamps", NewRGBA(300, -4, 0, 1), "#ff0000"},
		{"HSLA", NewHSLA(0, 0, 1, 1), "#ffffff"},
		{"LUVA", NewLUVA(0, 0, 0, 1), "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	forEachGridColour(func(c RGBA) {
		c = c.WithA(0.5)
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", c.Hex(), err)
		}
		if !got.Eq(c, true) {
			t.Errorf("ParseHex(%q) = %+v, want %+v", c.Hex(), got, c)
		}
	})
}
