package adjuster

import (
	"math"

	"github.com/jmylchreest/legible/internal/colour"
)

// Process adjusts a colour given as CSS or hex text. It reports false when
// the text cannot be parsed.
func (a *Adjuster) Process(text string) (string, bool) {
	out, err := a.ProcessStrict(text)
	if err != nil {
		return "", false
	}
	return out, true
}

// ProcessStrict is Process but returns the parse error.
//
// ModeDisabled always yields "" and ModePassthrough returns text as is.
// Otherwise results are cached by the exact input text until the
// configuration changes.
func (a *Adjuster) ProcessStrict(text string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.mode {
	case ModeDisabled:
		return "", nil
	case ModePassthrough:
		return text, nil
	}

	if text == "" {
		return "", colour.ErrEmpty
	}
	if out, ok := a.cache[text]; ok {
		return out, nil
	}

	rgb, err := colour.ParseCSS(text, a.resolver)
	if err != nil {
		a.logger.Debug("unparseable colour", "input", text, "error", err)
		return "", err
	}

	out := a.adjust(rgb).CSS()
	a.cache[text] = out
	return out, nil
}

// ProcessColour adjusts a colour value. The result is cached under the
// value's CSS text.
func (a *Adjuster) ProcessColour(c colour.Colour) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mode == ModeDisabled || c == nil {
		return ""
	}

	key := c.CSS()
	if a.mode == ModePassthrough {
		return key
	}
	if out, ok := a.cache[key]; ok {
		return out
	}

	out := a.adjust(c.ToRGBA()).CSS()
	a.cache[key] = out
	return out
}

// adjust applies the current mode to rgb. Callers must hold a.mu.
func (a *Adjuster) adjust(rgb colour.RGBA) colour.RGBA {
	switch a.mode {
	case ModeHSLLuma:
		lum := rgb.Luminance()
		if a.needsChange(lum, a.luma) {
			rgb = rgb.ToHSLA().TargetLuminance(a.luma).ToRGBA()
		}

	case ModeLUV:
		luv := rgb.ToLUVA()
		if a.needsChange(luv.L, a.luv) {
			rgb = luv.WithL(a.luv).ToRGBA()
		}

	case ModeHSLLoop:
		rgb = a.hslLoop(rgb)

	case ModeRGBLoop:
		rgb = a.rgbLoop(rgb)
	}
	return rgb
}

// needsChange reports whether v is on the wrong side of target: too dark on
// a dark base or too light on a light one.
func (a *Adjuster) needsChange(v, target float64) bool {
	if a.dark {
		return v < target
	}
	return v > target
}

// hslLoop moves HSL lightness towards white (dark base) or black (light
// base) until the perceptual luma crosses 0.5.
func (a *Adjuster) hslLoop(rgb colour.RGBA) colour.RGBA {
	for i := 0; i < maxLoopSteps; i++ {
		if a.dark == (rgb.Luma() >= 0.5) {
			break
		}

		hsl := rgb.ToHSLA()
		l := 0.9 * hsl.L
		if a.dark {
			l += 0.1
		}
		rgb = hsl.WithL(math.Min(math.Max(0, l), 1)).ToRGBA()
	}
	return rgb
}

// rgbLoop brightens (dark base) or darkens (light base) one step at a time
// until the relative luminance reaches 0.15 or drops to 0.3.
func (a *Adjuster) rgbLoop(rgb colour.RGBA) colour.RGBA {
	for i := 0; i < maxLoopSteps; i++ {
		if a.dark && rgb.Luminance() >= 0.15 {
			break
		}
		if !a.dark && rgb.Luminance() <= 0.3 {
			break
		}

		if a.dark {
			rgb = rgb.Brighten()
		} else {
			rgb = rgb.Brighten(-1)
		}
	}
	return rgb
}
