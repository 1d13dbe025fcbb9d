// Package adjuster remaps colours so they stay legible against a base
// background colour at a chosen contrast ratio.
package adjuster

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/legible/internal/colour"
	"github.com/jmylchreest/legible/internal/resolver"
)

const (
	// DefaultBase is a dark grey surface.
	DefaultBase = "#232323"
	// DefaultContrast is the WCAG AA ratio for normal text.
	DefaultContrast = 4.5

	// maxLoopSteps caps the HSL and RGB loop modes.
	maxLoopSteps = 127
)

var (
	// ErrInvalidBase is returned when the base colour cannot be parsed.
	ErrInvalidBase = errors.New("invalid base colour")

	// ErrInvalidContrast is returned for contrast ratios that are not
	// positive finite numbers.
	ErrInvalidContrast = errors.New("invalid contrast ratio")
)

// Adjuster holds a base colour, contrast ratio and mode, the targets derived
// from them, and a cache of processed inputs. It is safe for concurrent use.
type Adjuster struct {
	mu sync.Mutex

	base     string
	mode     Mode
	contrast float64
	resolver colour.NameResolver
	logger   hclog.Logger

	dark  bool
	luma  float64
	luv   float64
	cache map[string]string
}

// Option configures an Adjuster.
type Option func(*Adjuster)

// WithBase sets the base colour as CSS or hex text.
func WithBase(base string) Option {
	return func(a *Adjuster) { a.base = base }
}

// WithMode sets the adjustment mode.
func WithMode(mode Mode) Option {
	return func(a *Adjuster) { a.mode = mode }
}

// WithContrast sets the target contrast ratio.
func WithContrast(contrast float64) Option {
	return func(a *Adjuster) { a.contrast = contrast }
}

// WithResolver sets the resolver used for colour names in both the base and
// processed input.
func WithResolver(r colour.NameResolver) Option {
	return func(a *Adjuster) { a.resolver = r }
}

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(a *Adjuster) { a.logger = logger }
}

// New returns an adjuster with targets computed from its options.
func New(opts ...Option) (*Adjuster, error) {
	a := &Adjuster{
		base:     DefaultBase,
		mode:     ModePassthrough,
		contrast: DefaultContrast,
		resolver: resolver.Default(),
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = hclog.NewNullLogger()
	}

	if err := a.rebuild(a.base, a.mode, a.contrast); err != nil {
		return nil, err
	}
	return a, nil
}

// rebuild recomputes the targets for a new configuration and clears the
// cache. On error the current configuration is left untouched. Callers
// other than New must hold a.mu.
func (a *Adjuster) rebuild(base string, mode Mode, contrast float64) error {
	if contrast <= 0 || math.IsNaN(contrast) || math.IsInf(contrast, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidContrast, contrast)
	}

	rgb, err := colour.ParseCSS(base, a.resolver)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidBase, base, err)
	}

	lum := rgb.Luminance()
	dark := lum < 0.5
	y := rgb.ToXYZA().Y

	var luma, luvY float64
	if dark {
		luma = contrast*(lum+0.05) - 0.05
		luvY = contrast*(y+0.05) - 0.05
	} else {
		luma = (lum+0.05)/contrast - 0.05
		luvY = (y+0.05)/contrast - 0.05
	}

	a.base, a.mode, a.contrast = base, mode, contrast
	a.dark = dark
	a.luma = luma
	a.luv = colour.NewXYZA(0, luvY, 0, 1).ToLUVA().L
	a.cache = make(map[string]string)

	a.logger.Debug("rebuilt contrast targets",
		"base", base, "mode", mode, "contrast", contrast,
		"dark", dark, "target_luminance", a.luma, "target_lightness", a.luv)
	return nil
}

// SetBase changes the base colour and recomputes the targets.
func (a *Adjuster) SetBase(base string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rebuild(base, a.mode, a.contrast)
}

// SetMode changes the mode and clears the cache.
func (a *Adjuster) SetMode(mode Mode) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rebuild(a.base, mode, a.contrast)
}

// SetContrast changes the contrast ratio and recomputes the targets.
func (a *Adjuster) SetContrast(contrast float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rebuild(a.base, a.mode, contrast)
}

// Base returns the base colour text.
func (a *Adjuster) Base() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.base
}

// Mode returns the adjustment mode.
func (a *Adjuster) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// Contrast returns the contrast ratio.
func (a *Adjuster) Contrast() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.contrast
}

// Dark reports whether the base colour is dark, meaning inputs are
// lightened rather than darkened.
func (a *Adjuster) Dark() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dark
}

// TargetLuminance returns the relative luminance used by ModeHSLLuma.
func (a *Adjuster) TargetLuminance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.luma
}

// TargetLightness returns the LUV L used by ModeLUV.
func (a *Adjuster) TargetLightness() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.luv
}

// CacheLen returns the number of cached results.
func (a *Adjuster) CacheLen() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.cache)
}
