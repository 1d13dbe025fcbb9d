package adjuster

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how the adjuster remaps colours onto its target.
type Mode int

const (
	// ModeDisabled makes every result the empty string.
	ModeDisabled Mode = -1
	// ModePassthrough returns input text unchanged.
	ModePassthrough Mode = 0
	// ModeHSLLuma bisects HSL lightness to hit the target relative luminance.
	ModeHSLLuma Mode = 1
	// ModeLUV replaces the LUV L channel with the target lightness.
	ModeLUV Mode = 2
	// ModeHSLLoop steps HSL lightness until the perceptual luma crosses 0.5.
	ModeHSLLoop Mode = 3
	// ModeRGBLoop brightens or darkens in fixed RGB steps.
	ModeRGBLoop Mode = 4
)

var modeNames = map[Mode]string{
	ModeDisabled:    "disabled",
	ModePassthrough: "passthrough",
	ModeHSLLuma:     "hsl-luma",
	ModeLUV:         "luv",
	ModeHSLLoop:     "hsl-loop",
	ModeRGBLoop:     "rgb-loop",
}

// ModeNames returns the named modes in numeric order.
func ModeNames() []string {
	names := make([]string, 0, len(modeNames))
	for m := ModeDisabled; m <= ModeRGBLoop; m++ {
		names = append(names, modeNames[m])
	}
	return names
}

// String returns the mode's name, or its number if it has none.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return strconv.Itoa(int(m))
}

// ParseMode accepts a mode name or any integer.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid mode %q (valid: %s, or a number)", s, strings.Join(ModeNames(), ", "))
	}
	return Mode(n), nil
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}

// MarshalText lets modes appear by name in config files.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts the same forms as ParseMode.
func (m *Mode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}
