package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ansiTriplet renders the rounded channels of c as "r;g;b".
func ansiTriplet(c RGBA) string {
	return fmt.Sprintf("%d;%d;%d", hexByte(c.R), hexByte(c.G), hexByte(c.B))
}

// ColourPreview returns a solid block of width cells in colour c.
func ColourPreview(c RGBA, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	return ansiBgPrefix + ansiTriplet(c) + ansiSuffix + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a block in colour c with text centred on it.
// The text is black or white, whichever contrasts more with c.
func ColourPreviewWithText(c RGBA, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := NewRGBA(255, 255, 255, 1)
	if ContrastRatio(c, NewRGBA(0, 0, 0, 1)) > ContrastRatio(c, fg) {
		fg = NewRGBA(0, 0, 0, 1)
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return ansiBgPrefix + ansiTriplet(c) + ansiSuffix +
		ansiFgPrefix + ansiTriplet(fg) + ansiSuffix +
		displayText + ansiReset
}

// FormatColourWithPreview formats a colour as a swatch followed by its CSS text.
func FormatColourWithPreview(c Colour, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(c.ToRGBA(), width), c.CSS())
}

// SupportsANSIColours reports whether f is a terminal that should receive
// colour escapes. NO_COLOR and TERM=dumb disable colour.
func SupportsANSIColours(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}
