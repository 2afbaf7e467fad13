package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is one of the eight base ANSI terminal colors.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White

	numColors = 8
)

// Variant selects how a Color is applied to text.
type Variant int

const (
	// Foreground renders the text in the color.
	Foreground Variant = iota
	// Background renders the text on the color.
	Background
	// Bright renders the text in the high-intensity version of the color.
	Bright
	// BrightBackground renders the text on the high-intensity version of the color.
	BrightBackground

	numVariants = 4
)

// Style describes how prompt text is rendered: one of the eight base
// colors applied with one of the four variants. The zero value is a
// normal black foreground.
//
// A Style is a plain value; construct one per call and pass it by
// pointer where an optional style is expected (nil means "no styling").
type Style struct {
	Variant Variant
	Color   Color
}

// New returns a Style for the given variant and color.
//
// Example:
//
//	warn := style.New(style.Bright, style.Yellow)
//	fmt.Print(warn.Render("Careful! "))
func New(v Variant, c Color) Style {
	return Style{Variant: v, Color: c}
}

// table holds one prebuilt lipgloss style per (variant, color) pair,
// so rendering is a lookup instead of a 32-way dispatch.
var table [numVariants][numColors]lipgloss.Style

func init() {
	for v := Variant(0); v < numVariants; v++ {
		for c := Color(0); c < numColors; c++ {
			ansi := int(c)
			if v == Bright || v == BrightBackground {
				ansi += 8
			}
			color := lipgloss.Color(strconv.Itoa(ansi))
			s := lipgloss.NewStyle()
			if v == Background || v == BrightBackground {
				s = s.Background(color)
			} else {
				s = s.Foreground(color)
			}
			table[v][c] = s
		}
	}
}

// Render applies the style to text and returns the styled string.
// Rendering is deterministic: the same style and text always produce
// the same output. An invalid Style renders the text unchanged.
func (s Style) Render(text string) string {
	if s.Variant < 0 || s.Variant >= numVariants || s.Color < 0 || s.Color >= numColors {
		return text
	}
	return table[s.Variant][s.Color].Render(text)
}

func (s Style) String() string {
	return fmt.Sprintf("%s %s", s.Variant, s.Color)
}

var colorNames = [numColors]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

func (c Color) String() string {
	if c < 0 || c >= numColors {
		return "invalid"
	}
	return colorNames[c]
}

var variantNames = [numVariants]string{
	"foreground", "background", "bright", "bright-background",
}

func (v Variant) String() string {
	if v < 0 || v >= numVariants {
		return "invalid"
	}
	return variantNames[v]
}

// ParseColor converts a color name ("red", "cyan", ...) to a Color.
// Matching is case-insensitive.
func ParseColor(name string) (Color, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == lower {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q (valid: %s)", name, strings.Join(colorNames[:], ", "))
}

// ParseVariant converts a variant name ("foreground", "bright", ...) to
// a Variant. Matching is case-insensitive.
func ParseVariant(name string) (Variant, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, n := range variantNames {
		if n == lower {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q (valid: %s)", name, strings.Join(variantNames[:], ", "))
}
