// Package style renders prompt text in one of the eight base terminal
// colors, applied as a foreground, background, bright, or bright
// background variant.
//
// # Overview
//
// Every prompt in sibyl takes an optional *style.Style. The package
// covers the full 8-color x 4-variant grid with a single prebuilt
// lookup table, so callers never touch ANSI escape codes directly.
//
// # Usage
//
// Build a style and render text with it:
//
//	import "github.com/sibyl-dev/sibyl/style"
//
//	ok := style.New(style.Foreground, style.Green)
//	fmt.Print(ok.Render("Approved? (Y/n) >>> "))
//
// ParseColor and ParseVariant convert user-supplied names (for example
// CLI flag values) into the enum types:
//
//	c, err := style.ParseColor("magenta")
//	v, err := style.ParseVariant("bright")
//
// # Rendering
//
// Styling is delegated to lipgloss, which adapts escape sequences to
// the terminal's color profile. Rendering the same text with the same
// style always produces the same output, and every (variant, color)
// pair produces a distinct one.
package style
