// Package output prints styled status lines for CLI tools built on
// sibyl's prompts: confirmations, results, and hints.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var (
	out         io.Writer = os.Stdout
	verboseMode bool
)

// SetOutput redirects all status lines to w. Defaults to stdout.
func SetOutput(w io.Writer) {
	out = w
}

// SetVerbose enables or disables verbose output.
// Call this from the CLI when a --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a green confirmation line.
//
// Example:
//
//	output.Success("Answer recorded: yes")
func Success(msg string) {
	fmt.Fprintln(out, successStyle.Render("✓ "+msg))
}

// Error prints a red failure line.
func Error(msg string) {
	fmt.Fprintln(out, errorStyle.Render("✗ "+msg))
}

// Info prints a cyan status line.
func Info(msg string) {
	fmt.Fprintln(out, infoStyle.Render("→ "+msg))
}

// Hint prints an indented gray line, for follow-up suggestions under a
// result.
//
// Example:
//
//	output.Hint("press enter to accept the default")
func Hint(msg string) {
	fmt.Fprintln(out, hintStyle.Render("   "+msg))
}

// Verbose prints a gray debug line only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(out, hintStyle.Render("· "+msg))
	}
}
