// Package output prints styled status lines for CLI tools.
//
// # Overview
//
// Prompting and reporting go together: a tool asks something with the
// prompt package, then echoes what happened. This package provides the
// reporting half with a consistent look.
//
// # Usage
//
//	import "github.com/sibyl-dev/sibyl/output"
//
//	output.Success("Answer recorded: yes")
//	output.Info("3 questions left")
//	output.Hint("press enter to accept the default")
//	output.Error("could not read answer")
//
// # Verbose Mode
//
// Verbose lines are suppressed unless enabled:
//
//	output.SetVerbose(true)
//	output.Verbose("raw reply: \"  b  \"")
//
// # Styling
//
// Lines are styled with lipgloss:
//
//   - Success: ✓ green bold
//   - Error: ✗ red bold
//   - Info: → cyan
//   - Hint: indented gray
//   - Verbose: · gray (when enabled)
//
// Output goes to stdout by default; SetOutput redirects it, which tests
// use to capture lines in a buffer.
package output
