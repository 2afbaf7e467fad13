// Package prompt reads answers to questions asked on a line-oriented
// terminal.
//
// # Overview
//
// Three operations cover the common cases:
//
//   - YesNo: loops until the reply is y, n, or empty (empty means the
//     caller-supplied default)
//   - Selection: shows a bracketed list of choices and reads one
//     free-form reply, falling back to a default when it is empty
//   - Secret: reads one reply without echoing it
//
// All of them block until a line arrives; there are no timeouts and no
// cancellation. The package-level functions ask on stdin/stdout; build
// a Prompter to ask on other streams (tests do this with buffers).
//
// # Usage
//
//	import (
//	    "github.com/sibyl-dev/sibyl/prompt"
//	    "github.com/sibyl-dev/sibyl/style"
//	)
//
//	green := style.New(style.Foreground, style.Green)
//	ok, err := prompt.YesNo("Approved? (Y/n) >>> ", &green, true)
//
//	fruit, err := prompt.Selection("Choose", "(a)pples, (D)oughnuts", nil, "D")
//
// Passing a nil style renders the prompt trimmed and unstyled; the
// caller otherwise owns the prompt wording entirely, including hints
// like "(Y/n)".
//
// # Errors
//
// The only failures are ErrFlush (the prompt could not be made visible)
// and ErrRead (the reply could not be read). Both are returned
// immediately and never retried. Unrecognized input is not an error.
package prompt
