package prompt

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/sibyl-dev/sibyl/style"
)

// Secret asks for a value without echoing it back, for passwords and
// tokens. When the input is a terminal the reply is read with local
// echo disabled; otherwise (pipes, tests) it falls back to a plain line
// read. The reply is returned trimmed; there is no default and no
// re-prompt loop.
func (p *Prompter) Secret(promptText string, st *style.Style) (string, error) {
	p.logger.Debug("asking secret", "prompt", promptText)

	fmt.Fprint(p.out, renderPrompt(promptText, st))
	if err := p.flush(); err != nil {
		return "", err
	}

	f, ok := p.raw.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.readLine()
	}

	reply, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if ferr := p.flush(); ferr != nil {
		return "", ferr
	}
	if err != nil {
		p.logger.Error("reading secret failed", "err", err)
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return strings.TrimSpace(string(reply)), nil
}

// Secret asks on stdin/stdout. See Prompter.Secret.
func Secret(promptText string, st *style.Style) (string, error) {
	return std.Secret(promptText, st)
}
