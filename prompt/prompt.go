package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sibyl-dev/sibyl/style"
)

// The only two error kinds a prompt can fail with. Invalid input is
// never an error; it is handled by re-prompting (YesNo) or by the
// default value (Selection). I/O faults are returned immediately and
// never retried.
var (
	// ErrFlush reports that the prompt could not be flushed to the output.
	ErrFlush = errors.New("prompt: flushing output failed")
	// ErrRead reports that a line could not be read from the input.
	ErrRead = errors.New("prompt: reading input failed")
)

// Options configures a Prompter.
type Options struct {
	In     io.Reader   // Input stream (default os.Stdin)
	Out    io.Writer   // Output stream (default os.Stdout)
	Logger *log.Logger // Optional debug logger (default discards)
}

// Prompter asks questions on a line-oriented terminal. Output is
// buffered and flushed before every blocking read, so the question is
// always visible before input is awaited.
//
// A Prompter assumes exclusive, sequential use of its streams; calling
// it from multiple goroutines without external synchronization races on
// the shared streams and is not supported.
type Prompter struct {
	raw    io.Reader
	in     *bufio.Reader
	out    *bufio.Writer
	logger *log.Logger
}

// New creates a Prompter with sensible defaults.
func New(opts *Options) *Prompter {
	if opts == nil {
		opts = &Options{}
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Prompter{
		raw:    in,
		in:     bufio.NewReader(in),
		out:    bufio.NewWriter(out),
		logger: logger,
	}
}

// answer is a normalized yes/no reply. parseAnswer produces one only
// for the three accepted forms, so a switch over these values after the
// read loop is exhaustive.
type answer int

const (
	answerYes answer = iota
	answerNo
	answerEmpty
)

func parseAnswer(line string) (answer, bool) {
	switch strings.ToLower(line) {
	case "y":
		return answerYes, true
	case "n":
		return answerNo, true
	case "":
		return answerEmpty, true
	}
	return 0, false
}

// YesNo asks a yes/no question and returns the user's choice. The
// prompt is re-displayed until the reply is "y", "n" (either case) or
// empty; an empty reply returns defaultYes. The caller owns the prompt
// wording, including any "(Y/n)" hint; the prompt is printed as given,
// styled with st when present, trimmed and unstyled otherwise.
//
// Example:
//
//	ok, err := p.YesNo("Approved? (Y/n) >>> ", nil, true)
func (p *Prompter) YesNo(promptText string, st *style.Style, defaultYes bool) (bool, error) {
	p.logger.Debug("asking yes/no", "prompt", promptText, "default", defaultYes)

	for {
		fmt.Fprint(p.out, renderPrompt(promptText, st))
		if err := p.flush(); err != nil {
			return false, err
		}

		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		ans, ok := parseAnswer(line)
		if !ok {
			p.logger.Debug("reply not recognized, asking again", "reply", line)
			continue
		}

		switch ans {
		case answerYes:
			return true, nil
		case answerNo:
			return false, nil
		case answerEmpty:
			return defaultYes, nil
		}
	}
}

// Selection asks the user to pick from a displayed list of choices and
// returns the reply. The visible line is "{prompt}: [{choices}]: ";
// only the choices receive styling. Exactly one line is read: an empty
// reply returns def exactly as supplied, any other reply is returned
// trimmed. The reply is not checked against the choices; the list is a
// display aid and the caller interprets the answer.
//
// Example:
//
//	fruit, err := p.Selection("Choose", "(a)pples, (b)ananas, (D)oughnuts", nil, "D")
//	// Displays: Choose: [(a)pples, (b)ananas, (D)oughnuts]: _
func (p *Prompter) Selection(promptText, choices string, st *style.Style, def string) (string, error) {
	p.logger.Debug("asking selection", "prompt", promptText, "default", def)

	if st != nil {
		fmt.Fprintf(p.out, "%s: [%s]: ", promptText, st.Render(choices))
	} else {
		fmt.Fprintf(p.out, "%s: [%s]: ", strings.TrimSpace(promptText), strings.TrimSpace(choices))
	}
	if err := p.flush(); err != nil {
		return "", err
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// renderPrompt styles the whole prompt when a style is given; without
// one the prompt is printed trimmed and unstyled.
func renderPrompt(text string, st *style.Style) string {
	if st == nil {
		return strings.TrimSpace(text)
	}
	return st.Render(text)
}

// flush pushes buffered prompt text to the output so it is visible
// before the next read blocks. Buffered write errors surface here too.
func (p *Prompter) flush() error {
	if err := p.out.Flush(); err != nil {
		p.logger.Error("flushing prompt failed", "err", err)
		return fmt.Errorf("%w: %v", ErrFlush, err)
	}
	return nil
}

// readLine blocks for one line and returns it trimmed. End of input is
// not a fault: whatever was read before EOF is the reply, so a closed
// stdin behaves like an empty reply.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		p.logger.Error("reading reply failed", "err", err)
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return strings.TrimSpace(line), nil
}

// std is the package-level Prompter bound to stdin/stdout.
var std = New(nil)

// YesNo asks on stdin/stdout. See Prompter.YesNo.
func YesNo(promptText string, st *style.Style, defaultYes bool) (bool, error) {
	return std.YesNo(promptText, st, defaultYes)
}

// Selection asks on stdin/stdout. See Prompter.Selection.
func Selection(promptText, choices string, st *style.Style, def string) (string, error) {
	return std.Selection(promptText, choices, st, def)
}
