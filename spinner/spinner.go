package spinner

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	dotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// model is the bubbletea model behind a Spinner.
type model struct {
	spin    spinner.Model
	message string
	done    bool
	failed  bool
}

// doneMsg stops the spinner and freezes its final line.
type doneMsg struct {
	failed  bool
	message string
}

func newModel(message string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = dotStyle
	return model{
		spin:    s,
		message: message,
	}
}

func (m model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.failed = msg.failed
		if msg.message != "" {
			m.message = msg.message
		}
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		if m.failed {
			return failStyle.Render("✗") + " " + m.message + "\n"
		}
		return okStyle.Render("✓") + " " + m.message + "\n"
	}
	return fmt.Sprintf("%s %s...", m.spin.View(), m.message)
}

// Spinner shows an animated wait indicator while something long-running
// happens between prompts. Start it, do the work, then Stop it with the
// outcome.
type Spinner struct {
	out  io.Writer
	prog *tea.Program
}

// New creates a Spinner writing to w. A nil writer means stderr, which
// keeps stdout clean for answers and automation.
func New(w io.Writer) *Spinner {
	if w == nil {
		w = os.Stderr
	}
	return &Spinner{out: w}
}

// Start begins animating with the given message.
func (s *Spinner) Start(message string) {
	s.prog = tea.NewProgram(newModel(message), tea.WithOutput(s.out))
	go func() {
		// Spinner rendering errors are cosmetic only.
		_, _ = s.prog.Run()
	}()
}

// Stop ends the animation, leaving a final ✓ or ✗ line. An empty
// message keeps the one given to Start.
func (s *Spinner) Stop(ok bool, message string) {
	if s.prog == nil {
		return
	}
	s.prog.Send(doneMsg{failed: !ok, message: message})
	s.prog.Wait()
	s.prog = nil
}

// While runs fn behind a spinner and reports its outcome on the final
// line.
//
// Example:
//
//	err := spinner.While("Validating answer", func() error {
//	    return client.Check(answer)
//	})
func While(message string, fn func() error) error {
	s := New(nil)
	s.Start(message)
	if err := fn(); err != nil {
		s.Stop(false, err.Error())
		return err
	}
	s.Stop(true, "")
	return nil
}
