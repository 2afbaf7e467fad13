package picker

import (
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Result holds the outcome of a Pick call.
type Result struct {
	Value     string
	Index     int
	Cancelled bool
}

type item struct {
	label string
	index int
}

func (i item) Title() string       { return i.label }
func (i item) Description() string { return "" }
func (i item) FilterValue() string { return i.label }

type pickModel struct {
	list      list.Model
	done      bool
	cancelled bool
	choice    int
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	if m.done {
		return ""
	}
	return m.list.View()
}

func newPickModel(prompt string, options []string) pickModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = item{label: opt, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Bold(true)

	l := list.New(items, delegate, 60, min(len(options)+6, 20))
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return pickModel{
		list:   l,
		choice: -1,
	}
}

// Pick shows an arrow-key menu and returns the chosen option. Esc and
// ctrl+c cancel without choosing. An empty option list cancels
// immediately. The menu renders to stderr, keeping stdout clean.
func Pick(prompt string, options []string) (Result, error) {
	if len(options) == 0 {
		return Result{Index: -1, Cancelled: true}, nil
	}

	p := tea.NewProgram(newPickModel(prompt, options), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m := final.(pickModel)
	if m.cancelled || m.choice < 0 || m.choice >= len(options) {
		return Result{Index: -1, Cancelled: true}, nil
	}
	return Result{
		Value: options[m.choice],
		Index: m.choice,
	}, nil
}
