package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestPickModelEnterSelectsCurrent(t *testing.T) {
	m := newPickModel("Choose", []string{"apples", "bananas", "carrots"})

	updated, cmd := m.Update(keyPress("enter"))
	um := updated.(pickModel)

	if !um.done {
		t.Error("enter should finish the menu")
	}
	if um.cancelled {
		t.Error("enter should not cancel")
	}
	if um.choice != 0 {
		t.Errorf("choice = %d, want 0", um.choice)
	}
	if cmd == nil {
		t.Error("enter should produce a quit command")
	}
}

func TestPickModelNavigation(t *testing.T) {
	m := newPickModel("Choose", []string{"apples", "bananas", "carrots"})

	updated, _ := m.Update(keyPress("down"))
	updated, _ = updated.(pickModel).Update(keyPress("enter"))
	um := updated.(pickModel)

	if um.choice != 1 {
		t.Errorf("choice = %d, want 1 after one down", um.choice)
	}
}

func TestPickModelCancel(t *testing.T) {
	for _, key := range []string{"esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := newPickModel("Choose", []string{"apples"})

			updated, cmd := m.Update(keyPress(key))
			um := updated.(pickModel)

			if !um.cancelled {
				t.Errorf("%s should cancel", key)
			}
			if cmd == nil {
				t.Errorf("%s should produce a quit command", key)
			}
		})
	}
}

func TestPickModelViewHidesWhenDone(t *testing.T) {
	m := newPickModel("Choose", []string{"apples"})
	if m.View() == "" {
		t.Error("a running menu should render something")
	}

	m.done = true
	if m.View() != "" {
		t.Error("a finished menu should render nothing")
	}
}

func TestPickEmptyOptions(t *testing.T) {
	res, err := Pick("Choose", nil)
	if err != nil {
		t.Fatalf("Pick with no options: %v", err)
	}
	if !res.Cancelled {
		t.Error("picking from no options should cancel")
	}
	if res.Index != -1 {
		t.Errorf("Index = %d, want -1", res.Index)
	}
}
