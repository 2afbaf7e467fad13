package spinner

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
)

func TestNewModel(t *testing.T) {
	m := newModel("Loading")
	if m.message != "Loading" {
		t.Errorf("message = %q, want %q", m.message, "Loading")
	}
	if m.done {
		t.Error("a fresh model should not be done")
	}
	if m.Init() == nil {
		t.Error("Init should return the first tick command")
	}
}

func TestModelUpdate(t *testing.T) {
	t.Run("done message quits", func(t *testing.T) {
		m := newModel("Working")
		updated, cmd := m.Update(doneMsg{})
		um := updated.(model)
		if !um.done {
			t.Error("model should be done after doneMsg")
		}
		if um.failed {
			t.Error("doneMsg without failure should not mark the model failed")
		}
		if cmd == nil {
			t.Error("doneMsg should produce a quit command")
		}
	})

	t.Run("done message replaces message", func(t *testing.T) {
		m := newModel("Working")
		updated, _ := m.Update(doneMsg{failed: true, message: "no luck"})
		um := updated.(model)
		if !um.failed {
			t.Error("model should be failed")
		}
		if um.message != "no luck" {
			t.Errorf("message = %q, want %q", um.message, "no luck")
		}
	})

	t.Run("empty done message keeps original", func(t *testing.T) {
		m := newModel("Working")
		updated, _ := m.Update(doneMsg{})
		um := updated.(model)
		if um.message != "Working" {
			t.Errorf("message = %q, want %q", um.message, "Working")
		}
	})

	t.Run("tick advances animation", func(t *testing.T) {
		m := newModel("Working")
		_, cmd := m.Update(spinner.TickMsg{})
		if cmd == nil {
			t.Error("tick should schedule the next tick")
		}
	})

	t.Run("tick after done is ignored", func(t *testing.T) {
		m := newModel("Working")
		m.done = true
		_, cmd := m.Update(spinner.TickMsg{})
		if cmd != nil {
			t.Error("no more ticks should be scheduled once done")
		}
	})
}

func TestModelView(t *testing.T) {
	m := newModel("Working")
	if got := m.View(); !strings.Contains(got, "Working") {
		t.Errorf("running view %q should contain the message", got)
	}

	m.done = true
	if got := m.View(); !strings.Contains(got, "✓") {
		t.Errorf("successful final view %q should contain a check mark", got)
	}

	m.failed = true
	if got := m.View(); !strings.Contains(got, "✗") {
		t.Errorf("failed final view %q should contain a cross mark", got)
	}
}

func TestStopWithoutStart(t *testing.T) {
	s := New(nil)
	// Must not panic.
	s.Stop(true, "")
}
