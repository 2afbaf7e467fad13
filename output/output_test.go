package output

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// capture redirects package output into a buffer for the duration of f.
func capture(f func()) string {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	f()
	return buf.String()
}

func TestSuccess(t *testing.T) {
	got := capture(func() {
		Success("answer recorded")
	})

	if !strings.Contains(got, "✓") {
		t.Error("Success output should contain the check mark")
	}
	if !strings.Contains(got, "answer recorded") {
		t.Error("Success output should contain the message")
	}
}

func TestError(t *testing.T) {
	got := capture(func() {
		Error("could not read answer")
	})

	if !strings.Contains(got, "✗") {
		t.Error("Error output should contain the cross mark")
	}
	if !strings.Contains(got, "could not read answer") {
		t.Error("Error output should contain the message")
	}
}

func TestInfo(t *testing.T) {
	got := capture(func() {
		Info("3 questions left")
	})

	if !strings.Contains(got, "→") {
		t.Error("Info output should contain the arrow")
	}
	if !strings.Contains(got, "3 questions left") {
		t.Error("Info output should contain the message")
	}
}

func TestHint(t *testing.T) {
	got := capture(func() {
		Hint("press enter for the default")
	})

	if !strings.Contains(got, "   ") {
		t.Error("Hint output should be indented")
	}
	if !strings.Contains(got, "press enter for the default") {
		t.Error("Hint output should contain the message")
	}
}

func TestVerbose(t *testing.T) {
	got := capture(func() {
		Verbose("hidden")
	})
	if got != "" {
		t.Error("Verbose output should be empty when verbose mode is off")
	}

	SetVerbose(true)
	defer SetVerbose(false)

	got = capture(func() {
		Verbose("shown")
	})
	if !strings.Contains(got, "shown") {
		t.Error("Verbose output should contain the message when enabled")
	}
}
