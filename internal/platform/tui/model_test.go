package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bitmap/internal/editor"
)

// typeLine sends a line of text followed by enter.
func typeLine(m Model, line string) (Model, tea.Cmd) {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestModelRunsCommands(t *testing.T) {
	s := editor.NewSession()
	m := NewModel(s, ModelConfig{})

	m, _ = typeLine(m, "I 4 3")
	if s.Grid() == nil {
		t.Fatal("expected create command to build a grid")
	}
	if m.input.Value() != "" {
		t.Errorf("expected input to be cleared, got %q", m.input.Value())
	}

	m, _ = typeLine(m, "L 2 1 R")
	cell, _ := s.Grid().Get(1, 2)
	if cell.String() != "R" {
		t.Errorf("expected R at (1,2), got %q", cell.String())
	}

	view := m.View()
	if !strings.Contains(view, "BITMAP 4x3, 2 colours") {
		t.Errorf("expected title with size, got:\n%s", view)
	}
	if !strings.Contains(view, "OROO") {
		t.Errorf("expected canvas in view, got:\n%s", view)
	}
}

func TestModelShowsErrors(t *testing.T) {
	m := NewModel(editor.NewSession(), ModelConfig{})

	m, cmd := typeLine(m, "L 1 1 A")
	if !m.statusErr {
		t.Error("expected an error status")
	}
	if !strings.HasPrefix(m.status, "Bitmap must be created first") {
		t.Errorf("unexpected status %q", m.status)
	}
	if cmd == nil {
		t.Error("expected a command to expire the status")
	}

	// A stale expiry leaves a newer status alone
	seq := m.statusSeq
	m, _ = typeLine(m, "Q")
	next, _ := m.Update(clearStatusMsg{seq: seq})
	m = next.(Model)
	if m.status == "" {
		t.Error("stale expiry should not clear the newer status")
	}

	next, _ = m.Update(clearStatusMsg{seq: m.statusSeq})
	m = next.(Model)
	if m.status != "" || m.statusErr {
		t.Errorf("expected status to be cleared, got %q", m.status)
	}
}

func TestModelHelpAndExit(t *testing.T) {
	m := NewModel(editor.NewSession(), ModelConfig{})

	m, _ = typeLine(m, "?")
	if !m.showHelp {
		t.Error("help command should open the command panel")
	}
	if !strings.Contains(m.View(), "Fill the region") {
		t.Error("expected help text in view")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = next.(Model)
	if m.showHelp {
		t.Error("f1 should close the command panel")
	}

	m, cmd := typeLine(m, "X")
	if !m.IsQuitting() {
		t.Error("exit command should quit")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitKeys(t *testing.T) {
	testCases := []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}

	for _, msg := range testCases {
		m := NewModel(editor.NewSession(), ModelConfig{})
		next, cmd := m.Update(msg)
		if !next.(Model).IsQuitting() {
			t.Errorf("%s: expected to quit", msg)
		}
		if cmd == nil {
			t.Errorf("%s: expected quit command", msg)
		}
	}
}

func TestModelRecall(t *testing.T) {
	m := NewModel(editor.NewSession(), ModelConfig{})
	m, _ = typeLine(m, "I 2 2")
	m, _ = typeLine(m, "S")

	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	next, _ := m.Update(up)
	m = next.(Model)
	if m.input.Value() != "S" {
		t.Errorf("expected S, got %q", m.input.Value())
	}

	next, _ = m.Update(up)
	m = next.(Model)
	if m.input.Value() != "I 2 2" {
		t.Errorf("expected I 2 2, got %q", m.input.Value())
	}

	// Already at the oldest line
	next, _ = m.Update(up)
	m = next.(Model)
	if m.input.Value() != "I 2 2" {
		t.Errorf("expected I 2 2, got %q", m.input.Value())
	}

	next, _ = m.Update(down)
	next, _ = next.Update(down)
	m = next.(Model)
	if m.input.Value() != "" {
		t.Errorf("expected live line to be empty, got %q", m.input.Value())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("I 9")})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = next.(Model)
	if m.input.Value() != "" {
		t.Errorf("ctrl+l should clear the line, got %q", m.input.Value())
	}
}

func TestModelEmptyLineIgnored(t *testing.T) {
	s := editor.NewSession()
	m := NewModel(s, ModelConfig{})

	m, cmd := typeLine(m, "   ")
	if cmd != nil || m.status != "" || len(m.recall) != 0 {
		t.Errorf("blank line should do nothing, got status %q", m.status)
	}
}
