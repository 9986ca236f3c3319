package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bitmap/internal/storage"
)

// fakeHistory is an in-memory HistorySource.
type fakeHistory struct {
	sessions []storage.SessionRecord
	commands map[int64][]storage.CommandRecord
	err      error
}

func (f *fakeHistory) Sessions(limit int) ([]storage.SessionRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions, nil
}

func (f *fakeHistory) SessionCommands(id int64) ([]storage.CommandRecord, error) {
	return f.commands[id], nil
}

func newFakeHistory() *fakeHistory {
	at := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	return &fakeHistory{
		sessions: []storage.SessionRecord{
			{ID: 2, Source: "ssh:bob", StartedAt: at, Commands: 1},
			{ID: 1, Source: "stdin", StartedAt: at, Commands: 2},
		},
		commands: map[int64][]storage.CommandRecord{
			1: {
				{ID: 1, SessionID: 1, Line: "I 5 5", Tag: "I", OK: true, CreatedAt: at},
				{ID: 2, SessionID: 1, Line: "L 9 9 A", Tag: "L", Error: "out of range", CreatedAt: at},
			},
			2: {
				{ID: 3, SessionID: 2, Line: "S", Tag: "S", OK: true, CreatedAt: at},
			},
		},
	}
}

func TestHistoryModelLoadsFirstSession(t *testing.T) {
	m := NewHistoryModel(newFakeHistory(), 100, 30)

	s, ok := m.Selected()
	if !ok || s.ID != 2 {
		t.Fatalf("expected session 2 selected, got %+v", s)
	}
	if len(m.commands) != 1 || m.commands[0].Line != "S" {
		t.Errorf("expected commands of session 2, got %+v", m.commands)
	}
	if !strings.Contains(m.View(), "ssh:bob") {
		t.Error("expected session source in view")
	}
}

func TestHistoryModelSwitchSessions(t *testing.T) {
	m := NewHistoryModel(newFakeHistory(), 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if s, _ := m.Selected(); s.ID != 1 {
		t.Errorf("expected session 1 after tab, got %d", s.ID)
	}
	if len(m.commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(m.commands))
	}
	if rows := m.table.Rows(); rows[1][2] != "out of range" {
		t.Errorf("expected failure message in result column, got %q", rows[1][2])
	}

	// Wraps around
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if s, _ := m.Selected(); s.ID != 2 {
		t.Errorf("expected wrap to session 2, got %d", s.ID)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if s, _ := m.Selected(); s.ID != 1 {
		t.Errorf("expected session 1 after shift+tab, got %d", s.ID)
	}
}

func TestHistoryModelEmptyAndError(t *testing.T) {
	m := NewHistoryModel(&fakeHistory{}, 60, 20)
	if _, ok := m.Selected(); ok {
		t.Error("expected no selection without sessions")
	}
	if !strings.Contains(m.View(), "No sessions recorded yet") {
		t.Error("expected empty message")
	}

	m = NewHistoryModel(&fakeHistory{err: errors.New("locked")}, 60, 20)
	if !strings.Contains(m.View(), "locked") {
		t.Error("expected load error in view")
	}
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(newFakeHistory(), 100, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
