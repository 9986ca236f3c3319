package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 5 * time.Second

// clearStatusMsg asks the model to drop the status message set by seq.
type clearStatusMsg struct {
	seq int
}

// clearStatusAfter returns a command that expires status message seq.
func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
