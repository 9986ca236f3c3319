package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bitmap/internal/storage"
)

// History browser layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show session list sidebar
	sidebarWidth       = 24 // Width of session list sidebar
	maxSessions        = 50 // Max sessions to load
)

// HistorySource is the part of the journal the browser reads.
type HistorySource interface {
	Sessions(limit int) ([]storage.SessionRecord, error)
	SessionCommands(sessionID int64) ([]storage.CommandRecord, error)
}

// HistoryModel is the Bubble Tea model for browsing the command journal.
type HistoryModel struct {
	source      HistorySource
	sessions    []storage.SessionRecord
	cursor      int // Currently selected session index
	commands    []storage.CommandRecord
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	loadErr     error
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a history browser over src.
func NewHistoryModel(src HistorySource, width, height int) HistoryModel {
	m := HistoryModel{
		source:      src,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()

	sessions, err := src.Sessions(maxSessions)
	if err != nil {
		m.loadErr = err
		return m
	}
	m.sessions = sessions
	if len(m.sessions) > 0 {
		m.loadCommands()
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Command", Width: 16},
		{Title: "Result", Width: 24},
		{Title: "Time", Width: 12},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if extra := tableWidth - 64; extra > 0 {
		columns[2].Width += extra
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadCommands loads the commands of the selected session.
func (m *HistoryModel) loadCommands() {
	commands, err := m.source.SessionCommands(m.sessions[m.cursor].ID)
	if err != nil {
		m.loadErr = err
		m.commands = nil
	} else {
		m.loadErr = nil
		m.commands = commands
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded commands.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.commands))
	for i, c := range m.commands {
		result := "ok"
		if !c.OK {
			result = c.Error
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			c.Line,
			result,
			c.CreatedAt.Local().Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSession):
			if len(m.sessions) > 0 {
				m.cursor = (m.cursor + 1) % len(m.sessions)
				m.loadCommands()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevSession):
			if len(m.sessions) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.sessions) - 1
				}
				m.loadCommands()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "HISTORY"
	if s, ok := m.Selected(); ok {
		title = fmt.Sprintf("HISTORY - %s", sessionLabel(s))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the session list.
func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Sessions\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, s := range m.sessions {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := sessionLabel(s)
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read history:\n" + m.loadErr.Error())
	case len(m.sessions) == 0:
		return emptyStyle.Render("No sessions recorded yet.\nRun the editor to start one!")
	case len(m.commands) == 0:
		return emptyStyle.Render("This session ran no commands.")
	}
	return m.table.View()
}

// Selected returns the session currently shown.
func (m HistoryModel) Selected() (storage.SessionRecord, bool) {
	if len(m.sessions) == 0 {
		return storage.SessionRecord{}, false
	}
	return m.sessions[m.cursor], true
}

func sessionLabel(s storage.SessionRecord) string {
	return fmt.Sprintf("#%d %s", s.ID, s.Source)
}

// RunHistory runs the history browser.
func RunHistory(src HistorySource, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(src, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
