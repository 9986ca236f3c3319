// Package tui provides the Bubble Tea front end for the bitmap editor:
// the interactive editor screen, the history browser and the SSH server.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bitmap/internal/command"
	"github.com/vovakirdan/tui-bitmap/internal/editor"
)

// maxRecall is how many submitted lines the command line remembers.
const maxRecall = 100

// ModelConfig configures the editor screen.
type ModelConfig struct {
	// Palette maps colour letters to ANSI colour codes.
	Palette map[string]string

	// Renderer styles the output; nil uses the default renderer.
	// SSH sessions pass a per-connection renderer.
	Renderer *lipgloss.Renderer
}

// styles holds the lipgloss styles of the editor screen.
type styles struct {
	title  lipgloss.Style
	canvas lipgloss.Style
	empty  lipgloss.Style
	panel  lipgloss.Style
	status lipgloss.Style
	err    lipgloss.Style
	help   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		canvas: r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		empty:  r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2),
		panel:  r.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		status: r.NewStyle().Foreground(lipgloss.Color("10")),
		err:    r.NewStyle().Foreground(lipgloss.Color("9")),
		help:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Model is the Bubble Tea model for the editor screen.
type Model struct {
	session   *editor.Session
	input     textinput.Model
	palette   Palette
	styles    styles
	keys      EditorKeyMap
	help      help.Model
	recall    []string
	recallPos int // index into recall; len(recall) means the live line
	status    string
	statusErr bool
	statusSeq int
	showHelp  bool
	width     int
	height    int
	quitting  bool
}

// NewModel creates an editor screen driving s.
func NewModel(s *editor.Session, cfg ModelConfig) Model {
	r := cfg.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "I 20 10"
	in.CharLimit = 64
	in.Focus()

	return Model{
		session: s,
		input:   in,
		palette: NewPalette(r, cfg.Palette),
		styles:  newStyles(r),
		keys:    DefaultEditorKeyMap(),
		help:    help.New(),
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Run):
			return m.submit()
		case key.Matches(msg, m.keys.ClearInput):
			m.input.Reset()
			m.recallPos = len(m.recall)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.recallLine(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.recallLine(1)
			return m, nil
		case key.Matches(msg, m.keys.ToggleHelp):
			m.showHelp = !m.showHelp
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the command line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}
	m.remember(line)

	out, err := m.session.Exec(line)
	if err != nil {
		return m, m.setStatus(editor.Message(err), true)
	}

	switch out.Type {
	case command.TypeExit:
		m.quitting = true
		return m, tea.Quit
	case command.TypeHelp:
		m.showHelp = true
		return m, nil
	case command.TypeShow:
		// the canvas is always visible
		return m, nil
	}
	return m, m.setStatus(fmt.Sprintf("%s: %s", out.Type, line), false)
}

// setStatus shows a message and schedules its removal.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return clearStatusAfter(statusTimeout, m.statusSeq)
}

func (m *Model) remember(line string) {
	if n := len(m.recall); n == 0 || m.recall[n-1] != line {
		m.recall = append(m.recall, line)
	}
	if len(m.recall) > maxRecall {
		m.recall = m.recall[len(m.recall)-maxRecall:]
	}
	m.recallPos = len(m.recall)
}

// recallLine moves through previously submitted lines.
func (m *Model) recallLine(delta int) {
	pos := m.recallPos + delta
	if pos < 0 || pos > len(m.recall) {
		return
	}
	m.recallPos = pos
	if pos == len(m.recall) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.recall[pos])
	m.input.CursorEnd()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "BITMAP"
	if g := m.session.Grid(); g != nil {
		title = fmt.Sprintf("BITMAP %dx%d, %d colours", g.Width(), g.Height(), len(g.CountByColour()))
	}
	b.WriteString(m.styles.title.Render(title))
	b.WriteString("\n")

	b.WriteString(m.canvas())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.styles.panel.Render(editor.HelpText))
		b.WriteString("\n")
	}

	if m.status != "" {
		style := m.styles.status
		if m.statusErr {
			style = m.styles.err
		}
		b.WriteString(style.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))

	return b.String()
}

// canvas renders the image, or a hint when there is none yet.
func (m Model) canvas() string {
	g := m.session.Grid()
	if g == nil {
		return m.styles.empty.Render("No image yet.\nCreate one with I M N, for example I 20 10.")
	}
	if g.Width() == 0 || g.Height() == 0 {
		return m.styles.canvas.Render("")
	}
	return m.styles.canvas.Render(RenderGrid(g, m.palette))
}

// Session returns the editor session driven by the model.
func (m Model) Session() *editor.Session {
	return m.session
}

// IsQuitting returns true if the user left the editor.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program on the local terminal.
func Run(s *editor.Session, cfg ModelConfig) error {
	p := tea.NewProgram(
		NewModel(s, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
