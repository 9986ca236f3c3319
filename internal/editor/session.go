// Package editor runs editor sessions: it owns the current image, applies
// parsed commands to it and drives the line-oriented read loop.
package editor

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bitmap/internal/bitmap"
	"github.com/vovakirdan/tui-bitmap/internal/command"
)

// MaxDimension is the largest width or height an image may have.
const MaxDimension = 250

// Farewell is printed when the exit command ends a session.
const Farewell = "goodbye!"

// HelpText describes every command.
const HelpText = `? - Help
I M N - Create a new M x N image with all pixels coloured white (O).
C - Clears the table, setting all pixels to white (O).
L X Y C - Colours the pixel (X,Y) with colour C.
V X Y1 Y2 C - Draw a vertical segment of colour C in column X between rows Y1 and Y2 (inclusive).
H X1 X2 Y C - Draw a horizontal segment of colour C in row Y between columns X1 and X2 (inclusive).
F X Y C - Fill the region containing pixel (X,Y) with colour C.
S - Show the contents of the current image
X - Terminate the session`

// Entry describes one executed line for a Recorder.
type Entry struct {
	Source string
	Line   string
	Type   command.Type // zero when the line did not parse
	OK     bool
	Error  string
	At     time.Time
}

// Recorder receives every executed line.
type Recorder interface {
	Record(e Entry) error
}

// Output is the visible result of a command.
type Output struct {
	Type command.Type
	Text string
	Show bool // whether Text should be printed, even when empty
}

// Session holds the current image and executes commands against it.
// A Session is not safe for concurrent use.
type Session struct {
	grid     *bitmap.Grid
	running  bool
	maxW     int
	maxH     int
	source   string
	logger   *log.Logger
	recorder Recorder
	handlers map[command.Type]handler
}

type handler func(s *Session, cmd command.Command) (Output, error)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder journals every executed line to r.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithMaxDimension lowers the largest accepted width and height.
// Values are clamped to [1, MaxDimension].
func WithMaxDimension(w, h int) Option {
	return func(s *Session) {
		s.maxW = clamp(w, 1, MaxDimension)
		s.maxH = clamp(h, 1, MaxDimension)
	}
}

// WithSource labels the session for logging and the journal.
func WithSource(source string) Option {
	return func(s *Session) {
		s.source = source
	}
}

// NewSession creates a running session with no image.
func NewSession(opts ...Option) *Session {
	s := &Session{
		running: true,
		maxW:    MaxDimension,
		maxH:    MaxDimension,
		source:  "stdin",
		logger:  log.New(io.Discard),
		handlers: map[command.Type]handler{
			command.TypeCreate:     (*Session).create,
			command.TypeClear:      (*Session).clear,
			command.TypeColour:     (*Session).colour,
			command.TypeVertical:   (*Session).vertical,
			command.TypeHorizontal: (*Session).horizontal,
			command.TypeFill:       (*Session).fill,
			command.TypeShow:       (*Session).show,
			command.TypeHelp:       (*Session).help,
			command.TypeExit:       (*Session).exit,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Running reports whether the exit command has not been executed yet.
func (s *Session) Running() bool {
	return s.running
}

// Grid returns the current image, or nil before the first create command.
func (s *Session) Grid() *bitmap.Grid {
	return s.grid
}

// Source returns the session label.
func (s *Session) Source() string {
	return s.source
}

// Exec parses and executes one line.
func (s *Session) Exec(line string) (Output, error) {
	out, t, err := s.dispatch(line)
	s.journal(line, t, err)
	out.Type = t
	return out, err
}

func (s *Session) dispatch(line string) (Output, command.Type, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return Output{}, 0, err
	}
	h, ok := s.handlers[cmd.Type]
	if !ok {
		return Output{}, cmd.Type, fmt.Errorf("%w %q", command.ErrInvalidCommand, cmd.Type.Tag())
	}
	out, err := h(s, cmd)
	return out, cmd.Type, err
}

// journal logs the outcome of a line and hands it to the recorder.
func (s *Session) journal(line string, t command.Type, err error) {
	if err != nil {
		s.logger.Debug("command failed", "source", s.source, "line", line, "error", err)
	} else {
		s.logger.Debug("command executed", "source", s.source, "line", line, "type", t)
	}

	if s.recorder == nil {
		return
	}
	entry := Entry{
		Source: s.source,
		Line:   line,
		Type:   t,
		OK:     err == nil,
		At:     time.Now(),
	}
	if err != nil {
		entry.Error = Message(err)
	}
	if recErr := s.recorder.Record(entry); recErr != nil {
		s.logger.Warn("could not record command", "source", s.source, "error", recErr)
	}
}

func (s *Session) create(cmd command.Command) (Output, error) {
	w, h := cmd.X, cmd.Y
	if w < 1 || h < 1 || w > s.maxW || h > s.maxH {
		return Output{}, fmt.Errorf("%w, got (%d,%d)", ErrBadDimension, w, h)
	}
	s.grid = bitmap.Build(w, h)
	return Output{}, nil
}

func (s *Session) clear(command.Command) (Output, error) {
	if err := s.requireGrid(); err != nil {
		return Output{}, err
	}
	s.grid = bitmap.Build(s.grid.Width(), s.grid.Height())
	return Output{}, nil
}

func (s *Session) colour(cmd command.Command) (Output, error) {
	if err := s.requireGrid(); err != nil {
		return Output{}, err
	}
	return Output{}, s.grid.SetColour(cmd.Y, cmd.X, cmd.Colour)
}

func (s *Session) vertical(cmd command.Command) (Output, error) {
	if err := s.requireGrid(); err != nil {
		return Output{}, err
	}
	return Output{}, s.grid.SetVerticalRange(cmd.X, cmd.YRange, cmd.Colour)
}

func (s *Session) horizontal(cmd command.Command) (Output, error) {
	if err := s.requireGrid(); err != nil {
		return Output{}, err
	}
	return Output{}, s.grid.SetHorizontalRange(cmd.XRange, cmd.Y, cmd.Colour)
}

func (s *Session) fill(cmd command.Command) (Output, error) {
	if err := s.requireGrid(); err != nil {
		return Output{}, err
	}
	return Output{}, s.grid.Fill(cmd.Y, cmd.X, cmd.Colour)
}

func (s *Session) show(command.Command) (Output, error) {
	if s.grid == nil {
		return Output{Show: true}, nil
	}
	return Output{Text: s.grid.String(), Show: true}, nil
}

func (s *Session) help(command.Command) (Output, error) {
	return Output{Text: HelpText, Show: true}, nil
}

func (s *Session) exit(command.Command) (Output, error) {
	s.running = false
	return Output{Text: Farewell, Show: true}, nil
}

func (s *Session) requireGrid() error {
	if s.grid == nil {
		return ErrNoBitmap
	}
	return nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
