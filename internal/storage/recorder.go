package storage

import (
	"fmt"

	"github.com/vovakirdan/tui-bitmap/internal/editor"
)

// Recorder journals the lines of one editor session into a Store.
type Recorder struct {
	store     *Store
	sessionID int64
}

// NewRecorder starts a session row for source and returns a recorder for it.
func NewRecorder(store *Store, source string) (*Recorder, error) {
	id, err := store.StartSession(source)
	if err != nil {
		return nil, err
	}
	return &Recorder{store: store, sessionID: id}, nil
}

// SessionID returns the journal ID of the recorded session.
func (r *Recorder) SessionID() int64 {
	return r.sessionID
}

// Record implements editor.Recorder.
func (r *Recorder) Record(e editor.Entry) error {
	rec := CommandRecord{
		Line:      e.Line,
		OK:        e.OK,
		Error:     e.Error,
		CreatedAt: e.At,
	}
	if e.Type != 0 {
		rec.Tag = e.Type.Tag()
	}
	if _, err := r.store.RecordCommand(r.sessionID, rec); err != nil {
		return fmt.Errorf("recording %q: %w", e.Line, err)
	}
	return nil
}

// Ensure Recorder implements editor.Recorder
var _ editor.Recorder = (*Recorder)(nil)
