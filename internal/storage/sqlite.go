// Package storage provides SQLite-based persistence for the command history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is the layout used for created_at and started_at columns.
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the history journal.
type Store struct {
	db *sql.DB
}

// SessionRecord is one editor session: a terminal, a script, a TUI or an
// SSH connection.
type SessionRecord struct {
	ID        int64
	Source    string
	StartedAt time.Time
	Commands  int
}

// CommandRecord is one executed line.
type CommandRecord struct {
	ID        int64
	SessionID int64
	Source    string
	Line      string
	Tag       string // empty when the line did not parse
	OK        bool
	Error     string
	CreatedAt time.Time
}

// Stats contains aggregated journal statistics.
type Stats struct {
	Sessions    int
	Commands    int
	Failures    int
	TopTag      string
	TopTagCount int
	LastUsed    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SSH sessions record concurrently; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS commands (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			line TEXT NOT NULL,
			tag TEXT NOT NULL DEFAULT '',
			ok INTEGER NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_commands_session_id ON commands(session_id);
		CREATE INDEX IF NOT EXISTS idx_commands_tag ON commands(tag);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartSession records a new session and returns its ID.
func (s *Store) StartSession(source string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (source, started_at) VALUES (?, ?)",
		source, time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecordCommand appends one executed line to a session.
// A zero CreatedAt is replaced by the current time.
func (s *Store) RecordCommand(sessionID int64, c CommandRecord) (int64, error) {
	at := c.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO commands (session_id, line, tag, ok, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sessionID, c.Line, c.Tag, c.OK, c.Error, at.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record command: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentCommands returns the last limit commands across all sessions,
// oldest first.
func (s *Store) RecentCommands(limit int) ([]CommandRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryCommands(
		`SELECT * FROM (
			SELECT c.id, c.session_id, s.source, c.line, c.tag, c.ok, c.error, c.created_at
			FROM commands c JOIN sessions s ON s.id = c.session_id
			ORDER BY c.id DESC
			LIMIT ?
		 ) ORDER BY id ASC`,
		limit,
	)
}

// SessionCommands returns every command of one session in execution order.
func (s *Store) SessionCommands(sessionID int64) ([]CommandRecord, error) {
	return s.queryCommands(
		`SELECT c.id, c.session_id, s.source, c.line, c.tag, c.ok, c.error, c.created_at
		 FROM commands c JOIN sessions s ON s.id = c.session_id
		 WHERE c.session_id = ?
		 ORDER BY c.id ASC`,
		sessionID,
	)
}

func (s *Store) queryCommands(query string, args ...any) ([]CommandRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query commands: %w", err)
	}
	defer rows.Close()

	var records []CommandRecord
	for rows.Next() {
		var r CommandRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Source, &r.Line, &r.Tag, &r.OK, &r.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Sessions returns the most recent sessions, newest first, with their
// command counts.
func (s *Store) Sessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT s.id, s.source, s.started_at, COUNT(c.id)
		 FROM sessions s LEFT JOIN commands c ON c.session_id = s.id
		 GROUP BY s.id
		 ORDER BY s.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var startedAt any
		if err := rows.Scan(&r.ID, &r.Source, &startedAt, &r.Commands); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = parseTime(startedAt)
		sessions = append(sessions, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// Stats aggregates the whole journal.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&stats.Sessions); err != nil {
		return nil, fmt.Errorf("storage: cannot count sessions: %w", err)
	}

	var lastUsed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN ok THEN 0 ELSE 1 END), 0), MAX(created_at)
		 FROM commands`,
	).Scan(&stats.Commands, &stats.Failures, &lastUsed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count commands: %w", err)
	}
	stats.LastUsed = parseTime(lastUsed)

	err = s.db.QueryRow(
		`SELECT tag, COUNT(*) AS n FROM commands
		 WHERE tag != ''
		 GROUP BY tag
		 ORDER BY n DESC, tag ASC
		 LIMIT 1`,
	).Scan(&stats.TopTag, &stats.TopTagCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get top command: %w", err)
	}

	return stats, nil
}

// ClearHistory deletes every session and command.
func (s *Store) ClearHistory() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM commands"); err != nil {
		return fmt.Errorf("storage: cannot clear commands: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
