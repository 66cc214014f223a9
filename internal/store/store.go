// Package store persists session profiles and conversation history in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/theirongolddev/fincoach/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store provides SQLite-backed session persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) stamp() string {
	return s.now().UTC().Format(timeLayout)
}

// SaveProfile stores the profile as a single JSON record, replacing any
// previous one for the session.
func (s *Store) SaveProfile(sessionID string, p *model.Profile) error {
	if p == nil {
		return s.DeleteProfile(sessionID)
	}
	record, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	_, err = s.db.Exec(`INSERT OR REPLACE INTO profiles (session_id, record, saved_at)
		VALUES (?, ?, ?)`, sessionID, string(record), s.stamp())
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// LoadProfile returns the saved profile for a session, or nil if there is
// none. A record that no longer decodes is deleted and treated as missing.
func (s *Store) LoadProfile(sessionID string) (*model.Profile, error) {
	var record string
	err := s.db.QueryRow("SELECT record FROM profiles WHERE session_id = ?", sessionID).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	var p model.Profile
	if err := json.Unmarshal([]byte(record), &p); err != nil || !p.Segment.Valid() {
		if err == nil {
			err = fmt.Errorf("unknown segment %q", p.Segment)
		}
		log.Warn("discarding unreadable profile", "session", sessionID, "err", err)
		if derr := s.DeleteProfile(sessionID); derr != nil {
			return nil, derr
		}
		return nil, nil
	}
	return &p, nil
}

// DeleteProfile removes the saved profile for a session.
func (s *Store) DeleteProfile(sessionID string) error {
	if _, err := s.db.Exec("DELETE FROM profiles WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}

// AppendEntry adds a message to the end of a session's history.
func (s *Store) AppendEntry(sessionID string, e model.Entry) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}
	_, err := s.db.Exec(`INSERT INTO messages (id, session_id, role, content, created_at, seq)
		VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM messages WHERE session_id = ?))`,
		e.ID, sessionID, string(e.Role), e.Content, ts.UTC().Format(timeLayout), sessionID,
	)
	if err != nil {
		return fmt.Errorf("appending message: %w", err)
	}
	return nil
}

// LoadHistory returns a session's messages in the order they were appended.
func (s *Store) LoadHistory(sessionID string) ([]model.Entry, error) {
	rows, err := s.db.Query(`SELECT id, role, content, created_at FROM messages
		WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		var role, createdAt string
		if err := rows.Scan(&e.ID, &role, &e.Content, &createdAt); err != nil {
			return nil, err
		}
		e.Role = model.Role(role)
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			e.Timestamp = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearHistory deletes every message in a session.
func (s *Store) ClearHistory(sessionID string) error {
	if _, err := s.db.Exec("DELETE FROM messages WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// LastSession returns the ID of the session most recently written to, or ""
// if the store is empty.
func (s *Store) LastSession() (string, error) {
	var id string
	err := s.db.QueryRow(`SELECT session_id FROM (
			SELECT session_id, saved_at AS ts FROM profiles
			UNION ALL
			SELECT session_id, created_at AS ts FROM messages
		) ORDER BY ts DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("finding last session: %w", err)
	}
	return id, nil
}
