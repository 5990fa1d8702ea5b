// Package store persists the profile, session history, and used-prompt set.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"clarity/internal/domain"
)

// The store is a key-value layout: one row per logical namespace, each
// holding a JSON payload. Records are replaced wholesale, never patched.
const (
	nsProfile     = "profile"
	nsSessions    = "sessions"
	nsUsedPrompts = "used_prompts"
)

// SQLiteStore implements ports.StateStore on a local SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	log *zap.Logger
}

// NewSQLite opens (creating if needed) the backing database and runs the
// one-time profile migration.
func NewSQLite(dbPath string, log *zap.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dsn := dbPath + "?_journal=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLiteStore{db: db, log: log}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	if err := s.migrateProfile(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS app_state (
		ns TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// migrateProfile removes the legacy apiKey field from a previously persisted
// profile record, keeping every other field intact.
func (s *SQLiteStore) migrateProfile() error {
	raw, ok, err := s.load(nsProfile)
	if err != nil || !ok {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// Corrupt profile payloads are handled on read; nothing to migrate.
		return nil
	}
	if _, present := fields["apiKey"]; !present {
		return nil
	}

	delete(fields, "apiKey")
	migrated, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("rewrite migrated profile: %w", err)
	}
	s.log.Info("removed legacy apiKey field from stored profile")
	return s.save(nsProfile, migrated)
}

// Profile returns the stored profile, or nil when absent or unparseable.
func (s *SQLiteStore) Profile() (*domain.Profile, error) {
	raw, ok, err := s.load(nsProfile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		s.log.Warn("discarding unparseable profile record", zap.Error(err))
		return nil, nil
	}
	return &profile, nil
}

// SaveProfile replaces the stored profile wholesale.
func (s *SQLiteStore) SaveProfile(profile domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.save(nsProfile, raw)
}

// ClearProfile removes the stored profile.
func (s *SQLiteStore) ClearProfile() error {
	return s.delete(nsProfile)
}

// Sessions returns all persisted sessions, most recent first.
func (s *SQLiteStore) Sessions() ([]domain.Session, error) {
	raw, ok, err := s.load(nsSessions)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Session{}, nil
	}

	var sessions []domain.Session
	if err := json.Unmarshal(raw, &sessions); err != nil {
		s.log.Warn("discarding unparseable session history", zap.Error(err))
		return []domain.Session{}, nil
	}
	return sessions, nil
}

// SaveSession upserts by identifier: an existing session is replaced in
// place, a new one is inserted at the front.
func (s *SQLiteStore) SaveSession(session domain.Session) error {
	sessions, err := s.Sessions()
	if err != nil {
		return err
	}

	replaced := false
	for i := range sessions {
		if sessions[i].ID == session.ID {
			sessions[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		sessions = append([]domain.Session{session}, sessions...)
	}

	raw, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}
	return s.save(nsSessions, raw)
}

// UsedPromptIDs returns the set of prompt ids already presented.
func (s *SQLiteStore) UsedPromptIDs() ([]string, error) {
	raw, ok, err := s.load(nsUsedPrompts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.log.Warn("discarding unparseable used-prompt record", zap.Error(err))
		return []string{}, nil
	}
	return ids, nil
}

// MarkPromptUsed adds an id to the used set; marking twice is a no-op.
func (s *SQLiteStore) MarkPromptUsed(id string) error {
	ids, err := s.UsedPromptIDs()
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	ids = append(ids, id)

	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode used prompts: %w", err)
	}
	return s.save(nsUsedPrompts, raw)
}

// Reset clears the profile, session history, and used-prompt set together.
func (s *SQLiteStore) Reset() error {
	for _, ns := range []string{nsProfile, nsSessions, nsUsedPrompts} {
		if err := s.delete(ns); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) load(ns string) ([]byte, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM app_state WHERE ns = ?`, ns).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", ns, err)
	}
	return []byte(payload), true, nil
}

func (s *SQLiteStore) save(ns string, payload []byte) error {
	query := `
	INSERT INTO app_state (ns, payload, updated_at)
	VALUES (?, ?, unixepoch())
	ON CONFLICT(ns) DO UPDATE SET
		payload = excluded.payload,
		updated_at = excluded.updated_at`
	if _, err := s.db.Exec(query, ns, string(payload)); err != nil {
		return fmt.Errorf("save %s: %w", ns, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ns string) error {
	if _, err := s.db.Exec(`DELETE FROM app_state WHERE ns = ?`, ns); err != nil {
		return fmt.Errorf("clear %s: %w", ns, err)
	}
	return nil
}
