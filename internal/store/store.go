// Package store persists the app's records in a local SQLite database, one
// JSON blob per named key. Each domain (chat, admin, courses, notes) owns its
// keys and exposes accessors that never fail on read: absent or malformed
// data yields the documented default.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Storage keys. One JSON value per key, written wholesale; callers
// read-modify-write the full structure. Concurrent writers from a second
// process can lose an update (last writer wins).
const (
	keyMessages        = "bible_chat_messages"
	keyBlocked         = "bible_chat_blocked_users"
	keyAdded           = "bible_chat_added_users"
	keyCustomFilter    = "bible_chat_custom_filter"
	keyAdminConfig     = "bible_chat_admin_config"
	keyAdminPass       = "bible_chat_admin_pass"
	keyCoursePerms     = "bible_course_permissions"
	keyRegisteredUsers = "bible_app_registered_users"
	keyMaintenance     = "bible_app_maintenance_mode"
	keyAccessLogs      = "bible_app_access_logs"
	keyLastRead        = "bible_last_read"
	keyUserNotes       = "bible_user_notes"
	keyVersionPref     = "bible_version_pref"
	keyLionSound       = "bible_lion_sound_enabled"
	keyRememberDevice  = "bible_biometrics_enabled"
	keyCourseProgress  = "bible_courses_progress"
)

// Store wraps the SQLite key-value table.
type Store struct {
	db  *sql.DB
	mu  sync.Mutex
	log *zap.Logger

	// putHook lets tests inject write failures.
	putHook func(key string) error
}

// DefaultDBPath returns the default database path under the user config dir.
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "verbo", "verbo.sqlite")
}

// Open opens (creating if needed) the store at the given path.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		log.Debug("set busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Debug("set journal_mode", zap.Error(err))
	}

	s := &Store{db: db, log: log}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenMemory opens an in-memory store, for tests.
func OpenMemory() (*Store, error) {
	return Open(":memory:", zap.NewNop())
}

func (s *Store) initialize() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at INTEGER NOT NULL DEFAULT (unixepoch())
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// FactoryReset clears every key indiscriminately.
func (s *Store) FactoryReset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM records`); err != nil {
		return fmt.Errorf("factory reset: %w", err)
	}
	return nil
}

// getRaw returns the raw value and whether the key exists.
func (s *Store) getRaw(key string) (string, bool) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.Warn("read record", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return v, true
}

func (s *Store) putRaw(key, value string) error {
	if s.putHook != nil {
		if err := s.putHook(key); err != nil {
			return err
		}
	}
	_, err := s.db.Exec(`
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, unixepoch())
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("write record %s: %w", key, err)
	}
	return nil
}

func (s *Store) deleteKey(key string) {
	if _, err := s.db.Exec(`DELETE FROM records WHERE key = ?`, key); err != nil {
		s.log.Warn("delete record", zap.String("key", key), zap.Error(err))
	}
}

// getJSON unmarshals the key into out, reporting whether a valid value was
// present. Malformed data is treated as absent.
func (s *Store) getJSON(key string, out any) bool {
	raw, ok := s.getRaw(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.Warn("malformed record, using default", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	return s.putRaw(key, string(data))
}

// getBool reads a "true"/"false" flag key, defaulting to def.
func (s *Store) getBool(key string, def bool) bool {
	raw, ok := s.getRaw(key)
	if !ok {
		return def
	}
	return raw == "true"
}

func (s *Store) putBool(key string, v bool) error {
	if v {
		return s.putRaw(key, "true")
	}
	return s.putRaw(key, "false")
}
