package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a SQLite database holding user records, the callback
// interaction log and the media file_id cache.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and runs pending
// migrations. Pass ":memory:" for an in-memory database (used by tests).
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate reads embedded SQL migration files and applies any that haven't been run yet.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}

	return nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parsing migration version from %q: %w", filename, err)
	}
	return version, nil
}

// AppliedMigrations returns the list of applied migration versions in ascending order.
func (s *Store) AppliedMigrations() ([]int, error) {
	rows, err := s.db.Query("SELECT version FROM schema_version ORDER BY version ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// Timestamps are stored as integer Unix milliseconds.

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// --- Users ---

// TouchStart creates the user row on the first /start and refreshes
// username and last_start_at on every subsequent one. last_start_at
// never moves backwards.
func (s *Store) TouchStart(chatID int64, username string, now time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO users (chat_id, username, first_start_at, last_start_at, is_blocked)
		VALUES (?, ?, ?, ?, 0)
		ON CONFLICT(chat_id) DO UPDATE SET
			username = excluded.username,
			last_start_at = MAX(users.last_start_at, excluded.last_start_at)`,
		chatID, username, toMillis(now), toMillis(now),
	)
	return err
}

// User returns the record for chatID, or ErrNotFound.
func (s *Store) User(chatID int64) (User, error) {
	var u User
	var first, last int64
	var username sql.NullString
	var blocked int
	err := s.db.QueryRow(`
		SELECT chat_id, username, first_start_at, last_start_at, is_blocked
		FROM users WHERE chat_id = ?`, chatID,
	).Scan(&u.ChatID, &username, &first, &last, &blocked)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	u.Username = username.String
	u.FirstStartAt = fromMillis(first)
	u.LastStartAt = fromMillis(last)
	u.Blocked = blocked != 0
	return u, nil
}

// LastStartAt returns the time of the user's most recent /start, or ErrNotFound.
func (s *Store) LastStartAt(chatID int64) (time.Time, error) {
	var last int64
	err := s.db.QueryRow("SELECT last_start_at FROM users WHERE chat_id = ?", chatID).Scan(&last)
	if err == sql.ErrNoRows {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return fromMillis(last), nil
}

// --- Callback log ---

// LogCallback appends one interaction to the callback log.
func (s *Store) LogCallback(chatID int64, action string, at time.Time) error {
	_, err := s.db.Exec(
		"INSERT INTO callback_log (chat_id, callback_data, created_at) VALUES (?, ?, ?)",
		chatID, action, toMillis(at),
	)
	return err
}

// LastCallbackAt returns the most recent logged time for the exact
// (chat, action) pair, or ErrNotFound when the pair was never logged.
func (s *Store) LastCallbackAt(chatID int64, action string) (time.Time, error) {
	var at int64
	err := s.db.QueryRow(`
		SELECT created_at FROM callback_log
		WHERE chat_id = ? AND callback_data = ?
		ORDER BY created_at DESC
		LIMIT 1`, chatID, action,
	).Scan(&at)
	if err == sql.ErrNoRows {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return fromMillis(at), nil
}

// TrimCallbackLog deletes log rows created before olderThan and reports
// how many were removed.
func (s *Store) TrimCallbackLog(olderThan time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM callback_log WHERE created_at < ?", toMillis(olderThan))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// --- Media cache ---

// MediaFileID returns the cached Telegram file_id for key, or ErrNotFound.
func (s *Store) MediaFileID(key string) (string, error) {
	var fileID string
	err := s.db.QueryRow("SELECT file_id FROM media_cache WHERE media_key = ?", key).Scan(&fileID)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return fileID, err
}

// SaveMediaFileID stores fileID under key, replacing any previous value.
func (s *Store) SaveMediaFileID(key, fileID string) error {
	_, err := s.db.Exec(`
		INSERT INTO media_cache (media_key, file_id) VALUES (?, ?)
		ON CONFLICT(media_key) DO UPDATE SET file_id = excluded.file_id`,
		key, fileID,
	)
	return err
}
