package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// SQL is a Store backed by a single kv table. It works over either the
// sqlite driver (local file, the default) or the pgx stdlib driver.
type SQL struct {
	DB *sql.DB
}

// OpenSQLite opens (and if needed creates) a file-backed store at path.
func OpenSQLite(path string) (*SQL, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite store: %w", err)
	}

	return newSQL(db)
}

// OpenPostgres connects to the database at url.
func OpenPostgres(url string) (*SQL, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("error closing database after ping failure: %w", closeErr)
		}
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return newSQL(db)
}

func newSQL(db *sql.DB) (*SQL, error) {
	_, err := db.Exec("CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)")
	if err != nil {
		return nil, fmt.Errorf("error creating kv table: %w", err)
	}

	return &SQL{DB: db}, nil
}

func (s *SQL) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.DB.QueryRow("SELECT value FROM kv WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error fetching key %q: %w", key, err)
	}

	return []byte(value), true, nil
}

func (s *SQL) Set(key string, value []byte) error {
	_, err := s.DB.Exec(
		"INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = $2",
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("error storing key %q: %w", key, err)
	}

	return nil
}

func (s *SQL) Close() error {
	return s.DB.Close()
}
