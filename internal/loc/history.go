package loc

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Run is one recorded line-count run.
type Run struct {
	ID         string
	Root       string
	FileCount  int
	TotalLines int
	CreatedAt  time.Time
}

// HistoryStore persists loc runs to a sqlite database so counts can be
// compared over time.
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore opens (creating if needed) the history database at dbPath.
func NewHistoryStore(dbPath string) (*HistoryStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps :memory: databases coherent and avoids
	// writer contention on the file-backed store.
	db.SetMaxOpenConns(1)

	// busy_timeout must come first so later statements wait on locks.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configure database: %w", err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &HistoryStore{db: db}, nil
}

// Record saves a summary as a new run and returns its generated ID.
func (s *HistoryStore) Record(ctx context.Context, root string, summary *Summary) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO loc_runs (id, root, file_count, total_lines, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, root, summary.FileCount, summary.TotalLines, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, root, file_count, total_lines, created_at FROM loc_runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Root, &r.FileCount, &r.TotalLines, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Close releases the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
