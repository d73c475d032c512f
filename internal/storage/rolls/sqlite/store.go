// Package sqlite provides a SQLite-backed roll audit store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/rankaisija/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/rankaisija/internal/storage/rolls"
	"github.com/louisbranch/rankaisija/internal/storage/rolls/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists roll records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite roll store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendRoll inserts one roll record.
func (s *Store) AppendRoll(ctx context.Context, record rolls.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	recordID := strings.TrimSpace(record.ID)
	author := strings.TrimSpace(record.Author)
	notation := strings.TrimSpace(record.Notation)
	if recordID == "" {
		return fmt.Errorf("record id is required")
	}
	if author == "" {
		return fmt.Errorf("author is required")
	}
	if notation == "" {
		return fmt.Errorf("notation is required")
	}
	if record.Attempts < 1 {
		return fmt.Errorf("attempts must be at least one")
	}

	encodedRolls, err := json.Marshal(record.Rolls)
	if err != nil {
		return fmt.Errorf("encode rolls: %w", err)
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO rolls (id, author, notation, rolls, total, attempts, succeeded, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		recordID,
		author,
		notation,
		string(encodedRolls),
		record.Total,
		record.Attempts,
		boolToInt(record.Succeeded),
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("insert roll: %w", err)
	}
	return nil
}

// AuthorStats aggregates the recorded rolls for one author. An author with
// no rolls yields zero-valued stats, not an error.
func (s *Store) AuthorStats(ctx context.Context, author string) (rolls.Stats, error) {
	if err := ctx.Err(); err != nil {
		return rolls.Stats{}, err
	}
	if s == nil || s.sqlDB == nil {
		return rolls.Stats{}, fmt.Errorf("storage is not configured")
	}
	author = strings.TrimSpace(author)
	if author == "" {
		return rolls.Stats{}, fmt.Errorf("author is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT COUNT(*), COALESCE(MAX(total), 0), COALESCE(MAX(created_at), 0)
FROM rolls WHERE author = ?`, author)

	var count, bestTotal int
	var lastMillis int64
	if err := row.Scan(&count, &bestTotal, &lastMillis); err != nil {
		return rolls.Stats{}, fmt.Errorf("scan author stats: %w", err)
	}

	stats := rolls.Stats{
		Author:    author,
		RollCount: count,
		BestTotal: bestTotal,
	}
	if lastMillis > 0 {
		stats.LastRoll = fromMillis(lastMillis)
	}
	return stats, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
