// Package mysql persists search snapshots in MySQL or MariaDB.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KananVyas/flyGPT/internal/domain"
	"github.com/go-sql-driver/mysql"
)

const driverName = "mysql"

// Connection pool settings.
const (
	maxOpenConns    = 25
	maxIdleConns    = 25
	connMaxLifetime = 5 * time.Minute
)

const schema = `CREATE TABLE IF NOT EXISTS search_snapshots (
	search_id  VARCHAR(64)  NOT NULL PRIMARY KEY,
	payload    JSON         NOT NULL,
	created_at DATETIME(3)  NOT NULL
)`

const upsertSnapshot = `INSERT INTO search_snapshots (search_id, payload, created_at)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE payload = VALUES(payload), created_at = VALUES(created_at)`

const selectSnapshot = `SELECT payload, created_at FROM search_snapshots WHERE search_id = ?`

// Store is a domain.SnapshotStore backed by a single table. The aggregate
// and selection are stored together as one JSON document.
type Store struct {
	db *sql.DB
}

// NormalizeDSN parses dsn and forces the options the store relies on:
// parseTime for DATETIME scanning and UTC as the session location.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// Open connects to dsn, verifies the connection and creates the table if needed.
func Open(ctx context.Context, dsn string) (*Store, error) {
	normalized, err := NormalizeDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, normalized)
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := New(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection pool. The caller owns db.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the snapshot table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create snapshot table: %w", err)
	}
	return nil
}

// Save implements domain.SnapshotStore.
func (s *Store) Save(ctx context.Context, snap domain.Snapshot) error {
	if snap.SearchID == "" {
		return fmt.Errorf("%w: search_id is required", domain.ErrInvalidRequest)
	}

	payload, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, upsertSnapshot, snap.SearchID, payload, snap.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("save snapshot %s: %w", snap.SearchID, err)
	}
	return nil
}

// Get implements domain.SnapshotStore.
func (s *Store) Get(ctx context.Context, searchID string) (*domain.Snapshot, error) {
	var (
		payload   []byte
		createdAt time.Time
	)
	err := s.db.QueryRowContext(ctx, selectSnapshot, searchID).Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSnapshotNotFound, searchID)
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", searchID, err)
	}

	snap, err := decodeSnapshot(payload)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", searchID, err)
	}
	snap.SearchID = searchID
	snap.CreatedAt = createdAt
	return snap, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func encodeSnapshot(snap domain.Snapshot) ([]byte, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot %s: %w", snap.SearchID, err)
	}
	return payload, nil
}

func decodeSnapshot(payload []byte) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

var _ domain.SnapshotStore = (*Store)(nil)
