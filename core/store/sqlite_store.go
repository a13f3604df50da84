package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/PhilCANDIDO/ACM-repo/core/models"
	_ "modernc.org/sqlite"
)

const auditSchema = `
CREATE TABLE IF NOT EXISTS audit_records (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	kind       TEXT    NOT NULL,
	node_id    INTEGER NOT NULL,
	detail     TEXT    NOT NULL,
	created_at TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_kind ON audit_records(kind);
CREATE INDEX IF NOT EXISTS idx_audit_created_at ON audit_records(created_at);
`

// SQLiteStore implements AuditStore on a local SQLite database. The
// audit trail must survive on the install host itself; it cannot live
// in the cluster being provisioned.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?_busy_timeout=10000")
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		log.Printf("[AuditStore] Failed to enable WAL mode: %v", err)
	}

	if _, err := db.Exec(auditSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize audit schema: %w", err)
	}

	log.Printf("[AuditStore] Audit database ready at %s", dbPath)

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Append(ctx context.Context, record *models.AuditRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid audit record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record.CreatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO audit_records (kind, node_id, detail, created_at) VALUES (?, ?, ?, ?)",
		record.Kind, record.NodeID, record.Detail, record.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read audit record id: %w", err)
	}
	record.ID = id

	log.Printf("[AuditStore] Recorded %s for node %d (record %d)", record.Kind, record.NodeID, record.ID)

	return nil
}

func (s *SQLiteStore) List(ctx context.Context, limit int) ([]*models.AuditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, kind, node_id, detail, created_at FROM audit_records ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.AuditRecord, 0, limit)
	for rows.Next() {
		var record models.AuditRecord
		var createdAt string

		if err := rows.Scan(&record.ID, &record.Kind, &record.NodeID, &record.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}

		record.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse audit timestamp %q: %w", createdAt, err)
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
