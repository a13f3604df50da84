// Package store persists the compliance audit trail: one record per
// resolve, render, preflight run, and diagnostics pass, kept locally
// on the install host.
package store

import (
	"context"
	"sync"

	"github.com/PhilCANDIDO/ACM-repo/core/models"
)

type AuditStore interface {
	Append(ctx context.Context, record *models.AuditRecord) error

	// List returns the most recent records first, at most limit.
	List(ctx context.Context, limit int) ([]*models.AuditRecord, error)

	Close() error
}

// MockAuditStore implements AuditStore in memory for testing
type MockAuditStore struct {
	Records     []*models.AuditRecord
	AppendError error
	ListError   error
	AppendCalls int
	ListCalls   int

	mu sync.Mutex
}

func NewMockAuditStore() *MockAuditStore {
	return &MockAuditStore{}
}

func (m *MockAuditStore) Append(ctx context.Context, record *models.AuditRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AppendCalls++
	if m.AppendError != nil {
		return m.AppendError
	}
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = int64(len(m.Records) + 1)
	m.Records = append(m.Records, record)
	return nil
}

func (m *MockAuditStore) List(ctx context.Context, limit int) ([]*models.AuditRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ListCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}

	records := make([]*models.AuditRecord, 0, limit)
	for i := len(m.Records) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, m.Records[i])
	}
	return records, nil
}

func (m *MockAuditStore) Close() error {
	return nil
}
