// Package store holds processed workbooks keyed by content fingerprint.
package store

import (
	"sync"

	"github.com/knakagawa/capscan-go/pkg/capscan/models"
)

// Store is a key-value store of extraction results keyed by content
// hash. It is injected into the server so the engine stays free of
// process-wide state.
type Store interface {
	// Get returns the workbook stored under hash, if any.
	Get(hash string) (*models.Workbook, bool)
	// Put stores a workbook under hash, replacing any previous entry.
	Put(hash string, wb *models.Workbook)
}

// Memory is an in-process Store safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	files map[string]*models.Workbook
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{files: make(map[string]*models.Workbook)}
}

// Get implements Store.
func (m *Memory) Get(hash string) (*models.Workbook, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	wb, ok := m.files[hash]
	return wb, ok
}

// Put implements Store.
func (m *Memory) Put(hash string, wb *models.Workbook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[hash] = wb
}
