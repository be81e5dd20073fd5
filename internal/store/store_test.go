package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/capscan-go/pkg/capscan/models"
)

func TestMemoryGetPut(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("missing")
	require.False(t, ok)

	wb := &models.Workbook{Filename: "a.xlsx", ContentHash: "h1"}
	m.Put("h1", wb)

	got, ok := m.Get("h1")
	require.True(t, ok)
	assert.Same(t, wb, got)

	replacement := &models.Workbook{Filename: "b.xlsx", ContentHash: "h1"}
	m.Put("h1", replacement)
	got, ok = m.Get("h1")
	require.True(t, ok)
	assert.Same(t, replacement, got)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Put("shared", &models.Workbook{Filename: "x.xlsx"})
				m.Get("shared")
			}
		}()
	}
	wg.Wait()

	_, ok := m.Get("shared")
	require.True(t, ok)
}
