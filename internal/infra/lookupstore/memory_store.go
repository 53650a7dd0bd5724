package lookupstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/billboard-insights/internal/domain/billboard"
)

// MemoryStore keeps prediction lookup counters in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]int64
}

// NewMemoryStore constructs an empty counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

// IncrementLookup implements billboard.LookupStore.
func (s *MemoryStore) IncrementLookup(_ context.Context, code string) error {
	if code == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[code]++
	return nil
}

// TopLookups returns the most requested billboards, ties broken by code.
func (s *MemoryStore) TopLookups(_ context.Context, limit int) ([]billboard.Lookup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]billboard.Lookup, 0, len(s.counts))
	for code, count := range s.counts {
		items = append(items, billboard.Lookup{Code: code, Lookups: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Lookups == items[j].Lookups {
			return items[i].Code < items[j].Code
		}
		return items[i].Lookups > items[j].Lookups
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ billboard.LookupStore = (*MemoryStore)(nil)
