package lookupstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/billboard-insights/internal/domain/billboard"
)

func TestMemoryStoreTopLookups(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, code := range []string{"B003", "B001", "B003", "B002", "B001", "B003"} {
		require.NoError(t, store.IncrementLookup(ctx, code))
	}
	require.NoError(t, store.IncrementLookup(ctx, ""))

	top, err := store.TopLookups(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []billboard.Lookup{
		{Code: "B003", Lookups: 3},
		{Code: "B001", Lookups: 2},
	}, top)

	all, err := store.TopLookups(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "B002", all[2].Code)
}

func TestMemoryStoreTiesSortByCode(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.IncrementLookup(ctx, "B010"))
	require.NoError(t, store.IncrementLookup(ctx, "B002"))

	top, err := store.TopLookups(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, []billboard.Lookup{{Code: "B002", Lookups: 1}, {Code: "B010", Lookups: 1}}, top)
}

func TestMemoryStoreConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.IncrementLookup(ctx, "B001")
		}()
	}
	wg.Wait()

	top, err := store.TopLookups(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(50), top[0].Lookups)
}
