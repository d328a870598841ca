package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dex/internal/model"
)

type fakeFetcher struct {
	entriesErr    error
	categoriesErr error
	entriesGate   chan struct{}
	entries       []model.Entry
	categories    []model.Category
}

func (f *fakeFetcher) FetchEntries(ctx context.Context) ([]model.Entry, error) {
	if f.entriesGate != nil {
		select {
		case <-f.entriesGate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.entries, f.entriesErr
}

func (f *fakeFetcher) FetchCategories(_ context.Context) ([]model.Category, error) {
	return f.categories, f.categoriesErr
}

func TestStore_Load(t *testing.T) {
	f := &fakeFetcher{
		entries:    catalog(),
		categories: []model.Category{{Generation: "Generation I", Range: "#001 - #151"}},
	}
	s := New(f)

	s.Dispatch(context.Background(), Load{})
	s.Wait()

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Len(t, snap.Visible, 5)
	assert.Len(t, snap.Categories, 1)
}

func TestStore_FallbackOnFailure(t *testing.T) {
	f := &fakeFetcher{entriesErr: errors.New("connection refused")}
	s := New(f)

	s.Dispatch(context.Background(), Load{})
	s.Wait()

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, []string{"Bulbasaur", "Charmander", "Squirtle"}, visibleNames(snap))
}

func TestStore_CategoriesDoNotWaitForEntries(t *testing.T) {
	gate := make(chan struct{})
	f := &fakeFetcher{
		entriesGate: gate,
		entries:     catalog(),
		categories:  []model.Category{{Generation: "Generation I"}},
	}
	s := New(f)

	s.Dispatch(context.Background(), Load{})

	require.Eventually(t, func() bool {
		return len(s.Snapshot().Categories) == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, s.Snapshot().Loading)

	close(gate)
	s.Wait()
	assert.False(t, s.Snapshot().Loading)
}

func TestStore_EntriesArriveDespiteCategoryFailure(t *testing.T) {
	f := &fakeFetcher{entries: catalog(), categoriesErr: errors.New("404")}
	s := New(f)

	s.Dispatch(context.Background(), Load{})
	s.Wait()

	snap := s.Snapshot()
	assert.Len(t, snap.All, 5)
	assert.Empty(t, snap.Categories)
}

func TestStore_Options(t *testing.T) {
	var mu sync.Mutex
	var seen []State

	f := &fakeFetcher{entriesErr: errors.New("down")}
	s := New(f,
		WithFallback([]model.Entry{{ID: 25, Name: "Pikachu"}, {ID: 26, Name: "Raichu"}}),
		WithCaught("25-0"),
		WithListener(func(st State) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, st)
		}),
	)

	ctx := context.Background()
	s.Dispatch(ctx, Load{})
	s.Wait()
	s.Dispatch(ctx, SetCapture{Filter: model.CaptureCaught})

	assert.Equal(t, []string{"Pikachu"}, visibleNames(s.Snapshot()))

	mu.Lock()
	defer mu.Unlock()
	// Load, two completions, capture.
	assert.Len(t, seen, 4)
	assert.True(t, seen[0].Loading)
}

func TestStore_RefreshSupersedesLoad(t *testing.T) {
	gate := make(chan struct{})
	f := &fakeFetcher{entriesGate: gate, entries: catalog()}
	s := New(f)
	ctx := context.Background()

	s.Dispatch(ctx, Load{})
	s.Dispatch(ctx, Refresh{})
	assert.Equal(t, uint64(2), s.Snapshot().LoadToken)

	close(gate)
	s.Wait()

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Len(t, snap.All, 5)
}
