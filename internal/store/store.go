package store

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/dex/internal/model"
	"github.com/Veraticus/dex/internal/service"
)

// Option configures a Store.
type Option func(*Store)

// WithFallback replaces DefaultFallback.
func WithFallback(entries []model.Entry) Option {
	return func(s *Store) {
		s.fallback = entries
	}
}

// WithCaught seeds the caught set.
func WithCaught(keys ...string) Option {
	return func(s *Store) {
		s.state, _ = Reduce(s.state, SetCaught{Keys: model.NewCaughtSet(keys...)}, s.fallback)
	}
}

// WithListener registers fn to receive every new state. fn runs while the
// store is locked and must not call Dispatch.
func WithListener(fn func(State)) Option {
	return func(s *Store) {
		s.listeners = append(s.listeners, fn)
	}
}

// WithLogger sets the logger used for load failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store serializes actions through Reduce and performs the effects it
// returns.
type Store struct {
	fetcher   service.Fetcher
	logger    *slog.Logger
	listeners []func(State)
	fallback  []model.Entry
	state     State
	wg        sync.WaitGroup
	mu        sync.Mutex
}

// New creates a store that loads from fetcher.
func New(fetcher service.Fetcher, opts ...Option) *Store {
	s := &Store{
		fetcher:  fetcher,
		logger:   slog.Default(),
		fallback: DefaultFallback,
		state:    NewState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies a and starts any resulting effect. Load effects run in
// the background under ctx; use Wait to block until they settle.
func (s *Store) Dispatch(ctx context.Context, a Action) {
	s.mu.Lock()
	next, eff := Reduce(s.state, a, s.fallback)
	s.state = next
	for _, fn := range s.listeners {
		fn(next)
	}
	s.mu.Unlock()

	if load, ok := eff.(LoadEffect); ok {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.load(ctx, load.Token)
		}()
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Wait blocks until every started load has delivered its completions.
func (s *Store) Wait() {
	s.wg.Wait()
}

// load fetches entries and categories concurrently. Each fetch dispatches
// its own completion as soon as it returns, so a slow or failing fetch does
// not hold back the other.
func (s *Store) load(ctx context.Context, token uint64) {
	var g errgroup.Group

	g.Go(func() error {
		entries, err := s.fetcher.FetchEntries(ctx)
		if err != nil {
			s.logger.Warn("failed to fetch entries, using fallback",
				"token", token, "error", err)
		} else {
			s.logger.Debug("fetched entries", "token", token, "count", len(entries))
		}
		s.Dispatch(ctx, EntriesLoaded{Token: token, Entries: entries, Err: err})
		return nil
	})

	g.Go(func() error {
		categories, err := s.fetcher.FetchCategories(ctx)
		if err != nil {
			s.logger.Warn("failed to fetch categories", "token", token, "error", err)
		} else {
			s.logger.Debug("fetched categories", "token", token, "count", len(categories))
		}
		s.Dispatch(ctx, CategoriesLoaded{Token: token, Categories: categories, Err: err})
		return nil
	})

	_ = g.Wait()
}
