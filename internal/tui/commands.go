package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/dex/internal/common"
	"github.com/Veraticus/dex/internal/store"
)

// runEffect turns a reducer effect into commands. Each fetch is its own
// command so its completion is delivered independently.
func (m Model) runEffect(eff store.Effect) tea.Cmd {
	load, ok := eff.(store.LoadEffect)
	if !ok {
		return nil
	}
	return tea.Batch(
		m.loadEntries(load.Token),
		m.loadCategories(load.Token),
	)
}

// loadEntries fetches entries for the given load.
func (m Model) loadEntries(token uint64) tea.Cmd {
	fetcher := m.config.Fetcher
	timeout := m.config.FetchTimeout
	return func() tea.Msg {
		if fetcher == nil {
			return actionMsg{store.EntriesLoaded{Token: token, Err: fmt.Errorf("%w: no catalog source", common.ErrMissingConfig)}}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		entries, err := fetcher.FetchEntries(ctx)
		if err != nil {
			common.LogError(err, "failed to fetch entries, showing samples", common.Fields{"token": token})
		}
		return actionMsg{store.EntriesLoaded{Token: token, Entries: entries, Err: err}}
	}
}

// loadCategories fetches categories for the given load.
func (m Model) loadCategories(token uint64) tea.Cmd {
	fetcher := m.config.Fetcher
	timeout := m.config.FetchTimeout
	return func() tea.Msg {
		if fetcher == nil {
			return actionMsg{store.CategoriesLoaded{Token: token, Err: fmt.Errorf("%w: no catalog source", common.ErrMissingConfig)}}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		categories, err := fetcher.FetchCategories(ctx)
		if err != nil {
			common.LogError(err, "failed to fetch categories", common.Fields{"token": token})
		}
		return actionMsg{store.CategoriesLoaded{Token: token, Categories: categories, Err: err}}
	}
}
