// Package store owns the browsing state: the full catalog, the derived
// visible list and the filter criteria.
//
// Reduce is the only place state changes. It is pure, and it recomputes the
// visible list itself after every change that can affect membership, so no
// caller ever has to remember to refresh it. Store wraps Reduce with a mutex
// and runs load effects; the TUI calls Reduce from its own event loop.
package store

import (
	"github.com/Veraticus/dex/internal/filter"
	"github.com/Veraticus/dex/internal/model"
)

// State is the aggregate browsing state.
type State struct {
	Criteria   model.Criteria
	Style      model.ImageStyle
	All        []model.Entry
	Visible    []model.Entry
	Categories []model.Category
	LoadToken  uint64
	Loading    bool
	Shiny      bool
}

// NewState returns the initial state.
func NewState() State {
	return State{
		Criteria: model.Criteria{
			Forms:   model.FormSet{},
			Caught:  model.CaughtSet{},
			Capture: model.CaptureAll,
		},
		Style:      model.StyleOfficial,
		All:        []model.Entry{},
		Visible:    []model.Entry{},
		Categories: []model.Category{},
	}
}

// Reduce applies a to s and returns the next state plus an optional effect.
// Completions from superseded loads are ignored. fallback replaces the
// catalog when fetching entries fails.
func Reduce(s State, a Action, fallback []model.Entry) (State, Effect) {
	switch a := a.(type) {
	case Load, Refresh:
		s.LoadToken++
		s.Loading = true
		return s, LoadEffect{Token: s.LoadToken}

	case EntriesLoaded:
		if a.Token != s.LoadToken {
			return s, nil
		}
		s.Loading = false
		if a.Err != nil {
			s.All = cloneEntries(fallback)
		} else {
			s.All = cloneEntries(a.Entries)
		}
		return recompute(s), nil

	case CategoriesLoaded:
		if a.Token != s.LoadToken {
			return s, nil
		}
		if a.Err != nil || a.Categories == nil {
			s.Categories = []model.Category{}
		} else {
			s.Categories = append([]model.Category(nil), a.Categories...)
		}
		return s, nil

	case SetSearch:
		s.Criteria.Search = a.Text
		return recompute(s), nil

	case SetCapture:
		s.Criteria.Capture = a.Filter
		return recompute(s), nil

	case SetGeneration:
		if a.Category == nil {
			s.Criteria.Generation = nil
		} else {
			c := *a.Category
			s.Criteria.Generation = &c
		}
		return recompute(s), nil

	case ToggleForm:
		forms := s.Criteria.Forms.Clone()
		if a.On {
			forms[a.Kind] = struct{}{}
		} else {
			delete(forms, a.Kind)
		}
		s.Criteria.Forms = forms
		return recompute(s), nil

	case SetCaught:
		caught := make(model.CaughtSet, len(a.Keys))
		for k := range a.Keys {
			caught[k] = struct{}{}
		}
		s.Criteria.Caught = caught
		return recompute(s), nil

	case SetStyle:
		s.Style = a.Style
		return s, nil

	case SetShiny:
		s.Shiny = a.On
		return s, nil
	}

	return s, nil
}

func recompute(s State) State {
	s.Visible = filter.Apply(s.All, s.Criteria)
	return s
}

func cloneEntries(entries []model.Entry) []model.Entry {
	if entries == nil {
		return []model.Entry{}
	}
	return append([]model.Entry(nil), entries...)
}
