package store

import "github.com/Veraticus/dex/internal/model"

// Action is a request to change the store state. Actions are plain values
// and compare structurally.
type Action interface {
	action()
}

// Load starts the first load of the catalog.
type Load struct{}

// Refresh reloads the catalog. It supersedes any load still in flight.
type Refresh struct{}

// EntriesLoaded delivers the result of fetching entries for load Token.
type EntriesLoaded struct {
	Err     error
	Entries []model.Entry
	Token   uint64
}

// CategoriesLoaded delivers the result of fetching categories for load Token.
type CategoriesLoaded struct {
	Err        error
	Categories []model.Category
	Token      uint64
}

// SetSearch replaces the free-text query.
type SetSearch struct {
	Text string
}

// SetCapture replaces the capture filter.
type SetCapture struct {
	Filter model.CaptureFilter
}

// SetGeneration selects a generation, or clears it when Category is nil.
type SetGeneration struct {
	Category *model.Category
}

// ToggleForm adds (On) or removes a form kind from the form filter.
type ToggleForm struct {
	Kind model.FormKind
	On   bool
}

// SetCaught replaces the externally supplied caught set.
type SetCaught struct {
	Keys model.CaughtSet
}

// SetStyle changes the image style. Display only.
type SetStyle struct {
	Style model.ImageStyle
}

// SetShiny toggles shiny sprites. Display only.
type SetShiny struct {
	On bool
}

func (Load) action()             {}
func (Refresh) action()          {}
func (EntriesLoaded) action()    {}
func (CategoriesLoaded) action() {}
func (SetSearch) action()        {}
func (SetCapture) action()       {}
func (SetGeneration) action()    {}
func (ToggleForm) action()       {}
func (SetCaught) action()        {}
func (SetStyle) action()         {}
func (SetShiny) action()         {}

// Effect is work the reducer asks its host to perform.
type Effect interface {
	effect()
}

// LoadEffect asks the host to fetch entries and categories concurrently and
// dispatch one EntriesLoaded and one CategoriesLoaded carrying Token.
type LoadEffect struct {
	Token uint64
}

func (LoadEffect) effect() {}
