// Package tui implements the interactive catalog browser. Every state change
// goes through store.Reduce, so the browser and the non-interactive list
// command share one set of rules.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/dex/internal/model"
	"github.com/Veraticus/dex/internal/store"
	"github.com/Veraticus/dex/internal/tui/components"
	"github.com/Veraticus/dex/internal/tui/themes"
)

// Mode is the screen currently shown.
type Mode int

// Modes.
const (
	ModeList Mode = iota
	ModeSearch
	ModeDetail
	ModeHelp
)

// Model holds the main TUI state.
type Model struct {
	theme       themes.Theme
	initial     store.Effect
	config      Config
	keymap      KeyMap
	detail      components.EntryDetailModel
	help        help.Model
	list        components.EntryListModel
	state       store.State
	searchInput textinput.Model
	spinner     spinner.Model
	mode        Mode
	width       int
	height      int
	quitting    bool
}

// newModel creates a new model with the given configuration. The first load
// is already reduced; Init starts its fetches.
func newModel(cfg Config) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "name, type, category or number"
	searchInput.CharLimit = 50
	searchInput.Prompt = "/ "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(cfg.Theme.Primary)

	m := Model{
		theme:       cfg.Theme,
		config:      cfg,
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		list:        components.NewEntryList(cfg.Theme),
		state:       store.NewState(),
		searchInput: searchInput,
		spinner:     sp,
		mode:        ModeList,
		width:       cfg.Width,
		height:      cfg.Height,
	}

	for _, a := range []store.Action{
		store.SetCaught{Keys: cfg.Caught},
		store.SetStyle{Style: cfg.Style},
		store.SetShiny{On: cfg.Shiny},
	} {
		m.state, _ = store.Reduce(m.state, a, cfg.Fallback)
	}
	m.state, m.initial = store.Reduce(m.state, store.Load{}, cfg.Fallback)

	m.handleResize()
	m.syncList()
	return m
}

// State returns the current store state.
func (m Model) State() store.State {
	return m.state
}

// Mode returns the current screen.
func (m Model) Mode() Mode {
	return m.mode
}

// Init starts the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runEffect(m.initial), m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case actionMsg:
		return m, m.dispatch(msg.action)

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case components.EntrySelectedMsg:
		m.detail = components.NewEntryDetail(msg.Entry, m.state.Criteria.Caught.Has(msg.Entry.CaptureKey()), m.theme)
		m.detail.SetDisplay(m.state.Style, m.state.Shiny)
		m.detail.Resize(m.width, m.height-4)
		m.mode = ModeDetail
		return m, nil

	case components.BackToListMsg:
		m.mode = ModeList
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// dispatch reduces a, refreshes the list and starts any effect.
func (m *Model) dispatch(a store.Action) tea.Cmd {
	var eff store.Effect
	m.state, eff = store.Reduce(m.state, a, m.config.Fallback)
	m.syncList()
	m.detail.SetDisplay(m.state.Style, m.state.Shiny)

	cmd := m.runEffect(eff)
	if _, loading := eff.(store.LoadEffect); loading {
		cmd = tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

func (m *Model) syncList() {
	m.list.SetEntries(m.state.Visible, m.state.Criteria.Caught)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(msg)

	case ModeHelp:
		if key.Matches(msg, m.keymap.Help, m.keymap.Back, m.keymap.Quit) {
			m.mode = ModeList
		}
		return m, nil

	case ModeDetail:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.ToggleStyle):
			return m, m.dispatch(store.SetStyle{Style: otherStyle(m.state.Style)})
		case key.Matches(msg, m.keymap.ToggleShiny):
			return m, m.dispatch(store.SetShiny{On: !m.state.Shiny})
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	forms := m.state.Criteria.Forms

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keymap.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.state.Criteria.Search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keymap.ToggleMega):
		return m, m.dispatch(store.ToggleForm{Kind: model.FormMega, On: !forms.Has(model.FormMega)})

	case key.Matches(msg, m.keymap.ToggleGmax):
		return m, m.dispatch(store.ToggleForm{Kind: model.FormGmax, On: !forms.Has(model.FormGmax)})

	case key.Matches(msg, m.keymap.ToggleOther):
		return m, m.dispatch(store.ToggleForm{Kind: model.FormOther, On: !forms.Has(model.FormOther)})

	case key.Matches(msg, m.keymap.CycleCapture):
		return m, m.dispatch(store.SetCapture{Filter: m.state.Criteria.Capture.Next()})

	case key.Matches(msg, m.keymap.NextGeneration):
		return m, m.dispatch(store.SetGeneration{Category: m.stepGeneration(1)})

	case key.Matches(msg, m.keymap.PrevGeneration):
		return m, m.dispatch(store.SetGeneration{Category: m.stepGeneration(-1)})

	case key.Matches(msg, m.keymap.ClearGeneration):
		return m, m.dispatch(store.SetGeneration{})

	case key.Matches(msg, m.keymap.ToggleStyle):
		return m, m.dispatch(store.SetStyle{Style: otherStyle(m.state.Style)})

	case key.Matches(msg, m.keymap.ToggleShiny):
		return m, m.dispatch(store.SetShiny{On: !m.state.Shiny})

	case key.Matches(msg, m.keymap.Refresh):
		return m, m.dispatch(store.Refresh{})
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = ModeList
		m.searchInput.Blur()
		return m, nil

	case tea.KeyEsc:
		m.mode = ModeList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, m.dispatch(store.SetSearch{Text: ""})
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if text := m.searchInput.Value(); text != m.state.Criteria.Search {
		cmd = tea.Batch(cmd, m.dispatch(store.SetSearch{Text: text}))
	}
	return m, cmd
}

// stepGeneration moves the generation selection by delta. Stepping past
// either end returns to "all generations" (nil).
func (m Model) stepGeneration(delta int) *model.Category {
	cats := m.state.Categories
	if len(cats) == 0 {
		return nil
	}

	current := -1
	if g := m.state.Criteria.Generation; g != nil {
		for i, c := range cats {
			if c.Key() == g.Key() {
				current = i
				break
			}
		}
	}

	next := current + delta
	switch {
	case current == -1 && delta < 0:
		next = len(cats) - 1
	case next < 0 || next >= len(cats):
		return nil
	}

	c := cats[next]
	return &c
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	// Header (3 lines) and help footer (1 line).
	bodyHeight := max(3, m.height-4)
	m.list.Resize(m.width, bodyHeight)
	m.detail.Resize(m.width, bodyHeight)
	m.help.Width = m.width
	m.searchInput.Width = max(10, m.width-6)
}

func otherStyle(s model.ImageStyle) model.ImageStyle {
	if s == model.StyleSprite {
		return model.StyleOfficial
	}
	return model.StyleSprite
}
