package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/dex/internal/model"
	"github.com/Veraticus/dex/internal/tui/themes"
)

// EntryListModel shows the visible entries as a table.
type EntryListModel struct {
	theme   themes.Theme
	caught  model.CaughtSet
	entries []model.Entry
	table   table.Model
	width   int
	height  int
}

// NewEntryList creates an empty entry list.
func NewEntryList(theme themes.Theme) EntryListModel {
	t := table.New(
		table.WithColumns(columnsFor(80)),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return EntryListModel{
		theme:  theme,
		caught: model.CaughtSet{},
		table:  t,
		width:  80,
		height: 24,
	}
}

// SetEntries replaces the rows. The cursor is kept when still in range.
func (m *EntryListModel) SetEntries(entries []model.Entry, caught model.CaughtSet) {
	m.entries = entries
	m.caught = caught
	m.table.SetRows(m.buildRows())

	if len(entries) == 0 {
		return
	}
	switch c := m.table.Cursor(); {
	case c < 0:
		m.table.SetCursor(0)
	case c >= len(entries):
		m.table.SetCursor(len(entries) - 1)
	}
}

// Len returns the number of rows.
func (m EntryListModel) Len() int {
	return len(m.entries)
}

// Cursor returns the highlighted row.
func (m EntryListModel) Cursor() int {
	return m.table.Cursor()
}

// Selected returns the highlighted entry.
func (m EntryListModel) Selected() (model.Entry, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.entries) {
		return model.Entry{}, false
	}
	return m.entries[c], true
}

// Update handles navigation keys and selection.
func (m EntryListModel) Update(msg tea.Msg) (EntryListModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		if e, ok := m.Selected(); ok {
			idx := m.table.Cursor()
			return m, func() tea.Msg {
				return EntrySelectedMsg{Entry: e, Index: idx}
			}
		}
		return m, nil
	}

	// The table moves its cursor to -1 when navigating zero rows.
	if len(m.entries) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table, or a placeholder when nothing matches.
func (m EntryListModel) View() string {
	if len(m.entries) == 0 {
		return lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Width(m.width).
			Align(lipgloss.Center).
			Render("No entries match the current filters")
	}
	return m.table.View()
}

// Resize updates the component size.
func (m *EntryListModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Header row and its border take two lines.
	m.table.SetHeight(max(1, height-2))
	m.table.SetColumns(columnsFor(width))
}

func (m EntryListModel) buildRows() []table.Row {
	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		form := ""
		if e.FormName != nil {
			form = *e.FormName
		}
		mark := ""
		if m.caught.Has(e.CaptureKey()) {
			mark = "●"
		}
		rows = append(rows, table.Row{
			e.Number(),
			e.Name,
			strings.Join(e.Types, "/"),
			form,
			mark,
		})
	}
	return rows
}

func columnsFor(width int) []table.Column {
	available := max(60, width-4)
	return []table.Column{
		{Title: "No.", Width: 6},
		{Title: "Name", Width: max(12, int(float64(available)*0.28))},
		{Title: "Types", Width: max(12, int(float64(available)*0.24))},
		{Title: "Form", Width: max(12, int(float64(available)*0.30))},
		{Title: "Caught", Width: 6},
	}
}

// Summary describes the list size for headers.
func Summary(visible, total int) string {
	if visible == total {
		return fmt.Sprintf("%d entries", total)
	}
	return fmt.Sprintf("%d of %d entries", visible, total)
}
