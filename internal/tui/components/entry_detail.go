package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/dex/internal/imageurl"
	"github.com/Veraticus/dex/internal/model"
	"github.com/Veraticus/dex/internal/tui/themes"
)

// EntryDetailModel shows every attribute of one entry.
type EntryDetailModel struct {
	theme  themes.Theme
	style  model.ImageStyle
	entry  model.Entry
	width  int
	height int
	shiny  bool
	caught bool
}

var backKey = key.NewBinding(
	key.WithKeys("esc", "backspace"),
	key.WithHelp("esc", "back to list"),
)

// NewEntryDetail creates a detail view for e.
func NewEntryDetail(e model.Entry, caught bool, theme themes.Theme) EntryDetailModel {
	return EntryDetailModel{
		theme:  theme,
		entry:  e,
		caught: caught,
		style:  model.StyleOfficial,
		width:  80,
		height: 24,
	}
}

// SetDisplay changes the artwork style used for the image URL.
func (m *EntryDetailModel) SetDisplay(style model.ImageStyle, shiny bool) {
	m.style = style
	m.shiny = shiny
}

// Entry returns the entry being shown.
func (m EntryDetailModel) Entry() model.Entry {
	return m.entry
}

// Update handles messages.
func (m EntryDetailModel) Update(msg tea.Msg) (EntryDetailModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, backKey) {
		return m, func() tea.Msg {
			return BackToListMsg{}
		}
	}
	return m, nil
}

// Resize updates the component size.
func (m *EntryDetailModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the detail view.
func (m EntryDetailModel) View() string {
	e := m.entry

	labelStyle := m.theme.Bold.
		Width(14).
		Align(lipgloss.Right).
		MarginRight(2)
	valueStyle := m.theme.Normal
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	row := func(label, value string) string {
		if value == "" {
			value = muted.Render("-")
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
	}

	badges := make([]string, 0, len(e.Types))
	for _, t := range e.Types {
		badges = append(badges, m.theme.TypeBadge(t))
	}

	title := fmt.Sprintf("%s  %s", e.Number(), e.Name)
	if m.caught {
		title += "  " + m.theme.StatusSuccess.Render("caught")
	}

	lines := []string{
		m.theme.Title.Render(title),
		row("Sub ID", subID(e.SubID)),
		row("Form", deref(e.FormName)),
		row("Form Type", deref(e.FormType)),
		row("Types", strings.Join(badges, "")),
		row("Category", deref(e.Category)),
		row("Height", measure(e.Height, "m")),
		row("Weight", measure(e.Weight, "kg")),
		row("Gender", deref(e.Gender)),
		row("Abilities", strings.Join(e.Abilities, ", ")),
		row("Weaknesses", strings.Join(e.Weakness, ", ")),
		row("Image", imageurl.ForEntry(e, m.style, m.shiny)),
		"",
		muted.Render("[esc] back"),
	}

	return m.theme.RoundedBox.
		Width(max(40, m.width-4)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func subID(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func measure(v *float64, unit string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.1f %s", *v, unit)
}
