package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/dex/internal/model"
	"github.com/Veraticus/dex/internal/tui/components"
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}

	var body string
	switch {
	case m.state.Loading && len(m.state.All) == 0:
		body = m.renderLoading()
	case m.mode == ModeDetail:
		body = m.detail.View()
	default:
		body = m.list.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatusBar(),
	)
}

// renderHeader shows the title, the search box and the active filters.
func (m Model) renderHeader() string {
	title := m.theme.Bold.Foreground(m.theme.Primary).Render("Dex")
	count := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render(components.Summary(len(m.state.Visible), len(m.state.All)))

	top := title + "  " + count
	if m.state.Loading {
		top += "  " + m.spinner.View() + lipgloss.NewStyle().Foreground(m.theme.Muted).Render(" loading")
	}

	search := m.searchInput.View()
	if m.mode != ModeSearch {
		if m.state.Criteria.Search == "" {
			search = lipgloss.NewStyle().Foreground(m.theme.Muted).Render("/ to search")
		} else {
			search = "/ " + m.state.Criteria.Search
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, search, m.renderFilters())
}

// renderFilters summarizes every criterion and display setting on one line.
func (m Model) renderFilters() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	on := lipgloss.NewStyle().Foreground(m.theme.Secondary)

	var parts []string

	forms := make([]string, 0, len(model.FormKinds))
	for _, k := range m.state.Criteria.Forms.Sorted() {
		forms = append(forms, string(k))
	}
	if len(forms) == 0 {
		parts = append(parts, muted.Render("forms: any"))
	} else {
		parts = append(parts, on.Render("forms: "+strings.Join(forms, ",")))
	}

	capture := m.state.Criteria.Capture
	if capture == "" || capture == model.CaptureAll {
		parts = append(parts, muted.Render("capture: all"))
	} else {
		parts = append(parts, on.Render("capture: "+string(capture)))
	}

	if g := m.state.Criteria.Generation; g != nil {
		parts = append(parts, on.Render(fmt.Sprintf("%s (%s)", g.Label(), g.Range)))
	} else {
		parts = append(parts, muted.Render("all generations"))
	}

	style := string(m.state.Style)
	if m.state.Shiny {
		style += " ★"
	}
	parts = append(parts, muted.Render("art: "+style))

	return strings.Join(parts, muted.Render(" │ "))
}

// renderLoading renders the placeholder shown before the first result.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spinner.View(),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading catalog..."),
	)

	return lipgloss.Place(
		m.width,
		max(3, m.height-4),
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				m.theme.Title.Render("Dex - Help"),
				h.View(m.keymap),
				"",
				footer,
			),
		),
	)
}

// renderStatusBar renders the caught progress and the short help.
func (m Model) renderStatusBar() string {
	caught := 0
	for _, e := range m.state.All {
		if m.state.Criteria.Caught.Has(e.CaptureKey()) {
			caught++
		}
	}

	center := ""
	if total := len(m.state.All); total > 0 {
		center = fmt.Sprintf("%s %d/%d caught",
			m.renderMiniProgressBar(20, float64(caught)/float64(total)),
			caught,
			total,
		)
	}

	left := m.theme.StatusInfo.Render(m.modeLabel())
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		"  ",
		center,
		"  ",
		m.help.View(m.keymap),
	)
}

func (m Model) modeLabel() string {
	switch m.mode {
	case ModeSearch:
		return "Search"
	case ModeDetail:
		return "Detail"
	case ModeHelp:
		return "Help"
	default:
		return "Browse"
	}
}

// renderMiniProgressBar renders a small progress bar.
func (m Model) renderMiniProgressBar(width int, progress float64) string {
	filled := int(float64(width) * progress)
	empty := width - filled

	return m.theme.ProgressFull.Render(strings.Repeat("█", filled)) +
		m.theme.ProgressEmpty.Render(strings.Repeat("░", empty))
}
