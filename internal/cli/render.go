package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Veraticus/dex/internal/filter"
	"github.com/Veraticus/dex/internal/imageurl"
	"github.com/Veraticus/dex/internal/model"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
}

// EntryTable renders entries with their caught mark and image URL.
func EntryTable(entries []model.Entry, caught model.CaughtSet, style model.ImageStyle, shiny bool) string {
	t := newTable("No.", "Name", "Types", "Caught", "Image")
	for _, e := range entries {
		mark := UncaughtIcon
		if caught.Has(e.CaptureKey()) {
			mark = CaughtIcon
		}
		t.Row(e.Number(), e.DisplayName(), strings.Join(e.Types, "/"), mark, imageurl.ForEntry(e, style, shiny))
	}
	return t.Render()
}

// CategoryTable renders categories with the id range parsed from each label.
func CategoryTable(categories []model.Category) string {
	t := newTable("#", "Generation", "Region", "Range", "Ids", "Versions")
	for i, c := range categories {
		ids := "-"
		if r, ok := filter.ParseRange(c.Range); ok {
			ids = r.String()
		}
		t.Row(
			strconv.Itoa(i+1),
			c.Generation,
			c.Region,
			c.Range,
			ids,
			strings.Join(c.Versions, ", "),
		)
	}
	return t.Render()
}
