package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/dex/internal/model"
)

func TestEntryTable(t *testing.T) {
	form := "Mega Venusaur"
	entries := []model.Entry{
		{ID: 1, Name: "Bulbasaur", Types: []string{"Grass", "Poison"}},
		{ID: 3, Name: "Venusaur", FormName: &form, Types: []string{"Grass", "Poison"}},
	}

	out := EntryTable(entries, model.NewCaughtSet("1-0"), model.StyleSprite, false)

	lines := strings.Split(out, "\n")
	var bulbasaur, venusaur string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Bulbasaur"):
			bulbasaur = l
		case strings.Contains(l, "Mega Venusaur"):
			venusaur = l
		}
	}

	assert.Contains(t, out, "No.")
	assert.Contains(t, bulbasaur, "#0001")
	assert.Contains(t, bulbasaur, CaughtIcon)
	assert.Contains(t, bulbasaur, "sprites/pokemon/1.png")
	assert.Contains(t, venusaur, "Venusaur (Mega Venusaur)")
	assert.Contains(t, venusaur, UncaughtIcon)
}

func TestCategoryTable(t *testing.T) {
	categories := []model.Category{
		{Generation: "Generation I", Region: "Kanto", Range: "#001 - #151", Versions: []string{"Red", "Blue"}},
		{Generation: "Generation X", Region: "Nowhere", Range: "unknown"},
	}

	out := CategoryTable(categories)

	assert.Contains(t, out, "Kanto")
	assert.Contains(t, out, "1-151")
	assert.Contains(t, out, "Red, Blue")
	assert.Contains(t, out, "Nowhere")
}

func TestFormatHelpers(t *testing.T) {
	tests := []struct {
		format func(string) string
		name   string
		icon   string
	}{
		{name: "success", format: FormatSuccess, icon: SuccessIcon},
		{name: "error", format: FormatError, icon: ErrorIcon},
		{name: "warning", format: FormatWarning, icon: WarningIcon},
		{name: "info", format: FormatInfo, icon: InfoIcon},
		{name: "title", format: FormatTitle, icon: DexIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.format("hello")
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "hello")
		})
	}
}
