package themes

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name string
		want lipgloss.Color
	}{
		{name: "catppuccin-mocha", want: CatppuccinMocha.Primary},
		{name: "default", want: Default.Primary},
		{name: "", want: Default.Primary},
		{name: "unknown", want: Default.Primary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetTheme(tt.name).Primary)
		})
	}
}

func TestTypeBadge(t *testing.T) {
	assert.Contains(t, Default.TypeBadge("Grass"), "Grass")
	assert.Contains(t, Default.TypeBadge("grass"), "grass")
	assert.Contains(t, Default.TypeBadge("Shadow"), "Shadow")

	for name := range TypeColors {
		assert.Equal(t, strings.ToLower(name), name)
	}
}
