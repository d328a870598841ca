package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/dex/internal/model"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name  string
		style model.ImageStyle
		want  string
		id    int
		shiny bool
	}{
		{
			name:  "sprite",
			id:    25,
			style: model.StyleSprite,
			want:  "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png",
		},
		{
			name:  "shiny sprite",
			id:    25,
			style: model.StyleSprite,
			shiny: true,
			want:  "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/shiny/25.png",
		},
		{
			name:  "official artwork",
			id:    1,
			style: model.StyleOfficial,
			want:  "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/1.png",
		},
		{
			name:  "official ignores shiny",
			id:    1,
			style: model.StyleOfficial,
			shiny: true,
			want:  "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/1.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.id, tt.style, tt.shiny))
		})
	}
}

func TestFromRef(t *testing.T) {
	empty := ""
	bad := "http://[::1"
	good := "https://example.com/1.png"

	assert.Empty(t, FromRef(nil))
	assert.Empty(t, FromRef(&empty))
	assert.Empty(t, FromRef(&bad))
	assert.Equal(t, good, FromRef(&good))
}

func TestForEntry(t *testing.T) {
	ref := "https://example.com/venusaur-mega.png"
	e := model.Entry{ID: 3, Image: &ref}

	assert.Equal(t, ref, ForEntry(e, model.StyleOfficial, false))
	assert.Equal(t, For(3, model.StyleSprite, true), ForEntry(e, model.StyleSprite, true))
	assert.Equal(t, For(7, model.StyleOfficial, false), ForEntry(model.Entry{ID: 7}, model.StyleOfficial, false))
}
