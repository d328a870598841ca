package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dex/internal/model"
	tuitesting "github.com/Veraticus/dex/internal/tui/testing"
	"github.com/Veraticus/dex/internal/tui/themes"
)

func TestEntryDetail_View(t *testing.T) {
	height := 0.7
	e := model.Entry{
		ID:        1,
		Name:      "Bulbasaur",
		Types:     []string{"Grass", "Poison"},
		Category:  text("Seed"),
		Height:    &height,
		Abilities: []string{"Overgrow"},
		Weakness:  []string{"Fire", "Psychic"},
	}

	d := NewEntryDetail(e, true, themes.Default)
	d.Resize(120, 30)

	view := tuitesting.StripANSI(d.View())
	assert.True(t, tuitesting.ContainsInOrder(view,
		"#0001", "Bulbasaur", "caught",
		"Sub ID", "-",
		"Form", "-",
		"Form Type", "-",
		"Types", "Grass", "Poison",
		"Category", "Seed",
		"Height", "0.7 m",
		"Weight", "-",
		"Abilities", "Overgrow",
		"Weaknesses", "Fire, Psychic",
		"Image",
	))
}

func TestEntryDetail_FormRows(t *testing.T) {
	sub := 1
	e := model.Entry{
		ID:       3,
		SubID:    &sub,
		Name:     "Venusaur",
		FormName: text("Mega Venusaur"),
		FormType: text("mega"),
	}

	d := NewEntryDetail(e, false, themes.Default)
	d.Resize(120, 30)

	view := tuitesting.StripANSI(d.View())
	assert.True(t, tuitesting.ContainsInOrder(view,
		"Sub ID", "1",
		"Form", "Mega Venusaur",
		"Form Type", "mega",
	))
}

func TestEntryDetail_NotCaught(t *testing.T) {
	d := NewEntryDetail(model.Entry{ID: 4, Name: "Charmander"}, false, themes.Default)
	assert.NotContains(t, tuitesting.StripANSI(d.View()), "caught")
}

func TestEntryDetail_Back(t *testing.T) {
	d := NewEntryDetail(model.Entry{ID: 4, Name: "Charmander"}, false, themes.Default)

	_, cmd := d.Update(tuitesting.KeyPress("j"))
	assert.Nil(t, cmd)

	for _, msg := range []any{tuitesting.KeyEsc(), tuitesting.KeyBackspace()} {
		_, cmd = d.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, BackToListMsg{}, cmd())
	}
}
