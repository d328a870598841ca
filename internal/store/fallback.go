package store

import "github.com/Veraticus/dex/internal/model"

func text(s string) *string      { return &s }
func measure(f float64) *float64 { return &f }

// DefaultFallback is the catalog shown when entries cannot be fetched.
var DefaultFallback = []model.Entry{
	{
		ID:        1,
		Name:      "Bulbasaur",
		Height:    measure(0.7),
		Weight:    measure(6.9),
		Category:  text("Seed"),
		Abilities: []string{"Overgrow"},
		Weakness:  []string{"Fire", "Flying", "Ice", "Psychic"},
		Types:     []string{"Grass", "Poison"},
	},
	{
		ID:        4,
		Name:      "Charmander",
		Height:    measure(0.6),
		Weight:    measure(8.5),
		Category:  text("Lizard"),
		Abilities: []string{"Blaze"},
		Weakness:  []string{"Water", "Ground", "Rock"},
		Types:     []string{"Fire"},
	},
	{
		ID:        7,
		Name:      "Squirtle",
		Height:    measure(0.5),
		Weight:    measure(9.0),
		Category:  text("Tiny Turtle"),
		Abilities: []string{"Torrent"},
		Weakness:  []string{"Electric", "Grass"},
		Types:     []string{"Water"},
	},
}
