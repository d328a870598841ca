package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/dex/internal/model"
)

func entries(names ...string) []model.Entry {
	out := make([]model.Entry, len(names))
	for i, n := range names {
		out[i] = model.Entry{ID: i + 1, Name: n}
	}
	return out
}

func TestNames(t *testing.T) {
	catalog := entries("Bulbasaur", "Charmander", "Charmeleon", "Squirtle", "Pikachu", "Pikachu", "Mew", "Pidgey", "Pidgeot")

	tests := []struct {
		name  string
		query string
		want  []string
		max   int
	}{
		{name: "single typo", query: "pikachoo", max: 3, want: []string{"Pikachu"}},
		{name: "case insensitive", query: "SQUIRTEL", max: 3, want: []string{"Squirtle"}},
		{name: "nearest first", query: "pidgee", max: 3, want: []string{"Pidgey", "Pidgeot"}},
		{name: "limited", query: "pidgee", max: 1, want: []string{"Pidgey"}},
		{name: "duplicates collapse", query: "pikachu", max: 3, want: []string{"Pikachu"}},
		{name: "short names are strict", query: "mow", max: 3, want: []string{"Mew"}},
		{name: "too far", query: "zzz", max: 3, want: nil},
		{name: "blank", query: "  ", max: 3, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Names(tt.query, catalog, tt.max)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeneration(t *testing.T) {
	cats := []model.Category{
		{Generation: "Generation I", Region: "Kanto", Range: "#001 - #151"},
		{Generation: "Generation II", Region: "Johto", Range: "#152 - #251"},
		{Generation: "Generation III", Region: "Hoenn", Range: "#252 - #386"},
	}

	tests := []struct {
		name   string
		query  string
		region string
		ok     bool
	}{
		{name: "position", query: "2", region: "Johto", ok: true},
		{name: "position out of range", query: "9", ok: false},
		{name: "exact generation", query: "generation iii", region: "Hoenn", ok: true},
		{name: "exact region", query: "KANTO", region: "Kanto", ok: true},
		{name: "fuzzy region", query: "hoen", region: "Hoenn", ok: true},
		{name: "no match", query: "xyzzy", ok: false},
		{name: "blank", query: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Generation(tt.query, cats)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.region, got.Region)
			}
		})
	}
}
