package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dex/internal/common"
	"github.com/Veraticus/dex/internal/testutil"
)

// setupCatalog points the file source at the fixture catalog and the
// database at a temporary directory.
func setupCatalog(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := testutil.WriteCatalog(t, testutil.EntriesJSON, testutil.CategoriesJSON)
	viper.Set("source.kind", "file")
	viper.Set("source.entries", filepath.Join(dir, "pokemon_data.json"))
	viper.Set("source.categories", filepath.Join(dir, "pokemon_generations.json"))
	viper.Set("database.path", filepath.Join(t.TempDir(), "dex.db"))
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	tests := []struct {
		name       string
		caught     []string
		args       []string
		contains   []string
		notContain []string
	}{
		{
			name:     "no filters",
			contains: []string{"Bulbasaur", "Venusaur (Mega Venusaur)", "Alolan Rattata", "Chikorita", "8 entries"},
		},
		{
			name:       "search",
			args:       []string{"--search", "CHAR"},
			contains:   []string{"Charmander", "1 of 8 entries"},
			notContain: []string{"Bulbasaur"},
		},
		{
			name:       "mega forms",
			args:       []string{"--form", "mega"},
			contains:   []string{"Venusaur (Mega Venusaur)"},
			notContain: []string{"Gigantamax", "Bulbasaur"},
		},
		{
			name:       "mega and gigantamax forms",
			args:       []string{"--form", "mega", "--form", "gmax"},
			contains:   []string{"Mega Venusaur", "Gigantamax Venusaur", "2 of 8 entries"},
			notContain: []string{"Alolan"},
		},
		{
			name:       "generation by region",
			args:       []string{"--generation", "johto"},
			contains:   []string{"Chikorita", "1 of 8 entries"},
			notContain: []string{"Bulbasaur"},
		},
		{
			name:       "generation by position",
			args:       []string{"-g", "1"},
			contains:   []string{"Bulbasaur", "7 of 8 entries"},
			notContain: []string{"Chikorita"},
		},
		{
			name:       "caught only",
			caught:     []string{"25-0"},
			args:       []string{"--capture", "caught"},
			contains:   []string{"Pikachu", "1 of 8 entries"},
			notContain: []string{"Bulbasaur"},
		},
		{
			name:     "no match suggests names",
			args:     []string{"--search", "pikachoo"},
			contains: []string{"No entries match the current filters", "Did you mean: Pikachu?"},
		},
		{
			name:     "sprite style",
			args:     []string{"--search", "bulba", "--style", "sprite", "--shiny"},
			contains: []string{"sprites/pokemon/shiny/1.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCatalog(t)
			viper.Set("collection.caught", tt.caught)

			out, err := execute(t, listCmd(), tt.args...)
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContain {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestListCommand_JSON(t *testing.T) {
	setupCatalog(t)
	viper.Set("collection.caught", []string{"3-1"})

	out, err := execute(t, listCmd(), "--form", "mega", "--json")
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Venusaur", entries[0]["name"])
	assert.Equal(t, "3-1", entries[0]["capture_key"])
	assert.Equal(t, true, entries[0]["caught"])
	assert.Contains(t, entries[0]["image_url"], "official-artwork/3.png")
}

func TestListCommand_FallbackWhenSourceMissing(t *testing.T) {
	setupCatalog(t)
	viper.Set("source.entries", filepath.Join(t.TempDir(), "missing.json"))

	out, err := execute(t, listCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Bulbasaur")
	assert.Contains(t, out, "Charmander")
	assert.Contains(t, out, "Squirtle")
	assert.Contains(t, out, "3 entries")
}

func TestListCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown form", args: []string{"--form", "shadow"}},
		{name: "unknown capture filter", args: []string{"--capture", "maybe"}},
		{name: "unknown style", args: []string{"--style", "pixel"}},
		{name: "unknown generation", args: []string{"--generation", "zzz"}},
		{name: "generation out of range", args: []string{"--generation", "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCatalog(t)

			_, err := execute(t, listCmd(), tt.args...)
			require.Error(t, err)

			var userErr *common.UserError
			assert.ErrorAs(t, err, &userErr)
		})
	}
}

func TestGenerationsCommand(t *testing.T) {
	setupCatalog(t)

	out, err := execute(t, generationsCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Generations")
	assert.Contains(t, out, "Kanto")
	assert.Contains(t, out, "1-151")
	assert.Contains(t, out, "Johto")
	assert.Contains(t, out, "152-251")
}

func TestImportCommand(t *testing.T) {
	setupCatalog(t)

	out, err := execute(t, importCmd(), "--no-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Import Complete")
	assert.Contains(t, out, "Entries: 8")
	assert.Contains(t, out, "Generations: 2")
	assert.Contains(t, out, "Skipped records: 1")
	assert.Contains(t, out, "Set source.kind to sqlite to browse this catalog offline")

	// The imported catalog can now be browsed offline.
	viper.Set("source.kind", "sqlite")
	out, err = execute(t, listCmd(), "--generation", "kanto")
	require.NoError(t, err)
	assert.Contains(t, out, "7 of 8 entries")

	store, err := initStorage(context.Background())
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	last, err := store.LastImport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, last.Entries)
	assert.Equal(t, 1, last.Skipped)
}

func TestImportCommand_Strict(t *testing.T) {
	setupCatalog(t)

	out, err := execute(t, importCmd(), "--strict", "--no-progress")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDecode)
	assert.Contains(t, out, "Import aborted before writing any records")
}

func TestImportCommand_RejectsSQLiteSource(t *testing.T) {
	setupCatalog(t)
	viper.Set("source.kind", "sqlite")

	_, err := execute(t, importCmd(), "--no-progress")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, versionCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "dex version dev")
}
