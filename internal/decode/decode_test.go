package decode

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Veraticus/dex/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Lenient(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 1,
		"sub_id": 2,
		"name": "Bulbasaur",
		"form_name": "",
		"image": "https://example.com/1.png",
		"height": "0.7",
		"weight": 6.9,
		"category": "Seed",
		"gender": 12,
		"abilities": ["Overgrow"],
		"weakness": "Fire",
		"types": ["Grass", "Poison"]
	}`)

	entry, err := Entry(raw)
	require.NoError(t, err)

	assert.Equal(t, 1, entry.ID)
	require.NotNil(t, entry.SubID)
	assert.Equal(t, 2, *entry.SubID)
	assert.Equal(t, "Bulbasaur", entry.Name)
	require.NotNil(t, entry.FormName)
	assert.Equal(t, "", *entry.FormName)
	assert.Nil(t, entry.FormType)
	require.NotNil(t, entry.Height)
	assert.InDelta(t, 0.7, *entry.Height, 1e-9)
	require.NotNil(t, entry.Weight)
	assert.InDelta(t, 6.9, *entry.Weight, 1e-9)
	require.NotNil(t, entry.Category)
	assert.Equal(t, "Seed", *entry.Category)
	assert.Nil(t, entry.Gender, "non-string gender degrades to absent")
	assert.Equal(t, []string{"Overgrow"}, entry.Abilities)
	assert.Equal(t, []string{}, entry.Weakness, "entry sequences do not accept CSV strings")
	assert.Equal(t, []string{"Grass", "Poison"}, entry.Types)
}

func TestEntry_Defaults(t *testing.T) {
	entry, err := Entry(json.RawMessage(`{"id": 25}`))
	require.NoError(t, err)

	assert.Equal(t, 25, entry.ID)
	assert.Nil(t, entry.SubID)
	assert.Equal(t, "", entry.Name)
	assert.Nil(t, entry.Height)
	assert.Nil(t, entry.Weight)
	assert.NotNil(t, entry.Abilities)
	assert.Empty(t, entry.Abilities)
	assert.NotNil(t, entry.Types)
	assert.Empty(t, entry.Types)
}

func TestEntry_ID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantID  int
		wantErr bool
	}{
		{name: "integer", raw: `{"id": 4}`, wantID: 4},
		{name: "integral float", raw: `{"id": 4.0}`, wantID: 4},
		{name: "missing", raw: `{"name": "Missingno"}`, wantErr: true},
		{name: "null", raw: `{"id": null}`, wantErr: true},
		{name: "string", raw: `{"id": "4"}`, wantErr: true},
		{name: "fractional", raw: `{"id": 4.5}`, wantErr: true},
		{name: "not an object", raw: `[1, 2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := Entry(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrDecode))
				var decErr *DecodeError
				assert.True(t, errors.As(err, &decErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, entry.ID)
		})
	}
}

func TestNumberOrNumericString(t *testing.T) {
	tests := []struct {
		want *float64
		name string
		raw  string
	}{
		{name: "number", raw: `0.7`, want: ptr(0.7)},
		{name: "numeric string", raw: `"0.7"`, want: ptr(0.7)},
		{name: "padded numeric string", raw: `" 12 "`, want: ptr(12)},
		{name: "garbage string", raw: `"tall"`},
		{name: "empty string", raw: `""`},
		{name: "nan string", raw: `"NaN"`},
		{name: "bool", raw: `true`},
		{name: "null", raw: `null`},
		{name: "absent", raw: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numberOrNumericString(json.RawMessage(tt.raw))
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestSequenceOrCSV(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "array", raw: `["Red", "Blue"]`, want: []string{"Red", "Blue"}},
		{name: "csv string", raw: `"Red, Blue ,Yellow"`, want: []string{"Red", "Blue", "Yellow"}},
		{name: "single value", raw: `"Gold"`, want: []string{"Gold"}},
		{name: "blank pieces dropped", raw: `"Red,, ,Blue"`, want: []string{"Red", "Blue"}},
		{name: "empty string", raw: `""`, want: []string{}},
		{name: "mixed array", raw: `["Red", 1]`, want: []string{}},
		{name: "number", raw: `7`, want: []string{}},
		{name: "absent", raw: ``, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sequenceOrCSV(json.RawMessage(tt.raw)))
		})
	}
}

func TestEntries_IsolatesBadRecords(t *testing.T) {
	data := []byte(`[
		{"id": 1, "name": "Bulbasaur"},
		{"name": "no id"},
		{"id": 4, "name": "Charmander", "height": "0.6"}
	]`)

	entries, err := Entries(data)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Bulbasaur", entries[0].Name)
	assert.Equal(t, "Charmander", entries[1].Name)

	_, err = EntriesStrict(data)
	require.Error(t, err)
	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, 1, decErr.Index)
	assert.Equal(t, "id", decErr.Field)
}

func TestEntries_MalformedDocument(t *testing.T) {
	_, err := Entries([]byte(`{"id": 1}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDecode))

	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, -1, decErr.Index)
}

func TestCategories(t *testing.T) {
	data := []byte(`[
		{
			"generation": "Generation I",
			"region": "Kanto",
			"national_dex_range": "#0001 - #0151",
			"versions": "Red, Blue, Yellow",
			"features": ["Original 151"]
		},
		{"generation": 2, "region": null, "versions": 3},
		null,
		"not a category"
	]`)

	categories, err := Categories(data)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	kanto := categories[0]
	assert.Equal(t, "Generation I", kanto.Generation)
	assert.Equal(t, "Kanto", kanto.Region)
	assert.Equal(t, "#0001 - #0151", kanto.Range)
	assert.Equal(t, []string{"Red", "Blue", "Yellow"}, kanto.Versions)
	assert.Equal(t, []string{"Original 151"}, kanto.Features)
	assert.Equal(t, "Generation IKanto", kanto.Key())

	broken := categories[1]
	assert.Equal(t, "", broken.Generation)
	assert.Equal(t, "", broken.Region)
	assert.Equal(t, []string{}, broken.Versions)
	assert.Equal(t, []string{}, broken.Features)
}

func TestCategory_NullRecord(t *testing.T) {
	_, err := Category(json.RawMessage(`null`))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDecode)

	_, err = Entry(json.RawMessage(`null`))
	assert.ErrorIs(t, err, common.ErrDecode)
}

func ptr(f float64) *float64 { return &f }
