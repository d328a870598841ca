// Package decode turns loosely typed catalog JSON into model values.
//
// Every field except an entry's id is decoded leniently: a value of the wrong
// shape becomes absent (or empty) instead of failing the record. Batches are
// split into records first, so one bad record never takes down its siblings.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/dex/internal/model"
)

// Entry decodes a single entry record. Only a missing or non-integer id fails.
func Entry(raw json.RawMessage) (model.Entry, error) {
	return entryAt(raw, 0)
}

func entryAt(raw json.RawMessage, index int) (model.Entry, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return model.Entry{}, &DecodeError{Index: index, Err: fmt.Errorf("record is not an object: %w", err)}
	}
	if rec == nil {
		return model.Entry{}, &DecodeError{Index: index, Err: errors.New("record is null")}
	}

	id, err := requiredInt(rec["id"])
	if err != nil {
		return model.Entry{}, &DecodeError{Index: index, Field: "id", Err: err}
	}

	return model.Entry{
		ID:        id,
		SubID:     optionalInt(rec["sub_id"]),
		Name:      stringOrEmpty(rec["name"]),
		FormName:  optionalString(rec["form_name"]),
		FormType:  optionalString(rec["form_type"]),
		Image:     optionalString(rec["image"]),
		Height:    numberOrNumericString(rec["height"]),
		Weight:    numberOrNumericString(rec["weight"]),
		Category:  optionalString(rec["category"]),
		Gender:    optionalString(rec["gender"]),
		Abilities: stringSequence(rec["abilities"]),
		Weakness:  stringSequence(rec["weakness"]),
		Types:     stringSequence(rec["types"]),
	}, nil
}

// Category decodes a single category record.
func Category(raw json.RawMessage) (model.Category, error) {
	return categoryAt(raw, 0)
}

func categoryAt(raw json.RawMessage, index int) (model.Category, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return model.Category{}, &DecodeError{Index: index, Err: fmt.Errorf("record is not an object: %w", err)}
	}
	if rec == nil {
		return model.Category{}, &DecodeError{Index: index, Err: errors.New("record is null")}
	}

	return model.Category{
		Generation: stringOrEmpty(rec["generation"]),
		Region:     stringOrEmpty(rec["region"]),
		Range:      stringOrEmpty(rec["national_dex_range"]),
		Versions:   sequenceOrCSV(rec["versions"]),
		Features:   sequenceOrCSV(rec["features"]),
	}, nil
}

// Records splits a JSON array document into raw records.
func Records(data []byte) ([]json.RawMessage, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &DecodeError{Index: -1, Err: fmt.Errorf("expected a JSON array: %w", err)}
	}
	return raws, nil
}

// Entries decodes an array of entries. Records that fail are logged and
// skipped; only a document that is not an array returns an error.
func Entries(data []byte) ([]model.Entry, error) {
	raws, err := Records(data)
	if err != nil {
		return nil, err
	}
	return EntryRecords(raws), nil
}

// EntryRecords decodes already split records, skipping the ones that fail.
func EntryRecords(raws []json.RawMessage) []model.Entry {
	entries := make([]model.Entry, 0, len(raws))
	for i, raw := range raws {
		entry, err := entryAt(raw, i)
		if err != nil {
			slog.Warn("Skipping undecodable entry", "index", i, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// EntriesStrict decodes an array of entries and fails on the first bad record.
func EntriesStrict(data []byte) ([]model.Entry, error) {
	raws, err := Records(data)
	if err != nil {
		return nil, err
	}

	entries := make([]model.Entry, 0, len(raws))
	for i, raw := range raws {
		entry, err := entryAt(raw, i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Categories decodes an array of categories. Non-object records are logged
// and skipped.
func Categories(data []byte) ([]model.Category, error) {
	raws, err := Records(data)
	if err != nil {
		return nil, err
	}
	return CategoryRecords(raws), nil
}

// CategoryRecords decodes already split records, skipping the ones that fail.
func CategoryRecords(raws []json.RawMessage) []model.Category {
	categories := make([]model.Category, 0, len(raws))
	for i, raw := range raws {
		category, err := categoryAt(raw, i)
		if err != nil {
			slog.Warn("Skipping undecodable category", "index", i, "error", err)
			continue
		}
		categories = append(categories, category)
	}
	return categories
}
