// Package storage provides the local catalog cache backed by SQLite.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidKind    = errors.New("invalid document kind")
	ErrInvalidRecord  = errors.New("invalid record")
	ErrNothingToStore = errors.New("no records to store")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateKind(kind Kind) error {
	switch kind {
	case KindEntries, KindCategories:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
}

// validateRecords checks that every record is well-formed JSON. Shape is
// left to the decoder.
func validateRecords(raws []json.RawMessage) error {
	if raws == nil {
		return fmt.Errorf("%w: records", ErrNilParameter)
	}
	for i, raw := range raws {
		if !json.Valid(raw) {
			return fmt.Errorf("%w: record at index %d is not valid JSON", ErrInvalidRecord, i)
		}
	}
	return nil
}
