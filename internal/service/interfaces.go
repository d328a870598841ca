// Package service defines the contracts between the core and its collaborators.
package service

import (
	"context"

	"github.com/Veraticus/dex/internal/model"
)

// Fetcher supplies the catalog. Implementations may fail with a
// common.NetworkError or a decode error; the store treats both the same way.
type Fetcher interface {
	FetchEntries(ctx context.Context) ([]model.Entry, error)
	FetchCategories(ctx context.Context) ([]model.Category, error)
}

// DocumentSource returns the raw JSON documents behind a Fetcher.
// It is used by the import command to copy a catalog into local storage.
type DocumentSource interface {
	EntriesDocument(ctx context.Context) ([]byte, error)
	CategoriesDocument(ctx context.Context) ([]byte, error)
	Name() string
}
