// Package source provides the places a catalog can be read from: local
// files, an HTTP endpoint or an S3 bucket. Each returns raw JSON documents;
// Documents adapts any of them into a service.Fetcher by decoding leniently.
package source

import (
	"context"
	"fmt"

	"github.com/Veraticus/dex/internal/decode"
	"github.com/Veraticus/dex/internal/model"
	"github.com/Veraticus/dex/internal/service"
)

// Default document names, matching the bundled catalog.
const (
	EntriesDocumentName    = "pokemon_data.json"
	CategoriesDocumentName = "pokemon_generations.json"
)

// Documents decodes the documents of a DocumentSource on every fetch.
type Documents struct {
	src service.DocumentSource
}

// NewDocuments wraps src as a service.Fetcher.
func NewDocuments(src service.DocumentSource) *Documents {
	return &Documents{src: src}
}

// FetchEntries implements service.Fetcher.
func (d *Documents) FetchEntries(ctx context.Context) ([]model.Entry, error) {
	data, err := d.src.EntriesDocument(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := decode.Entries(data)
	if err != nil {
		return nil, fmt.Errorf("decoding entries from %s: %w", d.src.Name(), err)
	}
	return entries, nil
}

// FetchCategories implements service.Fetcher.
func (d *Documents) FetchCategories(ctx context.Context) ([]model.Category, error) {
	data, err := d.src.CategoriesDocument(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := decode.Categories(data)
	if err != nil {
		return nil, fmt.Errorf("decoding categories from %s: %w", d.src.Name(), err)
	}
	return categories, nil
}
