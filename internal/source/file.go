package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Veraticus/dex/internal/common"
)

// File reads catalog documents from the local filesystem.
type File struct {
	entriesPath    string
	categoriesPath string
}

// NewFile creates a file source for the two document paths.
func NewFile(entriesPath, categoriesPath string) *File {
	return &File{entriesPath: entriesPath, categoriesPath: categoriesPath}
}

// Name implements service.DocumentSource.
func (f *File) Name() string {
	return "file:" + f.entriesPath
}

// EntriesDocument implements service.DocumentSource.
func (f *File) EntriesDocument(ctx context.Context) ([]byte, error) {
	return f.read(ctx, f.entriesPath)
}

// CategoriesDocument implements service.DocumentSource.
func (f *File) CategoriesDocument(ctx context.Context) ([]byte, error) {
	return f.read(ctx, f.categoriesPath)
}

func (f *File) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: catalog document %s", common.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
