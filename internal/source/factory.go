package source

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Veraticus/dex/internal/service"
)

// Source kinds.
const (
	KindFile   = "file"
	KindHTTP   = "http"
	KindS3     = "s3"
	KindSQLite = "sqlite"
)

// Config selects and configures a document source.
type Config struct {
	Kind       string
	Dir        string
	Entries    string
	Categories string
	S3         S3Config
	HTTP       HTTPConfig
}

// New builds the document source named by cfg.Kind. The sqlite kind is not a
// document source; callers open internal/storage for it.
func New(ctx context.Context, cfg Config) (service.DocumentSource, error) {
	switch cfg.Kind {
	case KindFile, "":
		return NewFile(
			resolve(cfg.Dir, cfg.Entries, EntriesDocumentName),
			resolve(cfg.Dir, cfg.Categories, CategoriesDocumentName),
		), nil

	case KindHTTP:
		httpCfg := cfg.HTTP
		if httpCfg.EntriesURL == "" {
			httpCfg.EntriesURL = cfg.Entries
		}
		if httpCfg.CategoriesURL == "" {
			httpCfg.CategoriesURL = cfg.Categories
		}
		return NewHTTP(httpCfg)

	case KindS3:
		s3Cfg := cfg.S3
		if s3Cfg.EntriesKey == "" {
			s3Cfg.EntriesKey = cfg.Entries
		}
		if s3Cfg.CategoriesKey == "" {
			s3Cfg.CategoriesKey = cfg.Categories
		}
		return NewS3(ctx, s3Cfg)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}

// resolve joins a relative document path onto dir, defaulting to name.
func resolve(dir, path, name string) string {
	if path == "" {
		path = name
	}
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

// HTTPTimeout parses a configured timeout, falling back to DefaultHTTPTimeout.
func HTTPTimeout(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return DefaultHTTPTimeout
	}
	return d
}
