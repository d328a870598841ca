package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/dex/internal/common"
	"github.com/Veraticus/dex/internal/config"
	"github.com/Veraticus/dex/internal/model"
	"github.com/Veraticus/dex/internal/service"
	"github.com/Veraticus/dex/internal/source"
	"github.com/Veraticus/dex/internal/storage"
)

// envKeyReplacer maps nested keys such as source.kind to DEX_SOURCE_KIND.
var envKeyReplacer = strings.NewReplacer(".", "_")

// initStorage opens and migrates the catalog database.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newFetcher builds the configured catalog source. The returned function
// releases any database it opened.
func newFetcher(ctx context.Context) (service.Fetcher, func(), error) {
	cfg, err := config.LoadSourceConfig()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Kind == source.KindSQLite {
		store, err := initStorage(ctx)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}

	src, err := source.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return source.NewDocuments(src), func() {}, nil
}

// newDocumentSource builds the configured document source for import.
func newDocumentSource(ctx context.Context) (service.DocumentSource, error) {
	cfg, err := config.LoadSourceConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Kind == source.KindSQLite {
		return nil, common.NewUserError(
			"the sqlite source is the import destination; set source.kind to file, http or s3",
			fmt.Errorf("%w: source.kind", common.ErrInvalidConfig),
		)
	}
	return source.New(ctx, cfg)
}

// preferences are the caught set and display settings from configuration.
type preferences struct {
	caught  model.CaughtSet
	display config.Display
}

func loadPreferences() (preferences, error) {
	caught, err := config.LoadCaught()
	if err != nil {
		return preferences{}, err
	}
	display, err := config.LoadDisplay()
	if err != nil {
		return preferences{}, err
	}
	return preferences{caught: caught, display: display}, nil
}

// openLogFile opens logging.file for appending, creating its directory.
func openLogFile() (*os.File, error) {
	path := config.ExpandPath(viper.GetString("logging.file"))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
