package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Veraticus/dex/internal/common"
	"github.com/Veraticus/dex/internal/source"
)

// DataDir returns the directory holding bundled catalog files and the
// database by default.
func DataDir() string {
	return ExpandPath("~/.local/share/dex")
}

// LoadSourceConfig builds the catalog source configuration from Viper.
// Paths are expanded; relative file paths resolve against DataDir.
func LoadSourceConfig() (source.Config, error) {
	cfg := source.Config{
		Kind:       viper.GetString("source.kind"),
		Dir:        DataDir(),
		Entries:    viper.GetString("source.entries"),
		Categories: viper.GetString("source.categories"),
		HTTP: source.HTTPConfig{
			Timeout:   source.HTTPTimeout(viper.GetString("source.http.timeout")),
			Retries:   viper.GetInt("source.http.retries"),
			CacheSize: viper.GetInt("source.http.cache_size"),
		},
		S3: source.S3Config{
			Bucket:    viper.GetString("source.s3.bucket"),
			Region:    viper.GetString("source.s3.region"),
			Endpoint:  viper.GetString("source.s3.endpoint"),
			PathStyle: viper.GetBool("source.s3.path_style"),
		},
	}
	if cfg.Kind == "" {
		cfg.Kind = source.KindFile
	}

	switch cfg.Kind {
	case source.KindFile:
		cfg.Entries = ExpandPath(cfg.Entries)
		cfg.Categories = ExpandPath(cfg.Categories)
	case source.KindHTTP:
		if cfg.Entries == "" || cfg.Categories == "" {
			return cfg, fmt.Errorf("%w: source.entries and source.categories must be URLs for the http source", common.ErrMissingConfig)
		}
	case source.KindS3:
		if cfg.S3.Bucket == "" {
			return cfg, fmt.Errorf("%w: source.s3.bucket", common.ErrMissingConfig)
		}
	case source.KindSQLite:
	default:
		return cfg, fmt.Errorf("%w: source.kind %q (want file, http, s3 or sqlite)", common.ErrInvalidConfig, cfg.Kind)
	}

	return cfg, nil
}

// DatabasePath returns the configured database path.
func DatabasePath() string {
	if p := viper.GetString("database.path"); p != "" {
		return ExpandPath(p)
	}
	return filepath.Join(DataDir(), "dex.db")
}
