package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/Veraticus/dex/internal/common"
	"github.com/Veraticus/dex/internal/model"
)

// Collection is the on-disk form of a caught set:
//
//	caught = ["1-0", "4-0", "3-1"]
type Collection struct {
	Caught []string `toml:"caught"`
}

// LoadCollection reads a TOML collection file. A missing file is an empty
// collection.
func LoadCollection(path string) (*Collection, error) {
	file, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Collection{}, nil
		}
		return nil, fmt.Errorf("failed to open collection: %w", err)
	}
	defer func() { _ = file.Close() }()

	var c Collection
	if err := toml.NewDecoder(file).Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: collection %s: %w", common.ErrInvalidConfig, path, err)
	}
	return &c, nil
}

// LoadCaught merges collection.caught with the keys of collection.file.
func LoadCaught() (model.CaughtSet, error) {
	keys := viper.GetStringSlice("collection.caught")

	if path := viper.GetString("collection.file"); path != "" {
		c, err := LoadCollection(ExpandPath(path))
		if err != nil {
			return nil, err
		}
		keys = append(keys, c.Caught...)
	}

	return model.NewCaughtSet(keys...), nil
}
