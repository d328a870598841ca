package tui

import (
	"time"

	"github.com/Veraticus/dex/internal/model"
	"github.com/Veraticus/dex/internal/service"
	"github.com/Veraticus/dex/internal/store"
	"github.com/Veraticus/dex/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Fetcher      service.Fetcher
	Caught       model.CaughtSet
	Style        model.ImageStyle
	Fallback     []model.Entry
	FetchTimeout time.Duration
	Width        int
	Height       int
	Shiny        bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Fallback:     store.DefaultFallback,
		Caught:       model.CaughtSet{},
		Style:        model.StyleOfficial,
		FetchTimeout: 30 * time.Second,
		Width:        80,
		Height:       24,
	}
}

// WithFetcher sets the catalog source.
func WithFetcher(f service.Fetcher) Option {
	return func(c *Config) {
		c.Fetcher = f
	}
}

// WithFallback replaces the entries shown when fetching fails.
func WithFallback(entries []model.Entry) Option {
	return func(c *Config) {
		c.Fallback = entries
	}
}

// WithCaught sets the caught set.
func WithCaught(caught model.CaughtSet) Option {
	return func(c *Config) {
		c.Caught = caught
	}
}

// WithDisplay sets the initial image style and shiny flag.
func WithDisplay(style model.ImageStyle, shiny bool) Option {
	return func(c *Config) {
		c.Style = style
		c.Shiny = shiny
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithFetchTimeout bounds each fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.FetchTimeout = d
	}
}
