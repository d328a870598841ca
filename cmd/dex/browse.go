package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/dex/internal/common"
	"github.com/Veraticus/dex/internal/tui"
	"github.com/Veraticus/dex/internal/tui/themes"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Open the interactive browser.

Keys: / search, m/x/o toggle mega/gigantamax/other forms, c cycle the
capture filter, [ and ] step through generations, 0 shows every generation,
s switches sprite and artwork, * toggles shiny, ctrl+r refreshes, enter shows
details and ? lists every key.`,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Logs go to a file so they never draw over the alternate screen.
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()
	if err := common.SetupLogger(logFile, viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	fetcher, release, err := newFetcher(ctx)
	if err != nil {
		return err
	}
	defer release()

	prefs, err := loadPreferences()
	if err != nil {
		return err
	}

	slog.Info("Starting browser", "caught", len(prefs.caught), "style", prefs.display.Style)

	return tui.Run(ctx,
		tui.WithFetcher(fetcher),
		tui.WithCaught(prefs.caught),
		tui.WithDisplay(prefs.display.Style, prefs.display.Shiny),
		tui.WithTheme(themes.GetTheme(viper.GetString("display.theme"))),
	)
}
