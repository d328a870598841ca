package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/dex/internal/cli"
	"github.com/Veraticus/dex/internal/common"
	"github.com/Veraticus/dex/internal/imageurl"
	"github.com/Veraticus/dex/internal/model"
	"github.com/Veraticus/dex/internal/store"
	"github.com/Veraticus/dex/internal/suggest"
	"github.com/Veraticus/dex/internal/tui/components"
)

const maxSuggestions = 3

type listOptions struct {
	search     string
	capture    string
	generation string
	style      string
	forms      []string
	shiny      bool
	json       bool
}

func listCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the entries matching a set of filters",
		Long: `Load the catalog, apply the filters and print the visible entries.

Examples:
  dex list --search char
  dex list --form mega --form gmax
  dex list --capture uncaught --generation johto
  dex list --generation 1 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "match name, type, category or number")
	cmd.Flags().StringSliceVarP(&opts.forms, "form", "f", nil, "keep forms of this kind (mega, gmax, other); repeatable")
	cmd.Flags().StringVarP(&opts.capture, "capture", "c", "all", "capture filter (all, caught, uncaught)")
	cmd.Flags().StringVarP(&opts.generation, "generation", "g", "", "generation by number, name or region")
	cmd.Flags().StringVar(&opts.style, "style", "", "image style (official, sprite); defaults to display.style")
	cmd.Flags().BoolVar(&opts.shiny, "shiny", false, "use shiny sprites")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of a table")

	return cmd
}

// actions turns the criteria flags into store actions. The generation is
// resolved separately once categories are loaded.
func (o listOptions) actions() ([]store.Action, error) {
	var actions []store.Action

	if o.search != "" {
		actions = append(actions, store.SetSearch{Text: o.search})
	}

	for _, f := range o.forms {
		kind, err := model.ParseFormKind(f)
		if err != nil {
			return nil, common.NewUserError("invalid --form", err)
		}
		actions = append(actions, store.ToggleForm{Kind: kind, On: true})
	}

	capture, err := model.ParseCaptureFilter(o.capture)
	if err != nil {
		return nil, common.NewUserError("invalid --capture", err)
	}
	actions = append(actions, store.SetCapture{Filter: capture})

	return actions, nil
}

func runList(cmd *cobra.Command, opts listOptions) error {
	ctx := cmd.Context()

	actions, err := opts.actions()
	if err != nil {
		return err
	}

	prefs, err := loadPreferences()
	if err != nil {
		return err
	}
	style := prefs.display.Style
	if opts.style != "" {
		if style, err = model.ParseImageStyle(opts.style); err != nil {
			return common.NewUserError("invalid --style", err)
		}
	}
	shiny := opts.shiny || prefs.display.Shiny

	fetcher, release, err := newFetcher(ctx)
	if err != nil {
		return err
	}
	defer release()

	s := store.New(fetcher, store.WithCaught(prefs.caught.Keys()...))
	s.Dispatch(ctx, store.Load{})
	s.Wait()

	if opts.generation != "" {
		category, ok := suggest.Generation(opts.generation, s.Snapshot().Categories)
		if !ok {
			return common.NewUserError(
				fmt.Sprintf("no generation matches %q; run \"dex generations\" to see them", opts.generation),
				common.ErrNotFound,
			)
		}
		actions = append(actions, store.SetGeneration{Category: &category})
	}

	for _, a := range actions {
		s.Dispatch(ctx, a)
	}
	snap := s.Snapshot()

	out := cmd.OutOrStdout()
	if opts.json {
		return writeJSON(out, snap, style, shiny)
	}
	return writeList(out, snap, style, shiny)
}

func writeList(out io.Writer, snap store.State, style model.ImageStyle, shiny bool) error {
	if len(snap.Visible) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("No entries match the current filters"))
		if snap.Criteria.Search != "" {
			if names := suggest.Names(snap.Criteria.Search, snap.All, maxSuggestions); len(names) > 0 {
				fmt.Fprintln(out, cli.FormatInfo("Did you mean: "+strings.Join(names, ", ")+"?"))
			}
		}
		return nil
	}

	fmt.Fprintln(out, cli.EntryTable(snap.Visible, snap.Criteria.Caught, style, shiny))
	fmt.Fprintln(out, cli.SubtleStyle.Render(components.Summary(len(snap.Visible), len(snap.All))))
	return nil
}

// listedEntry is the JSON form of a visible entry.
type listedEntry struct {
	model.Entry
	CaptureKey string `json:"capture_key"`
	ImageURL   string `json:"image_url"`
	Caught     bool   `json:"caught"`
}

func writeJSON(out io.Writer, snap store.State, style model.ImageStyle, shiny bool) error {
	entries := make([]listedEntry, 0, len(snap.Visible))
	for _, e := range snap.Visible {
		entries = append(entries, listedEntry{
			Entry:      e,
			CaptureKey: e.CaptureKey(),
			ImageURL:   imageurl.ForEntry(e, style, shiny),
			Caught:     snap.Criteria.Caught.Has(e.CaptureKey()),
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
