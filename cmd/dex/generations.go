package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/dex/internal/cli"
	"github.com/Veraticus/dex/internal/common"
)

func generationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generations",
		Short: "List generations and the id range each one covers",
		RunE:  runGenerations,
	}
}

func runGenerations(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	fetcher, release, err := newFetcher(ctx)
	if err != nil {
		return err
	}
	defer release()

	categories, err := fetcher.FetchCategories(ctx)
	if err != nil {
		return common.NewUserError("failed to load generations", err)
	}

	out := cmd.OutOrStdout()
	if len(categories) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("The catalog has no generations"))
		return nil
	}

	fmt.Fprintln(out, cli.FormatTitle("Generations"))
	fmt.Fprintln(out, cli.CategoryTable(categories))
	return nil
}
