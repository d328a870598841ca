package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/dex/internal/cli"
	"github.com/Veraticus/dex/internal/common"
	"github.com/Veraticus/dex/internal/decode"
	"github.com/Veraticus/dex/internal/storage"
)

func importCmd() *cobra.Command {
	var (
		strict     bool
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the configured catalog into the local database",
		Long: `Fetch both catalog documents from the configured source and store their
records in the local database. Afterwards set source.kind to sqlite to browse
offline.

Records that cannot be decoded are stored but skipped when read. With
--strict any undecodable entry aborts the import instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd, strict, !noProgress)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any entry cannot be decoded")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "do not show a progress bar")

	return cmd
}

// importResult counts what an import stored.
type importResult struct {
	entryRaws    []json.RawMessage
	categoryRaws []json.RawMessage
	entries      int
	categories   int
}

func (r importResult) skipped() int {
	return len(r.entryRaws) - r.entries + len(r.categoryRaws) - r.categories
}

func runImport(cmd *cobra.Command, strict, showProgress bool) error {
	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), "Import")
	defer handler.Stop()

	src, err := newDocumentSource(ctx)
	if err != nil {
		return err
	}

	entriesDoc, err := src.EntriesDocument(ctx)
	if err != nil {
		return common.NewUserError("failed to fetch entries from "+src.Name(), err)
	}
	categoriesDoc, err := src.CategoriesDocument(ctx)
	if err != nil {
		return common.NewUserError("failed to fetch generations from "+src.Name(), err)
	}

	result, err := prepareImport(entriesDoc, categoriesDoc, strict)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatError("Import aborted before writing any records"))
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var progress func()
	if showProgress {
		bar := cli.NewProgress(cmd.ErrOrStderr(), len(result.entryRaws)+len(result.categoryRaws), "Importing records...")
		progress = cli.Step(bar)
	}

	if err := store.SaveRecords(ctx, storage.KindEntries, src.Name(), result.entryRaws, progress); err != nil {
		return fmt.Errorf("failed to store entries: %w", err)
	}
	if err := store.SaveRecords(ctx, storage.KindCategories, src.Name(), result.categoryRaws, progress); err != nil {
		return fmt.Errorf("failed to store generations: %w", err)
	}

	if _, err := store.RecordImport(ctx, storage.Import{
		Source:     src.Name(),
		Entries:    result.entries,
		Categories: result.categories,
		Skipped:    result.skipped(),
	}); err != nil {
		return err
	}

	common.LogInfo("Catalog imported", common.Fields{
		"source":     src.Name(),
		"entries":    result.entries,
		"categories": result.categories,
		"skipped":    result.skipped(),
	})

	summary := fmt.Sprintf("  • Source: %s\n", src.Name()) +
		fmt.Sprintf("  • Entries: %d\n", result.entries) +
		fmt.Sprintf("  • Generations: %d\n", result.categories) +
		fmt.Sprintf("  • Skipped records: %d\n", result.skipped()) +
		fmt.Sprintf("  • Database: %s", store.Path())

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox("Import Complete", summary))
	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Set source.kind to sqlite to browse this catalog offline"))
	return nil
}

// prepareImport splits both documents into records and counts the ones that
// decode.
func prepareImport(entriesDoc, categoriesDoc []byte, strict bool) (importResult, error) {
	var result importResult

	entryRaws, err := decode.Records(entriesDoc)
	if err != nil {
		return result, common.NewUserError("entries document is not a JSON array", err)
	}
	categoryRaws, err := decode.Records(categoriesDoc)
	if err != nil {
		return result, common.NewUserError("generations document is not a JSON array", err)
	}
	result.entryRaws = entryRaws
	result.categoryRaws = categoryRaws

	if strict {
		entries, err := decode.EntriesStrict(entriesDoc)
		if err != nil {
			return result, common.NewUserError("catalog has an invalid entry", err)
		}
		result.entries = len(entries)
	} else {
		result.entries = len(decode.EntryRecords(entryRaws))
	}
	result.categories = len(decode.CategoryRecords(categoryRaws))

	return result, nil
}
