package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/dex/internal/common"
	"github.com/Veraticus/dex/internal/decode"
	"github.com/Veraticus/dex/internal/model"
)

// Kind names one of the two catalog documents.
type Kind string

// Document kinds.
const (
	KindEntries    Kind = "entries"
	KindCategories Kind = "categories"
)

// Document describes a stored catalog document.
type Document struct {
	ImportedAt time.Time
	Kind       Kind
	Source     string
	Records    int
}

// Import is one row of import history.
type Import struct {
	ImportedAt time.Time
	Source     string
	ID         int64
	Entries    int
	Categories int
	Skipped    int
}

// SaveRecords replaces the stored records of kind. progress, when non-nil,
// is called once per stored record.
func (s *SQLiteStorage) SaveRecords(ctx context.Context, kind Kind, source string, raws []json.RawMessage, progress func()) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKind(kind); err != nil {
		return err
	}
	if err := validateString(source, "source"); err != nil {
		return err
	}
	if err := validateRecords(raws); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM records WHERE kind = ?`, kind); err != nil {
		return fmt.Errorf("failed to clear %s: %w", kind, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (kind, source, record_count, imported_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(kind) DO UPDATE SET
			source = excluded.source,
			record_count = excluded.record_count,
			imported_at = excluded.imported_at
	`, kind, source, len(raws))
	if err != nil {
		return fmt.Errorf("failed to save %s document: %w", kind, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (kind, position, raw) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, raw := range raws {
		if _, err = stmt.ExecContext(ctx, kind, i, string(raw)); err != nil {
			return fmt.Errorf("failed to store %s record %d: %w", kind, i, err)
		}
		if progress != nil {
			progress()
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", kind, err)
	}
	return nil
}

// Records returns the stored raw records of kind in their original order.
func (s *SQLiteStorage) Records(ctx context.Context, kind Kind) ([]json.RawMessage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateKind(kind); err != nil {
		return nil, err
	}

	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM documents WHERE kind = ?)`, kind).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s document: %w", kind, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: no %s imported into %s", common.ErrNotFound, kind, s.dbPath)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT raw FROM records WHERE kind = ? ORDER BY position`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	raws := []json.RawMessage{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s record: %w", kind, err)
		}
		raws = append(raws, json.RawMessage(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", kind, err)
	}
	return raws, nil
}

// FetchEntries implements service.Fetcher.
func (s *SQLiteStorage) FetchEntries(ctx context.Context) ([]model.Entry, error) {
	raws, err := s.Records(ctx, KindEntries)
	if err != nil {
		return nil, err
	}
	return decode.EntryRecords(raws), nil
}

// FetchCategories implements service.Fetcher.
func (s *SQLiteStorage) FetchCategories(ctx context.Context) ([]model.Category, error) {
	raws, err := s.Records(ctx, KindCategories)
	if err != nil {
		return nil, err
	}
	return decode.CategoryRecords(raws), nil
}

// Documents lists the stored documents.
func (s *SQLiteStorage) Documents(ctx context.Context) ([]Document, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, source, record_count, imported_at
		FROM documents
		ORDER BY kind
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.Kind, &doc.Source, &doc.Records, &doc.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// RecordImport appends to the import history.
func (s *SQLiteStorage) RecordImport(ctx context.Context, imp Import) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(imp.Source, "source"); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO imports (source, entries, categories, skipped)
		VALUES (?, ?, ?, ?)
	`, imp.Source, imp.Entries, imp.Categories, imp.Skipped)
	if err != nil {
		return 0, fmt.Errorf("failed to record import: %w", err)
	}
	return res.LastInsertId()
}

// LastImport returns the most recent import, or common.ErrNotFound.
func (s *SQLiteStorage) LastImport(ctx context.Context) (*Import, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var imp Import
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, entries, categories, skipped, imported_at
		FROM imports
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&imp.ID, &imp.Source, &imp.Entries, &imp.Categories, &imp.Skipped, &imp.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no imports recorded", common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last import: %w", err)
	}
	return &imp, nil
}
