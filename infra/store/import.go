package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/CrestNiraj12/quotebook/domain"
)

// ImportResult reports how many quotes an import added.
type ImportResult struct {
	Added   int
	Skipped int
}

// ImportQuotes inserts quotes in order inside one transaction. Quote IDs are
// assigned by the database; duplicates (same text and author) are skipped.
func (s *QuoteStore) ImportQuotes(ctx context.Context, quotes []domain.Quote) (ImportResult, error) {
	ctx = contextOrBackground(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var res ImportResult
	authors := map[string]sql.NullInt64{}
	categories := map[string]sql.NullInt64{}
	for i, q := range quotes {
		text := strings.TrimSpace(q.Text)
		if text == "" {
			return ImportResult{}, fmt.Errorf("quote %d: %w", i+1, domain.ErrEmptyQuote)
		}
		authorID, err := lookupOrCreate(ctx, tx, "authors", q.AuthorName, authors)
		if err != nil {
			return ImportResult{}, err
		}
		categoryID, err := lookupOrCreate(ctx, tx, "categories", q.CategoryName, categories)
		if err != nil {
			return ImportResult{}, err
		}

		exists, err := quoteExists(ctx, tx, text, authorID)
		if err != nil {
			return ImportResult{}, err
		}
		if exists {
			res.Skipped++
			continue
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO quotes (text, author_id, category_id) VALUES (?, ?, ?)",
			text, authorID, categoryID,
		); err != nil {
			return ImportResult{}, fmt.Errorf("insert quote %d: %w", i+1, err)
		}
		res.Added++
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("commit import: %w", err)
	}
	s.log.Info().Int("added", res.Added).Int("skipped", res.Skipped).Msg("quotes imported")
	return res, nil
}

// lookupOrCreate returns the row ID for name in table, inserting it when missing.
// Blank names map to NULL.
func lookupOrCreate(ctx context.Context, tx *sql.Tx, table, name string, cache map[string]sql.NullInt64) (sql.NullInt64, error) {
	n := nullString(name)
	if !n.Valid {
		return sql.NullInt64{}, nil
	}
	key := strings.ToLower(n.String)
	if id, ok := cache[key]; ok {
		return id, nil
	}

	if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO "+table+" (name) VALUES (?)", n.String); err != nil {
		return sql.NullInt64{}, fmt.Errorf("insert %s row: %w", table, err)
	}
	var id int64
	if err := tx.QueryRowContext(ctx, "SELECT id FROM "+table+" WHERE name = ?", n.String).Scan(&id); err != nil {
		return sql.NullInt64{}, fmt.Errorf("lookup %s id: %w", table, err)
	}
	out := sql.NullInt64{Int64: id, Valid: true}
	cache[key] = out
	return out, nil
}

func quoteExists(ctx context.Context, tx *sql.Tx, text string, authorID sql.NullInt64) (bool, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		"SELECT id FROM quotes WHERE text = ? AND author_id IS ?",
		text, authorID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check existing quote: %w", err)
	}
	return true, nil
}
