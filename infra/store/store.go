package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	_ "modernc.org/sqlite" // Register the sqlite database/sql driver.

	"github.com/CrestNiraj12/quotebook/domain"
)

// Open opens the SQLite database at path and enables WAL mode.
func Open(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One writer, and the TUI issues at most one query at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	return db, nil
}

// Init creates the schema if it does not exist yet.
func Init(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS authors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE COLLATE NOCASE
);

CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE COLLATE NOCASE
);

CREATE TABLE IF NOT EXISTS quotes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	author_id INTEGER,
	category_id INTEGER,
	UNIQUE(text, author_id),
	FOREIGN KEY(author_id) REFERENCES authors(id) ON DELETE SET NULL,
	FOREIGN KEY(category_id) REFERENCES categories(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS quotes_author_idx ON quotes(author_id);
CREATE INDEX IF NOT EXISTS quotes_category_idx ON quotes(category_id);
`

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// QuoteStore implements app.QuoteService and app.CatalogService.
type QuoteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewQuoteStore wraps an initialised database.
func NewQuoteStore(db *sql.DB, log zerolog.Logger) *QuoteStore {
	return &QuoteStore{db: db, log: log}
}

const quoteColumns = `
SELECT q.id, q.text, COALESCE(a.name, ''), COALESCE(c.name, '')
FROM quotes q
LEFT JOIN authors a ON a.id = q.author_id
LEFT JOIN categories c ON c.id = q.category_id
`

func (s *QuoteStore) AllQuotes(ctx context.Context, lastQuoteIndex int, limit int) ([]domain.Quote, error) {
	ctx = contextOrBackground(ctx)
	if limit <= 0 {
		return nil, nil
	}
	s.log.Debug().Int("after", lastQuoteIndex).Int("limit", limit).Msg("query all quotes")

	rows, err := s.db.QueryContext(ctx, quoteColumns+`
WHERE q.id > ?
ORDER BY q.id
LIMIT ?
`, lastQuoteIndex, limit)
	if err != nil {
		return nil, fmt.Errorf("query quotes page: %w", err)
	}
	return scanQuotes(rows)
}

func (s *QuoteStore) QuotesByCategory(ctx context.Context, category string) ([]domain.Quote, error) {
	ctx = contextOrBackground(ctx)
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: empty category", domain.ErrInvalidFilter)
	}
	s.log.Debug().Str("category", category).Msg("query quotes by category")

	rows, err := s.db.QueryContext(ctx, quoteColumns+`
WHERE c.name = ? COLLATE NOCASE
ORDER BY q.id
`, category)
	if err != nil {
		return nil, fmt.Errorf("query quotes by category: %w", err)
	}
	return scanQuotes(rows)
}

func (s *QuoteStore) QuotesByAuthor(ctx context.Context, author string) ([]domain.Quote, error) {
	ctx = contextOrBackground(ctx)
	author = strings.TrimSpace(author)
	if author == "" {
		return nil, fmt.Errorf("%w: empty author", domain.ErrInvalidFilter)
	}
	s.log.Debug().Str("author", author).Msg("query quotes by author")

	rows, err := s.db.QueryContext(ctx, quoteColumns+`
WHERE a.name = ? COLLATE NOCASE
ORDER BY q.id
`, author)
	if err != nil {
		return nil, fmt.Errorf("query quotes by author: %w", err)
	}
	return scanQuotes(rows)
}

func (s *QuoteStore) TotalQuotes(ctx context.Context) (int, error) {
	ctx = contextOrBackground(ctx)

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quotes").Scan(&total); err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return total, nil
}

// Quote returns a single quote by ID.
func (s *QuoteStore) Quote(ctx context.Context, id int) (domain.Quote, error) {
	ctx = contextOrBackground(ctx)

	var q domain.Quote
	err := s.db.QueryRowContext(ctx, quoteColumns+"WHERE q.id = ?", id).
		Scan(&q.ID, &q.Text, &q.AuthorName, &q.CategoryName)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Quote{}, fmt.Errorf("quote %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Quote{}, fmt.Errorf("lookup quote: %w", err)
	}
	return q, nil
}

func scanQuotes(rows *sql.Rows) ([]domain.Quote, error) {
	defer rows.Close()

	var out []domain.Quote
	for rows.Next() {
		var q domain.Quote
		if err := rows.Scan(&q.ID, &q.Text, &q.AuthorName, &q.CategoryName); err != nil {
			return nil, fmt.Errorf("scan quote row: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quote rows: %w", err)
	}
	return out, nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
