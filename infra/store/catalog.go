package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/CrestNiraj12/quotebook/app"
)

func (s *QuoteStore) Categories(ctx context.Context) ([]app.CatalogEntry, error) {
	ctx = contextOrBackground(ctx)
	s.log.Debug().Msg("list categories")

	rows, err := s.db.QueryContext(ctx, `
SELECT c.name, COUNT(q.id)
FROM categories c
LEFT JOIN quotes q ON q.category_id = c.id
GROUP BY c.id
ORDER BY c.name COLLATE NOCASE
`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return scanCatalog(rows)
}

func (s *QuoteStore) Authors(ctx context.Context) ([]app.CatalogEntry, error) {
	ctx = contextOrBackground(ctx)
	s.log.Debug().Msg("list authors")

	rows, err := s.db.QueryContext(ctx, `
SELECT a.name, COUNT(q.id)
FROM authors a
LEFT JOIN quotes q ON q.author_id = a.id
GROUP BY a.id
ORDER BY a.name COLLATE NOCASE
`)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return scanCatalog(rows)
}

func scanCatalog(rows *sql.Rows) ([]app.CatalogEntry, error) {
	defer rows.Close()

	var out []app.CatalogEntry
	for rows.Next() {
		var e app.CatalogEntry
		if err := rows.Scan(&e.Name, &e.Count); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}
	return out, nil
}
