package app

import "context"

// CatalogEntry is a category or author together with its quote count.
type CatalogEntry struct {
	Name  string
	Count int
}

// CatalogService lists the categories and authors quotes can be filtered by.
type CatalogService interface {
	// Categories returns all categories, sorted by name.
	Categories(ctx context.Context) ([]CatalogEntry, error)

	// Authors returns all authors, sorted by name.
	Authors(ctx context.Context) ([]CatalogEntry, error)
}
