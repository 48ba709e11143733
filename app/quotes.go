package app

import (
	"context"

	"github.com/CrestNiraj12/quotebook/domain"
)

// QuoteService reads quotes from the quote database.
type QuoteService interface {
	// AllQuotes returns at most limit quotes with an ID greater than
	// lastQuoteIndex, ascending by ID.
	AllQuotes(ctx context.Context, lastQuoteIndex int, limit int) ([]domain.Quote, error)

	// QuotesByCategory returns every quote in the category.
	QuotesByCategory(ctx context.Context, category string) ([]domain.Quote, error)

	// QuotesByAuthor returns every quote by the author.
	QuotesByAuthor(ctx context.Context, author string) ([]domain.Quote, error)

	// TotalQuotes returns the number of quotes available to AllQuotes.
	TotalQuotes(ctx context.Context) (int, error)
}
