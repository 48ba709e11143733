package domain

import (
	"fmt"
	"strings"
)

const (
	AppName  = "QuoteBook"
	AppTitle = "❝ QuoteBook"

	// DefaultTotalQuotes is the upper bound used when the store cannot report a total.
	DefaultTotalQuotes = 1030
)

// Quote is a single quotation. ID doubles as the pagination cursor.
type Quote struct {
	ID           int
	Text         string
	AuthorName   string // Empty when unknown
	CategoryName string // Empty when uncategorised
}

// DisplayText returns the quote text without surrounding whitespace.
func (q Quote) DisplayText() string {
	return strings.TrimSpace(q.Text)
}

// FilterMode selects which subset of quotes a list shows.
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterCategory
	FilterAuthor
)

func (m FilterMode) String() string {
	switch m {
	case FilterCategory:
		return "category"
	case FilterAuthor:
		return "author"
	default:
		return "none"
	}
}

// ParseFilterMode is the inverse of FilterMode.String. Empty input means FilterNone.
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "all":
		return FilterNone, nil
	case "category":
		return FilterCategory, nil
	case "author":
		return FilterAuthor, nil
	default:
		return FilterNone, fmt.Errorf("%w: unknown mode %q", ErrInvalidFilter, s)
	}
}

// Filter configures a quote list.
type Filter struct {
	Mode  FilterMode
	Value string
}

func AllQuotes() Filter { return Filter{} }

func ByCategory(category string) Filter {
	return Filter{Mode: FilterCategory, Value: strings.TrimSpace(category)}
}

func ByAuthor(author string) Filter {
	return Filter{Mode: FilterAuthor, Value: strings.TrimSpace(author)}
}

// Validate reports whether the filter can be queried.
func (f Filter) Validate() error {
	value := strings.TrimSpace(f.Value)
	switch f.Mode {
	case FilterNone:
		if value != "" {
			return fmt.Errorf("%w: value %q given without a mode", ErrInvalidFilter, f.Value)
		}
		return nil
	case FilterCategory, FilterAuthor:
		if value == "" {
			return fmt.Errorf("%w: %s filter needs a value", ErrInvalidFilter, f.Mode)
		}
		return nil
	default:
		return fmt.Errorf("%w: mode %d", ErrInvalidFilter, int(f.Mode))
	}
}

// IsFiltered is true for category and author lists.
func (f Filter) IsFiltered() bool {
	return f.Mode != FilterNone
}

// Key identifies the query a response belongs to.
func (f Filter) Key() string {
	value := strings.ToLower(strings.TrimSpace(f.Value))
	switch f.Mode {
	case FilterCategory:
		return "category:" + value
	case FilterAuthor:
		return "author:" + value
	default:
		return "all"
	}
}

// Title is the heading shown for filtered lists.
func (f Filter) Title() string {
	if !f.IsFiltered() {
		return AppName
	}
	return strings.TrimSpace(f.Value)
}
