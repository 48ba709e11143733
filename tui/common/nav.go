package common

import "github.com/CrestNiraj12/quotebook/domain"

// OpenQuoteMsg asks the root model to push the detail screen for Quote.
type OpenQuoteMsg struct {
	Quote domain.Quote
}

// OpenFilterMsg asks the root model to push a quote list for Filter.
type OpenFilterMsg struct {
	Filter domain.Filter
}

// BrowseKind selects what the browse screen lists.
type BrowseKind int

const (
	BrowseCategories BrowseKind = iota
	BrowseAuthors
)

func (k BrowseKind) String() string {
	if k == BrowseAuthors {
		return "authors"
	}
	return "categories"
}

// ParseBrowseKind is the inverse of BrowseKind.String; unknown input means categories.
func ParseBrowseKind(s string) BrowseKind {
	if s == "authors" {
		return BrowseAuthors
	}
	return BrowseCategories
}

// OpenBrowseMsg asks the root model to push the browse screen.
type OpenBrowseMsg struct {
	Kind BrowseKind
}

// BackMsg pops the current screen.
type BackMsg struct{}
