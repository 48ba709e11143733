package quotes

import (
	"strings"

	"github.com/CrestNiraj12/quotebook/domain"
	"github.com/CrestNiraj12/quotebook/tui/common"
)

// QuoteRow holds the display fields of one list cell.
// Fields are empty when the quote lacks the data.
type QuoteRow struct {
	Category string
	Author   string
	Avatar   string
	Text     string
}

func rowFor(q domain.Quote) QuoteRow {
	row := QuoteRow{Text: q.DisplayText()}
	if c := strings.TrimSpace(q.CategoryName); c != "" {
		row.Category = common.DisplayCategory(c)
	}
	if a := strings.TrimSpace(q.AuthorName); a != "" {
		row.Author = a
		row.Avatar = common.AvatarFor(a)
	}
	return row
}

// rowAt maps the quote at index i. Out-of-range rows are not configured.
func (m Model) rowAt(i int) (QuoteRow, bool) {
	if i < 0 || i >= len(m.items) {
		return QuoteRow{}, false
	}
	return rowFor(m.items[i]), true
}

// Quotes returns the loaded quotes.
func (m Model) Quotes() []domain.Quote {
	return m.items
}

// Filter returns the list's filter.
func (m Model) Filter() domain.Filter {
	return m.filter
}

// Loading reports whether any request is in flight.
func (m Model) Loading() bool {
	return m.loading || m.loadingMore
}

// CanLoadMore reports whether another AllQuotes page is expected.
func (m Model) CanLoadMore() bool {
	return m.canLoadMore
}

// LastQuoteIndex returns the pagination cursor.
func (m Model) LastQuoteIndex() int {
	return m.lastQuoteIndex
}

// Err returns the error of the last request, if any.
func (m Model) Err() error {
	return m.err
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// SelectedQuote returns the highlighted quote, if any.
func (m Model) SelectedQuote() (domain.Quote, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return domain.Quote{}, false
	}
	return m.items[m.cursor], true
}

func (m Model) chromeLines() int {
	// title block (padding + title + badge + margin) and footer (loader/notice + help block)
	if m.showAllHints {
		return 4 + 6
	}
	return 4 + 4
}

func (m Model) visibleCount() int {
	if m.height <= 0 {
		return 1
	}
	return max((m.height-m.chromeLines())/cellHeight, 1)
}

func (m *Model) ensureCursorVisible() {
	if len(m.items) == 0 {
		m.cursor = 0
		m.startIndex = 0
		return
	}
	m.cursor = min(max(m.cursor, 0), len(m.items)-1)

	visible := m.visibleCount()
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	}
	if m.cursor >= m.startIndex+visible {
		m.startIndex = m.cursor - visible + 1
	}
	m.startIndex = min(max(m.startIndex, 0), max(len(m.items)-visible, 0))
}

func (m Model) cardWidths() (cardWidth, textWidth int) {
	w := m.width
	if w <= 0 {
		w = 80
	}
	cardWidth = min(max(w-6, 30), 90)
	// rounded border (2) + horizontal padding (2)
	textWidth = cardWidth - 4
	return cardWidth, textWidth
}
