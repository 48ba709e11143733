package quotes

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/quotebook/domain"
)

func TestView_UnfilteredShowsLogoAndCount(t *testing.T) {
	svc := &stubQuotes{all: makeQuotes(5)}
	m := loaded(svc, domain.AllQuotes(), 2)
	view := ansi.Strip(m.View())

	if !strings.Contains(view, domain.AppTitle) {
		t.Fatalf("expected logo in header")
	}
	if strings.Contains(view, "← esc") {
		t.Fatalf("root list should not offer back navigation")
	}
	if !strings.Contains(view, "All quotes · 2 of 5") {
		t.Fatalf("expected progress badge, got:\n%s", view)
	}
	if m.Title() != domain.AppTitle {
		t.Fatalf("unexpected title %q", m.Title())
	}
}

func TestView_FilteredShowsValueAndBack(t *testing.T) {
	svc := &stubQuotes{all: makeQuotes(6)}
	m := loaded(svc, domain.ByCategory("love"), 2)
	view := ansi.Strip(m.View())

	if !strings.Contains(view, "← esc") || !strings.Contains(view, "Love") {
		t.Fatalf("expected back hint and category title, got:\n%s", view)
	}
	if !strings.Contains(view, "quotes in category · 3") {
		t.Fatalf("expected category badge")
	}
	if strings.Contains(view, "End of the book.") {
		t.Fatalf("filtered lists do not paginate")
	}

	byAuthor := loaded(svc, domain.ByAuthor("Author 1"), 2)
	if byAuthor.Title() != "Author 1" {
		t.Fatalf("author list should be titled by author, got %q", byAuthor.Title())
	}
}

func TestView_EmptyList(t *testing.T) {
	m := loaded(&stubQuotes{}, domain.AllQuotes(), 2)
	if !strings.Contains(m.View(), "No quotes here yet.") {
		t.Fatalf("expected empty state")
	}
}

func TestRenderCard_FixedHeightAndWidth(t *testing.T) {
	long := domain.Quote{ID: 7, Text: strings.Repeat("a very long sentence that keeps going ", 20), AuthorName: "Seneca", CategoryName: "life"}
	short := domain.Quote{ID: 8, Text: "Brief."}
	svc := &stubQuotes{all: []domain.Quote{long, short}}
	m := loaded(svc, domain.AllQuotes(), 2)
	cardWidth, _ := m.cardWidths()

	for i, q := range m.Quotes() {
		row, _ := m.rowAt(i)
		card := m.renderCard(q.ID, row, i == 0)
		if h := lipgloss.Height(card); h != cellHeight {
			t.Fatalf("card %d height = %d, want %d", q.ID, h, cellHeight)
		}
		for _, ln := range strings.Split(card, "\n") {
			if w := ansi.StringWidth(ln); w > cardWidth {
				t.Fatalf("card %d line too wide: %d > %d", q.ID, w, cardWidth)
			}
		}
	}
}
