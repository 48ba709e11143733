package quotes

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/quotebook/domain"
)

// stubQuotes serves an in-memory ID-ordered collection and records calls.
type stubQuotes struct {
	all      []domain.Quote
	total    int
	totalErr error
	err      error
	calls    []string
}

func (s *stubQuotes) AllQuotes(_ context.Context, last int, limit int) ([]domain.Quote, error) {
	s.calls = append(s.calls, fmt.Sprintf("all(%d,%d)", last, limit))
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.Quote
	for _, q := range s.all {
		if q.ID > last && len(out) < limit {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubQuotes) QuotesByCategory(_ context.Context, category string) ([]domain.Quote, error) {
	s.calls = append(s.calls, "category("+category+")")
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.Quote
	for _, q := range s.all {
		if strings.EqualFold(q.CategoryName, category) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubQuotes) QuotesByAuthor(_ context.Context, author string) ([]domain.Quote, error) {
	s.calls = append(s.calls, "author("+author+")")
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.Quote
	for _, q := range s.all {
		if strings.EqualFold(q.AuthorName, author) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubQuotes) TotalQuotes(context.Context) (int, error) {
	s.calls = append(s.calls, "total")
	if s.totalErr != nil {
		return 0, s.totalErr
	}
	if s.total != 0 {
		return s.total, nil
	}
	return len(s.all), nil
}

func makeQuote(id int) domain.Quote {
	category := "wisdom"
	if id%2 == 0 {
		category = "love"
	}
	return domain.Quote{
		ID:           id,
		Text:         fmt.Sprintf("  quote %d  ", id),
		AuthorName:   fmt.Sprintf("Author %d", id%3),
		CategoryName: category,
	}
}

func makeQuotes(n int) []domain.Quote {
	out := make([]domain.Quote, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, makeQuote(i))
	}
	return out
}

// runCmd executes cmd and returns the first message that is not a spinner
// tick, descending into batches.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if out := runCmd(c); out != nil {
				return out
			}
		}
		return nil
	}
	if _, ok := msg.(spinner.TickMsg); ok {
		return nil
	}
	return msg
}

// loaded builds a model for filter and feeds it its first response.
func loaded(svc *stubQuotes, filter domain.Filter, pageSize int) Model {
	m := New(svc, filter, pageSize)
	m.width = 100
	m.height = 40
	updated, _ := m.Update(runCmd(m.Init()))
	return updated
}

// nextPage requests the next page and feeds the response back.
func nextPage(m Model) Model {
	cmd := m.loadData(false)
	updated, _ := m.Update(runCmd(cmd))
	return updated
}

// refreshed reloads m and feeds the response back.
func refreshed(m Model) Model {
	cmd := m.Refresh()
	updated, _ := m.Update(runCmd(cmd))
	return updated
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
