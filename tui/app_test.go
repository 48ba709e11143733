package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/quotebook/app"
	"github.com/CrestNiraj12/quotebook/domain"
	"github.com/CrestNiraj12/quotebook/infra/config"
	"github.com/CrestNiraj12/quotebook/tui/common"
	"github.com/CrestNiraj12/quotebook/tui/detail"
)

type memQuotes struct {
	all []domain.Quote
}

func (s *memQuotes) AllQuotes(_ context.Context, last, limit int) ([]domain.Quote, error) {
	var out []domain.Quote
	for _, q := range s.all {
		if q.ID > last && len(out) < limit {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *memQuotes) filter(match func(domain.Quote) bool) []domain.Quote {
	var out []domain.Quote
	for _, q := range s.all {
		if match(q) {
			out = append(out, q)
		}
	}
	return out
}

func (s *memQuotes) QuotesByCategory(_ context.Context, c string) ([]domain.Quote, error) {
	return s.filter(func(q domain.Quote) bool { return strings.EqualFold(q.CategoryName, c) }), nil
}

func (s *memQuotes) QuotesByAuthor(_ context.Context, a string) ([]domain.Quote, error) {
	return s.filter(func(q domain.Quote) bool { return strings.EqualFold(q.AuthorName, a) }), nil
}

func (s *memQuotes) TotalQuotes(context.Context) (int, error) {
	return len(s.all), nil
}

type memCatalog struct{}

func (memCatalog) Categories(context.Context) ([]app.CatalogEntry, error) {
	return []app.CatalogEntry{{Name: "courage", Count: 2}, {Name: "love", Count: 2}}, nil
}

func (memCatalog) Authors(context.Context) ([]app.CatalogEntry, error) {
	return []app.CatalogEntry{{Name: "Maya Angelou", Count: 2}}, nil
}

type wideCatalog struct{ memCatalog }

func (wideCatalog) Authors(context.Context) ([]app.CatalogEntry, error) {
	out := make([]app.CatalogEntry, 20)
	for i := range out {
		out[i] = app.CatalogEntry{Name: fmt.Sprintf("Author %02d", i+1), Count: 1}
	}
	return out, nil
}

func newDeps(t *testing.T) Deps {
	t.Helper()
	svc := &memQuotes{}
	for i := 1; i <= 4; i++ {
		category := "courage"
		if i%2 == 0 {
			category = "love"
		}
		svc.all = append(svc.all, domain.Quote{ID: i, Text: fmt.Sprintf("quote number %d", i), AuthorName: "Maya Angelou", CategoryName: category})
	}
	return Deps{
		Quotes:    svc,
		Catalog:   memCatalog{},
		PageSize:  10,
		StatePath: filepath.Join(t.TempDir(), "ui_state.json"),
		Logger:    zerolog.Nop(),
	}
}

// drain runs cmd and every command it produces, feeding results back into a.
func drain(a App, cmd tea.Cmd) App {
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < 200; steps++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		switch msg := msg.(type) {
		case nil, spinner.TickMsg, tea.QuitMsg:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		}
		updated, next := a.Update(msg)
		a = updated.(App)
		queue = append(queue, next)
	}
	return a
}

func started(t *testing.T, deps Deps) App {
	t.Helper()
	a := NewApp(deps)
	a = drain(a, a.Init())
	updated, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(App)
}

func press(a App, msg tea.KeyMsg) App {
	updated, cmd := a.Update(msg)
	return drain(updated.(App), cmd)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewApp_RootIsFullList(t *testing.T) {
	a := started(t, newDeps(t))
	if a.Depth() != 1 {
		t.Fatalf("expected only the root list, got depth %d", a.Depth())
	}
	view := ansi.Strip(a.View())
	if !strings.Contains(view, domain.AppTitle) || !strings.Contains(view, "quote number 1") {
		t.Fatalf("root list not rendered:\n%s", view)
	}
}

func TestNewApp_StartFilterStacksOnRoot(t *testing.T) {
	deps := newDeps(t)
	deps.Start = domain.ByCategory("love")
	a := started(t, deps)
	if a.Depth() != 2 {
		t.Fatalf("expected filtered list above root, got depth %d", a.Depth())
	}
	if view := ansi.Strip(a.View()); !strings.Contains(view, "← esc") || strings.Contains(view, "quote number 1") {
		t.Fatalf("top should be the love list:\n%s", view)
	}

	a = press(a, keyRune('q'))
	if a.Depth() != 1 {
		t.Fatalf("q should pop a pushed list")
	}
	if view := ansi.Strip(a.View()); !strings.Contains(view, "quote number 1") {
		t.Fatalf("root list should have loaded in the background:\n%s", view)
	}
}

func TestNewApp_InvalidStartFilterIgnored(t *testing.T) {
	deps := newDeps(t)
	deps.Start = domain.Filter{Mode: domain.FilterAuthor}
	if a := NewApp(deps); a.Depth() != 1 {
		t.Fatalf("invalid start filter must not push a list")
	}
}

func TestQuitKeys(t *testing.T) {
	a := started(t, newDeps(t))
	if _, cmd := a.Update(keyRune('q')); !isQuit(cmd) {
		t.Fatalf("q on the root should quit")
	}

	a = press(a, tea.KeyMsg{Type: tea.KeyEnter})
	if _, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Fatalf("ctrl+c should always quit")
	}
}

func TestOpenQuote_PushesDetailAndBack(t *testing.T) {
	a := started(t, newDeps(t))
	a = press(a, keyRune('j'))
	a = press(a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.Depth() != 2 {
		t.Fatalf("expected detail screen, depth %d", a.Depth())
	}
	if _, ok := a.top().(detailScreen); !ok {
		t.Fatalf("top should be the detail screen, got %T", a.top())
	}
	if !strings.Contains(ansi.Strip(a.View()), "Quote #2") {
		t.Fatalf("detail should show the selected quote")
	}

	a = press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.Depth() != 1 {
		t.Fatalf("esc should return to the list")
	}
}

func TestOpenFilter_PushesListAndSavesState(t *testing.T) {
	deps := newDeps(t)
	a := started(t, deps)
	a = press(a, keyRune('c'))

	if a.Depth() != 2 {
		t.Fatalf("expected category list, depth %d", a.Depth())
	}
	l, ok := a.top().(listScreen)
	if !ok || l.m.Filter() != domain.ByCategory("courage") {
		t.Fatalf("unexpected top screen %T", a.top())
	}
	if len(l.m.Quotes()) != 2 {
		t.Fatalf("category list should load, got %d", len(l.m.Quotes()))
	}

	st, err := config.LoadUIState(deps.StatePath)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if st.FilterMode != "category" || st.FilterValue != "courage" {
		t.Fatalf("unexpected saved state %+v", st)
	}

	a = press(a, tea.KeyMsg{Type: tea.KeyEsc})
	st, _ = config.LoadUIState(deps.StatePath)
	if a.Depth() != 1 || st.FilterMode != "" {
		t.Fatalf("back to root should clear the saved filter, got %+v", st)
	}
}

func TestBrowse_OpenEntryThenBack(t *testing.T) {
	deps := newDeps(t)
	a := started(t, deps)
	a = press(a, keyRune('A'))

	b, ok := a.top().(browseScreen)
	if !ok || b.m.Kind() != common.BrowseAuthors || len(b.m.Entries()) != 1 {
		t.Fatalf("expected loaded author browser, got %T", a.top())
	}

	a = press(a, tea.KeyMsg{Type: tea.KeyEnter})
	l, ok := a.top().(listScreen)
	if !ok || l.m.Filter() != domain.ByAuthor("Maya Angelou") || a.Depth() != 3 {
		t.Fatalf("expected author list on top of browser")
	}

	a = press(a, tea.KeyMsg{Type: tea.KeyEsc})
	a = press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.Depth() != 1 {
		t.Fatalf("expected root after two backs, depth %d", a.Depth())
	}
	st, _ := config.LoadUIState(deps.StatePath)
	if st.BrowseTab != "authors" {
		t.Fatalf("browse tab should be remembered, got %+v", st)
	}
}

func TestBack_NeverPopsRoot(t *testing.T) {
	a := started(t, newDeps(t))
	updated, _ := a.Update(common.BackMsg{})
	if updated.(App).Depth() != 1 {
		t.Fatalf("root must stay on the stack")
	}
}

func TestPush_ReplaysWindowSize(t *testing.T) {
	size := tea.WindowSizeMsg{Width: 120, Height: 50}
	resized := func(t *testing.T, deps Deps) App {
		t.Helper()
		updated, _ := started(t, deps).Update(size)
		return updated.(App)
	}

	t.Run("detail", func(t *testing.T) {
		long := domain.Quote{ID: 9, Text: strings.Repeat("A long quote keeps wrapping across many lines. ", 60), AuthorName: "Maya Angelou"}
		a := resized(t, newDeps(t))
		updated, cmd := a.Update(common.OpenQuoteMsg{Quote: long})
		a = drain(updated.(App), cmd)

		want, _ := detailScreen{detail.New(long)}.update(size)
		unsized := detailScreen{detail.New(long)}
		if got := a.top().view(); got != want.view() || got == unsized.view() {
			t.Fatalf("detail should render at the last window size:\n%s", ansi.Strip(got))
		}
	})

	t.Run("filtered list", func(t *testing.T) {
		a := resized(t, newDeps(t))
		updated, cmd := a.Update(common.OpenFilterMsg{Filter: domain.ByCategory("courage")})
		a = drain(updated.(App), cmd)

		view := ansi.Strip(a.View())
		if !strings.Contains(view, "quote number 1") || !strings.Contains(view, "quote number 3") {
			t.Fatalf("sized list should show every card on one page:\n%s", view)
		}
	})

	t.Run("browse", func(t *testing.T) {
		deps := newDeps(t)
		deps.Catalog = wideCatalog{}
		a := resized(t, deps)
		updated, cmd := a.Update(common.OpenBrowseMsg{Kind: common.BrowseAuthors})
		a = drain(updated.(App), cmd)

		b, ok := a.top().(browseScreen)
		if !ok || len(b.m.Entries()) != 20 {
			t.Fatalf("expected loaded author browser, got %T", a.top())
		}
		view := ansi.Strip(a.View())
		if !strings.Contains(view, "Author 20") || strings.Contains(view, "1/20") {
			t.Fatalf("sized browser should fit every author:\n%s", view)
		}
	})
}
