package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/CrestNiraj12/quotebook/app"
	"github.com/CrestNiraj12/quotebook/domain"
	"github.com/CrestNiraj12/quotebook/infra/config"
	"github.com/CrestNiraj12/quotebook/tui/browse"
	"github.com/CrestNiraj12/quotebook/tui/common"
	"github.com/CrestNiraj12/quotebook/tui/detail"
	"github.com/CrestNiraj12/quotebook/tui/quotes"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Quotes    app.QuoteService
	Catalog   app.CatalogService
	PageSize  int
	Start     domain.Filter     // Opened on top of the full list when filtered
	BrowseTab common.BrowseKind // Tab the browse screen remembers
	StatePath string
	Logger    zerolog.Logger
}

type stateSavedMsg struct {
	Err error
}

// App is the root Bubble Tea model. It keeps a stack of screens whose
// bottom is always the full quote list.
type App struct {
	deps      Deps
	log       zerolog.Logger
	stack     []screen
	keys      common.KeyMap
	size      tea.WindowSizeMsg
	sized     bool
	browseTab common.BrowseKind
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	a := App{
		deps:      deps,
		log:       deps.Logger,
		keys:      common.DefaultKeyMap(),
		browseTab: deps.BrowseTab,
	}
	a.stack = []screen{listScreen{quotes.New(deps.Quotes, domain.AllQuotes(), deps.PageSize)}}
	if deps.Start.IsFiltered() {
		if err := deps.Start.Validate(); err != nil {
			a.log.Warn().Err(err).Msg("ignoring start filter")
		} else {
			a.stack = append(a.stack, listScreen{quotes.New(deps.Quotes, deps.Start, deps.PageSize)})
		}
	}
	return a
}

// Init starts every screen on the initial stack.
func (a App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.stack))
	for _, s := range a.stack {
		cmds = append(cmds, s.init())
	}
	return tea.Batch(cmds...)
}

// Depth is the number of stacked screens.
func (a App) Depth() int {
	return len(a.stack)
}

func (a App) top() screen {
	return a.stack[len(a.stack)-1]
}

// Update handles navigation and routes everything else to the screens.
// Keys only reach the top screen; other messages reach every screen so
// background lists finish their loads.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Quit) {
			if len(a.stack) == 1 {
				return a, tea.Quit
			}
			return a.pop()
		}
		s, cmd := a.top().update(msg)
		a.stack[len(a.stack)-1] = s
		return a, cmd

	case tea.WindowSizeMsg:
		a.size = msg
		a.sized = true
		return a.broadcast(msg)

	case common.OpenQuoteMsg:
		a.log.Debug().Int("quote_id", msg.Quote.ID).Msg("open quote")
		return a.push(detailScreen{detail.New(msg.Quote)})

	case common.OpenFilterMsg:
		if err := msg.Filter.Validate(); err != nil {
			a.log.Warn().Err(err).Msg("ignoring filter")
			return a, nil
		}
		a.log.Debug().Str("filter", msg.Filter.Key()).Int("depth", len(a.stack)+1).Msg("open list")
		var cmd tea.Cmd
		a, cmd = a.push(listScreen{quotes.New(a.deps.Quotes, msg.Filter, a.deps.PageSize)})
		return a, tea.Batch(cmd, a.saveState())

	case common.OpenBrowseMsg:
		if a.deps.Catalog == nil {
			return a, nil
		}
		a.browseTab = msg.Kind
		a.log.Debug().Str("kind", msg.Kind.String()).Msg("open browser")
		var cmd tea.Cmd
		a, cmd = a.push(browseScreen{browse.New(a.deps.Catalog, msg.Kind)})
		return a, tea.Batch(cmd, a.saveState())

	case common.BackMsg:
		return a.pop()

	case stateSavedMsg:
		if msg.Err != nil {
			a.log.Warn().Err(msg.Err).Msg("save ui state")
		}
		return a, nil

	case quotes.QuotesErrorMsg:
		a.log.Error().Err(msg.Err).Str("query", msg.QueryKey).Bool("refresh", msg.Refresh).Msg("load quotes")

	case quotes.QuotesLoadedMsg:
		if msg.TotalErr != nil {
			a.log.Warn().Err(msg.TotalErr).Int("fallback", msg.Total).Msg("count quotes")
		}
		a.log.Debug().Str("query", msg.QueryKey).Int("count", len(msg.Quotes)).Msg("quotes loaded")

	case browse.EntriesErrorMsg:
		a.log.Error().Err(msg.Err).Str("kind", msg.Kind.String()).Msg("load catalog")
	}

	return a.broadcast(msg)
}

func (a App) broadcast(msg tea.Msg) (App, tea.Cmd) {
	var cmds []tea.Cmd
	for i, s := range a.stack {
		updated, cmd := s.update(msg)
		a.stack[i] = updated
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// push starts s and places it on top, replaying the last window size.
func (a App) push(s screen) (App, tea.Cmd) {
	var sizeCmd tea.Cmd
	if a.sized {
		s, sizeCmd = s.update(a.size)
	}
	a.stack = append(a.stack, s)
	return a, tea.Batch(s.init(), sizeCmd)
}

// pop drops the top screen. The root list is never popped.
func (a App) pop() (App, tea.Cmd) {
	if len(a.stack) == 1 {
		return a, nil
	}
	if b, ok := a.top().(browseScreen); ok {
		a.browseTab = b.m.Kind()
	}
	a.stack = a.stack[:len(a.stack)-1]
	a.log.Debug().Int("depth", len(a.stack)).Msg("back")
	return a, a.saveState()
}

// currentFilter is the filter of the topmost list on the stack.
func (a App) currentFilter() domain.Filter {
	for i := len(a.stack) - 1; i >= 0; i-- {
		if l, ok := a.stack[i].(listScreen); ok {
			return l.m.Filter()
		}
	}
	return domain.AllQuotes()
}

func (a App) saveState() tea.Cmd {
	path := a.deps.StatePath
	if path == "" {
		return nil
	}
	st := config.UIState{BrowseTab: a.browseTab.String()}
	if f := a.currentFilter(); f.IsFiltered() {
		st.FilterMode = f.Mode.String()
		st.FilterValue = f.Value
	}
	return func() tea.Msg {
		return stateSavedMsg{Err: config.SaveUIState(path, st)}
	}
}

// View renders the top screen.
func (a App) View() string {
	return a.top().view()
}
