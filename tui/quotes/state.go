package quotes

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/quotebook/app"
	"github.com/CrestNiraj12/quotebook/domain"
	"github.com/CrestNiraj12/quotebook/tui/common"
)

const (
	defaultPageSize = 20
	prefetchTrigger = 3
	// cellHeight is the rendered height of one quote card including its border.
	cellHeight   = 5
	previewLines = 2
)

// QuotesLoadedMsg is sent when a quote fetch completes successfully.
type QuotesLoadedMsg struct {
	ListID   int64
	Quotes   []domain.Quote
	QueryKey string
	ReqSeq   int
	Refresh  bool

	// Total is only meaningful when TotalFetched is set (unfiltered refreshes).
	Total        int
	TotalFetched bool
	TotalErr     error
}

// QuotesErrorMsg is sent when a quote fetch fails.
type QuotesErrorMsg struct {
	ListID   int64
	Err      error
	QueryKey string
	ReqSeq   int
	Refresh  bool
}

var nextListID atomic.Int64

// Model holds the state for one quote list screen.
type Model struct {
	id       int64
	quotes   app.QuoteService
	filter   domain.Filter
	pageSize int

	items          []domain.Quote
	lastQuoteIndex int // ID of the last quote returned by AllQuotes
	total          int
	canLoadMore    bool
	loading        bool // refresh in flight
	loadingMore    bool // next page in flight
	reqSeq         int
	err            error
	notice         string

	cursor       int
	startIndex   int
	showAllHints bool
	width        int
	height       int

	keys    common.KeyMap
	spinner spinner.Model
}

// New creates a quote list for filter. The first load starts with Init.
func New(quotes app.QuoteService, filter domain.Filter, pageSize int) Model {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F"))

	m := Model{
		id:       nextListID.Add(1),
		quotes:   quotes,
		filter:   filter,
		pageSize: pageSize,
		total:    domain.DefaultTotalQuotes,
		keys:     common.DefaultKeyMap(),
		spinner:  s,
	}
	m.beginLoad(true)
	return m
}

// Init fetches the first page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchQuotes(m.reqSeq, true),
		m.spinner.Tick,
	)
}

// Refresh resets the list and reloads it. It returns nil while a request is in flight.
func (m *Model) Refresh() tea.Cmd {
	return m.loadData(true)
}

// Update handles messages for the list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case QuotesLoadedMsg, QuotesErrorMsg:
		return m.handleLoadingMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}
