package browse

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/quotebook/app"
	"github.com/CrestNiraj12/quotebook/domain"
	"github.com/CrestNiraj12/quotebook/tui/common"
)

// EntriesLoadedMsg carries the catalog for one tab.
type EntriesLoadedMsg struct {
	BrowseID int64
	Kind     common.BrowseKind
	Entries  []app.CatalogEntry
	ReqSeq   int
}

// EntriesErrorMsg is sent when the catalog could not be read.
type EntriesErrorMsg struct {
	BrowseID int64
	Kind     common.BrowseKind
	Err      error
	ReqSeq   int
}

var nextBrowseID atomic.Int64

// Model lists categories or authors and opens the quotes of the chosen one.
type Model struct {
	id      int64
	catalog app.CatalogService
	kind    common.BrowseKind

	entries []app.CatalogEntry
	loading bool
	err     error
	reqSeq  int

	cursor     int
	startIndex int
	width      int
	height     int

	keys    common.KeyMap
	spinner spinner.Model
}

// New creates a browser showing kind first.
func New(catalog app.CatalogService, kind common.BrowseKind) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F"))
	m := Model{
		id:      nextBrowseID.Add(1),
		catalog: catalog,
		kind:    kind,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
	m.loading = true
	m.reqSeq++
	return m
}

// Kind returns the active tab.
func (m Model) Kind() common.BrowseKind {
	return m.kind
}

// Entries returns the rows of the active tab.
func (m Model) Entries() []app.CatalogEntry {
	return m.entries
}

// Loading reports whether the catalog is being read.
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the last load error.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.reqSeq), m.spinner.Tick)
}

// reload discards the rows and reads the active tab again.
func (m *Model) reload() tea.Cmd {
	m.entries = nil
	m.cursor = 0
	m.startIndex = 0
	m.err = nil
	m.loading = true
	m.reqSeq++
	return tea.Batch(m.fetch(m.reqSeq), m.spinner.Tick)
}

func (m Model) fetch(reqSeq int) tea.Cmd {
	catalog := m.catalog
	kind := m.kind
	id := m.id
	return func() tea.Msg {
		ctx := context.Background()
		var (
			entries []app.CatalogEntry
			err     error
		)
		if kind == common.BrowseAuthors {
			entries, err = catalog.Authors(ctx)
		} else {
			entries, err = catalog.Categories(ctx)
		}
		if err != nil {
			return EntriesErrorMsg{BrowseID: id, Kind: kind, Err: err, ReqSeq: reqSeq}
		}
		return EntriesLoadedMsg{BrowseID: id, Kind: kind, Entries: entries, ReqSeq: reqSeq}
	}
}

func (m Model) owns(id int64, kind common.BrowseKind, reqSeq int) bool {
	return id == m.id && kind == m.kind && reqSeq == m.reqSeq
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case EntriesLoadedMsg:
		if !m.owns(msg.BrowseID, msg.Kind, msg.ReqSeq) {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.entries = msg.Entries
		m.ensureCursorVisible()
		return m, nil

	case EntriesErrorMsg:
		if !m.owns(msg.BrowseID, msg.Kind, msg.ReqSeq) {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return common.BackMsg{} }

	case key.Matches(msg, m.keys.SwitchTab):
		if m.kind == common.BrowseAuthors {
			m.kind = common.BrowseCategories
		} else {
			m.kind = common.BrowseAuthors
		}
		return m, m.reload()

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		return m, m.reload()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.entries)-1, 0)
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Open):
		if m.cursor < 0 || m.cursor >= len(m.entries) {
			return m, nil
		}
		name := m.entries[m.cursor].Name
		f := domain.ByCategory(name)
		if m.kind == common.BrowseAuthors {
			f = domain.ByAuthor(name)
		}
		if f.Validate() != nil {
			return m, nil
		}
		return m, func() tea.Msg { return common.OpenFilterMsg{Filter: f} }
	}
	return m, nil
}

func (m Model) visibleRows() int {
	if m.height <= 0 {
		return 10
	}
	// header (back + tabs + margin) and footer (status + help)
	return max(m.height-8, 1)
}

func (m *Model) ensureCursorVisible() {
	if len(m.entries) == 0 {
		m.cursor = 0
		m.startIndex = 0
		return
	}
	m.cursor = min(max(m.cursor, 0), len(m.entries)-1)
	visible := m.visibleRows()
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	}
	if m.cursor >= m.startIndex+visible {
		m.startIndex = m.cursor - visible + 1
	}
	m.startIndex = min(max(m.startIndex, 0), max(len(m.entries)-visible, 0))
}
