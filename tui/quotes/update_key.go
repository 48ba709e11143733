package quotes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/quotebook/domain"
	"github.com/CrestNiraj12/quotebook/tui/common"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showAllHints {
		if key.Matches(msg, m.keys.ToggleHints) || key.Matches(msg, m.keys.Back) {
			m.showAllHints = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ToggleHints):
		m.showAllHints = true
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		cmd := m.loadData(true)
		if cmd == nil {
			m.notice = "⏳ Already loading..."
			return m, nil
		}
		return m, tea.Batch(cmd, m.spinner.Tick)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, m.maybeStartPrefetch()

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.items)-1, 0)
		m.ensureCursorVisible()
		return m, m.maybeStartPrefetch()

	case key.Matches(msg, m.keys.Open):
		q, ok := m.SelectedQuote()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return common.OpenQuoteMsg{Quote: q} }

	case key.Matches(msg, m.keys.ByCategory):
		q, ok := m.SelectedQuote()
		if !ok || strings.TrimSpace(q.CategoryName) == "" {
			return m, nil
		}
		return m, m.openFilter(domain.ByCategory(q.CategoryName))

	case key.Matches(msg, m.keys.ByAuthor):
		q, ok := m.SelectedQuote()
		if !ok || strings.TrimSpace(q.AuthorName) == "" {
			return m, nil
		}
		return m, m.openFilter(domain.ByAuthor(q.AuthorName))

	case key.Matches(msg, m.keys.BrowseCategory):
		return m, func() tea.Msg { return common.OpenBrowseMsg{Kind: common.BrowseCategories} }

	case key.Matches(msg, m.keys.BrowseAuthor):
		return m, func() tea.Msg { return common.OpenBrowseMsg{Kind: common.BrowseAuthors} }

	case key.Matches(msg, m.keys.Back):
		if !m.filter.IsFiltered() {
			return m, nil
		}
		return m, func() tea.Msg { return common.BackMsg{} }
	}

	return m, nil
}

// openFilter opens a filtered list unless it is the list already shown.
func (m Model) openFilter(f domain.Filter) tea.Cmd {
	if f.Key() == m.filter.Key() {
		return nil
	}
	return func() tea.Msg { return common.OpenFilterMsg{Filter: f} }
}

// maybeStartPrefetch loads the next page once the cursor is near the end.
func (m *Model) maybeStartPrefetch() tea.Cmd {
	if len(m.items) == 0 || m.cursor < len(m.items)-prefetchTrigger {
		return nil
	}
	cmd := m.loadData(false)
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, m.spinner.Tick)
}
