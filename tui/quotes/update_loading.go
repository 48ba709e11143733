package quotes

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/quotebook/domain"
)

func (m Model) handleLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuotesLoadedMsg:
		if !m.owns(msg.ListID, msg.ReqSeq, msg.QueryKey) {
			return m, nil
		}
		m.loading = false
		m.loadingMore = false
		m.err = nil

		if m.filter.IsFiltered() {
			// Filtered queries are unpaginated: the response is the whole list.
			m.items = append([]domain.Quote(nil), msg.Quotes...)
			m.canLoadMore = false
		} else {
			if msg.TotalFetched {
				m.total = msg.Total
			}
			m.appendPage(msg.Quotes)
		}

		if m.cursor >= len(m.items) {
			m.cursor = max(len(m.items)-1, 0)
		}
		m.ensureCursorVisible()
		return m, nil

	case QuotesErrorMsg:
		if !m.owns(msg.ListID, msg.ReqSeq, msg.QueryKey) {
			return m, nil
		}
		m.loading = false
		m.loadingMore = false
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// owns reports whether a response belongs to this list's latest request.
func (m Model) owns(listID int64, reqSeq int, queryKey string) bool {
	return listID == m.id && reqSeq == m.reqSeq && queryKey == m.filter.Key()
}

// appendPage adds an AllQuotes page and advances the pagination cursor.
func (m *Model) appendPage(page []domain.Quote) {
	if len(page) == 0 {
		m.canLoadMore = false
		return
	}

	seen := make(map[int]struct{}, len(m.items))
	for _, q := range m.items {
		seen[q.ID] = struct{}{}
	}
	for _, q := range page {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		seen[q.ID] = struct{}{}
		m.items = append(m.items, q)
	}

	m.lastQuoteIndex = page[len(page)-1].ID
	m.canLoadMore = m.lastQuoteIndex < m.total
}
