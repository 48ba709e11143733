package quotes

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/quotebook/domain"
)

// loadData starts a fetch for the current filter. It returns nil when a
// request is already in flight or there is nothing more to load.
func (m *Model) loadData(refresh bool) tea.Cmd {
	if m.loading || m.loadingMore {
		return nil
	}
	if !refresh && (m.filter.IsFiltered() || !m.canLoadMore) {
		return nil
	}
	m.beginLoad(refresh)
	return m.fetchQuotes(m.reqSeq, refresh)
}

// beginLoad records a new in-flight request. A refresh drops the loaded list
// and rewinds the pagination cursor.
func (m *Model) beginLoad(refresh bool) {
	if refresh {
		m.lastQuoteIndex = 0
		m.items = nil
		m.cursor = 0
		m.startIndex = 0
		m.canLoadMore = false
		m.loading = true
	} else {
		m.loadingMore = true
	}
	m.err = nil
	m.notice = ""
	m.reqSeq++
}

// fetchQuotes issues the one query the filter calls for.
func (m Model) fetchQuotes(reqSeq int, refresh bool) tea.Cmd {
	svc := m.quotes
	listID := m.id
	filter := m.filter
	queryKey := filter.Key()
	after := m.lastQuoteIndex
	limit := m.pageSize
	return func() tea.Msg {
		ctx := context.Background()
		loaded := QuotesLoadedMsg{ListID: listID, QueryKey: queryKey, ReqSeq: reqSeq, Refresh: refresh}

		var err error
		switch filter.Mode {
		case domain.FilterCategory:
			loaded.Quotes, err = svc.QuotesByCategory(ctx, filter.Value)
		case domain.FilterAuthor:
			loaded.Quotes, err = svc.QuotesByAuthor(ctx, filter.Value)
		default:
			if refresh {
				total, terr := svc.TotalQuotes(ctx)
				if terr != nil {
					total = domain.DefaultTotalQuotes
					loaded.TotalErr = terr
				}
				loaded.Total = total
				loaded.TotalFetched = true
			}
			loaded.Quotes, err = svc.AllQuotes(ctx, after, limit)
		}
		if err != nil {
			return QuotesErrorMsg{ListID: listID, Err: err, QueryKey: queryKey, ReqSeq: reqSeq, Refresh: refresh}
		}
		return loaded
	}
}
