package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/quotebook/tui/browse"
	"github.com/CrestNiraj12/quotebook/tui/detail"
	"github.com/CrestNiraj12/quotebook/tui/quotes"
)

// screen is one entry of the navigation stack.
type screen interface {
	init() tea.Cmd
	update(tea.Msg) (screen, tea.Cmd)
	view() string
}

type listScreen struct{ m quotes.Model }

func (s listScreen) init() tea.Cmd { return s.m.Init() }
func (s listScreen) view() string  { return s.m.View() }
func (s listScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	m, cmd := s.m.Update(msg)
	return listScreen{m}, cmd
}

type detailScreen struct{ m detail.Model }

func (s detailScreen) init() tea.Cmd { return s.m.Init() }
func (s detailScreen) view() string  { return s.m.View() }
func (s detailScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	m, cmd := s.m.Update(msg)
	return detailScreen{m}, cmd
}

type browseScreen struct{ m browse.Model }

func (s browseScreen) init() tea.Cmd { return s.m.Init() }
func (s browseScreen) view() string  { return s.m.View() }
func (s browseScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	m, cmd := s.m.Update(msg)
	return browseScreen{m}, cmd
}
