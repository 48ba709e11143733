package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/quotebook/tui/common"
)

func (m Model) View() string {
	var b strings.Builder

	back := common.BackStyle.Render("← esc")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, back, "  ", m.tabsView()) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("  %s Loading %s...\n", m.spinner.View(), m.kind))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n\n  Press r to retry.\n")
	case len(m.entries) == 0:
		b.WriteString(fmt.Sprintf("  No %s yet.\n", m.kind))
	default:
		b.WriteString(m.rowsView())
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) tabsView() string {
	render := func(kind common.BrowseKind, label string) string {
		if kind == m.kind {
			return common.TabActiveStyle.Render(label)
		}
		return common.TabInactiveStyle.Render(label)
	}
	return render(common.BrowseCategories, "Categories") + render(common.BrowseAuthors, "Authors")
}

func (m Model) rowsView() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	nameWidth := min(max(width-16, 20), 60)

	end := min(m.startIndex+m.visibleRows(), len(m.entries))
	var b strings.Builder
	for i := m.startIndex; i < end; i++ {
		e := m.entries[i]
		name := e.Name
		if m.kind == common.BrowseCategories {
			name = common.DisplayCategory(name)
		}
		name = common.ClampLinesToWidth(name, nameWidth)
		line := fmt.Sprintf(" %-*s %5d ", nameWidth, name, e.Count)
		if i == m.cursor {
			line = common.SelectedRowStyle.Render(line)
		} else {
			line = common.ContentStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
	if len(m.entries) > m.visibleRows() {
		b.WriteString(common.MetadataStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.entries))) + "\n")
	}
	return b.String()
}

func (m Model) helpView() string {
	k := m.keys
	return common.StatusBarStyle.Render("  " + common.HelpLine(k.Down, k.Open, k.SwitchTab, k.Refresh, k.Back))
}
