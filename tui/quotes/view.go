package quotes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/quotebook/domain"
	"github.com/CrestNiraj12/quotebook/tui/common"
)

// View renders the list as a string.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading quotes...\n", m.spinner.View()))
	case m.err != nil && len(m.items) == 0:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n\n  Press r to retry.\n")
	case len(m.items) == 0:
		b.WriteString("  No quotes here yet.\n")
	default:
		b.WriteString(m.listView())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString(m.helpView())

	return b.String()
}

// Title is the heading of the list: the logo for the full list, the filter value otherwise.
func (m Model) Title() string {
	if m.filter.IsFiltered() {
		return m.filter.Title()
	}
	return domain.AppTitle
}

func (m Model) headerView() string {
	if !m.filter.IsFiltered() {
		title := common.AppTitleStyle.Render(domain.AppTitle)
		tagline := common.TaglineStyle.Render("<words worth keeping>")
		badge := common.BadgeStyle.Render(m.countLabel())
		return title + tagline + "\n" + badge + "\n"
	}

	back := common.BackStyle.Render("← esc")
	title := common.ListTitleStyle.Render(m.displayFilterValue())
	kind := "quotes in category"
	if m.filter.Mode == domain.FilterAuthor {
		kind = "quotes by author"
	}
	head := lipgloss.JoinHorizontal(lipgloss.Bottom, back, title)
	badge := common.BadgeStyle.Render(fmt.Sprintf("%s · %d", kind, len(m.items)))
	return head + "\n" + badge + "\n"
}

func (m Model) displayFilterValue() string {
	if m.filter.Mode == domain.FilterCategory {
		return common.DisplayCategory(m.filter.Value)
	}
	return m.filter.Title()
}

func (m Model) countLabel() string {
	if len(m.items) == 0 {
		return "All quotes"
	}
	return fmt.Sprintf("All quotes · %d of %d", len(m.items), max(m.total, len(m.items)))
}

func (m Model) listView() string {
	visible := m.visibleCount()
	start := min(max(m.startIndex, 0), len(m.items)-1)
	end := min(start+visible, len(m.items))

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row, ok := m.rowAt(i)
		if !ok {
			continue
		}
		cards = append(cards, m.renderCard(m.items[i].ID, row, i == m.cursor))
	}
	list := strings.Join(cards, "\n")

	if len(m.items) <= visible {
		return list
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, list, lipgloss.NewStyle().MarginLeft(2).Render(m.scrollBar(lipgloss.Height(list), visible)))
}

func (m Model) renderCard(id int, row QuoteRow, selected bool) string {
	cardWidth, textWidth := m.cardWidths()

	var header []string
	if row.Author != "" {
		header = append(header, row.Avatar+" "+common.AuthorStyle.Render(row.Author))
	}
	if row.Category != "" {
		header = append(header, common.CategoryStyle.Render(row.Category))
	}
	header = append(header, common.MetadataStyle.Render(fmt.Sprintf("#%d", id)))
	headLine := common.ClampLinesToWidth(strings.Join(header, "  "), textWidth)

	// Leave room for the ellipsis so a truncated line never wraps.
	preview := common.TruncateLines(row.Text, textWidth-3, previewLines)
	lines := strings.Split(preview, "\n")
	for len(lines) < previewLines {
		lines = append(lines, "")
	}
	for i, ln := range lines {
		lines[i] = common.ContentStyle.Render(ln)
	}

	content := headLine + "\n" + strings.Join(lines, "\n")
	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(cardWidth - 2).Render(content)
}

func (m Model) scrollBar(height, visible int) string {
	total := len(m.items)
	if height < 1 || total == 0 {
		return ""
	}
	thumb := max(int(float64(visible)/float64(total)*float64(height)), 1)
	top := int(float64(m.startIndex) / float64(total) * float64(height))
	if top+thumb > height {
		top = height - thumb
	}

	on := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8700")).Render("┃")
	off := lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")).Render("┃")
	var sb strings.Builder
	for j := range height {
		if j >= top && j < top+thumb {
			sb.WriteString(on)
		} else {
			sb.WriteString(off)
		}
		if j < height-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m Model) statusLine() string {
	switch {
	case m.loadingMore:
		return fmt.Sprintf("  %s Loading more quotes...\n", m.spinner.View())
	case m.err != nil && len(m.items) > 0:
		return common.ErrorStyle.Render(fmt.Sprintf("  Error: %v (r to retry)", m.err)) + "\n"
	case m.notice != "":
		return "  " + common.NoticeStyle.Render(m.notice) + "\n"
	case !m.filter.IsFiltered() && !m.loading && !m.canLoadMore && len(m.items) > 0:
		return "  " + common.NoticeStyle.Render("📖 End of the book.") + "\n"
	}
	return "\n"
}

func (m Model) helpView() string {
	k := m.keys
	var line string
	switch {
	case m.showAllHints:
		exit := k.Quit
		if m.filter.IsFiltered() {
			exit = k.Back
		}
		line = common.HelpLine(k.Up, k.Down, k.Top, k.Bottom, k.Open) + "\n  " +
			common.HelpLine(k.ByCategory, k.ByAuthor, k.BrowseCategory, k.BrowseAuthor) + "\n  " +
			common.HelpLine(k.Refresh, k.ToggleHints, exit)
	case len(m.items) == 0:
		if m.filter.IsFiltered() {
			line = common.HelpLine(k.Refresh, k.Back)
		} else {
			line = common.HelpLine(k.Refresh, k.BrowseCategory, k.BrowseAuthor, k.Quit)
		}
	case m.filter.IsFiltered():
		line = common.HelpLine(k.Down, k.Open, k.ByCategory, k.ByAuthor, k.Refresh, k.Back, k.ToggleHints)
	default:
		line = common.HelpLine(k.Down, k.Open, k.ByCategory, k.ByAuthor, k.Refresh, k.Quit, k.ToggleHints)
	}
	return common.StatusBarStyle.Render("  " + line)
}
