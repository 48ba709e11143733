package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/quotebook/domain"
	"github.com/CrestNiraj12/quotebook/tui/common"
)

const (
	maxCardWidth = 74
	// header (crumb + margin) and footer (meta + help block)
	chromeLines = 9
)

// Model shows one quote in full. It owns a copy of the quote.
type Model struct {
	quote    domain.Quote
	viewport viewport.Model
	width    int
	height   int
	keys     common.KeyMap
}

// New creates a detail screen for q.
func New(q domain.Quote) Model {
	m := Model{
		quote:    q,
		viewport: viewport.New(maxCardWidth, 10),
		keys:     common.DefaultKeyMap(),
	}
	m.viewport.SetContent(m.body())
	return m
}

// Quote returns the quote on screen.
func (m Model) Quote() domain.Quote {
	return m.quote
}

// Title names the screen in breadcrumbs.
func (m Model) Title() string {
	return fmt.Sprintf("Quote #%d", m.quote.ID)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.textWidth()
		m.viewport.Height = max(msg.Height-chromeLines, 3)
		m.viewport.SetContent(m.body())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return common.BackMsg{} }
		case key.Matches(msg, m.keys.ByCategory):
			if strings.TrimSpace(m.quote.CategoryName) == "" {
				return m, nil
			}
			f := domain.ByCategory(m.quote.CategoryName)
			return m, func() tea.Msg { return common.OpenFilterMsg{Filter: f} }
		case key.Matches(msg, m.keys.ByAuthor):
			if strings.TrimSpace(m.quote.AuthorName) == "" {
				return m, nil
			}
			f := domain.ByAuthor(m.quote.AuthorName)
			return m, func() tea.Msg { return common.OpenFilterMsg{Filter: f} }
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) textWidth() int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	// card border (2) + padding (4) + left margin (2)
	return max(min(w-4, maxCardWidth)-8, 20)
}

// body is the scrollable quote text.
func (m Model) body() string {
	text := m.quote.DisplayText()
	if text == "" {
		text = "(empty quote)"
	}
	wrapped := lipgloss.NewStyle().Width(m.textWidth()).Render("❝ " + text + " ❞")
	return common.ContentStyle.Render(wrapped)
}

func (m Model) View() string {
	var b strings.Builder

	back := common.BackStyle.Render("← esc")
	crumb := common.MetadataStyle.MarginLeft(1).Render(m.Title())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, back, crumb) + "\n\n")

	var meta []string
	if a := strings.TrimSpace(m.quote.AuthorName); a != "" {
		meta = append(meta, common.AvatarFor(a)+" "+common.AuthorStyle.Render("— "+a))
	}
	if c := common.DisplayCategory(m.quote.CategoryName); c != "" {
		meta = append(meta, common.CategoryStyle.Render(c))
	}

	content := m.viewport.View()
	if len(meta) > 0 {
		content += "\n\n" + strings.Join(meta, "  ")
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF8700")).
		Padding(1, 2).
		MarginLeft(2).
		Render(content)
	b.WriteString(card + "\n")

	if m.viewport.TotalLineCount() > m.viewport.Height {
		b.WriteString(common.MetadataStyle.MarginLeft(2).Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)) + "\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) helpView() string {
	k := m.keys
	bindings := []key.Binding{k.Up, k.Down}
	if strings.TrimSpace(m.quote.CategoryName) != "" {
		bindings = append(bindings, k.ByCategory)
	}
	if strings.TrimSpace(m.quote.AuthorName) != "" {
		bindings = append(bindings, k.ByAuthor)
	}
	bindings = append(bindings, k.Back)
	return common.StatusBarStyle.Render("  " + common.HelpLine(bindings...))
}
