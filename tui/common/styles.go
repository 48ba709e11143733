package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application logo. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F5A97F")).
			Padding(1, 0, 0, 1)

	// ListTitleStyle styles the heading of filtered lists.
	ListTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CAD3F5")).
			Padding(1, 0, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")). // Dimmed grey
			Italic(true).
			MarginLeft(1)

	// BadgeStyle styles the filter badge next to a list title.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true).
			Margin(0, 0, 1, 1)

	// BackStyle styles the back affordance of pushed screens.
	BackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			MarginLeft(1)

	// AuthorStyle styles the quote author name.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// CategoryStyle styles the category tag.
	CategoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A9A9A9")).
			Background(lipgloss.Color("#2F2F2F")).
			Padding(0, 1)

	// ContentStyle styles quote text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// MetadataStyle styles secondary details such as IDs and counts.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// SelectedStyle highlights the currently selected quote.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F5A97F")).
			Padding(0, 1)

	// UnselectedStyle gives unselected quotes a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// SelectedRowStyle highlights the selected row of plain lists.
	SelectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#333333")).
				Foreground(lipgloss.Color("#FFFFFF"))

	// TabActiveStyle styles the active browse tab.
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5A97F")).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	// TabInactiveStyle styles inactive browse tabs.
	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D")).
				Padding(0, 1)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// NoticeStyle styles paging notices ("End of the book.").
	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8E8E8E")).
			Italic(true)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)
)
