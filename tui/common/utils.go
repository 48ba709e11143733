package common

import (
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// DisplayCategory title-cases a stored category name ("self help" → "Self Help").
func DisplayCategory(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return titleCaser.String(name)
}

// Initials returns up to two upper-case initials for an author name.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
	}
	switch len(out) {
	case 0:
		return "?"
	case 1:
		return string(out)
	default:
		return string([]rune{out[0], out[len(out)-1]})
	}
}

var avatarPalette = []string{
	"#7DC4E4", "#8BD5CA", "#F5A97F", "#C6A0F6", "#EBA0AC",
	"#A6DA95", "#F9E2AF", "#89B4FA", "#F38BA8", "#94E2D5",
}

// AvatarFor renders the author's initials as a coloured badge. The colour is
// stable per author.
func AvatarFor(author string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(author))))
	color := avatarPalette[int(h.Sum32()%uint32(len(avatarPalette)))]
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1E1E2E")).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(Initials(author))
}

// TruncateLines wraps text to width and keeps at most maxLines, marking the cut with "...".
func TruncateLines(text string, width, maxLines int) string {
	if width < 12 {
		width = 12
	}
	if maxLines < 1 {
		maxLines = 1
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) <= maxLines {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[:maxLines], "\n") + "..."
}

// ClampLinesToWidth cuts every line to at most width cells.
func ClampLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width)
	}
	return strings.Join(lines, "\n")
}
