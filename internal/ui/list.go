package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pantry/internal/dummyjson"
	"github.com/five82/pantry/internal/listing"
)

// renderList renders the recipe rows plus the footer.
func (m Model) renderList() string {
	height := m.contentHeight()

	var body string
	switch {
	case len(m.list.Items) > 0:
		body = m.renderRows(height)
	case m.list.Phase == listing.PhaseFailed:
		body = m.renderError(height, m.list.ErrorMessage())
	case m.list.Empty():
		body = m.renderEmpty(height)
	default:
		body = m.renderCentered(height, m.spinner.View()+" "+m.theme.Styles().MutedText.Render("Loading recipes..."))
	}

	return body + "\n" + m.renderListFooter()
}

// listRows is the number of recipe rows that fit on screen.
func (m Model) listRows() int {
	return m.contentHeight()
}

// visibleRange returns the [start, end) window of items that keeps the
// selection on screen.
func visibleRange(selected, count, rows int) (int, int) {
	if rows <= 0 || count == 0 {
		return 0, 0
	}
	start := 0
	if selected >= rows {
		start = selected - rows + 1
	}
	end := min(count, start+rows)
	return start, end
}

func (m Model) renderRows(height int) string {
	styles := m.theme.Styles()
	start, end := visibleRange(m.selected, len(m.list.Items), height)

	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(styles, m.list.Items[i], i == m.selected))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one recipe card as a single line. Column widths shrink
// with the terminal.
func (m Model) renderRow(styles Styles, r dummyjson.Recipe, selected bool) string {
	compact := m.width < LayoutCompactWidth
	wide := m.width >= LayoutWideWidth

	badge := styles.DifficultyStyle(r.Difficulty).Render(padRight(string(r.Difficulty.Normalized()), 6))
	meta := []string{
		padRight(formatMinutes(r.TotalMinutes()), 7),
	}
	if !compact {
		meta = append(meta,
			padRight(truncate(r.Cuisine, 14), 14),
			padRight(fmt.Sprintf("%d kcal", r.CaloriesPerServing), 9))
	}
	if wide {
		meta = append(meta, fmt.Sprintf("%s %.1f", stars(r.Rating), r.Rating))
	}
	metaText := strings.Join(meta, "  ")

	// cursor(2) + badge(8) + gaps(4)
	nameWidth := max(10, m.width-lipgloss.Width(metaText)-14)
	name := padRight(truncate(r.Name, nameWidth), nameWidth)

	cursor := "  "
	if selected {
		cursor = "▶ "
	}

	if selected {
		line := cursor + name + "  " + badge + "  " + metaText
		return styles.Selected.Width(m.width).Render(line)
	}
	return styles.AccentText.Render(cursor) +
		styles.Text.Render(name) + "  " +
		badge + "  " +
		styles.MutedText.Render(metaText)
}

// renderListFooter renders the paging status line and the key hints.
func (m Model) renderListFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var status string
	switch {
	case m.list.Phase == listing.PhaseFailed && len(m.list.Items) > 0:
		status = bg.Render(truncate(m.list.ErrorMessage(), max(20, m.width-30)), styles.DangerText) +
			bg.Spaces(2) + bg.Render("r to retry", styles.WarningText)
	case m.list.LoadingMore():
		status = m.spinner.View() + bg.Space() + bg.Render("Loading more...", styles.MutedText)
	case m.list.Phase == listing.PhaseLoaded && !m.list.HasMore && len(m.list.Items) > 0:
		status = bg.Render("No more recipes to load", styles.FaintText)
	case m.list.Phase == listing.PhaseLoaded && len(m.list.Items) > 0:
		status = bg.Render(fmt.Sprintf("%d/%d", m.selected+1, len(m.list.Items)), styles.MutedText)
	}

	line := bg.FillLine(bg.Space()+status, m.width)
	return line + "\n" + m.help.View(m.keys)
}

func (m Model) renderEmpty(height int) string {
	styles := m.theme.Styles()
	text := styles.MutedText.Render("No recipes available")
	if m.list.Searching() {
		text = styles.Text.Bold(true).Render("No recipes found") + "\n" +
			styles.FaintText.Render("Try a different search term")
	}
	return m.renderCentered(height, text)
}

// renderError renders a failure that left nothing on screen.
func (m Model) renderError(height int, message string) string {
	styles := m.theme.Styles()
	if message == "" {
		message = "Something went wrong"
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(min(60, max(20, m.width-4))).
		Render(styles.DangerText.Render(message) + "\n\n" +
			styles.WarningText.Render("r") + styles.MutedText.Render(" Try Again"))
	return m.renderCentered(height, box)
}

func (m Model) renderCentered(height int, content string) string {
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}
