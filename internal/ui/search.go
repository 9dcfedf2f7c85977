package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pantry/internal/listing"
)

// startSearch focuses the search input, seeded with the active term.
func (m *Model) startSearch() tea.Cmd {
	m.searching = true
	m.search.SetValue(m.list.SearchTerm)
	m.search.CursorEnd()
	return m.search.Focus()
}

// handleSearchKey routes keys to the search input while it has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		term := strings.TrimSpace(m.search.Value())
		m.search.SetValue(term)
		m.selected = 0
		m.currentView = ViewList
		return m, m.dispatch(listing.Search{Term: term})

	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.list.SearchTerm)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// renderSearchBar renders the second header line: the live input while
// editing, otherwise the active filter.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	var content string
	switch {
	case m.searching:
		content = m.search.View()
	case m.list.Searching():
		content = bg.Render("Search:", styles.MutedText) + bg.Space() +
			bg.Render(truncate(m.list.SearchTerm, max(10, m.width/2)), styles.AccentText) +
			bg.Spaces(2) + bg.Render("c to clear", styles.FaintText)
	default:
		content = bg.Render("All recipes", styles.MutedText) + bg.Spaces(2) +
			bg.Render("/ to search", styles.FaintText)
	}
	return bg.FillLine(bg.Space()+content, m.width)
}
