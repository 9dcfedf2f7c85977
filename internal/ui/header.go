package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pantry/internal/listing"
)

// renderHeader renders the status bar and the search bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("pantry", styles.Logo)}

	if m.currentView == ViewDetail {
		parts = append(parts, bg.Render("Recipe", styles.AccentText))
	} else {
		parts = append(parts, bg.Render("Recipes", styles.AccentText))
	}

	counter := fmt.Sprintf("%d", len(m.list.Items))
	if m.list.Total > 0 {
		counter = fmt.Sprintf("%d of %d", len(m.list.Items), m.list.Total)
	}
	parts = append(parts,
		bg.Render("Loaded:", styles.MutedText)+bg.Space()+bg.Render(counter, styles.Text))

	if status := m.phaseStatus(styles, bg); status != "" {
		parts = append(parts, status)
	}

	if m.width >= LayoutCompactWidth {
		parts = append(parts, bg.Render(m.theme.Name, styles.FaintText))
	}

	bar := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Space() + bg.Join(parts, "  "))

	return bar + "\n" + m.renderSearchBar()
}

// phaseStatus renders the in-flight or failure indicator for the header.
func (m Model) phaseStatus(styles Styles, bg BgStyle) string {
	spin := m.spinner.View()
	switch m.list.Phase {
	case listing.PhaseIdle, listing.PhaseLoading:
		return spin + bg.Space() + bg.Render("Loading...", styles.WarningText)
	case listing.PhaseRefreshing:
		return spin + bg.Space() + bg.Render("Refreshing...", styles.WarningText)
	case listing.PhaseLoadingMore:
		return spin + bg.Space() + bg.Render("Loading more...", styles.WarningText)
	case listing.PhaseFailed:
		return bg.Render("● ERROR", styles.DangerText)
	case listing.PhaseLoaded:
		if !m.list.HasMore && len(m.list.Items) > 0 {
			return bg.Render("● All loaded", styles.SuccessText)
		}
		return bg.Render("●", styles.SuccessText)
	}
	return ""
}
