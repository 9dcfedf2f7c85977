package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pantry/internal/dummyjson"
)

// detailState tracks the recipe that is open. Responses for any other id
// are dropped.
type detailState struct {
	id      int
	recipe  *dummyjson.Recipe
	loading bool
	err     error
}

// openSelected switches to the detail view for the row under the cursor and
// fetches it by id.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	r, ok := m.selectedRecipe()
	if !ok {
		return m, nil
	}
	return m, m.openDetail(r.ID)
}

func (m *Model) openDetail(id int) tea.Cmd {
	m.currentView = ViewDetail
	m.detail = detailState{id: id, loading: true}
	m.detailViewport.GotoTop()
	m.refreshDetailContent()
	if m.gateway == nil {
		return nil
	}
	return fetchRecipeCmd(m.ctx, m.gateway, id)
}

// handleRecipe applies a lookup result if it is for the open recipe.
func (m *Model) handleRecipe(msg recipeMsg) {
	if m.currentView != ViewDetail || msg.id != m.detail.id {
		return
	}
	m.detail.loading = false
	if msg.err != nil {
		m.detail.err = msg.err
		m.detail.recipe = nil
	} else {
		recipe := msg.recipe
		m.detail.err = nil
		m.detail.recipe = &recipe
	}
	m.refreshDetailContent()
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.currentView = ViewList
		m.detail = detailState{}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		if m.detail.err != nil && !m.detail.loading {
			return m, m.openDetail(m.detail.id)
		}
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.detailViewport.ScrollDown(1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.detailViewport.ScrollUp(1)
		return m, nil
	case key.Matches(msg, m.keys.HalfPageDown):
		m.detailViewport.HalfPageDown()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.detailViewport.HalfPageUp()
		return m, nil
	}
	return m, nil
}

func (m *Model) resizeDetailViewport() {
	m.detailViewport.Width = m.width
	m.detailViewport.Height = m.contentHeight()
	m.refreshDetailContent()
}

// refreshDetailContent re-renders the open recipe into the viewport.
func (m *Model) refreshDetailContent() {
	if m.currentView != ViewDetail {
		return
	}
	m.detailViewport.SetContent(m.detailContent())
}

// renderDetail renders the viewport plus the footer.
func (m Model) renderDetail() string {
	var body string
	switch {
	case m.detail.loading:
		body = m.renderCentered(m.contentHeight(),
			m.spinner.View()+" "+m.theme.Styles().MutedText.Render("Loading recipe..."))
	case m.detail.err != nil:
		body = m.renderError(m.contentHeight(), m.detail.err.Error())
	default:
		body = m.detailViewport.View()
	}

	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	status := ""
	if m.detail.recipe != nil {
		status = bg.Render(fmt.Sprintf("#%d", m.detail.id), styles.FaintText) + bg.Spaces(2) +
			bg.Render(fmt.Sprintf("%3.0f%%", m.detailViewport.ScrollPercent()*100), styles.MutedText)
	}
	footer := bg.FillLine(bg.Space()+status, m.width) + "\n" + m.help.View(detailKeys{m.keys})
	return body + "\n" + footer
}

// detailContent renders the full recipe for the viewport.
func (m Model) detailContent() string {
	r := m.detail.recipe
	if r == nil {
		if m.detail.loading || m.detail.err != nil {
			return ""
		}
		return m.theme.Styles().MutedText.Render("Recipe not found")
	}

	styles := m.theme.Styles()
	width := max(20, m.width-4)
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(r.Name))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", min(width, lipgloss.Width(r.Name)+4))))
	b.WriteString("\n\n")

	// Stats
	b.WriteString(styles.DifficultyStyle(r.Difficulty).Render(string(r.Difficulty.Normalized())))
	if r.Cuisine != "" {
		b.WriteString("  ")
		b.WriteString(styles.AccentText.Render(r.Cuisine))
	}
	b.WriteString("  ")
	b.WriteString(styles.WarningText.Render(stars(r.Rating)))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(" %.1f (%d reviews)", r.Rating, r.ReviewCount)))
	b.WriteString("\n\n")

	stats := []struct{ label, value string }{
		{"Prep", formatMinutes(r.PrepTimeMinutes)},
		{"Cook", formatMinutes(r.CookTimeMinutes)},
		{"Total", formatMinutes(r.TotalMinutes())},
		{"Servings", fmt.Sprintf("%d", r.Servings)},
		{"Calories", fmt.Sprintf("%d kcal/serving", r.CaloriesPerServing)},
	}
	for _, s := range stats {
		b.WriteString(styles.MutedText.Render(padRight(s.label, 10)))
		b.WriteString(styles.Text.Render(s.value))
		b.WriteString("\n")
	}

	if tags := joinNonEmpty(r.Tags, ", "); tags != "" {
		b.WriteString(styles.MutedText.Render(padRight("Tags", 10)))
		b.WriteString(styles.InfoText.Render(tags))
		b.WriteString("\n")
	}
	if meals := joinNonEmpty(r.MealType, ", "); meals != "" {
		b.WriteString(styles.MutedText.Render(padRight("Meal", 10)))
		b.WriteString(styles.Text.Render(meals))
		b.WriteString("\n")
	}

	wrap := lipgloss.NewStyle().Width(width)

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Ingredients"))
	b.WriteString("\n")
	for _, ing := range r.Ingredients {
		b.WriteString(wrap.Render(styles.WarningText.Render("• ") + styles.Text.Render(ing)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Instructions"))
	b.WriteString("\n")
	for i, step := range r.Instructions {
		b.WriteString(wrap.Render(styles.WarningText.Render(fmt.Sprintf("%d. ", i+1)) + styles.Text.Render(step)))
		b.WriteString("\n")
	}

	if r.Image != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Image: " + r.Image))
		b.WriteString("\n")
	}

	return b.String()
}
