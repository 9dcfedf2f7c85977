package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pantry/internal/dummyjson"
	"github.com/five82/pantry/internal/listing"
	"github.com/five82/pantry/internal/logging"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewDetail
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Gateway   dummyjson.Gateway
	Logger    *slog.Logger
	ThemeName string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	gateway dummyjson.Gateway
	runner  listing.Runner
	logger  *slog.Logger
	keys    keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	help        help.Model
	spinner     spinner.Model

	// List state
	list     listing.State
	selected int

	// Search input
	searching bool
	search    textinput.Model

	// Detail state
	detail         detailState
	detailViewport viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	theme := GetTheme(themeName)

	search := textinput.New()
	search.Placeholder = "Search recipes..."
	search.Prompt = "/ "
	search.CharLimit = 80

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		gateway:     opts.Gateway,
		runner:      listing.Runner{Gateway: opts.Gateway, Logger: logger},
		logger:      logger,
		keys:        DefaultKeyMap(),
		theme:       theme,
		currentView: ViewList,
		help:        help.New(),
		spinner:     spin,
		list:        listing.New(),
		search:      search,
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		intentCmd(listing.Mount{}),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(m.width, m.contentHeight())
		}
		m.ready = true
		m.search.Width = max(10, m.width-8)
		m.help.Width = m.width
		m.resizeDetailViewport()
		return m, nil

	case listMsg:
		return m, m.dispatch(msg.event)

	case recipeMsg:
		m.handleRecipe(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	switch m.currentView {
	case ViewDetail:
		b.WriteString(m.renderDetail())
	default:
		b.WriteString(m.renderList())
	}
	return b.String()
}

// dispatch reduces ev into the list state and returns the command that runs
// any request it issued.
func (m *Model) dispatch(ev listing.Event) tea.Cmd {
	switch ev := ev.(type) {
	case listing.PageLoaded:
		m.logStale(ev.Request)
	case listing.LoadFailed:
		m.logStale(ev.Request)
	}

	next, req := listing.Reduce(m.list, ev)
	m.list = next
	m.clampSelection()
	if req == nil {
		return nil
	}
	return loadPageCmd(m.ctx, m.runner, *req)
}

func (m *Model) logStale(req listing.Request) {
	if !listing.Stale(m.list, req) {
		return
	}
	m.logger.Debug("discarding stale page",
		slog.String("load", req.Kind.String()),
		slog.String("term", req.Term),
		slog.Int("offset", req.Offset))
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.refreshDetailContent()
		return m, nil
	}

	switch m.currentView {
	case ViewDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// handleListKey processes keyboard input for the list view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.startSearch()

	case key.Matches(msg, m.keys.ClearSearch):
		m.search.SetValue("")
		m.selected = 0
		return m, m.dispatch(listing.ClearSearch{})

	case key.Matches(msg, m.keys.Refresh):
		if _, failed := m.list.FailedRequest(); failed {
			return m, m.dispatch(listing.Retry{})
		}
		m.selected = 0
		return m, m.dispatch(listing.Refresh{})

	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	}

	count := len(m.list.Items)
	if count == 0 {
		return m, nil
	}

	half := max(1, m.listRows()/2)
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	case key.Matches(msg, m.keys.HalfPageDown):
		m.selected = min(count-1, m.selected+half)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.selected = max(0, m.selected-half)
	default:
		return m, nil
	}

	return m, m.maybeLoadMore()
}

// maybeLoadMore asks for the next page once the cursor sits on the last row.
// The reducer's guard turns repeated requests into no-ops.
func (m *Model) maybeLoadMore() tea.Cmd {
	if len(m.list.Items) == 0 || m.selected < len(m.list.Items)-1 {
		return nil
	}
	return m.dispatch(listing.LoadMore{})
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.list.Items) {
		m.selected = len(m.list.Items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// selectedRecipe returns the recipe under the cursor, if any.
func (m Model) selectedRecipe() (dummyjson.Recipe, bool) {
	if m.selected < 0 || m.selected >= len(m.list.Items) {
		return dummyjson.Recipe{}, false
	}
	return m.list.Items[m.selected], true
}

// applyTheme pushes theme colors into the bubbles components.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

// contentHeight is the space left between header and footer.
func (m Model) contentHeight() int {
	return max(1, m.height-headerHeight-footerHeight)
}

// Messages

// listMsg carries a listing event, either a user intent or a completion.
type listMsg struct{ event listing.Event }

// recipeMsg carries the outcome of a single recipe lookup.
type recipeMsg struct {
	id     int
	recipe dummyjson.Recipe
	err    error
}

// Commands

func intentCmd(ev listing.Event) tea.Cmd {
	return func() tea.Msg {
		return listMsg{event: ev}
	}
}

func loadPageCmd(ctx context.Context, runner listing.Runner, req listing.Request) tea.Cmd {
	return func() tea.Msg {
		return listMsg{event: runner.Run(ctx, req)}
	}
}

func fetchRecipeCmd(ctx context.Context, gw dummyjson.Gateway, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, DetailFetchTimeout)
		defer cancel()
		recipe, err := gw.GetRecipe(ctx, id)
		return recipeMsg{id: id, recipe: recipe, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
