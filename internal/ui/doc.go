// Package ui provides the pantry terminal interface, built on Bubble Tea.
//
// # Architecture Overview
//
// Model is a standard Bubble Tea model. The list view's data lives in a
// listing.State that Update feeds through listing.Reduce; any Request the
// reducer issues becomes a tea.Cmd that runs listing.Runner in the
// background and comes back as a listMsg. The model never mutates list data
// directly, so paging, searching and refreshing follow exactly the rules
// listing enforces.
//
// # Package Structure
//
//   - app.go: Model, Update/View, messages and commands, Run
//   - list.go: recipe rows, empty/error/loading states, list footer
//   - detail.go: single-recipe view in a viewport, guarded by recipe id
//   - search.go: search input handling and the search bar
//   - header.go: status bar with counter and phase indicator
//   - help.go: keyboard shortcut overlay
//   - keys.go: key bindings (bubbles/key), also used for footer hints
//   - theme.go: color palettes and lipgloss styles
//
// # Views
//
//   - List: one line per recipe with difficulty badge, time, cuisine,
//     calories and rating depending on width. Moving the cursor onto the
//     last row asks for the next page.
//   - Detail: stats, tags, numbered ingredients and instructions. The recipe
//     is fetched by id; a response for any id other than the open one is
//     dropped.
//
// # Key Bindings
//
//   - j/k, g/G, ctrl+d/u: Move
//   - /: Search (enter submits, esc cancels)
//   - c: Clear search
//   - r: Refresh, or retry the failed operation
//   - enter: Open recipe; esc/backspace: back to list
//   - T: Cycle theme
//   - ?: Help
//   - q or Ctrl+C: Exit
package ui
