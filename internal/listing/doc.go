// Package listing holds the paginated, searchable recipe list state machine.
//
// # Overview
//
// The list view fetches pages of recipes, merges them, tracks whether more
// pages may exist, and resets when the user searches, clears the search, or
// refreshes. All of that lives here as a pure reducer:
//
//	Reduce(State, Event) (State, *Request)
//
// User intents (Mount, Search, ClearSearch, Refresh, LoadMore, Retry) may
// return a Request naming the gateway call to make. Running that request
// produces a completion (PageLoaded or LoadFailed) which is fed back through
// Reduce. Nothing in Reduce performs I/O, so every transition and guard is
// testable without a UI or a network.
//
// # Phases
//
//	Idle ──Mount/Search──▶ Loading ──ok──▶ Loaded ──LoadMore──▶ LoadingMore
//	                          │              │  ▲                   │
//	                          │           Refresh└────────ok─────────┘
//	                          ▼              ▼
//	                        Failed ◀──err── Refreshing
//
// Search and ClearSearch are legal from every phase and always start over
// from offset zero with an empty item list. Refresh keeps the term and the
// visible items until its page replaces them wholesale. LoadMore is a no-op
// unless the list is Loaded with HasMore set (or Failed on a LoadMore, which
// is how Retry re-issues it).
//
// # Staleness
//
// Superseded calls are never cancelled. Instead each completion carries the
// Request it answers, and Reduce discards it unless the current phase is the
// one that request's kind runs under, its term equals the live SearchTerm and
// its offset equals the live NextOffset. A late page for "pizza" therefore
// cannot land once "pasta" is active, a page that was already applied cannot
// be applied twice because the list has settled, and a LoadMore superseded by
// a Refresh stays dropped even after the refresh brings NextOffset back.
//
// # Has-more
//
//	HasMore = len(page.Recipes) == PageSize && offset+PageSize < page.Total
//
// Total is taken fresh from every page; no attempt is made to pin it.
//
// # Driving the machine
//
// The Bubble Tea UI turns each Request into a tea.Cmd that calls Runner.Run
// and returns the completion as a message. Controller wraps the same pieces
// for synchronous, single-goroutine callers such as the headless CLI mode.
package listing
