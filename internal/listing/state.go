package listing

import (
	"fmt"

	"github.com/five82/pantry/internal/dummyjson"
)

// PageSize is shared by every load path.
const PageSize = 10

// Phase is the controller's position in the list state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseRefreshing
	PhaseLoadingMore
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseRefreshing:
		return "refreshing"
	case PhaseLoadingMore:
		return "loading-more"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// LoadKind says what a completed page does to the item list.
type LoadKind int

const (
	// LoadReset is a ground-up load for a (possibly new) search term.
	LoadReset LoadKind = iota
	// LoadRefresh reloads page zero for the current term.
	LoadRefresh
	// LoadNext appends the page at NextOffset.
	LoadNext
)

func (k LoadKind) String() string {
	switch k {
	case LoadReset:
		return "reset"
	case LoadRefresh:
		return "refresh"
	case LoadNext:
		return "next"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Phase returns the in-flight phase a request of kind k runs under.
func (k LoadKind) Phase() Phase {
	switch k {
	case LoadReset:
		return PhaseLoading
	case LoadRefresh:
		return PhaseRefreshing
	case LoadNext:
		return PhaseLoadingMore
	default:
		return PhaseIdle
	}
}

// Request names the gateway call an event needs. It travels with the call
// and comes back inside the completion event.
type Request struct {
	Kind   LoadKind
	Term   string
	Offset int
	Limit  int
}

// State is the list view's state. Values are treated as immutable: Reduce
// returns a new State and never mutates the Items backing array in place.
type State struct {
	Items      []dummyjson.Recipe
	Phase      Phase
	HasMore    bool
	Err        error
	SearchTerm string
	NextOffset int
	Total      int

	// failed is the request whose failure put the machine in PhaseFailed.
	failed Request
}

// New returns the state a freshly mounted list starts from.
func New() State {
	return State{
		Items:   []dummyjson.Recipe{},
		Phase:   PhaseIdle,
		HasMore: true,
	}
}

// Loading reports whether a ground-up load is in flight or, for a list that
// has not been mounted yet, about to start.
func (s State) Loading() bool { return s.Phase == PhaseIdle || s.Phase == PhaseLoading }

// Refreshing reports whether a refresh is in flight.
func (s State) Refreshing() bool { return s.Phase == PhaseRefreshing }

// LoadingMore reports whether an append-page load is in flight.
func (s State) LoadingMore() bool { return s.Phase == PhaseLoadingMore }

// InFlight reports whether any load is outstanding.
func (s State) InFlight() bool {
	switch s.Phase {
	case PhaseLoading, PhaseRefreshing, PhaseLoadingMore:
		return true
	}
	return false
}

// ErrorMessage returns the failure text, or "" when the last load succeeded.
func (s State) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Searching reports whether a search filter is active.
func (s State) Searching() bool { return s.SearchTerm != "" }

// Empty reports a settled load that produced nothing.
func (s State) Empty() bool {
	return s.Phase == PhaseLoaded && len(s.Items) == 0
}

// FailedRequest returns the request that failed and whether the machine is
// currently failed.
func (s State) FailedRequest() (Request, bool) {
	return s.failed, s.Phase == PhaseFailed
}

// Clone returns a copy whose Items slice does not alias s.
func (s State) Clone() State {
	out := s
	out.Items = cloneItems(s.Items)
	return out
}

func cloneItems(items []dummyjson.Recipe) []dummyjson.Recipe {
	dup := make([]dummyjson.Recipe, len(items))
	copy(dup, items)
	return dup
}
