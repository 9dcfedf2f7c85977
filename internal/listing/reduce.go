package listing

import (
	"strings"

	"github.com/five82/pantry/internal/dummyjson"
)

// Event is anything that can move the list state machine.
type Event interface {
	isEvent()
}

// Intents forwarded from the presentation layer.
type (
	// Mount loads page zero with no filter.
	Mount struct{}
	// Search starts a ground-up load for Term.
	Search struct{ Term string }
	// ClearSearch is Search with an empty term.
	ClearSearch struct{}
	// Refresh reloads page zero for the current term.
	Refresh struct{}
	// LoadMore appends the next page when one may exist.
	LoadMore struct{}
	// Retry re-issues whichever operation put the machine in PhaseFailed.
	Retry struct{}
)

// Completions produced by running a Request.
type (
	PageLoaded struct {
		Request Request
		Page    dummyjson.Page
	}
	LoadFailed struct {
		Request Request
		Err     error
	}
)

func (Mount) isEvent()       {}
func (Search) isEvent()      {}
func (ClearSearch) isEvent() {}
func (Refresh) isEvent()     {}
func (LoadMore) isEvent()    {}
func (Retry) isEvent()       {}
func (PageLoaded) isEvent()  {}
func (LoadFailed) isEvent()  {}

// Reduce applies ev to s. It returns the next state and, when ev needs a
// gateway call, the request to run. Reduce is pure: it performs no I/O and
// never mutates s.
func Reduce(s State, ev Event) (State, *Request) {
	switch ev := ev.(type) {
	case Mount:
		return search(s, "")
	case Search:
		return search(s, ev.Term)
	case ClearSearch:
		return search(s, "")
	case Refresh:
		return refresh(s)
	case LoadMore:
		return loadMore(s)
	case Retry:
		return retry(s)
	case PageLoaded:
		return pageLoaded(s, ev), nil
	case LoadFailed:
		return loadFailed(s, ev), nil
	}
	return s, nil
}

// Stale reports whether a completion for req no longer matches the live
// request context and must be discarded. Only the load the current phase is
// waiting on may land.
func Stale(s State, req Request) bool {
	return s.Phase != req.Kind.Phase() || req.Term != s.SearchTerm || req.Offset != s.NextOffset
}

// HasMore is the has-more predicate for a page fetched with req.
func HasMore(req Request, page dummyjson.Page) bool {
	return len(page.Recipes) == PageSize && req.Offset+PageSize < page.Total
}

func search(s State, term string) (State, *Request) {
	term = strings.TrimSpace(term)
	next := s
	next.Items = []dummyjson.Recipe{}
	next.SearchTerm = term
	next.NextOffset = 0
	next.HasMore = true
	next.Total = 0
	next.Err = nil
	next.failed = Request{}
	next.Phase = PhaseLoading
	return next, &Request{Kind: LoadReset, Term: term, Offset: 0, Limit: PageSize}
}

func refresh(s State) (State, *Request) {
	next := s
	next.NextOffset = 0
	next.Err = nil
	next.failed = Request{}
	next.Phase = PhaseRefreshing
	return next, &Request{Kind: LoadRefresh, Term: s.SearchTerm, Offset: 0, Limit: PageSize}
}

func loadMore(s State) (State, *Request) {
	if !s.HasMore {
		return s, nil
	}
	switch s.Phase {
	case PhaseLoaded:
	case PhaseFailed:
		if s.failed.Kind != LoadNext {
			return s, nil
		}
	default:
		return s, nil
	}
	next := s
	next.Err = nil
	next.failed = Request{}
	next.Phase = PhaseLoadingMore
	return next, &Request{Kind: LoadNext, Term: s.SearchTerm, Offset: s.NextOffset, Limit: PageSize}
}

func retry(s State) (State, *Request) {
	failed, ok := s.FailedRequest()
	if !ok {
		return s, nil
	}
	switch failed.Kind {
	case LoadRefresh:
		return refresh(s)
	case LoadNext:
		return loadMore(s)
	default:
		return search(s, failed.Term)
	}
}

func pageLoaded(s State, ev PageLoaded) State {
	if Stale(s, ev.Request) {
		return s
	}
	next := s
	if ev.Request.Kind == LoadNext {
		items := make([]dummyjson.Recipe, 0, len(s.Items)+len(ev.Page.Recipes))
		items = append(items, s.Items...)
		next.Items = append(items, ev.Page.Recipes...)
	} else {
		next.Items = cloneItems(ev.Page.Recipes)
	}
	next.NextOffset = ev.Request.Offset + PageSize
	next.HasMore = HasMore(ev.Request, ev.Page)
	next.Total = ev.Page.Total
	next.Err = nil
	next.failed = Request{}
	next.Phase = PhaseLoaded
	return next
}

func loadFailed(s State, ev LoadFailed) State {
	if Stale(s, ev.Request) {
		return s
	}
	next := s
	next.Err = ev.Err
	next.failed = ev.Request
	next.Phase = PhaseFailed
	return next
}
