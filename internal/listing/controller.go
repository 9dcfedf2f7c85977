package listing

import (
	"context"
	"log/slog"

	"github.com/five82/pantry/internal/dummyjson"
	"github.com/five82/pantry/internal/logging"
)

// Runner executes a Request against a Gateway and reports the outcome as a
// completion event. It never touches State.
type Runner struct {
	Gateway dummyjson.Gateway
	Logger  *slog.Logger
}

// Run performs the gateway call named by req.
func (r Runner) Run(ctx context.Context, req Request) Event {
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	ctx = logging.AppendCtx(ctx, slog.String("load", req.Kind.String()))

	page, err := r.Gateway.ListRecipes(ctx, req.Offset, req.Limit, req.Term)
	if err != nil {
		logger.WarnContext(ctx, "page load failed",
			slog.String("term", req.Term),
			slog.Int("offset", req.Offset),
			slog.Any("error", err))
		return LoadFailed{Request: req, Err: err}
	}
	logger.DebugContext(ctx, "page loaded",
		slog.String("term", req.Term),
		slog.Int("offset", req.Offset),
		slog.Int("count", len(page.Recipes)),
		slog.Int("total", page.Total))
	return PageLoaded{Request: req, Page: page}
}

// Controller owns one State and serialises every event through Reduce.
// It is meant to be driven from a single goroutine.
type Controller struct {
	state  State
	runner Runner
	logger *slog.Logger
}

// NewController returns a controller in the freshly mounted state. Call
// Mount (or Do with Mount{}) to issue the first load.
func NewController(gw dummyjson.Gateway, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{
		state:  New(),
		runner: Runner{Gateway: gw, Logger: logger},
		logger: logger,
	}
}

// Snapshot returns a copy of the current state that callers may keep.
func (c *Controller) Snapshot() State {
	return c.state.Clone()
}

// Dispatch reduces ev into the current state and returns the request to run,
// or nil when ev is a no-op or a completion.
func (c *Controller) Dispatch(ev Event) *Request {
	switch ev := ev.(type) {
	case PageLoaded:
		c.logStale(ev.Request)
	case LoadFailed:
		c.logStale(ev.Request)
	}
	next, req := Reduce(c.state, ev)
	c.state = next
	return req
}

// Run executes req without applying its result.
func (c *Controller) Run(ctx context.Context, req Request) Event {
	return c.runner.Run(ctx, req)
}

// Do dispatches ev and, when it issues a request, runs it and applies the
// completion before returning. The returned error is the state's failure,
// if any.
func (c *Controller) Do(ctx context.Context, ev Event) error {
	req := c.Dispatch(ev)
	if req == nil {
		return nil
	}
	c.Dispatch(c.Run(ctx, *req))
	return c.state.Err
}

// Mount issues the initial unfiltered load.
func (c *Controller) Mount(ctx context.Context) error { return c.Do(ctx, Mount{}) }

// Search resets the list to term and loads its first page.
func (c *Controller) Search(ctx context.Context, term string) error {
	return c.Do(ctx, Search{Term: term})
}

// ClearSearch drops the filter and loads the first unfiltered page.
func (c *Controller) ClearSearch(ctx context.Context) error { return c.Do(ctx, ClearSearch{}) }

// Refresh reloads the first page of the current term.
func (c *Controller) Refresh(ctx context.Context) error { return c.Do(ctx, Refresh{}) }

// LoadMore appends the next page if the guard allows it.
func (c *Controller) LoadMore(ctx context.Context) error { return c.Do(ctx, LoadMore{}) }

func (c *Controller) logStale(req Request) {
	if !Stale(c.state, req) {
		return
	}
	c.logger.Debug("discarding stale completion",
		slog.String("load", req.Kind.String()),
		slog.String("term", req.Term),
		slog.Int("offset", req.Offset),
		slog.String("live_term", c.state.SearchTerm),
		slog.Int("live_offset", c.state.NextOffset))
}
