package listing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/five82/pantry/internal/dummyjson"
)

type listCall struct {
	Offset int
	Limit  int
	Query  string
}

// fakeGateway serves a fixed catalogue and can be told to fail.
type fakeGateway struct {
	mu      sync.Mutex
	catalog []dummyjson.Recipe
	err     error
	calls   []listCall
}

var _ dummyjson.Gateway = (*fakeGateway)(nil)

func newFakeGateway(n int) *fakeGateway {
	return &fakeGateway{catalog: recipes(1, n)}
}

func (f *fakeGateway) ListRecipes(_ context.Context, offset, limit int, query string) (dummyjson.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, listCall{Offset: offset, Limit: limit, Query: query})
	if f.err != nil {
		return dummyjson.Page{}, f.err
	}
	matches := f.catalog
	if query != "" {
		matches = nil
		for _, r := range f.catalog {
			if strings.Contains(strings.ToLower(r.Name), strings.ToLower(query)) {
				matches = append(matches, r)
			}
		}
	}
	end := min(offset+limit, len(matches))
	start := min(offset, end)
	return dummyjson.Page{
		Recipes: append([]dummyjson.Recipe{}, matches[start:end]...),
		Total:   len(matches),
		Skip:    offset,
		Limit:   limit,
	}, nil
}

func (f *fakeGateway) GetRecipe(_ context.Context, id int) (dummyjson.Recipe, error) {
	for _, r := range f.catalog {
		if r.ID == id {
			return r, nil
		}
	}
	return dummyjson.Recipe{}, errors.New("not found")
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeGateway) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func TestController_PagesToTheEnd(t *testing.T) {
	gw := newFakeGateway(25)
	c := NewController(gw, nil)
	ctx := context.Background()

	if err := c.Mount(ctx); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	for c.Snapshot().HasMore {
		if err := c.LoadMore(ctx); err != nil {
			t.Fatalf("LoadMore: %v", err)
		}
	}
	s := c.Snapshot()
	if len(s.Items) != 25 || s.Total != 25 || s.Phase != PhaseLoaded {
		t.Fatalf("final state items=%d total=%d phase=%v", len(s.Items), s.Total, s.Phase)
	}
	want := []listCall{{0, 10, ""}, {10, 10, ""}, {20, 10, ""}}
	if len(gw.calls) != len(want) {
		t.Fatalf("calls = %+v, want %+v", gw.calls, want)
	}
	for i := range want {
		if gw.calls[i] != want[i] {
			t.Fatalf("call %d = %+v, want %+v", i, gw.calls[i], want[i])
		}
	}

	if err := c.LoadMore(ctx); err != nil {
		t.Fatalf("LoadMore at end: %v", err)
	}
	if gw.callCount() != 3 {
		t.Fatalf("LoadMore at end made a call; calls = %d", gw.callCount())
	}
}

func TestController_LoadMoreWhileInFlightIssuesOneCall(t *testing.T) {
	gw := newFakeGateway(40)
	c := NewController(gw, nil)
	ctx := context.Background()
	if err := c.Mount(ctx); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	var pending []Request
	for i := 0; i < 3; i++ {
		if req := c.Dispatch(LoadMore{}); req != nil {
			pending = append(pending, *req)
		}
	}
	if len(pending) != 1 {
		t.Fatalf("Dispatch(LoadMore) x3 issued %d requests, want 1", len(pending))
	}
	c.Dispatch(c.Run(ctx, pending[0]))
	if gw.callCount() != 2 {
		t.Fatalf("calls = %d, want 2 (mount + one load more)", gw.callCount())
	}
	if got := len(c.Snapshot().Items); got != 20 {
		t.Fatalf("items = %d, want 20", got)
	}
}

func TestController_LateSearchResultDiscarded(t *testing.T) {
	gw := &fakeGateway{catalog: []dummyjson.Recipe{
		{ID: 1, Name: "Margherita Pizza", Image: "i"},
		{ID: 2, Name: "Pepperoni Pizza", Image: "i"},
		{ID: 3, Name: "Pasta Carbonara", Image: "i"},
	}}
	c := NewController(gw, nil)
	ctx := context.Background()

	pizzaReq := c.Dispatch(Search{Term: "pizza"})
	pizzaDone := c.Run(ctx, *pizzaReq)

	if err := c.Search(ctx, "pasta"); err != nil {
		t.Fatalf("Search pasta: %v", err)
	}
	c.Dispatch(pizzaDone)

	s := c.Snapshot()
	if s.SearchTerm != "pasta" || len(s.Items) != 1 || s.Items[0].ID != 3 {
		t.Fatalf("state after late pizza = term %q items %+v", s.SearchTerm, s.Items)
	}
}

func TestController_RefreshReplacesItems(t *testing.T) {
	gw := newFakeGateway(30)
	c := NewController(gw, nil)
	ctx := context.Background()
	_ = c.Mount(ctx)
	_ = c.LoadMore(ctx)
	if got := len(c.Snapshot().Items); got != 20 {
		t.Fatalf("items = %d, want 20", got)
	}
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	s := c.Snapshot()
	if len(s.Items) != 10 || s.NextOffset != 10 || !s.HasMore {
		t.Fatalf("after refresh items=%d next=%d hasMore=%v", len(s.Items), s.NextOffset, s.HasMore)
	}
}

func TestController_ClearSearchRestoresUnfiltered(t *testing.T) {
	gw := newFakeGateway(12)
	c := NewController(gw, nil)
	ctx := context.Background()
	_ = c.Search(ctx, "Recipe 1")
	if !c.Snapshot().Searching() {
		t.Fatalf("expected active search")
	}
	if err := c.ClearSearch(ctx); err != nil {
		t.Fatalf("ClearSearch: %v", err)
	}
	s := c.Snapshot()
	if s.Searching() || len(s.Items) != 10 || !s.HasMore {
		t.Fatalf("after clear: term=%q items=%d hasMore=%v", s.SearchTerm, len(s.Items), s.HasMore)
	}
	if last := gw.calls[len(gw.calls)-1]; last.Query != "" || last.Offset != 0 {
		t.Fatalf("clear issued %+v", last)
	}
}

func TestController_FailureSurfacesMessage(t *testing.T) {
	gw := newFakeGateway(30)
	c := NewController(gw, nil)
	ctx := context.Background()
	_ = c.Mount(ctx)

	gw.setErr(&dummyjson.Error{Kind: dummyjson.KindTransport, Status: 500, Message: "GET /recipes returned status 500"})
	err := c.LoadMore(ctx)
	if !errors.Is(err, dummyjson.ErrTransport) {
		t.Fatalf("LoadMore error = %v, want transport", err)
	}
	s := c.Snapshot()
	if s.Phase != PhaseFailed || !strings.Contains(s.ErrorMessage(), "500") || len(s.Items) != 10 {
		t.Fatalf("failed state = phase %v msg %q items %d", s.Phase, s.ErrorMessage(), len(s.Items))
	}

	gw.setErr(nil)
	if err := c.Do(ctx, Retry{}); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	s = c.Snapshot()
	if s.Phase != PhaseLoaded || len(s.Items) != 20 || s.ErrorMessage() != "" {
		t.Fatalf("after retry phase=%v items=%d msg=%q", s.Phase, len(s.Items), s.ErrorMessage())
	}
}

func TestController_ShapeErrorDistinctFromTransport(t *testing.T) {
	gw := newFakeGateway(5)
	gw.setErr(&dummyjson.Error{Kind: dummyjson.KindShape, Message: "invalid response format"})
	c := NewController(gw, nil)

	err := c.Mount(context.Background())
	if !errors.Is(err, dummyjson.ErrShape) || errors.Is(err, dummyjson.ErrTransport) {
		t.Fatalf("Mount error = %v, want shape only", err)
	}
	if msg := c.Snapshot().ErrorMessage(); msg != "invalid response format" {
		t.Fatalf("message = %q", msg)
	}
}

func TestController_SnapshotDoesNotAlias(t *testing.T) {
	gw := newFakeGateway(20)
	c := NewController(gw, nil)
	_ = c.Mount(context.Background())

	snap := c.Snapshot()
	snap.Items[0].Name = "mutated"
	if c.Snapshot().Items[0].Name == "mutated" {
		t.Fatalf("Snapshot aliases controller items")
	}
}
