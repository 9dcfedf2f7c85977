package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/five82/pantry/internal/dummyjson"
	"github.com/five82/pantry/internal/listing"
)

// newRecipeServer serves n generated recipes the way dummyjson does.
func newRecipeServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	all := make([]dummyjson.Recipe, n)
	for i := range all {
		all[i] = dummyjson.Recipe{
			ID:              i + 1,
			Name:            fmt.Sprintf("Dish %d", i+1),
			Image:           "https://cdn.example/img.webp",
			Difficulty:      dummyjson.DifficultyMedium,
			Cuisine:         "Italian",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 20,
			Rating:          4.5,
			Ingredients:     []string{"Tomato"},
			Instructions:    []string{"Slice"},
		}
	}

	mux := http.NewServeMux()
	list := func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(r.URL.Query().Get("q"))
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		var matches []dummyjson.Recipe
		for _, rec := range all {
			if q == "" || strings.Contains(strings.ToLower(rec.Name), q) {
				matches = append(matches, rec)
			}
		}
		end := min(skip+limit, len(matches))
		start := min(skip, end)
		_ = json.NewEncoder(w).Encode(dummyjson.Page{
			Recipes: append([]dummyjson.Recipe{}, matches[start:end]...),
			Total:   len(matches), Skip: skip, Limit: limit,
		})
	}
	mux.HandleFunc("/recipes", list)
	mux.HandleFunc("/recipes/search", list)
	mux.HandleFunc("/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		if id < 1 || id > n {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(all[id-1])
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server) *dummyjson.Client {
	t.Helper()
	client, err := dummyjson.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestPrintList_PagesUntilLimit(t *testing.T) {
	srv := newRecipeServer(t, 25)
	ctrl := listing.NewController(newClient(t, srv), nil)

	var out bytes.Buffer
	if err := printList(context.Background(), &out, ctrl, "", 2); err != nil {
		t.Fatalf("printList: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Dish 20") || strings.Contains(text, "Dish 21") {
		t.Fatalf("expected exactly two pages:\n%s", text)
	}
	if !strings.Contains(text, "20 of 25 recipes, more available") {
		t.Fatalf("summary line missing:\n%s", text)
	}
}

func TestPrintList_StopsAtLastPage(t *testing.T) {
	srv := newRecipeServer(t, 12)
	ctrl := listing.NewController(newClient(t, srv), nil)

	var out bytes.Buffer
	if err := printList(context.Background(), &out, ctrl, "", 5); err != nil {
		t.Fatalf("printList: %v", err)
	}
	if !strings.Contains(out.String(), "12 of 12 recipes, no more recipes to load") {
		t.Fatalf("summary line missing:\n%s", out.String())
	}
}

func TestPrintList_SearchNoMatches(t *testing.T) {
	srv := newRecipeServer(t, 5)
	ctrl := listing.NewController(newClient(t, srv), nil)

	var out bytes.Buffer
	if err := printList(context.Background(), &out, ctrl, "soup", 1); err != nil {
		t.Fatalf("printList: %v", err)
	}
	if !strings.Contains(out.String(), "No recipes found") {
		t.Fatalf("empty message missing:\n%s", out.String())
	}
}

func TestPrintList_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	ctrl := listing.NewController(newClient(t, srv), nil)

	err := printList(context.Background(), &bytes.Buffer{}, ctrl, "", 1)
	if !errors.Is(err, dummyjson.ErrTransport) || !strings.Contains(err.Error(), "500") {
		t.Fatalf("printList error = %v, want transport 500", err)
	}
}

func TestPrintRecipe(t *testing.T) {
	srv := newRecipeServer(t, 3)
	client := newClient(t, srv)

	var out bytes.Buffer
	if err := printRecipe(context.Background(), &out, client, 2); err != nil {
		t.Fatalf("printRecipe: %v", err)
	}
	for _, want := range []string{"Dish 2 (#2)", "Total 30 min", "  - Tomato", "  1. Slice", "Image: https://cdn.example/img.webp"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}

	err := printRecipe(context.Background(), &bytes.Buffer{}, client, 99)
	if dummyjson.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("printRecipe(99) error = %v, want 404", err)
	}
}
