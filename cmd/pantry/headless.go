package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/five82/pantry/internal/dummyjson"
	"github.com/five82/pantry/internal/listing"
)

// printList loads up to pages pages of term through ctrl and prints them as
// a table. It stops early when the controller reports no more pages.
func printList(ctx context.Context, w io.Writer, ctrl *listing.Controller, term string, pages int) error {
	if pages < 1 {
		pages = 1
	}

	var err error
	if strings.TrimSpace(term) == "" {
		err = ctrl.Mount(ctx)
	} else {
		err = ctrl.Search(ctx, term)
	}
	if err != nil {
		return fmt.Errorf("load recipes: %w", err)
	}
	for i := 1; i < pages && ctrl.Snapshot().HasMore; i++ {
		if err := ctrl.LoadMore(ctx); err != nil {
			return fmt.Errorf("load page %d: %w", i+1, err)
		}
	}

	s := ctrl.Snapshot()
	if len(s.Items) == 0 {
		if s.Searching() {
			fmt.Fprintln(w, "No recipes found")
			fmt.Fprintln(w, "Try a different search term")
			return nil
		}
		fmt.Fprintln(w, "No recipes available")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDIFFICULTY\tCUISINE\tTIME\tRATING")
	for _, r := range s.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d min\t%.1f\n",
			r.ID, r.Name, r.Difficulty.Normalized(), r.Cuisine, r.TotalMinutes(), r.Rating)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	more := "no more recipes to load"
	if s.HasMore {
		more = "more available"
	}
	fmt.Fprintf(w, "\n%d of %d recipes, %s\n", len(s.Items), s.Total, more)
	return nil
}

// printRecipe fetches one recipe and prints it as plain text.
func printRecipe(ctx context.Context, w io.Writer, gw dummyjson.Gateway, id int) error {
	r, err := gw.GetRecipe(ctx, id)
	if err != nil {
		return fmt.Errorf("load recipe %d: %w", id, err)
	}

	fmt.Fprintf(w, "%s (#%d)\n", r.Name, r.ID)
	fmt.Fprintf(w, "%s · %s · %.1f (%d reviews)\n", r.Difficulty.Normalized(), r.Cuisine, r.Rating, r.ReviewCount)
	fmt.Fprintf(w, "Prep %d min · Cook %d min · Total %d min · Serves %d · %d kcal/serving\n",
		r.PrepTimeMinutes, r.CookTimeMinutes, r.TotalMinutes(), r.Servings, r.CaloriesPerServing)
	if len(r.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	if len(r.MealType) > 0 {
		fmt.Fprintf(w, "Meal: %s\n", strings.Join(r.MealType, ", "))
	}

	fmt.Fprintln(w, "\nIngredients")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", ing)
	}
	fmt.Fprintln(w, "\nInstructions")
	for i, step := range r.Instructions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
	fmt.Fprintf(w, "\nImage: %s\n", r.Image)
	return nil
}
