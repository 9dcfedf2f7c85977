package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/pantry/internal/app"
	"github.com/five82/pantry/internal/listing"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/pantry/config.toml)")
	themeName := flag.String("theme", "", "color theme: Nightfox, Kanagawa or Slate (optional)")
	list := flag.Bool("list", false, "print recipes instead of starting the UI")
	pages := flag.Int("pages", 1, "number of pages to print with -list")
	query := flag.String("q", "", "search term for -list")
	recipeID := flag.Int("recipe", 0, "print one recipe by id instead of starting the UI")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, ThemeName: *themeName}

	if !*list && *recipeID == 0 {
		if err := app.Run(ctx, opts); err != nil {
			fmt.Fprintf(os.Stderr, "pantry: %v\n", err)
			return 1
		}
		return 0
	}

	env, err := app.Setup(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pantry: %v\n", err)
		return 1
	}
	defer env.Close()

	if *recipeID != 0 {
		err = printRecipe(ctx, os.Stdout, env.Gateway, *recipeID)
	} else {
		ctrl := listing.NewController(env.Gateway, env.Logger)
		err = printList(ctx, os.Stdout, ctrl, *query, *pages)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pantry: %v\n", err)
		return 1
	}
	return 0
}
