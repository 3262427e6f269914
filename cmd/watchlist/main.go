package main

import (
	"log/slog"
	"os"

	"github.com/idilsaglam/watchlist/internal/model"
	"github.com/idilsaglam/watchlist/internal/store/jsonstore"
	"github.com/idilsaglam/watchlist/internal/tui"
)

func main() {
	// Diagnostics go to stderr; nothing is logged once the TUI owns the screen.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(); err != nil {
		tui.Fail(err.Error())
		os.Exit(1)
	}
}

func run() error {
	path, err := jsonstore.DefaultPath()
	if err != nil {
		return err
	}
	store := jsonstore.New(path, slog.Default())
	return tui.Run(model.New(store.Load(), store), tui.Options{})
}
