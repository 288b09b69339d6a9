package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-columns/internal/core"
	"github.com/vovakirdan/tui-columns/internal/games/columns"
	"github.com/vovakirdan/tui-columns/internal/storage"
)

// resolveMode maps a mode argument to a registered game ID.
// Both the short names and the IDs themselves are accepted.
func resolveMode(arg string) (string, error) {
	switch arg {
	case "", "campaign", columns.IDCampaign:
		return columns.IDCampaign, nil
	case "endless", columns.IDEndless:
		return columns.IDEndless, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want campaign or endless)", arg)
	}
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Warn("could not close scores database", "error", err)
	}
}
