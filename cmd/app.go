// Package cmd implements the CLI application to manage a poker session
// journal.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/railbird/pokerlog"
	"github.com/railbird/pokerlog/storage"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&logCmd{},
	&showCmd{},
	&statsCmd{},
	&graphCmd{},
	&calendarCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the data directory holding the session journal")
var storageKind = flag.String("storage", "file", "Storage backend for the journal (file, sqlite)")
var Verbose = flag.Bool("v", false, "Verbose output")

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pokerlog"
	}
	return filepath.Join(home, ".pokerlog")
}

// OpenStore is the central function to open the session store. It loads
// the journal, seeding it on first use. The returned close function
// releases the backend and must be called before exit.
func OpenStore() (*pokerlog.Store, func() error, error) {
	noop := func() error { return nil }

	var backend storage.Backend
	closer := noop
	switch *storageKind {
	case "file":
		backend = storage.NewFile(*dataDir)
	case "sqlite":
		db, err := storage.OpenSQLite(filepath.Join(*dataDir, "pokerlog.db"))
		if err != nil {
			return nil, noop, fmt.Errorf("could not open sqlite backend: %w", err)
		}
		backend = db
		closer = db.Close
	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q (want file or sqlite)", *storageKind)
	}

	store := pokerlog.NewStore(backend)
	if _, err := store.LoadAll(); err != nil {
		closer()
		return nil, noop, fmt.Errorf("could not load sessions: %w", err)
	}
	return store, closer, nil
}
