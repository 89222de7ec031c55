// Package cli is the interactive presentation layer over the OneDate
// core: a small REPL that plays the role the original site's pages
// played, calling into the directory, session manager, matching engine
// and booking ledger through their public APIs.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/onedate/onedate/internal/catalog"
	"github.com/onedate/onedate/internal/config"
	"github.com/onedate/onedate/internal/credentials"
	"github.com/onedate/onedate/internal/directory"
	"github.com/onedate/onedate/internal/kvstore"
	"github.com/onedate/onedate/internal/ledger"
	"github.com/onedate/onedate/internal/logging"
	"github.com/onedate/onedate/internal/models"
	"github.com/onedate/onedate/internal/session"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	store    kvstore.Store
	dir      *directory.Directory
	sessions *session.Manager
	ledger   *ledger.Ledger
	pool     []models.Candidate
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp wires the core: store, codec, credential hasher, directory,
// session manager, ledger and candidate pool, all per cfg.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := kvstore.OpenBolt(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error opening store: %w", err)
	}

	pool, err := catalog.Load(cfg.PoolPath)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("error loading candidate pool: %w", err)
	}

	var hasher credentials.Hasher = credentials.Plaintext{}
	if cfg.HashPasswords {
		hasher = credentials.Bcrypt{}
	}

	codec := kvstore.NewCodec(store, log)
	dir := directory.New(codec, hasher, log)
	sessions := session.NewManager(codec, dir, hasher, log)
	bookings := ledger.New(codec, log, ledger.Options{
		DefaultEvent:          cfg.DefaultEvent,
		DefaultLocation:       cfg.DefaultLocation,
		RecomputeStatusOnRead: cfg.RecomputeStatusOnRead,
	})

	return &App{
		config:   cfg,
		log:      log,
		store:    store,
		dir:      dir,
		sessions: sessions,
		ledger:   bookings,
		pool:     pool,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.store.Close()
}
