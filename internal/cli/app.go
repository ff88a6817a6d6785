// Package cli implements the interactive front end of Teen Skill Bridge: a
// read–eval–print loop over the store, with role-specific command sets for
// students and job providers. It holds no state of its own beyond the
// currently authenticated user, resolved from the session pointer.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/teenbridge/skillbridge/internal/common"
	"github.com/teenbridge/skillbridge/internal/config"
	"github.com/teenbridge/skillbridge/internal/logging"
	"github.com/teenbridge/skillbridge/internal/session"
	"github.com/teenbridge/skillbridge/internal/storage"
	"github.com/teenbridge/skillbridge/internal/store"
)

// minPasswordLength is enforced at signup, before the store is called.
const minPasswordLength = 6

type App struct {
	config  *config.Config
	store   *store.Store
	session *session.Manager
	log     logging.Logger

	// current is the resolved session user; nil when logged out.
	current *store.User

	reader *bufio.Reader
}

// NewApp wires storage, store and session under the configured data
// directory. The store is not loaded yet; Run does that.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	st, err := storage.NewFileStorage(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		store:   store.New(st, log),
		session: session.NewManager(st),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run loads persisted state, seeds demo data into an empty store when
// enabled, restores the session and enters the REPL.
func (a *App) Run(ctx context.Context) error {
	if err := a.store.Load(ctx); err != nil {
		return err
	}

	if a.config.DemoData && a.store.Empty() {
		if err := a.store.SeedDemoData(ctx); err != nil {
			return err
		}
	}

	a.restoreSession(ctx)

	fmt.Println("Welcome to Teen Skill Bridge (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) role() store.Role {
	if a.current == nil {
		return ""
	}
	return a.current.Role
}

func (a *App) getStatus() string {
	if a.current == nil {
		return "(guest)"
	}
	return fmt.Sprintf("(%s, %s)", a.current.Name, a.current.Role)
}

// restoreSession resolves the persisted session pointer to a user. An absent
// session or a pointer naming an email that no longer resolves leaves the
// app logged out.
func (a *App) restoreSession(ctx context.Context) {
	email, err := a.session.Email(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			a.log.Warn(ctx, "could not read session", "error", err)
		}
		return
	}

	u, err := a.store.FindUserByEmail(email)
	if err != nil {
		a.log.Warn(ctx, "session points to unknown account, ignoring", "email", email)
		return
	}

	a.current = u
}
