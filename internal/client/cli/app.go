// Package cli is the interactive terminal surface of the brainkeep client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/brainkeep/brainkeep/internal/client/cache"
	"github.com/brainkeep/brainkeep/internal/client/client"
	"github.com/brainkeep/brainkeep/internal/client/config"
	"github.com/brainkeep/brainkeep/internal/client/models"
	"github.com/brainkeep/brainkeep/internal/client/services"
	"github.com/brainkeep/brainkeep/internal/client/session"
	"github.com/brainkeep/brainkeep/internal/logging"
)

// App wires the services together and carries the per-session view state:
// the current filter selection and the themed notifier. All state is held
// here explicitly; nothing reaches for ambient globals.
type App struct {
	config  *config.Config
	session *session.Store
	auth    services.AuthService
	content services.ContentService
	cache   *cache.Cache
	log     logging.Logger

	filter models.FilterState
	notify *Notifier
	reader *bufio.Reader

	watchMu     sync.Mutex
	watchCancel context.CancelFunc
}

// NewApp builds the full dependency graph from configuration.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	var (
		st  *session.Store
		err error
	)
	if cfg.StateFile != "" {
		st, err = session.NewAt(cfg.StateFile)
	} else {
		st, err = session.New()
	}
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	apiClient := client.NewHTTPClient(cfg.ServerEndpointAddr, cfg.RequestTimeout)
	contentCache := cache.New(apiClient, st, log)

	return &App{
		config:  cfg,
		session: st,
		auth:    services.NewAuthService(apiClient, st),
		content: services.NewContentService(apiClient, st, contentCache, systemClipboard{}, log),
		cache:   contentCache,
		log:     log,
		filter:  models.NewFilterState(),
		notify:  NewNotifier(os.Stdout, st.Theme()),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the periodic refresh watcher (when already signed in) and the
// REPL. It returns when the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	a.notify.Infof("Welcome to brainkeep (type 'help' for commands)")

	if a.isLoggedIn() {
		a.startWatcher(ctx)
	}
	defer a.stopWatcher()

	runREPL(ctx, a, a.status, a.reader, a.notify)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) uploadEnabled() bool {
	return a.config.EnableUpload
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	info, err := a.auth.Current()
	if err != nil || info.Username == "" {
		return "(signed in)"
	}
	return "(" + info.Username + ")"
}

// startWatcher mounts the periodic refresh: one immediate fetch, then one
// per interval. Idempotent; a second call while running is a no-op.
func (a *App) startWatcher(ctx context.Context) {
	a.watchMu.Lock()
	defer a.watchMu.Unlock()
	if a.watchCancel != nil {
		return
	}
	watchCtx, cancel := context.WithCancel(ctx)
	a.watchCancel = cancel
	go a.cache.Watch(watchCtx, a.config.RefreshInterval)
}

// stopWatcher cancels the refresh timer so nothing updates state after
// teardown.
func (a *App) stopWatcher() {
	a.watchMu.Lock()
	defer a.watchMu.Unlock()
	if a.watchCancel != nil {
		a.watchCancel()
		a.watchCancel = nil
	}
}

// notifyFailure converts a store-facing error into a user-visible
// notification. Failures stop here; nothing propagates past the command
// layer as an uncaught fault.
func (a *App) notifyFailure(action string, err error) {
	var remote *client.RemoteError

	switch {
	case errors.Is(err, client.ErrValidation):
		a.notify.Failuref("%v", err)
	case errors.Is(err, client.ErrUnauthenticated):
		a.notify.Failuref("%s failed: not signed in (try 'login')", action)
	case errors.Is(err, client.ErrUnavailable):
		a.notify.Failuref("%s failed: server unavailable", action)
	case errors.As(err, &remote) && remote.Message != "":
		a.notify.Failuref("%s failed: %s", action, remote.Message)
	default:
		a.notify.Failuref("%s failed: %v", action, err)
	}
}
