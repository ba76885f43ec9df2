package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/reeflog/reeflog/internal/client/api"
	"github.com/reeflog/reeflog/internal/client/config"
	"github.com/reeflog/reeflog/internal/client/draft"
	"github.com/reeflog/reeflog/internal/client/services"
	"github.com/reeflog/reeflog/internal/client/session"
	"github.com/reeflog/reeflog/internal/client/storage"
	"github.com/reeflog/reeflog/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services together and carries the per-run state: the reader,
// the logged-in user and the final wizard step's in-memory fields.
type App struct {
	config *config.Config
	log    logging.Logger

	db       *sql.DB
	auth     *services.AuthService
	sites    *services.SiteService
	stats    *services.StatsService
	submit   *services.SubmitService
	drafts   draft.Store
	sessions *session.Store

	userName string
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local database and builds the service graph.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	drafts := draft.NewSlotStore(db)
	sessions := session.NewStore(storage.NewSlots(db))

	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.HTTPTimeout, log)
	siteService := services.NewSiteService(client, log)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		auth:     services.NewAuthService(client, sessions, log),
		sites:    siteService,
		stats:    services.NewStatsService(client),
		submit:   services.NewSubmitService(client, drafts, siteService, log),
		drafts:   drafts,
		sessions: sessions,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores a previous session if one is still valid and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if user, err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	} else if user != nil {
		a.userName = displayName(user.Name, user.Email)
		printlnFn("Welcome back,", a.userName)
	}

	// The scanner wraps the same reader the prompts use, so command lines
	// and prompt answers come from one buffered stream.
	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

// Close releases the local database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) status() string {
	if a.userName == "" {
		return "not logged in"
	}
	return a.userName
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
