package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/artmarket/internal/client/client"
	"github.com/dmitrijs2005/artmarket/internal/client/config"
	"github.com/dmitrijs2005/artmarket/internal/client/services"
	"github.com/dmitrijs2005/artmarket/internal/credentials"
	"github.com/dmitrijs2005/artmarket/internal/filex"
	"github.com/dmitrijs2005/artmarket/internal/idgen"
	"github.com/dmitrijs2005/artmarket/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const dbFileName = "artmarket.db"

type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config     *config.Config
	db         *sql.DB
	session    *services.Session
	catalog    *services.Catalog
	moderation *services.Moderation
	pinger     pinger

	modeMu sync.RWMutex
	mode   Mode

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the services in dependency order: ids, store, session,
// catalog, moderation.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewText(os.Stderr, level)

	verifier, err := credentials.New(c.PasswordScheme)
	if err != nil {
		return nil, err
	}

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, filepath.Join(dir, dbFileName))
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	hc, err := client.NewHTTPClient(c.DirectoryURL, client.WithTimeout(c.RequestTimeout))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a, err := newApp(ctx, c, db, hc, idgen.UUID{}, verifier, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, db *sql.DB, dc client.Client, ids idgen.Generator, verifier credentials.Verifier, logger logging.Logger) (*App, error) {
	repos := client.NewRepositories(db)

	session := services.NewSession(dc, repos.KV, ids, verifier, logger)
	if err := session.Activate(ctx); err != nil {
		return nil, fmt.Errorf("activate session: %w", err)
	}
	catalog := services.NewCatalog(session, repos.KV, repos.Purchases, ids, logger,
		services.WithAllowRepurchase(c.AllowRepurchase))
	if err := catalog.Load(ctx); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	moderation := services.NewModeration(session, catalog, repos.KV, ids, logger)
	if err := moderation.Load(ctx); err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}

	return &App{
		config:     c,
		db:         db,
		session:    session,
		catalog:    catalog,
		moderation: moderation,
		pinger:     session,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Println("Welcome to the art marketplace (type 'help' for commands)")
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	u, ok := a.session.CurrentUser()
	return ok && u.IsAdmin
}

func (a *App) getStatus() string {
	s := ""
	if u, ok := a.session.CurrentUser(); ok {
		s = u.Email + " "
	}
	s += string(a.Mode())
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.pinger.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the directory service every interval
// until ctx is done. A non-positive interval disables the watcher.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
