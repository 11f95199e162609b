package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/workforce/internal/client/client"
	"github.com/dmitrijs2005/workforce/internal/client/config"
	"github.com/dmitrijs2005/workforce/internal/client/models"
	"github.com/dmitrijs2005/workforce/internal/client/services"
	"github.com/dmitrijs2005/workforce/internal/client/session"
	"github.com/dmitrijs2005/workforce/internal/client/tokens"
	"github.com/dmitrijs2005/workforce/internal/logging"
)

// sessionAPI is the part of *session.Session the commands use.
type sessionAPI interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	RegisterUser(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context) error
	Init(ctx context.Context) error
	FetchProfiles(ctx context.Context) error
	Snapshot() session.Snapshot
	UserRole() (models.Role, bool)
	LandingRoute(ctx context.Context, user *models.User) session.Route
}

type dashboardAPI interface {
	Worker(ctx context.Context) (*services.WorkerDashboard, error)
	Employer(ctx context.Context) (*services.EmployerDashboard, error)
}

type App struct {
	config     *config.Config
	session    sessionAPI
	dashboards dashboardAPI
	jobs       services.JobService
	store      tokens.Store
	log        logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu        sync.Mutex
	lastState session.State

	db          *sql.DB
	unsubscribe func()
}

// NewApp builds the App from configuration: it opens the session store,
// constructs the HTTP client with its middleware chain and wires the
// services and Session together.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{
		config: c,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	var store tokens.Store
	if c.Ephemeral() {
		store = tokens.NewMemoryStore()
	} else {
		db, err := client.InitDatabase(ctx, c.DatabasePath)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
			return nil, err
		}
		a.db = db
		store = tokens.NewSQLiteStore(db)
	}

	a.store = store

	var sess *session.Session
	hc, err := client.NewHTTPClient(c.APIBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "http")),
		client.WithRequestMiddleware(
			client.RequestID(),
			client.BearerToken(store, time.Now, log),
		),
		client.WithResponseMiddleware(
			client.ClearOnUnauthorized(store, log),
			client.OnUnauthorized(func(ctx context.Context) {
				// sess is assigned below, before any request is sent.
				if sess != nil {
					sess.Invalidate(ctx)
				}
			}),
		),
	)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	auth := services.NewAuthService(hc)
	profiles := services.NewProfileService(hc)
	jobs := services.NewJobService(hc)

	sess = session.New(store, auth, profiles, hc, session.WithLogger(log.With("component", "session")))
	a.session = sess
	a.jobs = jobs
	a.dashboards = services.NewDashboardService(profiles, jobs, sess, log)
	a.unsubscribe = sess.Subscribe(a.onSessionChange)

	return a, nil
}

// Run restores a stored session and then serves the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintf(a.out, "Welcome to the workforce CLI, backend %s (type 'help' for commands)\n", a.config.APIBaseURL)

	if err := a.session.Init(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not restore session:", userMessage(err))
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close releases the session subscription and the local database.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().State == session.Authenticated
}

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if snap.CurrentUser == nil {
		return "(" + snap.State.String() + ")"
	}
	return fmt.Sprintf("(%s %s)", snap.CurrentUser.Email, snap.CurrentUser.Role)
}

// onSessionChange reports state transitions; it is the Session's UI
// subscriber.
func (a *App) onSessionChange(snap session.Snapshot) {
	a.mu.Lock()
	prev := a.lastState
	a.lastState = snap.State
	a.mu.Unlock()

	if prev == snap.State {
		return
	}
	switch {
	case snap.State == session.Authenticated && snap.CurrentUser != nil:
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", snap.CurrentUser.Name, snap.CurrentUser.Email)
	case snap.State == session.Anonymous && prev == session.Authenticated:
		fmt.Fprintln(a.out, "Signed out")
	}
}

// userMessage picks the text to show for err.
func userMessage(err error) string {
	var se *session.Error
	var ve *session.ValidationError
	var de *services.DashboardError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &se):
		return se.Message
	case errors.As(err, &de):
		return de.Error()
	}
	return client.ErrorMessage(err, err.Error())
}
