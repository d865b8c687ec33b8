package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/Purvesh8762/user-management/internal/client/api"
	"github.com/Purvesh8762/user-management/internal/client/config"
	"github.com/Purvesh8762/user-management/internal/client/models"
	"github.com/Purvesh8762/user-management/internal/client/repositories/session"
	"github.com/Purvesh8762/user-management/internal/client/services"
	"github.com/Purvesh8762/user-management/internal/common"
	"github.com/Purvesh8762/user-management/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	userService services.UserService
	log         logging.Logger

	// session mirrors the persisted record while the app runs; it is only
	// ever set from gate/login results and wiped on logout or rejection.
	session models.Session

	// resetEmail carries the address from the forgot-password step into the
	// reset-password screen, which expects it prefilled.
	resetEmail string

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	baseURL, err := url.Parse(c.ServerBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server base URL %q: %w", c.ServerBaseURL, err)
	}

	httpClient := &http.Client{Timeout: c.RequestTimeout}
	apiClient := api.NewHTTPClient(httpClient, *baseURL)
	store := session.NewStore(db)

	as := services.NewAuthService(apiClient, store)
	us := services.NewUserService(apiClient, store)

	return &App{
		config:      c,
		authService: as,
		userService: us,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)
	a.Root(ctx)
}

// restoreSession loads a persisted session from a previous run. A missing or
// stale session is the normal cold start; a broken store is reported, not
// silently treated as logged-out.
func (a *App) restoreSession(ctx context.Context) {
	sess, err := a.authService.CurrentSession(ctx)
	if err != nil {
		if errors.Is(err, common.ErrStorage) {
			a.log.Error(ctx, "session restore failed", "err", err)
			fmt.Println(failureMessage(err))
		}
		return
	}

	a.session = sess
	fmt.Printf("Welcome back, %s\n", sess.Email)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsComplete()
}

// gate runs the session check every authenticated screen starts with.
// On any failure the in-memory session is wiped so the prompt falls back
// to the unauthenticated command set.
func (a *App) gate(ctx context.Context) (models.Session, error) {
	sess, err := a.authService.CurrentSession(ctx)
	if err != nil {
		a.session = models.Session{}
		return models.Session{}, err
	}
	a.session = sess
	return sess, nil
}
