package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dmitrijs2005/avarich/internal/client/chat"
	"github.com/dmitrijs2005/avarich/internal/client/client"
	"github.com/dmitrijs2005/avarich/internal/client/config"
	"github.com/dmitrijs2005/avarich/internal/client/models"
	"github.com/dmitrijs2005/avarich/internal/client/services"
	"github.com/dmitrijs2005/avarich/internal/logging"
)

// sessionService is the part of services.SessionService the commands use.
type sessionService interface {
	Load(ctx context.Context) error
	State() services.State
	User() *models.CachedUser
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	Reachable(ctx context.Context) error
	AssignUserType(ctx context.Context, userType string) error
	UpdatePersonalInformation(ctx context.Context, info *models.PersonalInformation) error
	UpdateIncome(ctx context.Context, income *models.Income) error
}

type chatProxy interface {
	Send(ctx context.Context, lang chat.Language, text string) (chat.Message, bool, error)
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	session sessionService
	chat    chatProxy
	lang    chat.Language
	avatar  chat.Avatar
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	session := services.NewSessionService(apiClient, db, logger)

	gen := chat.NewGeminiGenerator(c.GeminiModel, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
	proxy := chat.NewProxy(gen, chat.Keys{ENG: c.GeminiKeyENG, TUN: c.GeminiKeyTUN}, logger)

	return &App{
		config:  c,
		logger:  logger.With("module", "cli"),
		db:      db,
		session: session,
		chat:    proxy,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores the cached session and blocks in the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}

	fmt.Fprintln(a.out, "Welcome to avarich (type 'help' for commands)")
	a.restore(ctx)

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) restore(ctx context.Context) {
	err := a.session.Load(ctx)
	if a.isSignedIn() {
		fmt.Fprintf(a.out, "Signed in as %s\n", a.session.User().Email)
		return
	}
	if err == nil {
		return
	}

	a.logger.Warn(ctx, "session restore failed", "error", err)
	u := a.session.User()
	if u == nil {
		return
	}
	if pingErr := a.session.Reachable(ctx); pingErr != nil {
		fmt.Fprintf(a.out, "Server unreachable, could not confirm the session of %s. Please sign in again later.\n", u.Email)
		return
	}
	fmt.Fprintf(a.out, "The session of %s has expired. Please sign in again.\n", u.Email)
}

func (a *App) isSignedIn() bool {
	return a.session.State() == services.StateAuthenticated
}

func (a *App) status() string {
	name := "guest"
	if a.isSignedIn() {
		name = a.session.User().Email
	}
	return fmt.Sprintf("(%s %s)", name, a.lang)
}

// alert prints "<title>: <message>", preferring the server's message.
func (a *App) alert(title string, err error, fallback string) {
	msg := fallback
	if m, ok := client.ServerMessage(err); ok {
		msg = m
	}
	fmt.Fprintf(a.out, "%s: %s\n", title, msg)
}

func (a *App) success(msg string) {
	fmt.Fprintf(a.out, "Success: %s\n", msg)
}
