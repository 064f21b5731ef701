package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/feed"
	"github.com/dmitrijs2005/inkwell/internal/client/services"
	"github.com/dmitrijs2005/inkwell/internal/client/session"
	"github.com/dmitrijs2005/inkwell/internal/logging"
)

// App is the REPL state: the services it drives, the current feed and the
// terminal streams.
type App struct {
	auth     services.AuthService
	articles services.ArticleService
	store    *session.Store
	creds    client.Credentials
	log      logging.Logger

	snapshots SnapshotClock

	reader *bufio.Reader
	out    io.Writer

	feed feed.Feed

	mu       sync.Mutex
	identity string
	stale    bool
}

// Deps groups what NewApp needs.
type Deps struct {
	Auth     services.AuthService
	Articles services.ArticleService
	Store    *session.Store
	Creds    client.Credentials
	Logger   logging.Logger

	// Snapshots is optional; status omits the save time without it.
	Snapshots SnapshotClock
}

func NewApp(d Deps, in io.Reader, out io.Writer) *App {
	log := d.Logger
	if log == nil {
		log = logging.Nop{}
	}
	return &App{
		auth:      d.Auth,
		articles:  d.Articles,
		store:     d.Store,
		creds:     d.Creds,
		log:       log,
		snapshots: d.Snapshots,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Run shows the home feed and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) error {
	unsubscribe := a.store.Subscribe(a.onState)
	defer unsubscribe()
	a.onState(a.store.State())
	a.mu.Lock()
	a.stale = false
	a.mu.Unlock()

	a.println("Welcome to inkwell (type 'help' for commands)")
	a.report(ctx, a.articles.LoadFeed(ctx, &a.feed))
	a.renderFeed()

	runREPL(ctx, a, a.status, a.reader, a.out)
	a.saveCookies(ctx)
	return nil
}

// onState tracks who is signed in. A change of user or preferences marks
// the feed stale so it is fetched again for the new target.
func (a *App) onState(s session.State) {
	id := ""
	if s.User != nil {
		id = s.User.ID + "|" + fmt.Sprint(s.User.Preferences)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if id != a.identity {
		a.identity = id
		a.stale = true
	}
}

func (a *App) status() string {
	s := a.store.State()
	switch {
	case s.User != nil:
		return s.User.Email
	case s.SignupData != nil:
		return s.SignupData.Email + ", unverified"
	default:
		return "guest"
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.State().Authenticated()
}

// refreshIfStale reloads the home feed after the session changed hands.
func (a *App) refreshIfStale(ctx context.Context) {
	a.mu.Lock()
	stale := a.stale
	a.stale = false
	a.mu.Unlock()

	if !stale {
		return
	}
	a.feed = feed.Feed{}
	a.report(ctx, a.articles.LoadFeed(ctx, &a.feed))
}

func (a *App) saveCookies(ctx context.Context) {
	if a.creds == nil {
		return
	}
	if err := a.creds.SaveCookies(); err != nil {
		a.log.Warn(ctx, "save cookies failed", "error", err)
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// idArg returns the article id argument or prints usage.
func (a *App) idArg(args []string, usage string) (string, bool) {
	if len(args) == 0 {
		a.println("Usage:", usage)
		return "", false
	}
	return args[0], true
}
