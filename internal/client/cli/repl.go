package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
)

// commandContext scopes one command. Ctrl-C cancels the command only.
// Tests replace it.
var commandContext = func(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

// execIface defines the command surface the REPL needs. The real App
// satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	refreshIfStale(ctx context.Context)

	Signup(ctx context.Context) error
	Verify(ctx context.Context, args []string) error
	Resend(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Status(ctx context.Context) error
	CancelSignup(ctx context.Context) error

	Feed(ctx context.Context) error
	Reload(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Mine(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	React(ctx context.Context, verb string, args []string) error
	Dismiss(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: feed, reload, signup, verify, resend, cancel, login, status, dismiss, exit"
	helpMember = "Available commands: feed, reload, dashboard, mine, show <id>, create, edit <id>, delete <id>, like <id>, dislike <id>, block <id>, unblock <id>, profile, status, dismiss, logout, exit"
)

// runREPL reads commands line by line from r and dispatches them to a.
// The loop exits on end of input or when the user types "exit" or "quit".
//
// Handlers report their own failures to the user; their returned errors
// are dropped here so one failed command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "inkwell (%s)> ", statusFn())

		line, err := r.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(w, "Bye!")
			return
		}

		cctx, stop := commandContext(ctx)
		dispatch(cctx, a, cmd, args, w)
		stop()

		a.refreshIfStale(ctx)
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string, w io.Writer) {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Fprintln(w, helpMember)
		} else {
			fmt.Fprintln(w, helpGuest)
		}

	case "signup", "register":
		_ = a.Signup(ctx)
	case "verify", "otp":
		_ = a.Verify(ctx, args)
	case "resend":
		_ = a.Resend(ctx)
	case "login":
		_ = a.Login(ctx)
	case "logout":
		_ = a.Logout(ctx)
	case "profile":
		_ = a.Profile(ctx)
	case "status", "whoami":
		_ = a.Status(ctx)
	case "cancel":
		_ = a.CancelSignup(ctx)

	case "feed", "home":
		_ = a.Feed(ctx)
	case "reload":
		_ = a.Reload(ctx)
	case "dashboard":
		_ = a.Dashboard(ctx)
	case "mine":
		_ = a.Mine(ctx)
	case "show":
		_ = a.Show(ctx, args)
	case "create":
		_ = a.Create(ctx)
	case "edit":
		_ = a.Edit(ctx, args)
	case "delete":
		_ = a.Delete(ctx, args)
	case "like", "dislike", "block", "unblock":
		_ = a.React(ctx, cmd, args)
	case "dismiss", "clear":
		_ = a.Dismiss(ctx)

	default:
		fmt.Fprintln(w, "Unknown command:", cmd)
	}
}
