package cli

import (
	"context"
	"strings"
	"time"
)

// SnapshotClock reports when the session snapshot was last persisted.
type SnapshotClock interface {
	SavedAt(ctx context.Context) (time.Time, error)
}

// Status prints who is signed in, any pending signup and what the home
// feed shows.
func (a *App) Status(ctx context.Context) error {
	s := a.store.State()
	switch {
	case s.User != nil:
		a.printf("Signed in as %s <%s>\n", s.User.FullName(), s.User.Email)
		if s.User.HasPreferences() {
			a.printf("Preferences: %s\n", strings.Join(s.User.Preferences, ", "))
		}
	case s.SignupData != nil:
		a.printf("Signup pending for %s; use 'verify' or 'cancel'\n", s.SignupData.Email)
	default:
		a.println("Not signed in")
	}

	t := a.feed.Target
	if len(t.CategoryList()) > 0 {
		a.printf("Feed: %s (%s), %d articles\n", t.Source, t.Categories, len(a.feed.Articles))
	} else {
		a.printf("Feed: %s, %d articles\n", t.Source, len(a.feed.Articles))
	}

	if a.snapshots == nil {
		return nil
	}
	at, err := a.snapshots.SavedAt(ctx)
	if err != nil {
		a.log.Warn(ctx, "read snapshot time failed", "error", err)
		return err
	}
	if !at.IsZero() {
		a.printf("Session saved %s\n", at.Local().Format(time.DateTime))
	}
	return nil
}

// CancelSignup drops a pending, unverified signup.
func (a *App) CancelSignup(ctx context.Context) error {
	s := a.store.State()
	if s.SignupData == nil {
		a.println("No signup in progress.")
		return nil
	}
	a.auth.ClearSignupData(ctx)
	a.printf("Discarded signup for %s.\n", s.SignupData.Email)
	return nil
}
