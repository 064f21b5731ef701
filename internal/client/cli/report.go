package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/feed"
	"github.com/dmitrijs2005/inkwell/internal/client/services"
	"github.com/dmitrijs2005/inkwell/internal/client/validation"
)

// errorText maps err to the line shown to the user.
func errorText(err error) string {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, context.Canceled):
		return "Cancelled."
	case errors.Is(err, feed.ErrNotLoggedIn), errors.Is(err, feed.ErrNoPreferences):
		return feed.Message(err)
	case errors.Is(err, services.ErrLoginRequired):
		return "Please log in first."
	case errors.Is(err, services.ErrNotAuthor):
		return "Only the author can change this article."
	case errors.Is(err, services.ErrNotAllowed):
		return "That action is not available for this article."
	case errors.Is(err, services.ErrNoPendingSignup):
		return "No pending signup. Please sign up first."
	default:
		return client.MessageOf(err)
	}
}

// report prints err, if any.
func (a *App) report(ctx context.Context, err error) {
	if err == nil {
		return
	}
	a.log.Debug(ctx, "command failed", "error", err)
	a.println("Error:", errorText(err))
}

// reportSession prints the failure of an auth command. Server failures are
// already stored in the session, so the stored message is shown and then
// cleared.
func (a *App) reportSession(ctx context.Context, err error) {
	if err == nil {
		return
	}
	s := a.store.State()
	msg := s.Error
	if msg == "" {
		msg = s.OTP.Error
	}
	if msg == "" {
		a.report(ctx, err)
		return
	}
	a.println("Error:", msg)
	a.auth.ClearError(ctx)
}
