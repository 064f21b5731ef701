package services

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/session"
	"github.com/dmitrijs2005/inkwell/internal/logging"
)

// SessionChecker decides at startup whether a rehydrated user can be
// trusted. It makes no network call: the session is kept when the cookie
// jar still holds a cookie for the API that has not visibly expired.
type SessionChecker struct {
	store *session.Store
	creds client.Credentials
	log   logging.Logger
	now   func() time.Time
}

func NewSessionChecker(store *session.Store, creds client.Credentials, log logging.Logger) *SessionChecker {
	if log == nil {
		log = logging.Nop{}
	}
	return &SessionChecker{store: store, creds: creds, log: log, now: time.Now}
}

// Check drops the persisted user when the backend session is gone. It
// reports whether a user remains signed in.
func (c *SessionChecker) Check(ctx context.Context) bool {
	st := c.store.State()
	if st.User == nil {
		return false
	}

	cookies := c.creds.SessionCookies()
	if len(cookies) == 0 {
		c.drop(ctx, "no session cookie")
		return false
	}
	if allExpired(cookies, c.now()) {
		c.drop(ctx, "session token expired")
		return false
	}

	c.log.Debug(ctx, "persisted session kept", "user_id", st.User.ID)
	return true
}

func (c *SessionChecker) drop(ctx context.Context, reason string) {
	c.log.Info(ctx, "dropping persisted session", "reason", reason)
	c.store.Dispatch(ctx, session.Action{Type: session.LocalLogout})
	if err := c.creds.ClearCookies(); err != nil {
		c.log.Warn(ctx, "clear cookies failed", "error", err)
	}
}

// allExpired reports whether every cookie is a JWT whose exp lies in the
// past. Opaque cookies count as live. Signatures are not checked; the
// backend does that.
func allExpired(cookies []*http.Cookie, now time.Time) bool {
	parser := jwt.NewParser()
	for _, ck := range cookies {
		var claims jwt.RegisteredClaims
		if _, _, err := parser.ParseUnverified(ck.Value, &claims); err != nil {
			return false
		}
		if claims.ExpiresAt == nil || claims.ExpiresAt.After(now) {
			return false
		}
	}
	return true
}
