// Package services contains the application services of the inkwell client.
// This file defines the authentication service: signup, OTP verification,
// login, logout and profile updates, each driving the session store through
// one pending and one completing transition.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/client/session"
	"github.com/dmitrijs2005/inkwell/internal/client/validation"
	"github.com/dmitrijs2005/inkwell/internal/logging"
)

// Server messages that are reworded for display.
const (
	msgDuplicateAccount   = "Email or phone already exists"
	msgDuplicateFriendly  = "Email or phone already exists, please try a different one"
	msgInvalidOTP         = "Invalid or expired OTP"
	msgInvalidOTPFriendly = "Invalid or expired OTP. Please try again."
	msgLoginFailed        = "Login failed"
	msgLogoutFailed       = "Logout failed"
)

// Outcome tells the caller where to navigate after an action. Services do
// not navigate themselves.
type Outcome int

const (
	Stay Outcome = iota
	GoHome
	GoLogin
	GoVerify
	GoSignup
)

func (o Outcome) String() string {
	switch o {
	case GoHome:
		return "home"
	case GoLogin:
		return "login"
	case GoVerify:
		return "verify"
	case GoSignup:
		return "signup"
	default:
		return "stay"
	}
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Input is validated first; a *validation.Error leaves the store and
//     the network untouched.
//   - Every other failure is stored as the session's error message and
//     also returned.
//   - Logout always ends the local session, whatever the server says.
//
// All methods must honor context cancellation. A cancelled request is
// abandoned: its loading flag is cleared and its late answer ignored.
type AuthService interface {
	Signup(ctx context.Context, data models.SignupData) (Outcome, error)
	VerifyOTP(ctx context.Context, email, otp string) (Outcome, error)
	Login(ctx context.Context, creds models.Credentials) (Outcome, error)
	Logout(ctx context.Context) (Outcome, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (Outcome, error)
	ClearError(ctx context.Context)
	ResetOTPVerification(ctx context.Context)
	ClearSignupData(ctx context.Context)
}

type authService struct {
	api   client.Client
	store *session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and store.
func NewAuthService(api client.Client, store *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop{}
	}
	return &authService{api: api, store: store, log: log.With("service", "auth")}
}

func (a *authService) Signup(ctx context.Context, data models.SignupData) (Outcome, error) {
	if err := validation.Signup(data); err != nil {
		return Stay, err
	}
	data.Preferences = models.NormalizePreferences(data.Preferences)

	t := a.store.Begin(ctx, session.KindSignup)
	err := a.api.Signup(ctx, data)
	if err != nil {
		msg := client.MessageOf(err)
		if client.ServerMessageOf(err) == msgDuplicateAccount {
			msg = msgDuplicateFriendly
		}
		return Stay, a.fail(ctx, t, msg, fmt.Errorf("signup error: %w", err))
	}

	// the password is not needed past this point
	data.Password, data.ConfirmPassword = "", ""
	a.resolve(ctx, t, session.Action{Type: session.SignupSuccess, Signup: &data})
	a.log.Info(ctx, "signup accepted, otp sent", "email", data.Email)
	return GoVerify, nil
}

// VerifyOTP confirms the code sent to email. An empty email falls back to
// the pending signup.
func (a *authService) VerifyOTP(ctx context.Context, email, otp string) (Outcome, error) {
	if email == "" {
		if sd := a.store.State().SignupData; sd != nil {
			email = sd.Email
		}
	}
	if email == "" {
		return GoSignup, ErrNoPendingSignup
	}

	req := models.OTPVerification{Email: email, OTP: otp}
	if err := validation.OTP(req); err != nil {
		return Stay, err
	}

	t := a.store.Begin(ctx, session.KindOTP)
	user, err := a.api.VerifyOTP(ctx, req)
	if err != nil {
		msg := client.MessageOf(err)
		if client.ServerMessageOf(err) == msgInvalidOTP {
			msg = msgInvalidOTPFriendly
		}
		return Stay, a.fail(ctx, t, msg, fmt.Errorf("verify otp error: %w", err))
	}

	a.resolve(ctx, t, session.Action{Type: session.OTPSuccess, User: user})
	a.log.Info(ctx, "otp verified", "user_id", user.ID)
	return GoHome, nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (Outcome, error) {
	if err := validation.Login(creds); err != nil {
		return Stay, err
	}

	t := a.store.Begin(ctx, session.KindLogin)
	user, err := a.api.Login(ctx, creds)
	if err != nil {
		msg := client.ServerMessageOf(err)
		if msg == "" {
			msg = msgLoginFailed
		}
		return Stay, a.fail(ctx, t, msg, fmt.Errorf("login error: %w", err))
	}

	a.resolve(ctx, t, session.Action{Type: session.LoginSuccess, User: user})
	a.log.Info(ctx, "logged in", "user_id", user.ID)
	return GoHome, nil
}

// Logout ends the session. The local session and the cookie jar are cleared
// even when the server call fails; the failure message is kept.
func (a *authService) Logout(ctx context.Context) (Outcome, error) {
	t := a.store.Begin(ctx, session.KindLogout)
	apiErr := a.api.Logout(ctx)

	if cerr := a.api.ClearCookies(); cerr != nil {
		a.log.Warn(ctx, "clear cookies failed", "error", cerr)
	}

	if apiErr != nil {
		if cancelled(ctx, apiErr) {
			a.store.Abandon(ctx, t)
			a.store.Dispatch(ctx, session.Action{Type: session.LocalLogout})
			return GoLogin, apiErr
		}
		msg := client.ServerMessageOf(apiErr)
		if msg == "" {
			msg = msgLogoutFailed
		}
		a.resolve(ctx, t, session.Action{Type: session.LogoutFailure, Message: msg})
		a.log.Warn(ctx, "server logout failed, local session cleared", "error", apiErr)
		return GoLogin, fmt.Errorf("logout error: %w", apiErr)
	}

	a.resolve(ctx, t, session.Action{Type: session.LogoutSuccess})
	a.log.Info(ctx, "logged out")
	return GoLogin, nil
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (Outcome, error) {
	if !a.store.State().Authenticated() {
		return GoLogin, ErrLoginRequired
	}
	if err := validation.Profile(&upd); err != nil {
		return Stay, err
	}

	t := a.store.Begin(ctx, session.KindProfileUpdate)
	user, err := a.api.UpdateProfile(ctx, upd)
	if err != nil {
		msg := client.ServerMessageOf(err)
		if msg == "" {
			msg = client.MessageOf(err)
		}
		return Stay, a.fail(ctx, t, msg, fmt.Errorf("update profile error: %w", err))
	}

	a.resolve(ctx, t, session.Action{Type: session.ProfileUpdateSuccess, User: user})
	a.log.Info(ctx, "profile updated", "user_id", user.ID)
	return Stay, nil
}

func (a *authService) ClearError(ctx context.Context) {
	a.store.Dispatch(ctx, session.Action{Type: session.ErrorClear})
}

// ResetOTPVerification resets the OTP sub-state, as when a new code is requested.
func (a *authService) ResetOTPVerification(ctx context.Context) {
	a.store.Dispatch(ctx, session.Action{Type: session.ResetOTPVerification})
}

func (a *authService) ClearSignupData(ctx context.Context) {
	a.store.Dispatch(ctx, session.Action{Type: session.ClearSignupData})
}

// fail completes t with a failure, or abandons it when the caller cancelled.
func (a *authService) fail(ctx context.Context, t session.Ticket, msg string, err error) error {
	if cancelled(ctx, err) {
		a.store.Abandon(ctx, t)
		return err
	}
	a.resolve(ctx, t, t.Kind.Failure(msg))
	a.log.Debug(ctx, "request failed", "kind", t.Kind, "message", msg, "error", err)
	return err
}

func (a *authService) resolve(ctx context.Context, t session.Ticket, act session.Action) {
	if _, ok := a.store.Resolve(ctx, t, act); !ok {
		a.log.Debug(ctx, "completion ignored", "kind", t.Kind, "action", act.Type)
	}
}

func cancelled(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, context.Canceled)
}
