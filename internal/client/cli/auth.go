package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/client/services"
	"github.com/dmitrijs2005/inkwell/internal/common"
)

func (a *App) ask(prompt string) (string, error) {
	return ReadLine(a.reader, prompt, a.out)
}

func (a *App) askSecret(prompt string) (string, error) {
	return ReadSecret(a.reader, prompt, a.out)
}

// follow acts on a navigation outcome.
func (a *App) follow(ctx context.Context, out services.Outcome) {
	switch out {
	case services.GoVerify:
		a.println("We sent a one-time code to your email.")
		_ = a.Verify(ctx, nil)
	case services.GoHome:
		a.refreshIfStale(ctx)
		a.renderFeed()
	case services.GoLogin:
		a.println("You are logged out. Use 'login' to sign in.")
	case services.GoSignup:
		a.println("Use 'signup' to create an account.")
	}
}

// Signup collects the registration form and, on success, asks for the OTP.
func (a *App) Signup(ctx context.Context) error {
	var d models.SignupData
	var err error
	fields := []struct {
		prompt string
		dst    *string
		secret bool
	}{
		{"First name", &d.FirstName, false},
		{"Last name", &d.LastName, false},
		{"Phone (10 digits)", &d.Phone, false},
		{"Email", &d.Email, false},
		{"Date of birth (YYYY-MM-DD)", &d.DOB, false},
		{"Password", &d.Password, true},
		{"Confirm password", &d.ConfirmPassword, true},
	}
	for _, f := range fields {
		if f.secret {
			*f.dst, err = a.askSecret(f.prompt)
		} else {
			*f.dst, err = a.ask(f.prompt)
		}
		if err != nil {
			return err
		}
	}
	d.Preferences, err = ReadList(a.reader, "Preferences: "+strings.Join(models.Categories, ", "), a.out)
	if err != nil {
		return err
	}

	out, err := a.auth.Signup(ctx, d)
	if err != nil {
		a.reportSession(ctx, err)
		return err
	}
	a.follow(ctx, out)
	return nil
}

// Verify submits an OTP. With no arguments it prompts for the code; an
// optional second argument overrides the pending signup's email.
func (a *App) Verify(ctx context.Context, args []string) error {
	var otp, email string
	if len(args) > 0 {
		otp = args[0]
	}
	if len(args) > 1 {
		email = args[1]
	}
	if otp == "" {
		var err error
		if otp, err = a.ask("Enter the 6-digit code"); err != nil {
			return err
		}
	}

	out, err := a.auth.VerifyOTP(ctx, email, otp)
	if err != nil {
		a.reportSession(ctx, err)
		if out == services.GoSignup {
			a.follow(ctx, out)
		}
		return err
	}
	a.saveCookies(ctx)
	a.println("Email verified. Welcome!")
	a.follow(ctx, out)
	return nil
}

// Resend resets the OTP sub-state so a new code can be entered.
func (a *App) Resend(ctx context.Context) error {
	a.auth.ResetOTPVerification(ctx)
	a.println("OTP verification reset. Enter the new code with 'verify'.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	var c models.Credentials
	var err error
	if c.Email, err = a.ask("Email"); err != nil {
		return err
	}
	if c.Password, err = a.askSecret("Password"); err != nil {
		return err
	}

	out, err := a.auth.Login(ctx, c)
	if err != nil {
		a.reportSession(ctx, err)
		return err
	}
	a.saveCookies(ctx)
	a.println("Logged in.")
	a.follow(ctx, out)
	return nil
}

// Logout always ends the local session; a server failure is reported but
// does not keep the user signed in.
func (a *App) Logout(ctx context.Context) error {
	out, err := a.auth.Logout(ctx)
	a.saveCookies(ctx)
	a.reportSession(ctx, err)
	a.follow(ctx, out)
	return err
}

// Profile edits the current user. Empty answers keep current values; the
// password changes only when a new one is entered.
func (a *App) Profile(ctx context.Context) error {
	u := a.store.State().User
	if u == nil {
		a.report(ctx, services.ErrLoginRequired)
		return services.ErrLoginRequired
	}

	upd := models.ProfileUpdate{Preferences: u.Preferences}
	dob := ""
	if !u.DateOfBirth.IsZero() {
		dob = u.DateOfBirth.Format(common.DateLayout)
	}
	var err error
	for _, f := range []struct {
		prompt, current string
		dst             *string
	}{
		{"First name", u.FirstName, &upd.FirstName},
		{"Last name", u.LastName, &upd.LastName},
		{"Phone", u.Phone, &upd.Phone},
		{"Email", u.Email, &upd.Email},
		{"Date of birth", dob, &upd.DOB},
	} {
		if *f.dst, err = ReadWithDefault(a.reader, f.prompt, f.current, a.out); err != nil {
			return err
		}
	}

	prefs, err := ReadWithDefault(a.reader, "Preferences (comma-separated)", strings.Join(u.Preferences, ", "), a.out)
	if err != nil {
		return err
	}
	upd.Preferences = splitList(prefs)

	if upd.Password, err = a.askSecret("New password (empty to keep)"); err != nil {
		return err
	}
	if upd.Password != "" {
		if upd.ConfirmPassword, err = a.askSecret("Confirm new password"); err != nil {
			return err
		}
	}

	out, err := a.auth.UpdateProfile(ctx, upd)
	if err != nil {
		a.reportSession(ctx, err)
		a.follow(ctx, out)
		return err
	}
	a.println("Profile updated.")
	return nil
}
