package cli

import (
	"context"

	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/feed"
	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/client/services"
	"github.com/dmitrijs2005/inkwell/internal/client/session"
)

// fakeAuth drives the real store the way the service would, without a
// backend.
type fakeAuth struct {
	store *session.Store
	calls []string

	signup     models.SignupData
	signupErr  error
	verifyOTP  string
	verifyErr  error
	loginErr   error
	logoutErr  error
	profile    models.ProfileUpdate
	profileErr error
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) fail(kind session.Kind, msg string) {
	t := f.store.Begin(context.Background(), kind)
	f.store.Resolve(context.Background(), t, kind.Failure(msg))
}

func (f *fakeAuth) Signup(ctx context.Context, d models.SignupData) (services.Outcome, error) {
	f.calls = append(f.calls, "signup")
	f.signup = d
	if f.signupErr != nil {
		f.fail(session.KindSignup, client.MessageOf(f.signupErr))
		return services.Stay, f.signupErr
	}
	d.Password, d.ConfirmPassword = "", ""
	f.store.Dispatch(ctx, session.Action{Type: session.SignupSuccess, Signup: &d})
	return services.GoVerify, nil
}

func (f *fakeAuth) VerifyOTP(ctx context.Context, email, otp string) (services.Outcome, error) {
	f.calls = append(f.calls, "verify")
	f.verifyOTP = otp
	if f.verifyErr != nil {
		f.fail(session.KindOTP, client.MessageOf(f.verifyErr))
		return services.Stay, f.verifyErr
	}
	f.store.Dispatch(ctx, session.Action{Type: session.OTPSuccess, User: &models.User{ID: "u1", Email: "ada@example.com"}})
	return services.GoHome, nil
}

func (f *fakeAuth) Login(ctx context.Context, c models.Credentials) (services.Outcome, error) {
	f.calls = append(f.calls, "login "+c.Email+" "+c.Password)
	if f.loginErr != nil {
		f.fail(session.KindLogin, client.MessageOf(f.loginErr))
		return services.Stay, f.loginErr
	}
	f.store.Dispatch(ctx, session.Action{Type: session.LoginSuccess, User: &models.User{ID: "u1", Email: c.Email}})
	return services.GoHome, nil
}

func (f *fakeAuth) Logout(ctx context.Context) (services.Outcome, error) {
	f.calls = append(f.calls, "logout")
	if f.logoutErr != nil {
		f.store.Dispatch(ctx, session.Action{Type: session.LogoutFailure, Message: client.MessageOf(f.logoutErr)})
		return services.GoLogin, f.logoutErr
	}
	f.store.Dispatch(ctx, session.Action{Type: session.LogoutSuccess})
	return services.GoLogin, nil
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (services.Outcome, error) {
	f.calls = append(f.calls, "profile")
	f.profile = upd
	if f.profileErr != nil {
		return services.Stay, f.profileErr
	}
	u := f.store.State().User
	u.FirstName = upd.FirstName
	u.Preferences = models.NormalizePreferences(upd.Preferences)
	f.store.Dispatch(ctx, session.Action{Type: session.UpdateUser, User: u})
	return services.Stay, nil
}

func (f *fakeAuth) ClearError(ctx context.Context) {
	f.calls = append(f.calls, "clear")
	f.store.Dispatch(ctx, session.Action{Type: session.ErrorClear})
}

func (f *fakeAuth) ResetOTPVerification(ctx context.Context) {
	f.calls = append(f.calls, "reset-otp")
	f.store.Dispatch(ctx, session.Action{Type: session.ResetOTPVerification})
}

func (f *fakeAuth) ClearSignupData(ctx context.Context) {
	f.calls = append(f.calls, "clear-signup")
	f.store.Dispatch(ctx, session.Action{Type: session.ClearSignupData})
}

type fakeArticles struct {
	calls    []string
	list     []models.Article
	listErr  error
	article  *models.Article
	getErr   error
	form     models.ArticleForm
	writeErr error
}

var _ services.ArticleService = (*fakeArticles)(nil)

func (f *fakeArticles) LoadFeed(_ context.Context, fd *feed.Feed) error {
	f.calls = append(f.calls, "feed")
	fd.Load(feed.Target{}, f.list, f.listErr)
	return f.listErr
}

func (f *fakeArticles) LoadDashboard(_ context.Context, fd *feed.Feed) error {
	f.calls = append(f.calls, "dashboard")
	fd.Load(feed.Target{Source: feed.SourceByPreferences}, f.list, f.listErr)
	return f.listErr
}

func (f *fakeArticles) Reload(_ context.Context, fd *feed.Feed) error {
	f.calls = append(f.calls, "reload")
	fd.Load(fd.Target, f.list, f.listErr)
	return f.listErr
}

func (f *fakeArticles) MyArticles(_ context.Context, fd *feed.Feed) error {
	f.calls = append(f.calls, "mine")
	fd.Load(feed.Target{Source: feed.SourceMine}, f.list, f.listErr)
	return f.listErr
}

func (f *fakeArticles) Get(_ context.Context, id string) (*models.Article, error) {
	f.calls = append(f.calls, "get "+id)
	return f.article, f.getErr
}

func (f *fakeArticles) Create(_ context.Context, form models.ArticleForm) (*models.Article, error) {
	f.calls = append(f.calls, "create")
	f.form = form
	return f.article, f.writeErr
}

func (f *fakeArticles) Update(_ context.Context, id string, form models.ArticleForm) (*models.Article, error) {
	f.calls = append(f.calls, "update "+id)
	f.form = form
	return f.article, f.writeErr
}

func (f *fakeArticles) Delete(_ context.Context, fd *feed.Feed, id string) error {
	f.calls = append(f.calls, "delete "+id)
	if f.writeErr == nil {
		fd.Remove(id)
	}
	return f.writeErr
}

func (f *fakeArticles) React(_ context.Context, _ *feed.Feed, id string, r client.Reaction) (*models.Article, error) {
	f.calls = append(f.calls, string(r)+" "+id)
	return f.article, f.writeErr
}
