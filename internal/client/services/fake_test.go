package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/models"
)

// fakeClient implements client.Client with overridable behavior. Unset
// funcs succeed with zero values.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	SignupFn        func(models.SignupData) error
	VerifyOTPFn     func(models.OTPVerification) (*models.User, error)
	LoginFn         func(ctx context.Context, c models.Credentials) (*models.User, error)
	LogoutFn        func(ctx context.Context) error
	UpdateProfileFn func(models.ProfileUpdate) (*models.User, error)

	Latest   []models.Article
	ByPrefs  []models.Article
	Mine     []models.Article
	ListErr  error
	Single   *models.Article
	GetErr   error
	Updated  *models.Article
	WriteErr error

	gotCategories []string
	gotForm       models.ArticleForm
	gotSignup     models.SignupData

	Cookies    []*http.Cookie
	clearCount int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Signup(_ context.Context, d models.SignupData) error {
	f.record("signup")
	f.gotSignup = d
	if f.SignupFn != nil {
		return f.SignupFn(d)
	}
	return nil
}

func (f *fakeClient) VerifyOTP(_ context.Context, r models.OTPVerification) (*models.User, error) {
	f.record("verify")
	if f.VerifyOTPFn != nil {
		return f.VerifyOTPFn(r)
	}
	return &models.User{ID: "u1", Email: r.Email}, nil
}

func (f *fakeClient) Login(ctx context.Context, c models.Credentials) (*models.User, error) {
	f.record("login")
	if f.LoginFn != nil {
		return f.LoginFn(ctx, c)
	}
	return &models.User{ID: "u1", Email: c.Email}, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.record("logout")
	if f.LogoutFn != nil {
		return f.LogoutFn(ctx)
	}
	return nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, u models.ProfileUpdate) (*models.User, error) {
	f.record("profile")
	if f.UpdateProfileFn != nil {
		return f.UpdateProfileFn(u)
	}
	return &models.User{ID: "u1", FirstName: u.FirstName, Email: u.Email, Preferences: u.Preferences}, nil
}

func (f *fakeClient) LatestArticles(context.Context) ([]models.Article, error) {
	f.record("latest")
	return f.Latest, f.ListErr
}

func (f *fakeClient) ArticlesByPreferences(_ context.Context, categories []string) ([]models.Article, error) {
	f.record("by-preferences")
	f.gotCategories = categories
	return f.ByPrefs, f.ListErr
}

func (f *fakeClient) UserArticles(context.Context) ([]models.Article, error) {
	f.record("mine")
	return f.Mine, f.ListErr
}

func (f *fakeClient) Article(_ context.Context, id string) (*models.Article, error) {
	f.record("get " + id)
	return f.Single, f.GetErr
}

func (f *fakeClient) CreateArticle(_ context.Context, form models.ArticleForm) (*models.Article, error) {
	f.record("create")
	f.gotForm = form
	return f.Updated, f.WriteErr
}

func (f *fakeClient) UpdateArticle(_ context.Context, id string, form models.ArticleForm) (*models.Article, error) {
	f.record("update " + id)
	f.gotForm = form
	return f.Updated, f.WriteErr
}

func (f *fakeClient) DeleteArticle(_ context.Context, id string) error {
	f.record("delete " + id)
	return f.WriteErr
}

func (f *fakeClient) React(_ context.Context, id string, r client.Reaction) (*models.Article, error) {
	f.record(string(r) + " " + id)
	return f.Updated, f.WriteErr
}

func (f *fakeClient) SessionCookies() []*http.Cookie { return f.Cookies }

func (f *fakeClient) ClearCookies() error {
	f.clearCount++
	f.Cookies = nil
	return nil
}

func (f *fakeClient) SaveCookies() error { return nil }
