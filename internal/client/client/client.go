package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
)

// Reaction is a per-user action on an article.
type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
	ReactionBlock   Reaction = "block"
	ReactionUnblock Reaction = "unblock"
)

// AuthAPI covers the /auth endpoints.
type AuthAPI interface {
	Signup(ctx context.Context, data models.SignupData) error
	VerifyOTP(ctx context.Context, req models.OTPVerification) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
}

// ArticleAPI covers the /article endpoints.
type ArticleAPI interface {
	LatestArticles(ctx context.Context) ([]models.Article, error)
	ArticlesByPreferences(ctx context.Context, categories []string) ([]models.Article, error)
	UserArticles(ctx context.Context) ([]models.Article, error)
	Article(ctx context.Context, id string) (*models.Article, error)
	CreateArticle(ctx context.Context, form models.ArticleForm) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, form models.ArticleForm) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error
	React(ctx context.Context, id string, r Reaction) (*models.Article, error)
}

// Credentials gives access to the cookie jar holding the backend session.
type Credentials interface {
	SessionCookies() []*http.Cookie
	ClearCookies() error
	SaveCookies() error
}

// Client is the full backend contract used by the services.
type Client interface {
	AuthAPI
	ArticleAPI
	Credentials
}
