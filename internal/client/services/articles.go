package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/feed"
	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/client/session"
	"github.com/dmitrijs2005/inkwell/internal/client/validation"
	"github.com/dmitrijs2005/inkwell/internal/logging"
)

// ArticleService fetches and changes articles on behalf of the current
// session. Feeds passed in are updated in place with what the server returns.
type ArticleService interface {
	// LoadFeed fetches the home feed chosen by the gating rules.
	LoadFeed(ctx context.Context, f *feed.Feed) error
	// LoadDashboard fetches the preference feed; it refuses without a user
	// or without preferences.
	LoadDashboard(ctx context.Context, f *feed.Feed) error
	// Reload repeats the last fetch of f.
	Reload(ctx context.Context, f *feed.Feed) error
	MyArticles(ctx context.Context, f *feed.Feed) error
	Get(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, form models.ArticleForm) (*models.Article, error)
	Update(ctx context.Context, id string, form models.ArticleForm) (*models.Article, error)
	Delete(ctx context.Context, f *feed.Feed, id string) error
	React(ctx context.Context, f *feed.Feed, id string, r client.Reaction) (*models.Article, error)
}

type articleService struct {
	api   client.ArticleAPI
	store *session.Store
	log   logging.Logger
}

func NewArticleService(api client.ArticleAPI, store *session.Store, log logging.Logger) ArticleService {
	if log == nil {
		log = logging.Nop{}
	}
	return &articleService{api: api, store: store, log: log.With("service", "articles")}
}

func (s *articleService) user() *models.User {
	return s.store.State().User
}

func (s *articleService) fetch(ctx context.Context, t feed.Target) ([]models.Article, error) {
	switch t.Source {
	case feed.SourceByPreferences:
		return s.api.ArticlesByPreferences(ctx, t.CategoryList())
	case feed.SourceMine:
		if s.user() == nil {
			return nil, ErrLoginRequired
		}
		return s.api.UserArticles(ctx)
	default:
		return s.api.LatestArticles(ctx)
	}
}

func (s *articleService) LoadFeed(ctx context.Context, f *feed.Feed) error {
	t := feed.TargetFor(s.user())
	s.log.Debug(ctx, "loading feed", "source", t.Source, "categories", t.Categories)
	list, err := s.fetch(ctx, t)
	f.Load(t, list, err)
	if err != nil {
		return fmt.Errorf("load feed: %w", err)
	}
	return nil
}

func (s *articleService) LoadDashboard(ctx context.Context, f *feed.Feed) error {
	t, err := feed.DashboardTarget(s.user())
	if err != nil {
		f.Load(t, nil, err)
		return err
	}
	list, err := s.fetch(ctx, t)
	f.Load(t, list, err)
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}
	return nil
}

func (s *articleService) Reload(ctx context.Context, f *feed.Feed) error {
	list, err := s.fetch(ctx, f.Target)
	f.Load(f.Target, list, err)
	if err != nil {
		return fmt.Errorf("reload feed: %w", err)
	}
	return nil
}

func (s *articleService) MyArticles(ctx context.Context, f *feed.Feed) error {
	if s.user() == nil {
		return ErrLoginRequired
	}
	t := feed.Target{Source: feed.SourceMine}
	list, err := s.fetch(ctx, t)
	f.Load(t, list, err)
	if err != nil {
		return fmt.Errorf("load my articles: %w", err)
	}
	return nil
}

// Get reads one article in full. Anonymous sessions only see obscured
// excerpts, so reading requires a user.
func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	if !feed.VisibilityFor(s.user()).CanReadDetail {
		return nil, ErrLoginRequired
	}
	a, err := s.api.Article(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article %s: %w", id, err)
	}
	return a, nil
}

func (s *articleService) Create(ctx context.Context, form models.ArticleForm) (*models.Article, error) {
	u := s.user()
	if u == nil {
		return nil, ErrLoginRequired
	}
	if err := validation.Article(&form); err != nil {
		return nil, err
	}
	a, err := s.api.CreateArticle(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	s.log.Info(ctx, "article created", "user_id", u.ID)
	return a, nil
}

// Update fetches the article first so that only its author can change it;
// the author id travels with the form.
func (s *articleService) Update(ctx context.Context, id string, form models.ArticleForm) (*models.Article, error) {
	u := s.user()
	if u == nil {
		return nil, ErrLoginRequired
	}
	if err := validation.Article(&form); err != nil {
		return nil, err
	}

	current, err := s.api.Article(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article %s: %w", id, err)
	}
	if !feed.AffordancesFor(u, current).Edit {
		return nil, ErrNotAuthor
	}
	form.AuthorID = current.Author.ID

	a, err := s.api.UpdateArticle(ctx, id, form)
	if err != nil {
		return nil, fmt.Errorf("update article %s: %w", id, err)
	}
	s.log.Info(ctx, "article updated", "article_id", id)
	return a, nil
}

// Delete removes the article on the server and then from f, which may be nil.
func (s *articleService) Delete(ctx context.Context, f *feed.Feed, id string) error {
	u := s.user()
	if u == nil {
		return ErrLoginRequired
	}
	if f != nil {
		if a := f.Find(id); a != nil && !feed.AffordancesFor(u, a).Delete {
			return ErrNotAuthor
		}
	}

	if err := s.api.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("delete article %s: %w", id, err)
	}
	if f != nil {
		f.Remove(id)
	}
	s.log.Info(ctx, "article deleted", "article_id", id)
	return nil
}

// React applies a like, dislike, block or unblock and merges the server's
// answer into f, which may be nil.
func (s *articleService) React(ctx context.Context, f *feed.Feed, id string, r client.Reaction) (*models.Article, error) {
	u := s.user()
	if u == nil {
		return nil, ErrLoginRequired
	}
	if f != nil {
		if a := f.Find(id); a != nil && !allowed(feed.AffordancesFor(u, a), r) {
			return nil, ErrNotAllowed
		}
	}

	updated, err := s.api.React(ctx, id, r)
	if err != nil {
		return nil, fmt.Errorf("%s article %s: %w", r, id, err)
	}

	if f != nil && updated != nil {
		switch r {
		case client.ReactionLike, client.ReactionDislike:
			f.MergeReactions(updated)
		case client.ReactionBlock, client.ReactionUnblock:
			f.MergeBlocks(updated)
		}
	}
	return updated, nil
}

func allowed(aff feed.Affordances, r client.Reaction) bool {
	switch r {
	case client.ReactionLike:
		return aff.Like
	case client.ReactionDislike:
		return aff.Dislike
	case client.ReactionBlock:
		return aff.Block
	case client.ReactionUnblock:
		return aff.Unblock
	default:
		return false
	}
}
