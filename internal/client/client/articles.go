package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
)

type articlesPayload struct {
	Articles []models.Article `json:"articles"`
}

type articlePayload struct {
	Article *models.Article `json:"article"`
}

type preferencesQuery struct {
	Categories string `url:"categories"`
}

func (c *HTTPClient) LatestArticles(ctx context.Context) ([]models.Article, error) {
	return c.listCall(ctx, c.endpoint(nil, "article", "latest"))
}

// ArticlesByPreferences sends categories comma-joined in their given order.
func (c *HTTPClient) ArticlesByPreferences(ctx context.Context, categories []string) ([]models.Article, error) {
	q, err := query.Values(preferencesQuery{Categories: strings.Join(categories, ",")})
	if err != nil {
		return nil, unexpectedError(fmt.Errorf("encode query: %w", err))
	}
	return c.listCall(ctx, c.endpoint(q, "article", "getarticles-by-preferences"))
}

func (c *HTTPClient) UserArticles(ctx context.Context) ([]models.Article, error) {
	return c.listCall(ctx, c.endpoint(nil, "article", "getuserarticles"))
}

func (c *HTTPClient) Article(ctx context.Context, id string) (*models.Article, error) {
	var out articlePayload
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "article", "articles", id), nil, &out); err != nil {
		return nil, err
	}
	return out.article()
}

func (c *HTTPClient) CreateArticle(ctx context.Context, form models.ArticleForm) (*models.Article, error) {
	mf := newMultipartForm()
	mf.add("title", strings.TrimSpace(form.Title))
	mf.add("content", strings.TrimSpace(form.Content))
	mf.add("category", form.Category)
	for _, tag := range form.Tags {
		mf.add("tags", tag)
	}
	if form.Image != "" {
		mf.attach("image", form.Image)
	}
	return c.multipartCall(ctx, http.MethodPost, c.endpoint(nil, "article", "create"), mf)
}

func (c *HTTPClient) UpdateArticle(ctx context.Context, id string, form models.ArticleForm) (*models.Article, error) {
	tags := make([]string, 0, len(form.Tags))
	for _, tag := range form.Tags {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			tags = append(tags, tag)
		}
	}

	mf := newMultipartForm()
	mf.add("title", strings.TrimSpace(form.Title))
	mf.add("content", strings.TrimSpace(form.Content))
	mf.add("category", strings.ToLower(strings.TrimSpace(form.Category)))
	mf.add("tags", strings.Join(tags, ","))
	if form.Image != "" {
		mf.attach("image", form.Image)
	}
	if form.AuthorID != "" {
		mf.add("userId", form.AuthorID)
	}
	return c.multipartCall(ctx, http.MethodPut, c.endpoint(nil, "article", "articles", id), mf)
}

func (c *HTTPClient) DeleteArticle(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint(nil, "article", "articles", id), nil, nil)
}

// React applies r for the current user and returns the article with the
// reaction sets as the backend now has them.
func (c *HTTPClient) React(ctx context.Context, id string, r Reaction) (*models.Article, error) {
	switch r {
	case ReactionLike, ReactionDislike, ReactionBlock, ReactionUnblock:
	default:
		return nil, unexpectedError(fmt.Errorf("unknown reaction %q", r))
	}

	var out articlePayload
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint(nil, "article", "articles", string(r), id), nil, &out); err != nil {
		return nil, err
	}
	return out.article()
}

func (c *HTTPClient) listCall(ctx context.Context, endpoint string) ([]models.Article, error) {
	var out articlesPayload
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	if out.Articles == nil {
		out.Articles = []models.Article{}
	}
	return out.Articles, nil
}

func (c *HTTPClient) multipartCall(ctx context.Context, method, endpoint string, mf *multipartForm) (*models.Article, error) {
	body, contentType, err := mf.encode()
	if err != nil {
		return nil, unexpectedError(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, unexpectedError(err)
	}
	req.Header.Set("Content-Type", contentType)

	var out articlePayload
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	if out.Article == nil {
		// create and update may answer with only {success, message}
		return nil, nil
	}
	return out.Article, nil
}

func (p articlePayload) article() (*models.Article, error) {
	if p.Article == nil {
		return nil, unexpectedError(errMissingPayload)
	}
	return p.Article, nil
}
