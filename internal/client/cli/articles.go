package cli

import (
	"context"

	"github.com/dmitrijs2005/inkwell/internal/client/client"
	"github.com/dmitrijs2005/inkwell/internal/client/feed"
	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/client/services"
)

// Feed shows the home feed for the current session.
func (a *App) Feed(ctx context.Context) error {
	a.feed = feed.Feed{}
	err := a.articles.LoadFeed(ctx, &a.feed)
	a.report(ctx, err)
	a.renderFeed()
	return err
}

// Reload repeats the last fetch.
func (a *App) Reload(ctx context.Context) error {
	err := a.articles.Reload(ctx, &a.feed)
	a.report(ctx, err)
	a.renderFeed()
	return err
}

func (a *App) Dashboard(ctx context.Context) error {
	a.feed = feed.Feed{}
	err := a.articles.LoadDashboard(ctx, &a.feed)
	a.report(ctx, err)
	if err == nil {
		a.renderFeed()
	}
	return err
}

// Mine replaces the feed with the user's own articles. A failed fetch stays
// in the feed so that reload retries it.
func (a *App) Mine(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.report(ctx, services.ErrLoginRequired)
		return services.ErrLoginRequired
	}
	a.feed = feed.Feed{}
	err := a.articles.MyArticles(ctx, &a.feed)
	a.report(ctx, err)
	if err == nil {
		a.renderFeed()
	}
	return err
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, ok := a.idArg(args, "show <id>")
	if !ok {
		return nil
	}
	art, err := a.articles.Get(ctx, id)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	a.renderArticle(art)
	return nil
}

func (a *App) readForm(current *models.Article) (models.ArticleForm, error) {
	var f models.ArticleForm
	var err error
	if current == nil {
		current = &models.Article{}
	}

	if f.Title, err = ReadWithDefault(a.reader, "Title", current.Title, a.out); err != nil {
		return f, err
	}
	if current.Content != "" {
		a.println("Leave the content empty to keep the current text.")
	}
	if f.Content, err = ReadText(a.reader, "Content", a.out); err != nil {
		return f, err
	}
	if f.Content == "" {
		f.Content = current.Content
	}
	if f.Category, err = ReadWithDefault(a.reader, "Category", current.Category, a.out); err != nil {
		return f, err
	}
	if f.Tags, err = ReadList(a.reader, "Tags", a.out); err != nil {
		return f, err
	}
	if len(f.Tags) == 0 {
		f.Tags = current.Tags
	}
	if f.Image, err = a.ask("Image file (empty for none)"); err != nil {
		return f, err
	}
	return f, nil
}

func (a *App) Create(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.report(ctx, services.ErrLoginRequired)
		return services.ErrLoginRequired
	}
	form, err := a.readForm(nil)
	if err != nil {
		return err
	}
	art, err := a.articles.Create(ctx, form)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	a.println("Article created.")
	if art != nil {
		a.renderArticle(art)
	}
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	id, ok := a.idArg(args, "edit <id>")
	if !ok {
		return nil
	}
	current, err := a.articles.Get(ctx, id)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if !feed.AffordancesFor(a.store.State().User, current).Edit {
		a.report(ctx, services.ErrNotAuthor)
		return services.ErrNotAuthor
	}

	form, err := a.readForm(current)
	if err != nil {
		return err
	}
	art, err := a.articles.Update(ctx, id, form)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if art != nil {
		a.feed.Replace(art)
	}
	a.println("Article updated.")
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, ok := a.idArg(args, "delete <id>")
	if !ok {
		return nil
	}
	answer, err := a.ask("Delete this article? (y/N)")
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		return nil
	}
	if err := a.articles.Delete(ctx, &a.feed, id); err != nil {
		a.report(ctx, err)
		return err
	}
	a.println("Article deleted.")
	return nil
}

// React applies like, dislike, block or unblock and shows the new counts.
func (a *App) React(ctx context.Context, verb string, args []string) error {
	id, ok := a.idArg(args, verb+" <id>")
	if !ok {
		return nil
	}
	art, err := a.articles.React(ctx, &a.feed, id, client.Reaction(verb))
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if art != nil {
		a.printf("%s: %d likes, %d dislikes\n", art.Title, len(art.Likes), len(art.Dislikes))
	}
	return nil
}

// Dismiss clears the session and feed error messages.
func (a *App) Dismiss(ctx context.Context) error {
	a.auth.ClearError(ctx)
	a.feed.Dismiss()
	return nil
}
