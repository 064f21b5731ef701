package cli

import (
	"strings"

	"github.com/dmitrijs2005/inkwell/internal/client/feed"
	"github.com/dmitrijs2005/inkwell/internal/client/models"
	"github.com/dmitrijs2005/inkwell/internal/common"
)

func (a *App) renderFeed() {
	u := a.store.State().User
	vis := feed.VisibilityFor(u)

	if a.feed.Err != nil {
		a.println("Error:", errorText(a.feed.Err), "(type 'dismiss' to hide)")
	}
	if len(a.feed.Articles) == 0 {
		a.println("No articles found.")
		return
	}

	for i := range a.feed.Articles {
		art := &a.feed.Articles[i]
		a.printf("[%s] %s (%s) by %s\n", art.ID, art.Title, art.Category, art.Author.FirstName)
		if vis.Obscured {
			a.println("    ~~~~ log in to read ~~~~")
		} else {
			a.println("   ", feed.Excerpt(art.Content))
		}
		if !vis.CanInteract {
			continue
		}
		a.printf("    %d likes, %d dislikes%s\n", len(art.Likes), len(art.Dislikes), marks(u, art))
		if acts := actions(feed.AffordancesFor(u, art)); acts != "" {
			a.println("    actions:", acts)
		}
	}
	if vis.UnlockPrompt {
		a.println("Sign up or log in to unlock full articles and reactions.")
	}
}

func (a *App) renderArticle(art *models.Article) {
	u := a.store.State().User
	a.printf("%s\n%s | by %s %s\n", art.Title, art.Category, art.Author.FirstName, art.CreatedAt.Format(common.DateLayout))
	if len(art.Tags) > 0 {
		a.println("tags:", strings.Join(art.Tags, ", "))
	}
	a.println("image:", feed.CoverImage(art))
	a.println()
	a.println(art.Content)
	a.println()
	a.printf("%d likes, %d dislikes%s\n", len(art.Likes), len(art.Dislikes), marks(u, art))
	if acts := actions(feed.AffordancesFor(u, art)); acts != "" {
		a.println("actions:", acts)
	}
}

func marks(u *models.User, art *models.Article) string {
	if u == nil {
		return ""
	}
	var m []string
	if art.LikedBy(u.ID) {
		m = append(m, "liked")
	}
	if art.DislikedBy(u.ID) {
		m = append(m, "disliked")
	}
	if art.BlockedBy(u.ID) {
		m = append(m, "blocked")
	}
	if len(m) == 0 {
		return ""
	}
	return " (" + strings.Join(m, ", ") + ")"
}

func actions(aff feed.Affordances) string {
	var out []string
	for _, x := range []struct {
		ok   bool
		name string
	}{
		{aff.Like, "like"},
		{aff.Dislike, "dislike"},
		{aff.Block, "block"},
		{aff.Unblock, "unblock"},
		{aff.Edit, "edit"},
		{aff.Delete, "delete"},
	} {
		if x.ok {
			out = append(out, x.name)
		}
	}
	return strings.Join(out, " ")
}
