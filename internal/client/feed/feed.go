package feed

import (
	"slices"
	"unicode/utf8"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
)

const (
	// PlaceholderImage stands in for articles without images.
	PlaceholderImage = "https://via.placeholder.com/600x400"
	excerptRunes     = 100
)

// Feed is a transient, in-memory article list. It is never persisted.
type Feed struct {
	Target   Target
	Articles []models.Article
	// Err is the last load failure; it stays until Dismiss or a reload.
	Err error
}

// Load replaces the list, or records err. A failed load keeps the old list
// only when it was fetched for the same target, so Articles always belong to
// Target.
func (f *Feed) Load(t Target, articles []models.Article, err error) {
	if err != nil {
		if t != f.Target {
			f.Articles = nil
		}
		f.Target = t
		f.Err = err
		return
	}
	f.Target = t
	f.Err = nil
	f.Articles = articles
}

// Dismiss clears Err.
func (f *Feed) Dismiss() {
	f.Err = nil
}

// Find returns the article with id, or nil.
func (f *Feed) Find(id string) *models.Article {
	i := f.index(id)
	if i < 0 {
		return nil
	}
	return &f.Articles[i]
}

// MergeReactions copies the server's like and dislike sets into the local
// article with the same id.
func (f *Feed) MergeReactions(updated *models.Article) bool {
	a := f.Find(updated.ID)
	if a == nil {
		return false
	}
	a.Likes = slices.Clone(updated.Likes)
	a.Dislikes = slices.Clone(updated.Dislikes)
	return true
}

// MergeBlocks copies the server's block set into the local article. A
// missing set means nobody blocks it.
func (f *Feed) MergeBlocks(updated *models.Article) bool {
	a := f.Find(updated.ID)
	if a == nil {
		return false
	}
	a.Blocks = slices.Clone(updated.Blocks)
	if a.Blocks == nil {
		a.Blocks = []string{}
	}
	return true
}

// Replace swaps in the whole article.
func (f *Feed) Replace(updated *models.Article) bool {
	i := f.index(updated.ID)
	if i < 0 {
		return false
	}
	f.Articles[i] = *updated
	return true
}

// Remove drops the article with id.
func (f *Feed) Remove(id string) bool {
	i := f.index(id)
	if i < 0 {
		return false
	}
	f.Articles = slices.Delete(f.Articles, i, i+1)
	return true
}

func (f *Feed) index(id string) int {
	return slices.IndexFunc(f.Articles, func(a models.Article) bool { return a.ID == id })
}

// Excerpt returns the first 100 characters of content followed by "..."
// when content is longer.
func Excerpt(content string) string {
	if utf8.RuneCountInString(content) <= excerptRunes {
		return content
	}
	r := []rune(content)
	return string(r[:excerptRunes]) + "..."
}

// CoverImage returns the first image or the placeholder.
func CoverImage(a *models.Article) string {
	if len(a.Images) > 0 && a.Images[0] != "" {
		return a.Images[0]
	}
	return PlaceholderImage
}
