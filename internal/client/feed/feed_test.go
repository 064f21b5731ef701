package feed

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
)

func TestFeed_LoadKeepsListOnError(t *testing.T) {
	f := &Feed{}
	f.Load(Target{}, []models.Article{{ID: "a"}}, nil)

	boom := errors.New("Network error. Please try again.")
	f.Load(Target{}, nil, boom)
	assert.ErrorIs(t, f.Err, boom)
	assert.Len(t, f.Articles, 1)
	assert.Equal(t, SourceLatest, f.Target.Source)

	f.Dismiss()
	assert.NoError(t, f.Err)

	f.Load(Target{}, []models.Article{}, nil)
	assert.Empty(t, f.Articles)
}

func TestFeed_LoadErrorForNewTargetDropsList(t *testing.T) {
	f := &Feed{}
	f.Load(Target{}, []models.Article{{ID: "a"}}, nil)

	boom := errors.New("Network error. Please try again.")
	f.Load(Target{Source: SourceByPreferences, Categories: "music"}, nil, boom)
	assert.ErrorIs(t, f.Err, boom)
	assert.Empty(t, f.Articles)
	assert.Equal(t, Target{Source: SourceByPreferences, Categories: "music"}, f.Target)
}

func TestFeed_MergeReactions(t *testing.T) {
	f := &Feed{Articles: []models.Article{{ID: "a", Title: "keep", Blocks: []string{"z"}}}}

	ok := f.MergeReactions(&models.Article{ID: "a", Title: "ignored", Likes: []string{"u1"}, Dislikes: []string{}})
	require.True(t, ok)

	a := f.Find("a")
	assert.Equal(t, "keep", a.Title)
	assert.Equal(t, []string{"u1"}, a.Likes)
	assert.Equal(t, []string{}, a.Dislikes)
	assert.Equal(t, []string{"z"}, a.Blocks)

	assert.False(t, f.MergeReactions(&models.Article{ID: "missing"}))
	assert.False(t, f.MergeBlocks(&models.Article{ID: "missing"}))
}

func TestFeed_ReplaceAndRemove(t *testing.T) {
	f := &Feed{Articles: []models.Article{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	require.True(t, f.Replace(&models.Article{ID: "b", Title: "new"}))
	assert.Equal(t, "new", f.Find("b").Title)
	assert.False(t, f.Replace(&models.Article{ID: "zz"}))

	require.True(t, f.Remove("b"))
	assert.Nil(t, f.Find("b"))
	assert.Len(t, f.Articles, 2)
	assert.False(t, f.Remove("b"))
}

func TestExcerpt(t *testing.T) {
	short := strings.Repeat("a", 100)
	assert.Equal(t, short, Excerpt(short))

	long := strings.Repeat("b", 101)
	assert.Equal(t, strings.Repeat("b", 100)+"...", Excerpt(long))

	runes := strings.Repeat("é", 120)
	assert.Equal(t, strings.Repeat("é", 100)+"...", Excerpt(runes))
}

func TestCoverImage(t *testing.T) {
	assert.Equal(t, PlaceholderImage, CoverImage(&models.Article{}))
	assert.Equal(t, PlaceholderImage, CoverImage(&models.Article{Images: []string{""}}))
	assert.Equal(t, "https://cdn/x.png", CoverImage(&models.Article{Images: []string{"https://cdn/x.png"}}))
}
