// Package feed decides what the current session may see and do: which
// article list to fetch, whether content is readable, and which per-article
// actions are offered. Everything here is a pure function of the user.
package feed

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/inkwell/internal/client/models"
)

var (
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrNoPreferences = errors.New("no preferences selected")
)

// Message returns the user-facing text for the gating errors.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNotLoggedIn):
		return "Please log in to view your dashboard."
	case errors.Is(err, ErrNoPreferences):
		return "No preferences selected. Please update your preferences."
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}

// Source names the list endpoint a feed is fetched from.
type Source int

const (
	SourceLatest Source = iota
	SourceByPreferences
	// SourceMine is the signed-in user's own articles.
	SourceMine
)

func (s Source) String() string {
	switch s {
	case SourceByPreferences:
		return "by-preferences"
	case SourceMine:
		return "mine"
	default:
		return "latest"
	}
}

// Target is the list fetch a session should perform.
type Target struct {
	Source Source
	// Categories is the comma-joined preference list, set only for
	// SourceByPreferences.
	Categories string
}

// CategoryList splits Categories back into names.
func (t Target) CategoryList() []string {
	if t.Categories == "" {
		return nil
	}
	return strings.Split(t.Categories, ",")
}

// TargetFor picks the home feed. Anonymous users and users without
// preferences get the latest articles.
func TargetFor(u *models.User) Target {
	if !u.HasPreferences() {
		return Target{Source: SourceLatest}
	}
	return Target{Source: SourceByPreferences, Categories: strings.Join(u.Preferences, ",")}
}

// DashboardTarget is TargetFor without the fallback: the dashboard only
// shows preference-based articles.
func DashboardTarget(u *models.User) (Target, error) {
	if u == nil {
		return Target{}, ErrNotLoggedIn
	}
	if !u.HasPreferences() {
		return Target{}, ErrNoPreferences
	}
	return TargetFor(u), nil
}

// Visibility describes how article content is presented.
type Visibility struct {
	// Obscured content is shown blurred behind an unlock call-to-action.
	Obscured      bool
	UnlockPrompt  bool
	CanInteract   bool
	CanReadDetail bool
}

func VisibilityFor(u *models.User) Visibility {
	if u == nil {
		return Visibility{Obscured: true, UnlockPrompt: true}
	}
	return Visibility{CanInteract: true, CanReadDetail: true}
}

// Affordances lists the actions offered for one article.
type Affordances struct {
	Read    bool
	Like    bool
	Dislike bool
	Block   bool
	Unblock bool
	Edit    bool
	Delete  bool
}

// AffordancesFor applies the per-article rules: nothing without a user,
// no like or dislike on a blocked article, and edit or delete only for the
// author.
func AffordancesFor(u *models.User, a *models.Article) Affordances {
	if u == nil || a == nil {
		return Affordances{}
	}
	blocked := a.BlockedBy(u.ID)
	author := a.AuthoredBy(u.ID)
	return Affordances{
		Read:    true,
		Like:    !blocked,
		Dislike: !blocked,
		Block:   !blocked,
		Unblock: blocked,
		Edit:    author,
		Delete:  author,
	}
}
