package services

import "errors"

var (
	// ErrLoginRequired is returned before any network call when an
	// operation needs a signed-in user.
	ErrLoginRequired = errors.New("login required")
	// ErrNotAuthor is returned when editing or deleting someone else's article.
	ErrNotAuthor = errors.New("only the author can change this article")
	// ErrNotAllowed is returned for an action the article does not offer to
	// the current user, such as liking a blocked article.
	ErrNotAllowed = errors.New("action not available for this article")
	// ErrNoPendingSignup is returned by VerifyOTP when no email is known.
	ErrNoPendingSignup = errors.New("no pending signup")
)
