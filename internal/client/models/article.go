package models

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"
)

// Author is the short author record embedded in an article.
type Author struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	Email     string `json:"email,omitempty"`
}

// UnmarshalJSON accepts the populated author object or the bare author id
// that unpopulated responses carry.
func (a *Author) UnmarshalJSON(b []byte) error {
	if b = bytes.TrimSpace(b); len(b) > 0 && b[0] == '"' {
		*a = Author{}
		return json.Unmarshal(b, &a.ID)
	}
	type author Author
	return json.Unmarshal(b, (*author)(a))
}

// Article is owned by the backend; the client only fetches it and reflects
// the reaction sets the server returns. A user id is in at most one of
// Likes and Dislikes, which the server enforces.
type Article struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Images    []string  `json:"images"`
	Author    Author    `json:"author"`
	Likes     []string  `json:"likes"`
	Dislikes  []string  `json:"dislikes"`
	Blocks    []string  `json:"blocks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Article) LikedBy(userID string) bool    { return slices.Contains(a.Likes, userID) }
func (a *Article) DislikedBy(userID string) bool { return slices.Contains(a.Dislikes, userID) }
func (a *Article) BlockedBy(userID string) bool  { return slices.Contains(a.Blocks, userID) }

// AuthoredBy reports whether userID wrote the article.
func (a *Article) AuthoredBy(userID string) bool {
	return userID != "" && a.Author.ID == userID
}
