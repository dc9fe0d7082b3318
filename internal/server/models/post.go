package models

import "time"

// Post is a journal entry. Content is plain text: paragraphs separated by
// blank lines, headings prefixed with a marker; rendering is up to the shell.
// Comments are ordered by creation time ascending and are only ever appended
// through the posts repository, never through post create/update payloads.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Comments  []Comment `json:"comments"`
}

// Comment belongs to exactly one post; PostID is always set.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostUpdate carries a partial update of a post's own fields. The comments
// collection is deliberately absent.
type PostUpdate struct {
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Summary  *string `json:"summary"`
	Content  *string `json:"content"`
	ImageURL *string `json:"imageUrl"`
}
