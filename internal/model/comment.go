package model

import "time"

// Comment belongs to exactly one post and one author. The comments table
// declares ON DELETE CASCADE on post_id, so a comment can never outlive
// its post — the store enforces that, not application code.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	PostID    string    `json:"postId"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`

	// Author is populated on the post-detail read path.
	Author *User `json:"author,omitempty"`
}
