package model

import "time"

// Post is a feed entry. Content may be empty when an image is attached —
// a post needs at least one of the two, which the service layer enforces.
//
// A post is owned exclusively by its author: only the author may update or
// delete it. The repository enforces this with conditional writes
// (UPDATE/DELETE ... WHERE id = ? AND author_id = ?).
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations, populated by the read paths (feed and post detail).
	// The slices are always non-nil so clients see [] rather than null
	// or a missing key.
	Author   *User     `json:"author,omitempty"`
	Comments []Comment `json:"comments"`
	Likes    []Like    `json:"likes"`
}
