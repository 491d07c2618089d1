package model

// Like marks that a user liked a post. At most one like exists per
// (post, user) pair — the likes table carries UNIQUE(post_id, user_id),
// so concurrent toggles can never produce duplicates.
type Like struct {
	ID     string `json:"id"`
	PostID string `json:"postId"`
	UserID string `json:"userId"`
}
