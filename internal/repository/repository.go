// Package repository declares the storage interfaces the service layer
// depends on. The concrete implementation lives in repository/sqlite;
// tests substitute in-memory mocks.
package repository

import (
	"context"

	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	// GetUserByEmail returns apperror.ErrNotFound when no account uses the email.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// GetUserProfile returns the user together with their posts (newest
	// first), each post carrying author, comments and likes.
	GetUserProfile(ctx context.Context, id string) (*model.User, error)
	// UpdateUserProfile applies a partial update. nil pointers mean "leave
	// the field untouched"; an empty string clears the column.
	UpdateUserProfile(ctx context.Context, id string, name, image *string) (*model.User, error)
}

type PostRepository interface {
	CreatePost(ctx context.Context, post *model.Post) error
	// GetPostByID loads the post with its author, comments (oldest first,
	// each with its author) and likes. Returns apperror.ErrNotFound if absent.
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
	// ListPosts returns all posts, newest first, with author, comments and likes.
	ListPosts(ctx context.Context) ([]model.Post, error)
	// UpdatePostOwned runs a single conditional update
	// (WHERE id = ? AND author_id = ?). Zero rows affected resolves to
	// ErrNotFound or ErrForbidden depending on whether the post exists.
	UpdatePostOwned(ctx context.Context, id, ownerID string, content, imageURL *string) (*model.Post, error)
	// DeletePostOwned mirrors UpdatePostOwned for deletion.
	DeletePostOwned(ctx context.Context, id, ownerID string) error
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
}

type LikeRepository interface {
	// ToggleLike flips the like state for (postID, userID) in the store:
	// inserting when absent (liked=true, like returned) and deleting when
	// present (liked=false, like nil). The UNIQUE(post_id, user_id)
	// constraint makes the insert side safe under concurrent toggles.
	ToggleLike(ctx context.Context, postID, userID string) (like *model.Like, liked bool, err error)
}
