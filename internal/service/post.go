package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Mehedihasan1234567/SocioSphere/internal/apperror"
	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
	"github.com/Mehedihasan1234567/SocioSphere/internal/repository"
)

const MaxPostContentLength = 10000

// PostService handles the feed: creating, reading, updating and deleting
// posts. Mutations go through the repository's owner-conditional writes, so
// this service never does a load-compare-act ownership dance of its own.
type PostService struct {
	posts  repository.PostRepository
	logger *slog.Logger
}

func NewPostService(posts repository.PostRepository, logger *slog.Logger) *PostService {
	return &PostService{
		posts:  posts,
		logger: logger,
	}
}

// Create validates and saves a new post for the given author.
// A post needs content or an image; having neither is a validation error.
func (s *PostService) Create(ctx context.Context, authorID, content, imageURL string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" && imageURL == "" {
		return nil, apperror.ValidationFailed("content", "Content or an image is required.")
	}
	if len(content) > MaxPostContentLength {
		return nil, apperror.ValidationFailed("content",
			fmt.Sprintf("Content must be %d characters or less.", MaxPostContentLength))
	}

	post := &model.Post{
		Content:  content,
		ImageURL: imageURL,
		AuthorID: authorID,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("service/post: creating post: %w", err)
	}

	s.logger.Info("post created",
		slog.String("postID", post.ID),
		slog.String("authorID", authorID),
	)

	return post, nil
}

// List returns the feed, newest first.
func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/post: listing posts: %w", err)
	}
	return posts, nil
}

// GetByID returns one post with author, comments and likes.
func (s *PostService) GetByID(ctx context.Context, id string) (*model.Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.ValidationFailed("id", "Post ID is required.")
	}
	return s.posts.GetPostByID(ctx, id)
}

// Update applies a partial update to a post the principal owns.
// nil pointers leave fields untouched. The repository's conditional write
// returns NotFound or Forbidden as appropriate.
func (s *PostService) Update(ctx context.Context, id, principalID string, content, imageURL *string) (*model.Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.ValidationFailed("id", "Post ID is required.")
	}
	if content != nil && len(*content) > MaxPostContentLength {
		return nil, apperror.ValidationFailed("content",
			fmt.Sprintf("Content must be %d characters or less.", MaxPostContentLength))
	}

	post, err := s.posts.UpdatePostOwned(ctx, id, principalID, content, imageURL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post updated",
		slog.String("postID", id),
		slog.String("authorID", principalID),
	)

	return post, nil
}

// Delete removes a post the principal owns, along with its comments and
// likes (via the store's cascade).
func (s *PostService) Delete(ctx context.Context, id, principalID string) error {
	if strings.TrimSpace(id) == "" {
		return apperror.ValidationFailed("id", "Post ID is required.")
	}

	if err := s.posts.DeletePostOwned(ctx, id, principalID); err != nil {
		return err
	}

	s.logger.Info("post deleted",
		slog.String("postID", id),
		slog.String("authorID", principalID),
	)

	return nil
}
