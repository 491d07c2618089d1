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

const MaxCommentLength = 2000

// CommentService creates comments. Any authenticated user may comment on
// any post — there is no ownership check here. Post existence is not
// verified either; a dangling postId fails the store's foreign key and
// surfaces as a generic error.
type CommentService struct {
	comments repository.CommentRepository
	logger   *slog.Logger
}

func NewCommentService(comments repository.CommentRepository, logger *slog.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		logger:   logger,
	}
}

// Create validates and saves a comment authored by the session principal.
// The author and timestamp always come from the server — a client cannot
// supply either.
func (s *CommentService) Create(ctx context.Context, authorID, postID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" || postID == "" {
		return nil, apperror.ValidationFailed("", "Content and postId are required.")
	}
	if len(content) > MaxCommentLength {
		return nil, apperror.ValidationFailed("content",
			fmt.Sprintf("Content must be %d characters or less.", MaxCommentLength))
	}

	comment := &model.Comment{
		Content:  content,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("service/comment: creating comment: %w", err)
	}

	s.logger.Info("comment created",
		slog.String("commentID", comment.ID),
		slog.String("postID", postID),
		slog.String("authorID", authorID),
	)

	return comment, nil
}
