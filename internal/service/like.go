package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Mehedihasan1234567/SocioSphere/internal/apperror"
	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
	"github.com/Mehedihasan1234567/SocioSphere/internal/repository"
)

// LikeService implements the single-action like toggle: one endpoint whose
// effect alternates between liking and unliking based on the persisted
// state. The atomicity lives in the repository (unique constraint plus
// conditional insert), not here.
type LikeService struct {
	likes  repository.LikeRepository
	logger *slog.Logger
}

func NewLikeService(likes repository.LikeRepository, logger *slog.Logger) *LikeService {
	return &LikeService{
		likes:  likes,
		logger: logger,
	}
}

// Toggle flips the like state for (postID, principal).
// liked=true returns the new like; liked=false means an existing like was
// removed and like is nil.
func (s *LikeService) Toggle(ctx context.Context, postID, userID string) (like *model.Like, liked bool, err error) {
	if postID == "" {
		return nil, false, apperror.ValidationFailed("postId", "PostId is required.")
	}

	like, liked, err = s.likes.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, false, fmt.Errorf("service/like: toggling like: %w", err)
	}

	s.logger.Info("like toggled",
		slog.String("postID", postID),
		slog.String("userID", userID),
		slog.Bool("liked", liked),
	)

	return like, liked, nil
}
