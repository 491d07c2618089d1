package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Mehedihasan1234567/SocioSphere/internal/auth"
	"github.com/Mehedihasan1234567/SocioSphere/internal/service"
)

// LikeHandler serves POST /api/likes — a single-action toggle, not separate
// like/unlike endpoints. Per invocation exactly one of two things happens:
// a like row is created (201 with the new like) or the existing one is
// deleted (200 with {"message":"Unliked"}).
type LikeHandler struct {
	likes  *service.LikeService
	logger *slog.Logger
}

func NewLikeHandler(likes *service.LikeService, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{likes: likes, logger: logger}
}

type toggleLikeRequest struct {
	PostID string `json:"postId"`
}

// HandleToggle flips the like state for (post, session principal).
func (h *LikeHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req toggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	like, liked, err := h.likes.Toggle(r.Context(), req.PostID, userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if !liked {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Unliked"})
		return
	}
	writeJSON(w, http.StatusCreated, like)
}
