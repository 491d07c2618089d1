package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Mehedihasan1234567/SocioSphere/internal/auth"
	"github.com/Mehedihasan1234567/SocioSphere/internal/service"
)

// CommentHandler serves POST /api/comments.
type CommentHandler struct {
	comments *service.CommentService
	logger   *slog.Logger
}

func NewCommentHandler(comments *service.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

type createCommentRequest struct {
	Content string `json:"content"`
	PostID  string `json:"postId"`
}

// HandleCreate creates a comment authored by the session principal. The
// author always comes from the session and createdAt from the server,
// whatever the client sends.
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	comment, err := h.comments.Create(r.Context(), userID, req.PostID, req.Content)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
