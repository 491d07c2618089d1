package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Mehedihasan1234567/SocioSphere/internal/auth"
	"github.com/Mehedihasan1234567/SocioSphere/internal/service"
)

// PostHandler serves the feed endpoints.
//
//	GET    /api/posts       → feed, public
//	POST   /api/posts       → create, session required
//	GET    /api/posts/{id}  → detail, public
//	PATCH  /api/posts/{id}  → partial update, author only
//	DELETE /api/posts/{id}  → delete, author only
type PostHandler struct {
	posts  *service.PostService
	logger *slog.Logger
}

func NewPostHandler(posts *service.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{posts: posts, logger: logger}
}

type createPostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// updatePostRequest uses pointers so "field absent" and "field set to empty"
// stay distinguishable: nil means don't touch, empty string clears.
type updatePostRequest struct {
	Content  *string `json:"content"`
	ImageURL *string `json:"imageUrl"`
}

// HandleList returns all posts, newest first, with author, comments and likes.
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// HandleCreate creates a post authored by the session principal.
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	post, err := h.posts.Create(r.Context(), userID, req.Content, req.ImageURL)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// HandleGetByID returns one post with its relations.
func (h *PostHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// HandleUpdate applies a partial update. Only the author may update;
// the conditional write underneath distinguishes 404 from 403.
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	post, err := h.posts.Update(r.Context(), r.PathValue("id"), userID, req.Content, req.ImageURL)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// HandleDelete deletes the principal's own post.
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.posts.Delete(r.Context(), r.PathValue("id"), userID); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
