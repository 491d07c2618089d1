package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Mehedihasan1234567/SocioSphere/internal/auth"
	"github.com/Mehedihasan1234567/SocioSphere/internal/service"
)

// UserHandler serves registration and profile endpoints.
//
//	POST  /api/register    → create a credential account, public
//	GET   /api/users/{id}  → profile with posts, public
//	PATCH /api/users/{id}  → partial profile update, self only
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// updateUserRequest uses pointers for present-vs-absent: nil leaves the
// field alone, an empty string clears it.
type updateUserRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

// HandleRegister creates a credential account and returns it with 201.
// The password hash is structurally unserializable (json:"-"), so the
// response can never contain it.
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	user, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// HandleGetProfile returns a user with their posts.
func (h *UserHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleUpdateProfile applies a partial update to the principal's own
// record. Updating anyone else is 403.
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), r.PathValue("id"), userID, req.Name, req.Image)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
