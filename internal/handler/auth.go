package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rs/xid"

	"github.com/Mehedihasan1234567/SocioSphere/internal/auth"
	"github.com/Mehedihasan1234567/SocioSphere/internal/service"
)

// AuthHandler manages sessions: credential login, logout, the current
// principal lookup, and the Google OAuth browser flow.
//
//	POST /api/login             → verify credentials, set session cookie
//	POST /api/logout            → clear session cookie
//	GET  /api/me                → current user, session required
//	GET  /auth/google/login     → redirect to Google consent
//	GET  /auth/google/callback  → complete OAuth, set cookie, redirect home
type AuthHandler struct {
	authSvc *service.AuthService
	google  *auth.GoogleProvider
	logger  *slog.Logger
}

func NewAuthHandler(authSvc *service.AuthService, google *auth.GoogleProvider, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
		google:  google,
		logger:  logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// setSessionCookie stores the JWT in an HttpOnly cookie. HttpOnly keeps it
// out of reach of page JavaScript, so an XSS bug cannot exfiltrate the
// session. SameSite=Lax stops the browser sending it on cross-site POSTs.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HandleLogin verifies an email/password pair and starts a session.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	result, err := h.authSvc.LoginCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	setSessionCookie(w, result.Token)
	writeJSON(w, http.StatusOK, result.User)
}

// HandleLogout clears the session cookie. Stateless JWTs cannot be revoked
// server-side; dropping the cookie ends the browser session.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// HandleMe returns the full record of the session principal.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.authSvc.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleGoogleLogin starts the OAuth flow. The random state value goes into
// a short-lived cookie; the callback verifies it to reject flows this
// server did not initiate.
func (h *AuthHandler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	state := xid.New().String()

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.google.AuthURL(state), http.StatusTemporaryRedirect)
}

// HandleGoogleCallback completes the OAuth flow: verify state, exchange the
// code for a Google profile, find or create the account, set the session
// cookie, and send the browser home.
func (h *AuthHandler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		h.logger.Warn("oauth callback: state mismatch or missing")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}

	// The state is single-use.
	http.SetCookie(w, &http.Cookie{
		Name:   "oauth_state",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	// The user may have denied the consent screen.
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.logger.Info("oauth callback: authorization denied",
			slog.String("error", errParam),
		)
		http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
		return
	}

	gUser, err := h.google.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		h.logger.Error("oauth callback: exchange failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	result, err := h.authSvc.LoginOrRegisterGoogle(r.Context(), gUser)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	setSessionCookie(w, result.Token)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}
