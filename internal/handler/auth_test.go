package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mehedihasan1234567/SocioSphere/internal/auth"
	"github.com/Mehedihasan1234567/SocioSphere/internal/handler"
	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
	"github.com/Mehedihasan1234567/SocioSphere/internal/service"
	"github.com/stretchr/testify/assert"
)

func newAuthHandler(t *testing.T) (*handler.AuthHandler, *memUserRepo) {
	t.Helper()
	repo := newMemUserRepo()
	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars")
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	passwords := auth.NewPasswordServiceForTest(4)
	svc := service.NewAuthService(repo, tokens, passwords, testLogger())
	return handler.NewAuthHandler(svc, nil, testLogger()), repo
}

func seedCredentialUser(t *testing.T, repo *memUserRepo, email, password string) *model.User {
	t.Helper()
	hash, err := auth.NewPasswordServiceForTest(4).Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	user := &model.User{Name: "Ann", Email: email, PasswordHash: hash}
	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	return user
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthHandler_HandleLogin(t *testing.T) {
	t.Run("sets the session cookie", func(t *testing.T) {
		h, repo := newAuthHandler(t)
		seedCredentialUser(t, repo, "ann@example.com", "s3cret")

		req := jsonRequest(t, http.MethodPost, "/api/login",
			`{"email":"ann@example.com","password":"s3cret"}`, "")
		rr := httptest.NewRecorder()

		h.HandleLogin(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		cookie := sessionCookie(rr)
		if assert.NotNil(t, cookie, "login must set the session cookie") {
			assert.NotEmpty(t, cookie.Value)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, "/", cookie.Path)
		}

		var body map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "ann@example.com", body["email"])
		assert.NotContains(t, body, "passwordHash")
	})

	t.Run("wrong password", func(t *testing.T) {
		h, repo := newAuthHandler(t)
		seedCredentialUser(t, repo, "ann@example.com", "s3cret")

		req := jsonRequest(t, http.MethodPost, "/api/login",
			`{"email":"ann@example.com","password":"wrong"}`, "")
		rr := httptest.NewRecorder()

		h.HandleLogin(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
		assert.Nil(t, sessionCookie(rr), "a failed login must not set a cookie")
	})

	t.Run("unknown email reads the same as wrong password", func(t *testing.T) {
		h, _ := newAuthHandler(t)

		req := jsonRequest(t, http.MethodPost, "/api/login",
			`{"email":"nobody@example.com","password":"pw"}`, "")
		rr := httptest.NewRecorder()

		h.HandleLogin(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
	})
}

func TestAuthHandler_HandleLogout(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := jsonRequest(t, http.MethodPost, "/api/logout", "", "")
	rr := httptest.NewRecorder()

	h.HandleLogout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookie := sessionCookie(rr)
	if assert.NotNil(t, cookie) {
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge, "logout must expire the cookie")
	}
}

func TestAuthHandler_HandleMe(t *testing.T) {
	t.Run("returns the session principal", func(t *testing.T) {
		h, repo := newAuthHandler(t)
		user := seedCredentialUser(t, repo, "ann@example.com", "s3cret")

		req := jsonRequest(t, http.MethodGet, "/api/me", "", user.ID)
		rr := httptest.NewRecorder()

		h.HandleMe(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, user.ID, body["id"])
	})

	t.Run("requires a session", func(t *testing.T) {
		h, _ := newAuthHandler(t)

		req := jsonRequest(t, http.MethodGet, "/api/me", "", "")
		rr := httptest.NewRecorder()

		h.HandleMe(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
