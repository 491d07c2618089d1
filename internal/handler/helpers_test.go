package handler_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mehedihasan1234567/SocioSphere/internal/apperror"
	"github.com/Mehedihasan1234567/SocioSphere/internal/auth"
	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// jsonRequest builds a request carrying a JSON body and, when userID is
// non-empty, an authenticated principal in the context the way the session
// middleware would put one there.
func jsonRequest(t *testing.T, method, target, body, userID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req = req.WithContext(auth.ContextWithUserID(req.Context(), userID))
	}
	return req
}

// In-memory repositories. Handlers take the concrete services, so tests
// build real services on top of these.

type memUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (m *memUserRepo) CreateUser(_ context.Context, user *model.User) error {
	m.nextID++
	user.ID = fmt.Sprintf("user-%d", m.nextID)
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memUserRepo) GetUserByID(_ context.Context, id string) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user")
	}
	result := *user
	return &result, nil
}

func (m *memUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range m.users {
		if user.Email == email && email != "" {
			result := *user
			return &result, nil
		}
	}
	return nil, apperror.NotFound("user")
}

func (m *memUserRepo) GetUserProfile(_ context.Context, id string) (*model.User, error) {
	return m.GetUserByID(nil, id)
}

func (m *memUserRepo) UpdateUserProfile(_ context.Context, id string, name, image *string) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user")
	}
	if name != nil {
		user.Name = *name
	}
	if image != nil {
		user.Image = *image
	}
	result := *user
	return &result, nil
}

type memPostRepo struct {
	posts  map[string]*model.Post
	nextID int
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[string]*model.Post)}
}

func (m *memPostRepo) CreatePost(_ context.Context, post *model.Post) error {
	m.nextID++
	post.ID = fmt.Sprintf("post-%d", m.nextID)
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *memPostRepo) GetPostByID(_ context.Context, id string) (*model.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, apperror.NotFound("post")
	}
	result := *post
	return &result, nil
}

func (m *memPostRepo) ListPosts(_ context.Context) ([]model.Post, error) {
	result := make([]model.Post, 0, len(m.posts))
	for _, p := range m.posts {
		result = append(result, *p)
	}
	return result, nil
}

func (m *memPostRepo) UpdatePostOwned(_ context.Context, id, ownerID string, content, imageURL *string) (*model.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, apperror.NotFound("post")
	}
	if post.AuthorID != ownerID {
		return nil, apperror.Forbidden()
	}
	if content != nil {
		post.Content = *content
	}
	if imageURL != nil {
		post.ImageURL = *imageURL
	}
	result := *post
	return &result, nil
}

func (m *memPostRepo) DeletePostOwned(_ context.Context, id, ownerID string) error {
	post, ok := m.posts[id]
	if !ok {
		return apperror.NotFound("post")
	}
	if post.AuthorID != ownerID {
		return apperror.Forbidden()
	}
	delete(m.posts, id)
	return nil
}

type memLikeRepo struct {
	likes  map[string]*model.Like
	nextID int
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{likes: make(map[string]*model.Like)}
}

func (m *memLikeRepo) ToggleLike(_ context.Context, postID, userID string) (*model.Like, bool, error) {
	key := postID + "/" + userID
	if _, ok := m.likes[key]; ok {
		delete(m.likes, key)
		return nil, false, nil
	}
	m.nextID++
	like := &model.Like{
		ID:     fmt.Sprintf("like-%d", m.nextID),
		PostID: postID,
		UserID: userID,
	}
	m.likes[key] = like
	result := *like
	return &result, true, nil
}
