package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/Mehedihasan1234567/SocioSphere/internal/apperror"
	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
)

// In-memory mocks for the repository interfaces. Services only see the
// interfaces, so tests swap SQLite out without touching any wiring.

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *model.User) error {
	m.nextID++
	user.ID = fmt.Sprintf("user-%d", m.nextID)
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id string) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user")
	}
	result := *user
	return &result, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range m.users {
		if user.Email == email && email != "" {
			result := *user
			return &result, nil
		}
	}
	return nil, apperror.NotFound("user")
}

func (m *mockUserRepo) GetUserProfile(_ context.Context, id string) (*model.User, error) {
	return m.GetUserByID(nil, id)
}

func (m *mockUserRepo) UpdateUserProfile(_ context.Context, id string, name, image *string) (*model.User, error) {
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

type mockPostRepo struct {
	posts  map[string]*model.Post
	nextID int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]*model.Post)}
}

func (m *mockPostRepo) CreatePost(_ context.Context, post *model.Post) error {
	m.nextID++
	post.ID = fmt.Sprintf("post-%d", m.nextID)
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *mockPostRepo) GetPostByID(_ context.Context, id string) (*model.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, apperror.NotFound("post")
	}
	result := *post
	return &result, nil
}

func (m *mockPostRepo) ListPosts(_ context.Context) ([]model.Post, error) {
	result := make([]model.Post, 0, len(m.posts))
	for _, p := range m.posts {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPostRepo) UpdatePostOwned(_ context.Context, id, ownerID string, content, imageURL *string) (*model.Post, error) {
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

func (m *mockPostRepo) DeletePostOwned(_ context.Context, id, ownerID string) error {
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

type mockCommentRepo struct {
	comments []model.Comment
	nextID   int
}

func (m *mockCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	m.nextID++
	comment.ID = fmt.Sprintf("comment-%d", m.nextID)
	m.comments = append(m.comments, *comment)
	return nil
}

type mockLikeRepo struct {
	// keyed by postID + "/" + userID
	likes  map[string]*model.Like
	nextID int
}

func newMockLikeRepo() *mockLikeRepo {
	return &mockLikeRepo{likes: make(map[string]*model.Like)}
}

func (m *mockLikeRepo) ToggleLike(_ context.Context, postID, userID string) (*model.Like, bool, error) {
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
