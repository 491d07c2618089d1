package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
)

// newTestDB opens a fresh in-memory database. Each test gets its own,
// destroyed when the connection closes.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB, name, email string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email}
	if err := db.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestPost(t *testing.T, db *DB, authorID, content string) *model.Post {
	t.Helper()
	post := &model.Post{Content: content, AuthorID: authorID}
	if err := db.CreatePost(context.Background(), post); err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}
	// SQLite stores timestamps with limited precision; spacing creations
	// out keeps ordering assertions deterministic.
	time.Sleep(2 * time.Millisecond)
	return post
}
