package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/Mehedihasan1234567/SocioSphere/internal/apperror"
	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
	"github.com/Mehedihasan1234567/SocioSphere/internal/repository"
)

var _ repository.PostRepository = (*DB)(nil)

// CreatePost inserts a new post. ID and timestamps are generated here and
// written back through the pointer.
func (db *DB) CreatePost(ctx context.Context, post *model.Post) error {
	post.ID = xid.New().String()
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO posts (id, content, image_url, author_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		post.ID,
		post.Content,
		nullable(post.ImageURL),
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating post: %w", err)
	}

	post.Comments = []model.Comment{}
	post.Likes = []model.Like{}
	return nil
}

// GetPostByID loads one post with its author, comments (oldest first, each with
// its author) and likes — the shape the post detail page renders.
func (db *DB) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	var p model.Post
	var author model.User
	err := db.conn.QueryRowContext(ctx,
		`SELECT p.id, p.content, COALESCE(p.image_url, ''), p.author_id, p.created_at, p.updated_at,
		        u.id, COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.image, ''), u.created_at, u.updated_at
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 WHERE p.id = ?`,
		id,
	).Scan(
		&p.ID, &p.Content, &p.ImageURL, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
		&author.ID, &author.Name, &author.Email, &author.Image, &author.CreatedAt, &author.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperror.NotFound("Post")
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting post %s: %w", id, err)
	}
	author.Posts = []model.Post{}
	p.Author = &author

	p.Comments = []model.Comment{}
	rows, err := db.conn.QueryContext(ctx,
		`SELECT c.id, c.content, c.post_id, c.author_id, c.created_at,
		        u.id, COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.image, ''), u.created_at, u.updated_at
		 FROM comments c
		 JOIN users u ON u.id = c.author_id
		 WHERE c.post_id = ?
		 ORDER BY c.created_at ASC`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: loading comments for post %s: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var c model.Comment
		var ca model.User
		if err := rows.Scan(
			&c.ID, &c.Content, &c.PostID, &c.AuthorID, &c.CreatedAt,
			&ca.ID, &ca.Name, &ca.Email, &ca.Image, &ca.CreatedAt, &ca.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning comment: %w", err)
		}
		ca.Posts = []model.Post{}
		c.Author = &ca
		p.Comments = append(p.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating comments: %w", err)
	}

	likes, err := db.likesForPosts(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Likes = likes[p.ID]
	if p.Likes == nil {
		p.Likes = []model.Like{}
	}

	return &p, nil
}

// ListPosts returns the feed: all posts, newest first, each with its author,
// comments and likes.
func (db *DB) ListPosts(ctx context.Context) ([]model.Post, error) {
	return db.listPosts(ctx, "")
}

// listPosts is the shared bulk read behind ListPosts and GetUserProfile.
// where is either empty or a "WHERE p.author_id = ?" style clause with
// matching args — always a constant string from this package.
//
// WHY THREE QUERIES INSTEAD OF ONE BIG JOIN?
// Joining posts × comments × likes multiplies rows and forces fiddly
// de-duplication in Go. One query per relation keeps the scanning flat,
// and the comment/like queries are batched over all post IDs at once, so
// this is three round trips total — not N+1.
func (db *DB) listPosts(ctx context.Context, where string, args ...any) ([]model.Post, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT p.id, p.content, COALESCE(p.image_url, ''), p.author_id, p.created_at, p.updated_at,
		        u.id, COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.image, ''), u.created_at, u.updated_at
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 `+where+`
		 ORDER BY p.created_at DESC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing posts: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	ids := []string{}
	for rows.Next() {
		var p model.Post
		var author model.User
		if err := rows.Scan(
			&p.ID, &p.Content, &p.ImageURL, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
			&author.ID, &author.Name, &author.Email, &author.Image, &author.CreatedAt, &author.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning post: %w", err)
		}
		author.Posts = []model.Post{}
		p.Author = &author
		p.Comments = []model.Comment{}
		p.Likes = []model.Like{}
		posts = append(posts, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating posts: %w", err)
	}
	if len(posts) == 0 {
		return posts, nil
	}

	comments, err := db.commentsForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	likes, err := db.likesForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if cs := comments[posts[i].ID]; cs != nil {
			posts[i].Comments = cs
		}
		if ls := likes[posts[i].ID]; ls != nil {
			posts[i].Likes = ls
		}
	}
	return posts, nil
}

// UpdatePostOwned applies a partial update in a single conditional statement:
// UPDATE ... WHERE id = ? AND author_id = ?. There is no separate
// load-then-compare step, so an ownership check can never go stale between
// read and write. Zero rows affected means either the post is gone (404)
// or someone else owns it (403) — ownedWriteError tells the two apart.
//
// nil pointers leave fields untouched; a non-nil empty string clears
// image_url (content may be set empty only alongside an existing image,
// which the service validates).
func (db *DB) UpdatePostOwned(ctx context.Context, id, ownerID string, content, imageURL *string) (*model.Post, error) {
	set := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if content != nil {
		set = append(set, "content = ?")
		args = append(args, *content)
	}
	if imageURL != nil {
		set = append(set, "image_url = ?")
		args = append(args, nullable(*imageURL))
	}
	args = append(args, id, ownerID)

	res, err := db.conn.ExecContext(ctx,
		`UPDATE posts SET `+strings.Join(set, ", ")+` WHERE id = ? AND author_id = ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating post %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating post %s: %w", id, err)
	}
	if n == 0 {
		return nil, db.ownedWriteError(ctx, "posts", "Post", id)
	}

	return db.GetPostByID(ctx, id)
}

// DeletePostOwned deletes a post in a single conditional statement. The
// cascade on comments and likes cleans up the relations.
func (db *DB) DeletePostOwned(ctx context.Context, id, ownerID string) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM posts WHERE id = ? AND author_id = ?`, id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting post %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: deleting post %s: %w", id, err)
	}
	if n == 0 {
		return db.ownedWriteError(ctx, "posts", "Post", id)
	}
	return nil
}

// ownedWriteError resolves a zero-row conditional write on an owner-gated
// resource: absent row → NotFound, present row → Forbidden. This is the one
// shared "authorize resource mutation" primitive — handlers and services
// never repeat a load-compare-act sequence.
func (db *DB) ownedWriteError(ctx context.Context, table, resource, id string) error {
	ok, err := db.exists(ctx, table, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound(resource)
	}
	return apperror.Forbidden()
}

// commentsForPosts loads comments for a set of posts in one query,
// keyed by post ID.
func (db *DB) commentsForPosts(ctx context.Context, ids []string) (map[string][]model.Comment, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, content, post_id, author_id, created_at
		 FROM comments
		 WHERE post_id IN (`+placeholders(len(ids))+`)
		 ORDER BY created_at ASC`,
		toAny(ids)...,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: loading comments: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]model.Comment)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.PostID, &c.AuthorID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning comment: %w", err)
		}
		out[c.PostID] = append(out[c.PostID], c)
	}
	return out, rows.Err()
}

// likesForPosts loads likes for a set of posts in one query, keyed by post ID.
func (db *DB) likesForPosts(ctx context.Context, ids []string) (map[string][]model.Like, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, post_id, user_id FROM likes WHERE post_id IN (`+placeholders(len(ids))+`)`,
		toAny(ids)...,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: loading likes: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]model.Like)
	for rows.Next() {
		var l model.Like
		if err := rows.Scan(&l.ID, &l.PostID, &l.UserID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning like: %w", err)
		}
		out[l.PostID] = append(out[l.PostID], l)
	}
	return out, rows.Err()
}

// placeholders returns "?, ?, ?" with n question marks for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
