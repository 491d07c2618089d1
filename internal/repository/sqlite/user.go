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

// Compile-time check that *DB implements repository.UserRepository.
var _ repository.UserRepository = (*DB)(nil)

const userColumns = `id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(password, ''), COALESCE(image, ''), created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Image,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Posts = []model.Post{}
	return &u, nil
}

// CreateUser inserts a new user. The ID and timestamps are generated here and
// written back through the pointer, so the caller gets the canonical record.
func (db *DB) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password, image, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		nullable(user.Name),
		nullable(user.Email),
		nullable(user.PasswordHash),
		nullable(user.Image),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		// The UNIQUE index on email is a backstop; the service checks first
		// so it can return its own conflict message.
		if strings.Contains(err.Error(), "UNIQUE") {
			return apperror.Conflict("User with this email already exists.")
		}
		return fmt.Errorf("sqlite: inserting user: %w", err)
	}
	user.Posts = []model.Post{}
	return nil
}

// GetUserByID retrieves a user by internal ID.
// Returns apperror.ErrNotFound if no such user exists.
func (db *DB) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	u, err := scanUser(db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, apperror.NotFound("User")
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting user %s: %w", id, err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email. Used by registration (duplicate
// check) and credential login.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email,
	))
	if err == sql.ErrNoRows {
		return nil, apperror.NotFound("User")
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting user by email: %w", err)
	}
	return u, nil
}

// GetUserProfile loads a user together with their posts, newest first, each
// post carrying its author, comments and likes (the shape the profile page
// renders).
func (db *DB) GetUserProfile(ctx context.Context, id string) (*model.User, error) {
	user, err := db.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	posts, err := db.listPosts(ctx, `WHERE p.author_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("sqlite: loading posts for user %s: %w", id, err)
	}
	user.Posts = posts
	return user, nil
}

// UpdateUserProfile applies a partial update to a user's own record.
//
// nil pointer → field not supplied, leave untouched. Non-nil empty string →
// clear the column to NULL. This makes "clear my avatar" expressible, which
// a truthiness check could not distinguish from "field absent".
func (db *DB) UpdateUserProfile(ctx context.Context, id string, name, image *string) (*model.User, error) {
	set := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if name != nil {
		set = append(set, "name = ?")
		args = append(args, nullable(*name))
	}
	if image != nil {
		set = append(set, "image = ?")
		args = append(args, nullable(*image))
	}
	args = append(args, id)

	res, err := db.conn.ExecContext(ctx,
		`UPDATE users SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating user %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating user %s: %w", id, err)
	}
	if n == 0 {
		return nil, apperror.NotFound("User")
	}

	return db.GetUserByID(ctx, id)
}
