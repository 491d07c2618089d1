package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
	"github.com/Mehedihasan1234567/SocioSphere/internal/repository"
)

var _ repository.CommentRepository = (*DB)(nil)

// CreateComment inserts a comment. The handler never verifies the post exists
// first — a dangling post_id fails the foreign key here and surfaces as a
// generic 500, which is the accepted looseness for this endpoint.
func (db *DB) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.ID = xid.New().String()
	comment.CreatedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO comments (id, content, post_id, author_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.ID,
		comment.Content,
		comment.PostID,
		comment.AuthorID,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating comment: %w", err)
	}
	return nil
}
