package sqlite

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/Mehedihasan1234567/SocioSphere/internal/model"
	"github.com/Mehedihasan1234567/SocioSphere/internal/repository"
)

var _ repository.LikeRepository = (*DB)(nil)

// ToggleLike flips the like state for (postID, userID).
//
// The old shape of this operation — SELECT to check, then INSERT or
// DELETE — has a check-then-act race: two concurrent toggles can both see
// "no like" and both insert. Here the insert itself is the check:
//
//	INSERT ... ON CONFLICT(post_id, user_id) DO NOTHING
//
// If a row was inserted, the user had not liked the post → now liked.
// If the insert conflicted, a like already exists → delete it → unliked.
// The UNIQUE constraint guarantees at most one like per pair no matter how
// the requests interleave.
//
// A nonexistent postID fails the foreign key on the insert; that surfaces
// as a generic error (the endpoint does not verify post existence first).
func (db *DB) ToggleLike(ctx context.Context, postID, userID string) (*model.Like, bool, error) {
	like := &model.Like{
		ID:     xid.New().String(),
		PostID: postID,
		UserID: userID,
	}

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO likes (id, post_id, user_id) VALUES (?, ?, ?)
		 ON CONFLICT(post_id, user_id) DO NOTHING`,
		like.ID, like.PostID, like.UserID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("sqlite: inserting like: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("sqlite: inserting like: %w", err)
	}
	if n > 0 {
		return like, true, nil
	}

	// Conflict path: the pair already exists, so this request unlikes.
	_, err = db.conn.ExecContext(ctx,
		`DELETE FROM likes WHERE post_id = ? AND user_id = ?`, postID, userID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("sqlite: deleting like: %w", err)
	}
	return nil, false, nil
}
