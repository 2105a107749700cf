package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// AuthorStore resolves bylines to local users and keeps post coauthors.
type AuthorStore struct {
	db *sqlx.DB
}

func NewAuthorStore(db *sqlx.DB) *AuthorStore {
	return &AuthorStore{db: db}
}

func (s *AuthorStore) FindByNickname(ctx context.Context, nickname string) ([]int64, error) {
	var ids []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		`SELECT id FROM users WHERE nickname = $1 ORDER BY id`, nickname)
	if err != nil {
		return nil, fmt.Errorf("find users by nickname: %w", err)
	}
	return ids, nil
}

// Search returns the first user whose display name or nickname matches name
// case-insensitively, or zero.
func (s *AuthorStore) Search(ctx context.Context, name string) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id,
		`SELECT id FROM users
		 WHERE LOWER(display_name) = LOWER($1) OR LOWER(nickname) = LOWER($1)
		 ORDER BY id LIMIT 1`,
		name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("search author: %w", err)
	}
	return id, nil
}

// SetPostCoauthors replaces the coauthors of a post, keeping their order.
func (s *AuthorStore) SetPostCoauthors(ctx context.Context, postID int64, authorIDs []int64) error {
	exec := GetExecutor(ctx, s.db)
	if _, err := exec.ExecContext(ctx, `DELETE FROM post_coauthors WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("clear coauthors: %w", err)
	}
	for i, id := range authorIDs {
		_, err := exec.ExecContext(ctx,
			`INSERT INTO post_coauthors (post_id, user_id, position) VALUES ($1, $2, $3)
			 ON CONFLICT DO NOTHING`,
			postID, id, i,
		)
		if err != nil {
			return fmt.Errorf("insert coauthor: %w", err)
		}
	}
	return nil
}

