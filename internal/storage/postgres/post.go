package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"nprstory/internal/domain"
)

const postColumns = `id, external_id, post_type, title, excerpt, content, status, author_id, post_date, created_at, updated_at`

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

func (s *PostStore) FindByExternalID(ctx context.Context, externalID string) (*domain.Post, error) {
	if externalID == "" {
		return nil, nil
	}
	var post domain.Post
	query := `SELECT ` + postColumns + ` FROM posts WHERE external_id = $1 ORDER BY id LIMIT 1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &post, query, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by external id: %w", err)
	}
	return &post, nil
}

func (s *PostStore) Get(ctx context.Context, postID int64) (*domain.Post, error) {
	var post domain.Post
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &post, query, postID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// Create inserts a post for a story and records the story id as metadata.
func (s *PostStore) Create(ctx context.Context, externalID string, f domain.PostFields) (int64, error) {
	exec := GetExecutor(ctx, s.db)
	query := `
		INSERT INTO posts (external_id, post_type, title, excerpt, content, status, author_id, post_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		externalID,
		f.Type,
		f.Title,
		f.Excerpt,
		f.Content,
		string(f.Status),
		f.AuthorID,
		f.PostDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}

	if err := upsertMeta(ctx, exec, "post_meta", "post_id", id, map[string]string{domain.MetaStoryID: externalID}); err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites the content fields of a post. Status is left alone and a
// zero author keeps the current one.
func (s *PostStore) Update(ctx context.Context, postID int64, f domain.PostFields) error {
	query := `
		UPDATE posts SET
			post_type = $2,
			title = $3,
			excerpt = $4,
			content = $5,
			post_date = $6,
			author_id = CASE WHEN $7::BIGINT = 0 THEN author_id ELSE $7::BIGINT END,
			updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		postID,
		f.Type,
		f.Title,
		f.Excerpt,
		f.Content,
		f.PostDate,
		f.AuthorID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return requireRow(res, "post", postID)
}

func (s *PostStore) SetStatus(ctx context.Context, postID int64, status domain.PostStatus) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE posts SET status = $2, updated_at = NOW() WHERE id = $1`,
		postID, string(status),
	)
	if err != nil {
		return fmt.Errorf("set post status: %w", err)
	}
	return requireRow(res, "post", postID)
}

func (s *PostStore) GetMeta(ctx context.Context, postID int64) (map[string]string, error) {
	return selectMeta(ctx, GetExecutor(ctx, s.db), "post_meta", "post_id", postID)
}

// SetMeta upserts metadata. Writing the story id also moves the post's
// external id so later pulls find it.
func (s *PostStore) SetMeta(ctx context.Context, postID int64, metas map[string]string) error {
	exec := GetExecutor(ctx, s.db)
	if err := upsertMeta(ctx, exec, "post_meta", "post_id", postID, metas); err != nil {
		return err
	}
	if storyID, ok := metas[domain.MetaStoryID]; ok {
		_, err := exec.ExecContext(ctx,
			`UPDATE posts SET external_id = $2 WHERE id = $1 AND external_id <> $2`,
			postID, storyID,
		)
		if err != nil {
			return fmt.Errorf("set post external id: %w", err)
		}
	}
	return nil
}

func (s *PostStore) DeleteMeta(ctx context.Context, postID int64, key string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM post_meta WHERE post_id = $1 AND meta_key = $2`,
		postID, key,
	)
	if err != nil {
		return fmt.Errorf("delete post meta: %w", err)
	}
	return nil
}

func requireRow(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, sql.ErrNoRows)
	}
	return nil
}
