package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"nprstory/internal/domain"
)

// CategoryStore keeps post categories and free-form tags.
type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) PostCategories(ctx context.Context, postID int64) ([]int64, error) {
	var ids []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		`SELECT category_id FROM post_categories WHERE post_id = $1 ORDER BY category_id`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("select post categories: %w", err)
	}
	return ids, nil
}

// FindByName matches a category name case-insensitively.
func (s *CategoryStore) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var cat domain.Category
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &cat,
		`SELECT id, name, slug FROM categories WHERE LOWER(name) = LOWER($1) ORDER BY id LIMIT 1`,
		name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &cat, nil
}

// SetPostCategories replaces the categories of a post.
func (s *CategoryStore) SetPostCategories(ctx context.Context, postID int64, categoryIDs []int64) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, "DELETE FROM post_categories WHERE post_id = $1", postID)
	if err != nil {
		return fmt.Errorf("clear post categories: %w", err)
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO post_categories (post_id, category_id) VALUES ")
	valueArgs := make([]any, 0, len(categoryIDs)+1)
	valueArgs = append(valueArgs, postID)

	for i, id := range categoryIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, id)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	if _, err := exec.ExecContext(ctx, sb.String(), valueArgs...); err != nil {
		return fmt.Errorf("link post categories: %w", err)
	}
	return nil
}

// AddPostTags creates missing tags by name and links them to the post,
// keeping tags it already has.
func (s *CategoryStore) AddPostTags(ctx context.Context, postID int64, tags []string) error {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			names = append(names, t)
		}
	}
	if len(names) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx,
		`INSERT INTO tags (name) SELECT UNNEST($1::TEXT[]) ON CONFLICT (name) DO NOTHING`,
		pq.Array(names),
	)
	if err != nil {
		return fmt.Errorf("upsert tags: %w", err)
	}

	_, err = exec.ExecContext(ctx,
		`INSERT INTO post_tags (post_id, tag_id)
		 SELECT $1, id FROM tags WHERE name = ANY($2)
		 ON CONFLICT DO NOTHING`,
		postID, pq.Array(names),
	)
	if err != nil {
		return fmt.Errorf("link post tags: %w", err)
	}
	return nil
}

