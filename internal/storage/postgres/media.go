package postgres

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"nprstory/internal/domain"
)

// MediaStore keeps attachment files under dir and their records in the
// database.
type MediaStore struct {
	db  *sqlx.DB
	dir string
}

func NewMediaStore(db *sqlx.DB, dir string) *MediaStore {
	return &MediaStore{db: db, dir: dir}
}

func (s *MediaStore) Attachments(ctx context.Context, postID int64) ([]domain.Attachment, error) {
	var out []domain.Attachment
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &out,
		`SELECT id, post_id, filename, original_url, title, mime_type
		 FROM attachments WHERE post_id = $1 ORDER BY id`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("select attachments: %w", err)
	}
	return out, nil
}

// Attach copies the uploaded file into the media directory and records it.
// The caller still owns upload.TmpPath.
func (s *MediaStore) Attach(ctx context.Context, postID int64, upload domain.Upload) (int64, error) {
	postDir := filepath.Join(s.dir, strconv.FormatInt(postID, 10))
	if err := os.MkdirAll(postDir, 0o755); err != nil {
		return 0, fmt.Errorf("create media dir: %w", err)
	}

	dst, name, err := createUnique(postDir, filepath.Base(upload.Name))
	if err != nil {
		return 0, err
	}
	if err := copyFrom(dst, upload.TmpPath); err != nil {
		os.Remove(dst.Name())
		return 0, err
	}

	var id int64
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO attachments (post_id, filename, path, original_url, title, mime_type)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		postID, name, dst.Name(), upload.OriginalURL, upload.Title, upload.MimeType,
	).Scan(&id)
	if err != nil {
		os.Remove(dst.Name())
		return 0, fmt.Errorf("insert attachment: %w", err)
	}
	return id, nil
}

func (s *MediaStore) SetAttachmentMeta(ctx context.Context, attachmentID int64, metas map[string]string) error {
	return upsertMeta(ctx, GetExecutor(ctx, s.db), "attachment_meta", "attachment_id", attachmentID, metas)
}

func (s *MediaStore) SetFeatured(ctx context.Context, postID, attachmentID int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE posts SET featured_attachment_id = $2 WHERE id = $1`,
		postID, attachmentID,
	)
	if err != nil {
		return fmt.Errorf("set featured attachment: %w", err)
	}
	return requireRow(res, "post", postID)
}

// createUnique opens a new file named name in dir, adding -1, -2 and so on
// before the extension while the name is taken.
func createUnique(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := name
	for i := 1; ; i++ {
		f, err := os.OpenFile(filepath.Join(dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, candidate, nil
		}
		if !os.IsExist(err) {
			return nil, "", fmt.Errorf("create media file: %w", err)
		}
		candidate = stem + "-" + strconv.Itoa(i) + ext
	}
}

func copyFrom(dst *os.File, srcPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		dst.Close()
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("copy upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close media file: %w", err)
	}
	return nil
}
