package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gosimple/slug"
	"github.com/h2non/filetype"

	"nprstory/internal/domain"
	"nprstory/internal/layout"
	"nprstory/internal/transport"
)

// attachImages sideloads the story's images. With a layout body only the
// primary image is needed, since the others are already inline. Failures
// skip the image and never the story.
func (s *IngestService) attachImages(ctx context.Context, logger *slog.Logger, postID int64, story *domain.Story, hasLayout, created bool) {
	if !story.Images.Present() {
		return
	}

	var attached []domain.Attachment
	if !created {
		var err error
		attached, err = s.media.Attachments(ctx, postID)
		if err != nil {
			logger.Warn("failed to list attachments", "post_id", postID, "error", err)
		}
	}

	for _, img := range story.Images {
		if hasLayout && !img.IsPrimary() {
			continue
		}
		src := layout.DownloadURL(img)
		if src == "" {
			continue
		}
		stem := fileStem(src)
		if alreadyAttached(attached, stem) {
			logger.Debug("image already attached", "image_id", img.ID, "url", src)
			continue
		}

		attachmentID, err := s.sideload(ctx, postID, img, src, stem)
		if err != nil {
			logger.Warn("failed to sideload image", "image_id", img.ID, "url", src, "error", err)
			continue
		}
		logger.Debug("image attached", "image_id", img.ID, "attachment_id", attachmentID)

		if img.IsPrimary() {
			s.setFeatured(ctx, logger, postID, attachmentID, img)
		}
	}
}

// sideload downloads src into a temporary file and hands it to the media
// store. The temporary file is always removed.
func (s *IngestService) sideload(ctx context.Context, postID int64, img domain.Image, src, stem string) (int64, error) {
	resp, err := s.http.Get(ctx, src)
	if err != nil {
		return 0, fmt.Errorf("download image: %w", err)
	}
	if err := transport.Check(src, resp); err != nil {
		return 0, fmt.Errorf("download image: %w", err)
	}

	kind, err := filetype.Match(resp.Body)
	if err != nil || !filetype.IsImage(resp.Body) {
		return 0, fmt.Errorf("download image: %s is not an image", src)
	}

	tmp, err := os.CreateTemp("", "nprstory-image-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(resp.Body); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close temp file: %w", err)
	}

	name := slug.Make(stem)
	if name == "" {
		name = "image"
	}
	upload := domain.Upload{
		Name:        name + "." + kind.Extension,
		TmpPath:     tmp.Name(),
		OriginalURL: src,
		Title:       img.Title,
		MimeType:    kind.MIME.Value,
	}

	id, err := s.media.Attach(ctx, postID, upload)
	if err != nil {
		return 0, fmt.Errorf("attach image: %w", err)
	}
	return id, nil
}

func (s *IngestService) setFeatured(ctx context.Context, logger *slog.Logger, postID, attachmentID int64, img domain.Image) {
	if err := s.media.SetFeatured(ctx, postID, attachmentID); err != nil {
		logger.Warn("failed to set featured image", "post_id", postID, "attachment_id", attachmentID, "error", err)
		return
	}

	keys := s.opts.Keys
	var metas map[string]string
	if keys.ImageCredit == keys.ImageAgency {
		var credits []string
		for _, v := range []string{img.Producer, img.Provider} {
			if v = strings.TrimSpace(v); v != "" {
				credits = append(credits, v)
			}
		}
		metas = map[string]string{
			keys.ImageCredit:        strings.Join(credits, " | "),
			domain.MetaImageCaption: img.Caption,
		}
	} else {
		metas = map[string]string{
			keys.ImageCredit:        img.Producer,
			keys.ImageAgency:        img.Provider,
			domain.MetaImageCaption: img.Caption,
		}
	}

	if err := s.media.SetAttachmentMeta(ctx, attachmentID, metas); err != nil {
		logger.Warn("failed to set image meta", "attachment_id", attachmentID, "error", err)
	}
}

// alreadyAttached reports whether an attachment has the same file name,
// ignoring case and extension.
func alreadyAttached(attached []domain.Attachment, stem string) bool {
	if stem == "" {
		return false
	}
	for _, a := range attached {
		if strings.EqualFold(fileStem(a.OriginalURL), stem) || strings.EqualFold(fileStem(a.Filename), stem) {
			return true
		}
	}
	return false
}

// fileStem is the last path element of a URL or path without its extension.
func fileStem(raw string) string {
	if raw == "" {
		return ""
	}
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.Path
	}
	base := path.Base(p)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
