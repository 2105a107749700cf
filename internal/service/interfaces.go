package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"net/url"

	"nprstory/internal/domain"
	"nprstory/internal/layout"
	"nprstory/internal/nprml"
	"nprstory/internal/transport"
)

type PostStore interface {
	// FindByExternalID returns nil when no post carries the story id.
	FindByExternalID(ctx context.Context, externalID string) (*domain.Post, error)
	Get(ctx context.Context, postID int64) (*domain.Post, error)
	Create(ctx context.Context, externalID string, fields domain.PostFields) (int64, error)
	Update(ctx context.Context, postID int64, fields domain.PostFields) error
	SetStatus(ctx context.Context, postID int64, status domain.PostStatus) error
	GetMeta(ctx context.Context, postID int64) (map[string]string, error)
	SetMeta(ctx context.Context, postID int64, metas map[string]string) error
	DeleteMeta(ctx context.Context, postID int64, key string) error
}

type CategoryStore interface {
	PostCategories(ctx context.Context, postID int64) ([]int64, error)
	// FindByName returns nil when no category has the name.
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	SetPostCategories(ctx context.Context, postID int64, categoryIDs []int64) error
	AddPostTags(ctx context.Context, postID int64, tags []string) error
}

type MediaStore interface {
	Attachments(ctx context.Context, postID int64) ([]domain.Attachment, error)
	Attach(ctx context.Context, postID int64, upload domain.Upload) (int64, error)
	SetAttachmentMeta(ctx context.Context, attachmentID int64, metas map[string]string) error
	SetFeatured(ctx context.Context, postID, attachmentID int64) error
}

type AuthorDirectory interface {
	FindByNickname(ctx context.Context, nickname string) ([]int64, error)
}

type CoauthorStore interface {
	// Search returns the best matching author id, or zero.
	Search(ctx context.Context, name string) (int64, error)
	SetPostCoauthors(ctx context.Context, postID int64, authorIDs []int64) error
}

type SyncStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, msg *domain.PostMessage) error
	Close() error
}

type HTTPGetter interface {
	Get(ctx context.Context, url string) (*transport.Response, error)
}

type StoryAPI interface {
	IsPullQuery(q string) bool
	QueryByID(ctx context.Context, id string) (*nprml.Result, error)
	QueryByURL(ctx context.Context, rawURL string) (*nprml.Result, error)
	PushStory(ctx context.Context, document []byte, params url.Values) (*transport.Response, string, error)
	DeleteStory(ctx context.Context, params url.Values) (*transport.Response, error)
}

type BodyRenderer interface {
	Reconstruct(ctx context.Context, story *domain.Story, useLayout bool) layout.Result
}

type TranscriptFetcher interface {
	Fetch(ctx context.Context, transcripts domain.Many[domain.Transcript]) string
}

type Ingester interface {
	Ingest(ctx context.Context, stories []domain.Story, publish bool, slot *int) (*int64, domain.SyncStats)
}
