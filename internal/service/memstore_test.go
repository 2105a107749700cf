package service

import (
	"context"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"nprstory/internal/domain"
)

// memStore is an in-memory content store used to check ingestion
// properties end to end.
type memStore struct {
	mu          sync.Mutex
	nextID      int64
	posts       map[int64]*domain.Post
	metas       map[int64]map[string]string
	categories  map[int64][]int64
	tags        map[int64][]string
	catalog     map[string]int64
	attachments map[int64][]domain.Attachment
	attachMeta  map[int64]map[string]string
	featured    map[int64]int64
	users       map[string][]int64
	creates     int
	attaches    int
}

func newMemStore() *memStore {
	return &memStore{
		nextID:      100,
		posts:       make(map[int64]*domain.Post),
		metas:       make(map[int64]map[string]string),
		categories:  make(map[int64][]int64),
		tags:        make(map[int64][]string),
		catalog:     make(map[string]int64),
		attachments: make(map[int64][]domain.Attachment),
		attachMeta:  make(map[int64]map[string]string),
		featured:    make(map[int64]int64),
		users:       make(map[string][]int64),
	}
}

func (m *memStore) FindByExternalID(_ context.Context, externalID string) (*domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.ExternalID == externalID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) Get(_ context.Context, postID int64) (*domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[postID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) Create(_ context.Context, externalID string, f domain.PostFields) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.creates++
	m.posts[m.nextID] = &domain.Post{
		ID:         m.nextID,
		ExternalID: externalID,
		Type:       f.Type,
		Title:      f.Title,
		Excerpt:    f.Excerpt,
		Content:    f.Content,
		Status:     f.Status,
		AuthorID:   f.AuthorID,
		PostDate:   f.PostDate,
	}
	m.metas[m.nextID] = map[string]string{domain.MetaStoryID: externalID}
	return m.nextID, nil
}

func (m *memStore) Update(_ context.Context, postID int64, f domain.PostFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.posts[postID]
	p.Title, p.Excerpt, p.Content, p.Type, p.PostDate = f.Title, f.Excerpt, f.Content, f.Type, f.PostDate
	if f.AuthorID != 0 {
		p.AuthorID = f.AuthorID
	}
	return nil
}

func (m *memStore) SetStatus(_ context.Context, postID int64, status domain.PostStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[postID].Status = status
	return nil
}

func (m *memStore) GetMeta(_ context.Context, postID int64) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.metas[postID]), nil
}

func (m *memStore) SetMeta(_ context.Context, postID int64, metas map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.metas[postID] == nil {
		m.metas[postID] = make(map[string]string)
	}
	maps.Copy(m.metas[postID], metas)
	return nil
}

func (m *memStore) DeleteMeta(_ context.Context, postID int64, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.metas[postID], key)
	return nil
}

func (m *memStore) PostCategories(_ context.Context, postID int64) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.categories[postID]), nil
}

func (m *memStore) FindByName(_ context.Context, name string) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.catalog[strings.ToLower(name)]
	if !ok {
		return nil, nil
	}
	return &domain.Category{ID: id, Name: name}, nil
}

func (m *memStore) SetPostCategories(_ context.Context, postID int64, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[postID] = slices.Clone(ids)
	return nil
}

func (m *memStore) AddPostTags(_ context.Context, postID int64, tags []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range tags {
		if !slices.Contains(m.tags[postID], t) {
			m.tags[postID] = append(m.tags[postID], t)
		}
	}
	return nil
}

func (m *memStore) Attachments(_ context.Context, postID int64) ([]domain.Attachment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.attachments[postID]), nil
}

func (m *memStore) Attach(_ context.Context, postID int64, u domain.Upload) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.attaches++
	m.attachments[postID] = append(m.attachments[postID], domain.Attachment{
		ID:          m.nextID,
		PostID:      postID,
		Filename:    filepath.Base(u.Name),
		OriginalURL: u.OriginalURL,
		Title:       u.Title,
		MimeType:    u.MimeType,
	})
	return m.nextID, nil
}

func (m *memStore) SetAttachmentMeta(_ context.Context, attachmentID int64, metas map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.attachMeta[attachmentID] == nil {
		m.attachMeta[attachmentID] = make(map[string]string)
	}
	maps.Copy(m.attachMeta[attachmentID], metas)
	return nil
}

func (m *memStore) SetFeatured(_ context.Context, postID, attachmentID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.featured[postID] = attachmentID
	return nil
}

func (m *memStore) FindByNickname(_ context.Context, nickname string) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.users[nickname]), nil
}

func (m *memStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *memStore) stores() Stores {
	return Stores{
		Posts:      m,
		Categories: m,
		Media:      m,
		Authors:    m,
		Tx:         m,
	}
}
