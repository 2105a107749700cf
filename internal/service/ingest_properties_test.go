package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nprstory/internal/config"
	"nprstory/internal/domain"
	"nprstory/internal/layout"
	"nprstory/internal/transcript"
	"nprstory/internal/transport"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

// fakeWeb serves canned responses and records every fetched URL.
type fakeWeb struct {
	mu      sync.Mutex
	pages   map[string][]byte
	fetched []string
}

func (f *fakeWeb) Get(_ context.Context, url string) (*transport.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, url)
	body, ok := f.pages[url]
	if !ok {
		return &transport.Response{StatusCode: http.StatusNotFound, Status: "404 Not Found"}, nil
	}
	return &transport.Response{StatusCode: http.StatusOK, Status: "200 OK", Body: body}, nil
}

func (f *fakeWeb) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, u := range f.fetched {
		if u == url {
			n++
		}
	}
	return n
}

type ingestFixture struct {
	store *memStore
	web   *fakeWeb
	svc   *IngestService
}

func newIngestFixture(opts IngestOptions) *ingestFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newMemStore()
	web := &fakeWeb{pages: map[string][]byte{}}
	svc := NewIngestService(
		store.stores(),
		layout.NewReconstructor(web, layout.Options{}, logger),
		transcript.NewFetcher(web, logger),
		web,
		nil,
		Hooks{},
		opts,
		logger,
	)
	return &ingestFixture{store: store, web: web, svc: svc}
}

func sampleStory(id, modified, title string) domain.Story {
	return domain.Story{
		ID:               id,
		Title:            title,
		Teaser:           "Teaser for " + title,
		PubDate:          modified,
		StoryDate:        modified,
		LastModifiedDate: modified,
		Links: domain.Many[domain.Link]{
			{Type: "html", Value: "https://www.npr.org/" + id},
			{Type: "api", Value: "https://api.npr.org/query?id=" + id},
		},
		Bylines:    domain.Many[domain.Byline]{{Name: "Ari Shapiro"}},
		Paragraphs: []domain.Paragraph{{Num: 1, Value: title + " body."}},
		Parents: domain.Many[domain.Parent]{
			{ID: "1003", Type: "category", Title: "National"},
			{ID: "1025", Type: "topic", Title: "Environment"},
		},
	}
}

const (
	earlier = "Mon, 19 Feb 2024 10:00:00 -0500"
	later   = "Tue, 20 Feb 2024 15:02:11 -0500"
	latest  = "Wed, 21 Feb 2024 08:00:00 -0500"
)

func TestIngest_Idempotent(t *testing.T) {
	f := newIngestFixture(IngestOptions{})
	ctx := context.Background()

	id1, stats1 := f.svc.Ingest(ctx, []domain.Story{sampleStory("1001", later, "Storm")}, true, nil)
	require.NotNil(t, id1)
	assert.Equal(t, 1, stats1.New)

	before, _ := f.store.Get(ctx, *id1)
	beforeMeta, _ := f.store.GetMeta(ctx, *id1)

	id2, stats2 := f.svc.Ingest(ctx, []domain.Story{sampleStory("1001", later, "Storm")}, true, nil)
	require.NotNil(t, id2)
	assert.Equal(t, *id1, *id2)
	assert.Equal(t, 1, stats2.Skipped)

	after, _ := f.store.Get(ctx, *id2)
	afterMeta, _ := f.store.GetMeta(ctx, *id2)
	assert.Equal(t, before, after)
	assert.Equal(t, beforeMeta, afterMeta)
	assert.Equal(t, 1, f.store.creates)
}

func TestIngest_FreshnessOrdering(t *testing.T) {
	f := newIngestFixture(IngestOptions{})
	ctx := context.Background()

	id, _ := f.svc.Ingest(ctx, []domain.Story{sampleStory("2002", later, "Original")}, false, nil)
	require.NotNil(t, id)

	_, stats := f.svc.Ingest(ctx, []domain.Story{sampleStory("2002", earlier, "Stale")}, false, nil)
	assert.Equal(t, 1, stats.Skipped)

	post, _ := f.store.Get(ctx, *id)
	metas, _ := f.store.GetMeta(ctx, *id)
	assert.Equal(t, "Original", post.Title)
	assert.Contains(t, post.Content, "Original body.")
	assert.Equal(t, later, metas[domain.MetaLastModifiedDate])

	_, stats = f.svc.Ingest(ctx, []domain.Story{sampleStory("2002", latest, "Revised")}, false, nil)
	assert.Equal(t, 1, stats.Updated)

	post, _ = f.store.Get(ctx, *id)
	assert.Equal(t, "Revised", post.Title)
	assert.Equal(t, domain.StatusDraft, post.Status)
}

func TestIngest_StatusRules(t *testing.T) {
	f := newIngestFixture(IngestOptions{})
	ctx := context.Background()

	id, _ := f.svc.Ingest(ctx, []domain.Story{sampleStory("3003", earlier, "A")}, true, nil)
	post, _ := f.store.Get(ctx, *id)
	assert.Equal(t, domain.StatusPublish, post.Status)

	require.NoError(t, f.store.SetStatus(ctx, *id, domain.StatusDraft))

	_, _ = f.svc.Ingest(ctx, []domain.Story{sampleStory("3003", later, "B")}, true, nil)
	post, _ = f.store.Get(ctx, *id)
	assert.Equal(t, domain.StatusDraft, post.Status, "existing status is preserved")
	assert.Equal(t, "B", post.Title)
}

func TestIngest_CategoryPreservation(t *testing.T) {
	f := newIngestFixture(IngestOptions{Ingest: config.IngestConfig{DefaultCategory: 3}})
	f.store.catalog["national"] = 9
	ctx := context.Background()

	id, _ := f.svc.Ingest(ctx, []domain.Story{sampleStory("4004", earlier, "A")}, false, nil)
	require.NotNil(t, id)
	cats, _ := f.store.PostCategories(ctx, *id)
	assert.ElementsMatch(t, []int64{3, 9}, cats)

	// An editor re-files the post locally.
	require.NoError(t, f.store.SetPostCategories(ctx, *id, []int64{5, 9}))

	_, _ = f.svc.Ingest(ctx, []domain.Story{sampleStory("4004", earlier, "A")}, false, nil)
	cats, _ = f.store.PostCategories(ctx, *id)
	assert.ElementsMatch(t, []int64{5, 9}, cats)

	_, _ = f.svc.Ingest(ctx, []domain.Story{sampleStory("4004", later, "A2")}, false, nil)
	cats, _ = f.store.PostCategories(ctx, *id)
	assert.ElementsMatch(t, []int64{5, 9}, cats)
}

func TestIngest_QuerySlotCategoryAndTags(t *testing.T) {
	f := newIngestFixture(IngestOptions{
		Ingest:  config.IngestConfig{DefaultCategory: 3},
		Queries: []config.QueryConfig{{Query: "1001", Category: 12, Tags: []string{"npr", "news"}}},
	})
	ctx := context.Background()
	slot := 0

	id, _ := f.svc.Ingest(ctx, []domain.Story{sampleStory("5005", earlier, "A")}, false, &slot)
	require.NotNil(t, id)

	cats, _ := f.store.PostCategories(ctx, *id)
	assert.Equal(t, []int64{12}, cats)
	assert.Equal(t, []string{"npr", "news"}, f.store.tags[*id])
}

func TestIngest_DuplicateImageAvoidance(t *testing.T) {
	f := newIngestFixture(IngestOptions{})
	ctx := context.Background()
	const imageURL = "https://media.example.org/img/Storm-Photo.jpg"
	f.web.pages[imageURL] = pngBytes

	story := sampleStory("6006", earlier, "A")
	story.Images = domain.Many[domain.Image]{{ID: "i1", Type: "primary", Src: imageURL, Producer: "Jane Doe", Provider: "AP"}}

	id, _ := f.svc.Ingest(ctx, []domain.Story{story}, false, nil)
	require.NotNil(t, id)
	assert.Equal(t, 1, f.web.count(imageURL))
	require.Len(t, f.store.attachments[*id], 1)
	assert.Equal(t, "storm-photo.png", f.store.attachments[*id][0].Filename)

	attachmentID := f.store.featured[*id]
	assert.NotZero(t, attachmentID)
	assert.Equal(t, "Jane Doe", f.store.attachMeta[attachmentID][domain.MetaImageCredit])
	assert.Equal(t, "AP", f.store.attachMeta[attachmentID][domain.MetaImageAgency])

	// A newer revision names the same file with different case.
	story = sampleStory("6006", later, "B")
	story.Images = domain.Many[domain.Image]{{ID: "i1", Type: "primary", Src: "https://media.example.org/img/storm-photo.JPG"}}

	_, _ = f.svc.Ingest(ctx, []domain.Story{story}, false, nil)
	assert.Zero(t, f.web.count("https://media.example.org/img/storm-photo.JPG"))
	assert.Len(t, f.store.attachments[*id], 1)
}

func TestIngest_NonImageDownloadSkipped(t *testing.T) {
	f := newIngestFixture(IngestOptions{})
	ctx := context.Background()
	f.web.pages["https://example.org/fake.jpg"] = []byte("<html>not an image</html>")

	story := sampleStory("7007", earlier, "A")
	story.Images = domain.Many[domain.Image]{{ID: "i1", Type: "primary", Src: "https://example.org/fake.jpg"}}

	id, stats := f.svc.Ingest(ctx, []domain.Story{story}, false, nil)
	require.NotNil(t, id)
	assert.Equal(t, 1, stats.New)
	assert.Empty(t, f.store.attachments[*id])
}

func TestIngest_CombinedCreditKey(t *testing.T) {
	keys := domain.DefaultMetaKeys()
	keys.ImageAgency = keys.ImageCredit
	f := newIngestFixture(IngestOptions{Keys: keys})
	ctx := context.Background()
	f.web.pages["https://example.org/a.png"] = pngBytes

	story := sampleStory("8008", earlier, "A")
	story.Images = domain.Many[domain.Image]{{
		ID: "i1", Type: "primary", Src: "https://example.org/a.png",
		Producer: "Jane Doe", Provider: "AP", Caption: "A storm",
	}}

	id, _ := f.svc.Ingest(ctx, []domain.Story{story}, false, nil)
	attachmentID := f.store.featured[*id]

	assert.Equal(t, "Jane Doe | AP", f.store.attachMeta[attachmentID][domain.MetaImageCredit])
	assert.Equal(t, "A storm", f.store.attachMeta[attachmentID][domain.MetaImageCaption])
}

func TestIngest_ReturnValue(t *testing.T) {
	f := newIngestFixture(IngestOptions{})
	ctx := context.Background()

	id, stats := f.svc.Ingest(ctx, []domain.Story{
		sampleStory("9001", earlier, "A"),
		sampleStory("9002", earlier, "B"),
	}, false, nil)

	assert.Nil(t, id)
	assert.Equal(t, 2, stats.New)

	id, _ = f.svc.Ingest(ctx, []domain.Story{{Title: "no id"}}, false, nil)
	require.NotNil(t, id)
	assert.Zero(t, *id)
}

func TestIngest_AuthorNeedsUniqueMatch(t *testing.T) {
	f := newIngestFixture(IngestOptions{})
	ctx := context.Background()
	f.store.users["Ari Shapiro"] = []int64{77}

	id, _ := f.svc.Ingest(ctx, []domain.Story{sampleStory("9101", earlier, "A")}, false, nil)
	post, _ := f.store.Get(ctx, *id)
	assert.Equal(t, int64(77), post.AuthorID)

	f.store.users["Ari Shapiro"] = []int64{77, 78}
	id, _ = f.svc.Ingest(ctx, []domain.Story{sampleStory("9102", earlier, "A")}, false, nil)
	post, _ = f.store.Get(ctx, *id)
	assert.Zero(t, post.AuthorID)
}

func TestIngest_MetadataSet(t *testing.T) {
	f := newIngestFixture(IngestOptions{})
	ctx := context.Background()

	story := sampleStory("9201", earlier, "A")
	story.Bylines = domain.Many[domain.Byline]{
		{Name: "A", Links: domain.Many[domain.Link]{{Type: "html", Value: "u1"}}},
		{Name: "B", Links: domain.Many[domain.Link]{{Type: "html", Value: "u2"}}},
	}
	story.Audio = domain.Many[domain.Audio]{{
		Type: "primary",
		Format: domain.AudioFormat{MP3: domain.Many[domain.Link]{
			{Type: "mp3", Value: "https://x.org/a.mp3"},
			{Type: "m3u", Value: "https://x.org/a.m3u"},
		}},
		Permissions: domain.Permissions{Download: "true"},
	}}

	id, _ := f.svc.Ingest(ctx, []domain.Story{story}, false, nil)
	metas, _ := f.store.GetMeta(ctx, *id)

	assert.Equal(t, "9201", metas[domain.MetaStoryID])
	assert.Equal(t, "https://www.npr.org/9201", metas[domain.MetaHTMLLink])
	assert.Equal(t, "https://api.npr.org/query?id=9201", metas[domain.MetaAPILink])
	assert.Equal(t, "B", metas[domain.MetaByline])
	assert.Equal(t, "u2", metas[domain.MetaBylineLink])
	assert.Equal(t, "A~u1|B~u2", metas[domain.MetaMultiByline])
	assert.Equal(t, "1", metas[domain.MetaRetrievedStory])
	assert.Equal(t, "0", metas[domain.MetaHasLayout])
	assert.Equal(t, "https://x.org/a.mp3", metas[domain.MetaAudio])
	assert.Equal(t, "https://x.org/a.m3u", metas[domain.MetaAudioM3U])
	assert.Contains(t, metas[domain.MetaStoryContent], "A body.")
}
