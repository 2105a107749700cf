package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"nprstory/internal/byline"
	"nprstory/internal/config"
	"nprstory/internal/domain"
	"nprstory/internal/source/npr"
)

type outcome int

const (
	outcomeUnchanged outcome = iota
	outcomeCreated
	outcomeUpdated
)

// Stores groups the local content store collaborators of ingestion.
// Coauthors may be nil when the site has no multi-author support.
type Stores struct {
	Posts      PostStore
	Categories CategoryStore
	Media      MediaStore
	Authors    AuthorDirectory
	Coauthors  CoauthorStore
	Tx         TransactionManager
}

type IngestOptions struct {
	Ingest  config.IngestConfig
	Queries []config.QueryConfig
	Keys    domain.MetaKeys
}

// IngestService turns pulled stories into local posts.
type IngestService struct {
	posts       PostStore
	categories  CategoryStore
	media       MediaStore
	authors     AuthorDirectory
	coauthors   CoauthorStore
	txManager   TransactionManager
	renderer    BodyRenderer
	transcripts TranscriptFetcher
	http        HTTPGetter
	publisher   Publisher
	hooks       Hooks
	opts        IngestOptions
	logger      *slog.Logger
	now         func() time.Time
}

func NewIngestService(
	stores Stores,
	renderer BodyRenderer,
	transcripts TranscriptFetcher,
	http HTTPGetter,
	publisher Publisher,
	hooks Hooks,
	opts IngestOptions,
	logger *slog.Logger,
) *IngestService {
	if opts.Ingest.PostType == "" {
		opts.Ingest.PostType = "post"
	}
	if opts.Keys == (domain.MetaKeys{}) {
		opts.Keys = domain.DefaultMetaKeys()
	}
	return &IngestService{
		posts:       stores.Posts,
		categories:  stores.Categories,
		media:       stores.Media,
		authors:     stores.Authors,
		coauthors:   stores.Coauthors,
		txManager:   stores.Tx,
		renderer:    renderer,
		transcripts: transcripts,
		http:        http,
		publisher:   publisher,
		hooks:       hooks,
		opts:        opts,
		logger:      logger.With("component", "ingest"),
		now:         time.Now,
	}
}

// Ingest stores each story as a local post, one story at a time. For a
// single story it returns that story's post id, zero when it could not be
// stored; for several it returns nil.
func (s *IngestService) Ingest(ctx context.Context, stories []domain.Story, publish bool, slot *int) (*int64, domain.SyncStats) {
	start := s.now()
	stats := domain.SyncStats{Source: npr.SourceID, Fetched: len(stories)}

	var lastID int64
	for i := range stories {
		story := &stories[i]
		postID, result, err := s.ingestStory(ctx, story, publish, slot, &stats)
		if err != nil {
			stats.Errors++
			lastID = 0
			s.logger.Error("ingest story failed", "story_id", story.ID, "error", err)
			continue
		}
		lastID = postID

		switch result {
		case outcomeCreated:
			stats.New++
		case outcomeUpdated:
			stats.Updated++
		default:
			stats.Skipped++
		}
	}

	stats.Duration = s.now().Sub(start)

	s.logger.Info("ingest completed",
		"stories", len(stories),
		"new", stats.New,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
	)

	if len(stories) == 1 {
		return &lastID, stats
	}
	return nil, stats
}

func (s *IngestService) ingestStory(ctx context.Context, story *domain.Story, publish bool, slot *int, stats *domain.SyncStats) (int64, outcome, error) {
	logger := s.logger.With("story_id", story.ID)
	if story.ID == "" {
		return 0, outcomeUnchanged, fmt.Errorf("story has no id")
	}

	existing, err := s.posts.FindByExternalID(ctx, story.ID)
	if err != nil {
		return 0, outcomeUnchanged, fmt.Errorf("find post: %w", err)
	}

	var postID int64
	var existingCats []int64
	fresh := true
	if existing != nil {
		postID = existing.ID
		metas, err := s.posts.GetMeta(ctx, postID)
		if err != nil {
			return postID, outcomeUnchanged, fmt.Errorf("get post meta: %w", err)
		}
		fresh = isFresher(story, metas)

		existingCats, err = s.categories.PostCategories(ctx, postID)
		if err != nil {
			return postID, outcomeUnchanged, fmt.Errorf("get post categories: %w", err)
		}
	}

	rendered := s.renderer.Reconstruct(ctx, story, s.opts.Ingest.UseLayout)
	body := rendered.Body + s.transcripts.Fetch(ctx, story.Transcripts)

	baseCats, tags := s.defaultCategories(slot, existing == nil)
	baseCats = unionIDs(baseCats, existingCats)

	result := outcomeUnchanged
	if fresh {
		in := storyWrite{
			story:     story,
			existing:  existing,
			body:      body,
			hasLayout: rendered.HasLayout,
			hasVideo:  rendered.HasVideo,
			publish:   publish,
			tags:      tags,
		}
		postID, err = s.write(ctx, logger, in, stats)
		if err != nil {
			return postID, outcomeUnchanged, err
		}
		result = outcomeUpdated
		if existing == nil {
			result = outcomeCreated
		}
	} else {
		logger.Debug("story unchanged", "post_id", postID)
	}

	s.reconcileCategories(ctx, logger, postID, story, baseCats)

	return postID, result, nil
}

// storyWrite is one fresh story on its way into the store.
type storyWrite struct {
	story     *domain.Story
	existing  *domain.Post
	body      string
	hasLayout bool
	hasVideo  bool
	publish   bool
	tags      []string
}

// write creates or updates the post for a fresh story. Once the post row
// exists every later step is best effort.
func (s *IngestService) write(ctx context.Context, logger *slog.Logger, in storyWrite, stats *domain.SyncStats) (int64, error) {
	story := in.story
	created := in.existing == nil
	by := byline.Extract(story.Bylines)
	metas := s.buildMetas(story, in.body, by, in.hasLayout, in.hasVideo)

	fields := domain.PostFields{
		Title:    story.Title,
		Excerpt:  story.Teaser,
		Content:  in.body,
		Status:   domain.StatusDraft,
		Type:     s.opts.Ingest.PostType,
		PostDate: s.storyDate(story),
		Tags:     in.tags,
	}

	var postID int64
	if !created {
		postID = in.existing.ID
		fields.Status = in.existing.Status
	}

	fields = s.hooks.preInsert(ctx, fields, postID, story, created)
	if created {
		id, err := s.posts.Create(ctx, story.ID, fields)
		if err != nil {
			return 0, fmt.Errorf("create post: %w", err)
		}
		postID = id
		logger.Info("post created", "post_id", postID)
	} else {
		if err := s.posts.Update(ctx, postID, fields); err != nil {
			return postID, fmt.Errorf("update post: %w", err)
		}
	}

	if len(fields.Tags) > 0 {
		if err := s.categories.AddPostTags(ctx, postID, fields.Tags); err != nil {
			logger.Warn("failed to add post tags", "post_id", postID, "error", err)
		}
	}

	s.attachImages(ctx, logger, postID, story, in.hasLayout, created)

	metas = s.hooks.preUpdateMetas(ctx, metas, postID, story, created)

	final := domain.PostFields{
		Title:    story.Title,
		Excerpt:  story.Teaser,
		Content:  in.body,
		Type:     s.opts.Ingest.PostType,
		PostDate: fields.PostDate,
		AuthorID: s.resolveAuthor(ctx, logger, by.Single),
	}
	switch {
	case !created:
		final.Status = in.existing.Status
	case in.publish:
		final.Status = domain.StatusPublish
	default:
		final.Status = domain.StatusDraft
	}
	final = s.hooks.preUpdate(ctx, final, postID, story)

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.posts.SetMeta(txCtx, postID, metas); err != nil {
			return fmt.Errorf("set post meta: %w", err)
		}
		if err := s.posts.Update(txCtx, postID, final); err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		if err := s.posts.SetStatus(txCtx, postID, final.Status); err != nil {
			return fmt.Errorf("set post status: %w", err)
		}
		return nil
	})
	if err != nil {
		stats.Errors++
		logger.Error("failed to finish post", "post_id", postID, "error", err)
	}

	s.assignCoauthors(ctx, logger, postID, by)
	s.announce(ctx, logger, postID, story, final.Status, created, in, stats)

	return postID, nil
}

func (s *IngestService) buildMetas(story *domain.Story, body string, by byline.Result, hasLayout, hasVideo bool) map[string]string {
	keys := s.opts.Keys
	metas := map[string]string{
		domain.MetaStoryID:          story.ID,
		domain.MetaAPILink:          story.Link("api"),
		domain.MetaHTMLLink:         story.Link("html"),
		keys.StoryContent:           body,
		keys.Byline:                 by.Single,
		domain.MetaBylineLink:       by.SingleLink,
		domain.MetaMultiByline:      by.Multi,
		domain.MetaRetrievedStory:   "1",
		domain.MetaPubDate:          story.PubDate,
		domain.MetaStoryDate:        story.StoryDate,
		domain.MetaLastModifiedDate: story.LastModifiedDate,
		domain.MetaHasLayout:        boolMeta(hasLayout),
		domain.MetaHasVideo:         boolMeta(hasVideo),
	}

	if story.Audio.Present() {
		var mp3s, m3us []string
		for _, a := range story.Audio {
			if !a.Permissions.DownloadAllowed() {
				continue
			}
			if v := a.Format.MP3Of("mp3"); v != "" {
				mp3s = append(mp3s, v)
			}
			if v := a.Format.MP3Of("m3u"); v != "" {
				m3us = append(m3us, v)
			}
		}
		metas[domain.MetaAudio] = strings.Join(mp3s, ",")
		metas[domain.MetaAudioM3U] = strings.Join(m3us, ",")
	}
	return metas
}

func (s *IngestService) storyDate(story *domain.Story) time.Time {
	for _, v := range []string{story.StoryDate, story.PubDate} {
		if t, err := domain.ParseDate(v); err == nil {
			return t
		}
	}
	return s.now()
}

// resolveAuthor matches the byline against user nicknames. Only an
// unambiguous match is used.
func (s *IngestService) resolveAuthor(ctx context.Context, logger *slog.Logger, name string) int64 {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0
	}
	ids, err := s.authors.FindByNickname(ctx, name)
	if err != nil {
		logger.Warn("failed to look up author", "byline", name, "error", err)
		return 0
	}
	if len(ids) != 1 {
		return 0
	}
	return ids[0]
}

func (s *IngestService) assignCoauthors(ctx context.Context, logger *slog.Logger, postID int64, by byline.Result) {
	if s.coauthors == nil {
		return
	}
	names := byline.Names(by.Multi)
	if len(names) == 0 && by.Single != "" {
		names = []string{by.Single}
	}

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := s.coauthors.Search(ctx, name)
		if err != nil {
			logger.Warn("failed to search coauthor", "name", name, "error", err)
			continue
		}
		if id != 0 {
			ids = append(ids, id)
		}
	}

	if err := s.coauthors.SetPostCoauthors(ctx, postID, ids); err != nil {
		logger.Warn("failed to set coauthors", "post_id", postID, "error", err)
	}
}

func (s *IngestService) announce(ctx context.Context, logger *slog.Logger, postID int64, story *domain.Story, status domain.PostStatus, created bool, in storyWrite, stats *domain.SyncStats) {
	if s.publisher == nil {
		return
	}
	action := domain.ActionUpdated
	if created {
		action = domain.ActionCreated
	}
	msg := &domain.PostMessage{
		Action:    action,
		PostID:    postID,
		StoryID:   story.ID,
		Title:     story.Title,
		Status:    string(status),
		HTMLLink:  story.Link("html"),
		HasLayout: in.hasLayout,
		HasVideo:  in.hasVideo,
		SyncedAt:  s.now(),
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		stats.Errors++
		logger.Error("failed to publish post message", "post_id", postID, "error", err)
		return
	}
	stats.Published++
}

// isFresher reports whether the remote story is newer than the stored copy.
// A date that is missing or unreadable on either side counts as changed.
func isFresher(story *domain.Story, metas map[string]string) bool {
	return newer(story.LastModifiedDate, metas[domain.MetaLastModifiedDate]) ||
		newer(story.PubDate, metas[domain.MetaPubDate])
}

func newer(remote, stored string) bool {
	st, err := domain.ParseDate(stored)
	if err != nil {
		return true
	}
	rt, err := domain.ParseDate(remote)
	if err != nil {
		return true
	}
	return rt.After(st)
}

func boolMeta(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
