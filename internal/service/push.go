package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"nprstory/internal/byline"
	"nprstory/internal/config"
	"nprstory/internal/domain"
	"nprstory/internal/nprml"
	"nprstory/internal/source/npr"
	"nprstory/internal/transport"
)

// PushService sends local posts to the Story API and removes them again.
type PushService struct {
	api    StoryAPI
	posts  PostStore
	hooks  Hooks
	cfg    config.APIConfig
	keys   domain.MetaKeys
	logger *slog.Logger
}

func NewPushService(
	api StoryAPI,
	posts PostStore,
	hooks Hooks,
	cfg config.APIConfig,
	keys domain.MetaKeys,
	logger *slog.Logger,
) *PushService {
	if keys == (domain.MetaKeys{}) {
		keys = domain.DefaultMetaKeys()
	}
	return &PushService{
		api:    api,
		posts:  posts,
		hooks:  hooks,
		cfg:    cfg,
		keys:   keys,
		logger: logger.With("source", npr.SourceID, "component", "push"),
	}
}

// PushPost serializes a stored post and pushes it.
func (s *PushService) PushPost(ctx context.Context, postID int64) error {
	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return fmt.Errorf("push post %d: %w", postID, ErrPostNotFound)
	}
	metas, err := s.posts.GetMeta(ctx, postID)
	if err != nil {
		return fmt.Errorf("get post meta: %w", err)
	}

	document, err := nprml.BuildDocument(s.outgoing(post, metas))
	if err != nil {
		return fmt.Errorf("build document: %w", err)
	}
	return s.Push(ctx, document, postID)
}

func (s *PushService) outgoing(post *domain.Post, metas map[string]string) nprml.OutgoingStory {
	body := post.Content
	if s.keys.StoryContent != domain.MetaStoryContent {
		if v := metas[s.keys.StoryContent]; v != "" {
			body = v
		}
	}

	bylines := byline.Names(metas[domain.MetaMultiByline])
	if len(bylines) == 0 {
		if v := strings.TrimSpace(metas[s.keys.Byline]); v != "" {
			bylines = []string{v}
		}
	}

	return nprml.OutgoingStory{
		PartnerID: strconv.FormatInt(post.ID, 10),
		Title:     post.Title,
		Teaser:    post.Excerpt,
		Date:      post.PostDate,
		HTMLLink:  metas[domain.MetaHTMLLink],
		Bylines:   bylines,
		Body:      body,
	}
}

// Push sends a serialized document for a local post. On success the
// returned story id is stored and any earlier push error cleared; on failure
// a readable error is stored against the post and returned as *PushError.
func (s *PushService) Push(ctx context.Context, document []byte, postID int64) error {
	logger := s.logger.With("post_id", postID)

	storyID, errText := s.send(ctx, logger, document, postID)

	if errText != "" {
		logger.Error("push failed", "error", errText)
		if err := s.posts.SetMeta(ctx, postID, map[string]string{domain.MetaPushStoryError: errText}); err != nil {
			return fmt.Errorf("store push error: %w", err)
		}
		return &PushError{PostID: postID, Text: errText}
	}

	if storyID != "" {
		if err := s.posts.SetMeta(ctx, postID, map[string]string{domain.MetaStoryID: storyID}); err != nil {
			return fmt.Errorf("store story id: %w", err)
		}
		logger.Info("story pushed", "story_id", storyID)
	}
	if err := s.posts.DeleteMeta(ctx, postID, domain.MetaPushStoryError); err != nil {
		return fmt.Errorf("clear push error: %w", err)
	}
	return nil
}

// send performs the push and returns the remote story id, or the error
// text to store.
func (s *PushService) send(ctx context.Context, logger *slog.Logger, document []byte, postID int64) (string, string) {
	if s.cfg.OrgID == "" {
		return "", fmt.Sprintf("OrgID was not set when tried to push post_ID %d to the NPR Story API.", postID)
	}

	params := url.Values{}
	params.Set("orgId", s.cfg.OrgID)
	params.Set("apiKey", s.cfg.APIKey)
	params = s.hooks.prePush(ctx, params, postID)

	logger.Debug("sending nprml", "bytes", len(document))

	resp, target, err := s.api.PushStory(ctx, document, params)
	if err != nil {
		return "", fmt.Sprintf("Transport error returned when sending story with post_ID %d for url %s to NPR Story API: %v", postID, target, err)
	}

	if resp.StatusCode == http.StatusOK {
		if len(resp.Body) == 0 {
			logger.Error("push returned 200 OK without a body")
			return "", ""
		}
		pr, err := nprml.ParsePushResponse(bytes.NewReader(resp.Body))
		if err != nil {
			logger.Error("failed to parse push response", "error", err)
			return "", ""
		}
		return pr.StoryID, ""
	}

	var errText string
	if reason := reasonPhrase(resp); reason != "" {
		errText = fmt.Sprintf("Error pushing story with post_id = %d for url=%s HTTP Error response =  %s", postID, target, reason)
	}
	if len(resp.Body) > 0 {
		pr, err := nprml.ParsePushResponse(bytes.NewReader(resp.Body))
		if err == nil || errors.Is(err, nprml.ErrNoStory) {
			errText += "  API Error Message = " + pr.Message
		}
	}
	if errText == "" {
		errText = fmt.Sprintf("Error pushing story with post_id = %d for url=%s HTTP status %d", postID, target, resp.StatusCode)
	}
	return "", errText
}

// Delete removes a story from the Story API.
func (s *PushService) Delete(ctx context.Context, remoteID string) error {
	params := url.Values{}
	params.Set("orgId", s.cfg.OrgID)
	params.Set("apiKey", s.cfg.APIKey)
	params.Set("id", remoteID)
	params = s.hooks.preDelete(ctx, params)

	resp, err := s.api.DeleteStory(ctx, params)
	if err != nil {
		return fmt.Errorf("delete story %s: %w", remoteID, err)
	}
	if err := transport.Check("story "+remoteID, resp); err != nil {
		return fmt.Errorf("delete story %s: %w", remoteID, err)
	}

	s.logger.Info("story deleted", "story_id", remoteID)
	return nil
}

func reasonPhrase(resp *transport.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
