package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/multierr"

	"nprstory/internal/config"
	"nprstory/internal/domain"
	"nprstory/internal/nprml"
	"nprstory/internal/source/npr"
)

// PullService runs saved queries and one-off story pulls through ingestion.
type PullService struct {
	api       StoryAPI
	ingester  Ingester
	syncState SyncStateStore
	queries   []config.QueryConfig
	logger    *slog.Logger
}

func NewPullService(
	api StoryAPI,
	ingester Ingester,
	syncState SyncStateStore,
	queries []config.QueryConfig,
	logger *slog.Logger,
) *PullService {
	if len(queries) > config.MaxQueries {
		queries = queries[:config.MaxQueries]
	}
	return &PullService{
		api:       api,
		ingester:  ingester,
		syncState: syncState,
		queries:   queries,
		logger:    logger.With("source", npr.SourceID),
	}
}

// Sync runs every configured query slot. A failing slot does not stop the
// others; their errors are returned together.
func (s *PullService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	s.logger.Info("starting sync", "queries", len(s.queries))

	total := &domain.SyncStats{Source: npr.SourceID}
	var errs error

	for slot, q := range s.queries {
		if strings.TrimSpace(q.Query) == "" {
			continue
		}
		stats, err := s.runQuery(ctx, slot, q)
		total.Add(stats)
		if err != nil {
			s.logger.Error("query failed", "slot", slot, "error", err)
			errs = multierr.Append(errs, fmt.Errorf("query %d: %w", slot, err))
		}
	}

	total.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"fetched", total.Fetched,
		"new", total.New,
		"updated", total.Updated,
		"skipped", total.Skipped,
		"errors", total.Errors,
		"published", total.Published,
		"duration", total.Duration,
	)

	return total, errs
}

func (s *PullService) runQuery(ctx context.Context, slot int, q config.QueryConfig) (domain.SyncStats, error) {
	logger := s.logger.With("slot", slot)
	query := strings.TrimSpace(q.Query)

	var res *nprml.Result
	var err error
	switch {
	case s.api.IsPullQuery(query):
		res, err = s.api.QueryByURL(ctx, query)
	case isURL(query):
		logger.Warn("skipping query that is a url outside the pull host", "query", query)
		return domain.SyncStats{}, nil
	default:
		res, err = s.api.QueryByID(ctx, query)
	}
	if err != nil {
		return domain.SyncStats{}, fmt.Errorf("run query: %w", err)
	}

	if res.Message.IsWarning() {
		logger.Warn("not saving stories, api returned a warning",
			"query", query,
			"message_id", res.Message.ID,
			"message", res.Message.Text,
		)
		return domain.SyncStats{}, nil
	}

	logger.Info("fetched stories", "query", query, "count", len(res.Stories))

	lastID, stats := s.ingester.Ingest(ctx, res.Stories, q.Publish, &slot)

	if err := s.updateSyncState(ctx, slot, stats, lastID); err != nil {
		return stats, fmt.Errorf("update sync state: %w", err)
	}
	return stats, nil
}

// PullStory pulls one story by id or npr.org URL and returns its local post
// id. The id is zero when the response held several stories.
func (s *PullService) PullStory(ctx context.Context, input string, publish bool) (int64, error) {
	storyID, ok := npr.ParseStoryID(input)
	if !ok {
		return 0, fmt.Errorf("pull story %q: %w", input, ErrInvalidStoryID)
	}

	res, err := s.api.QueryByID(ctx, storyID)
	if err != nil {
		return 0, fmt.Errorf("pull story %s: %w", storyID, err)
	}
	if res.Message.IsWarning() {
		return 0, fmt.Errorf("pull story %s: %w", storyID, &APIMessageError{ID: res.Message.ID, Text: res.Message.Text})
	}
	if len(res.Stories) == 0 {
		return 0, fmt.Errorf("pull story %s: %w", storyID, ErrStoryNotFound)
	}

	postID, stats := s.ingester.Ingest(ctx, res.Stories, publish, nil)
	if stats.Errors > 0 && (postID == nil || *postID == 0) {
		return 0, fmt.Errorf("pull story %s: ingest failed", storyID)
	}
	if postID == nil {
		return 0, nil
	}
	return *postID, nil
}

func (s *PullService) updateSyncState(ctx context.Context, slot int, stats domain.SyncStats, lastID *int64) error {
	sourceID := fmt.Sprintf("%s:query:%d", npr.SourceID, slot)
	state, err := s.syncState.Get(ctx, sourceID)
	if err != nil {
		return err
	}

	state.SourceID = sourceID
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(stats.New + stats.Updated)
	if lastID != nil && *lastID != 0 {
		state.LastPostID = *lastID
	}

	return s.syncState.Update(ctx, state)
}

func isURL(q string) bool {
	lq := strings.ToLower(q)
	return strings.Contains(lq, "http:") || strings.Contains(lq, "https:")
}
