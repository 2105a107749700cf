package service

import (
	"context"
	"log/slog"

	"nprstory/internal/domain"
)

// defaultCategories returns the categories and tags a story starts with.
// A query slot supplies its own; otherwise new posts get the site default.
func (s *IngestService) defaultCategories(slot *int, isNew bool) ([]int64, []string) {
	var ids []int64
	if slot != nil {
		if *slot < 0 || *slot >= len(s.opts.Queries) {
			return nil, nil
		}
		q := s.opts.Queries[*slot]
		if s.opts.Ingest.PostType == "post" && q.Category != 0 {
			ids = append(ids, q.Category)
		}
		return ids, q.Tags
	}
	if isNew && s.opts.Ingest.DefaultCategory != 0 {
		ids = append(ids, s.opts.Ingest.DefaultCategory)
	}
	return ids, nil
}

// reconcileCategories assigns the union of the base categories and the
// local categories matching the story's remote category parents. It runs
// whether or not the story content changed.
func (s *IngestService) reconcileCategories(ctx context.Context, logger *slog.Logger, postID int64, story *domain.Story, base []int64) {
	ids := append([]int64(nil), base...)
	for _, p := range story.Parents {
		if p.Type != "category" {
			continue
		}
		term := s.hooks.resolveCategoryTerm(ctx, p.Title, postID, story)
		if term == "" {
			continue
		}
		cat, err := s.categories.FindByName(ctx, term)
		if err != nil {
			logger.Warn("failed to look up category", "term", term, "error", err)
			continue
		}
		if cat == nil {
			logger.Debug("no local category for remote parent", "term", term)
			continue
		}
		ids = append(ids, cat.ID)
	}

	ids = s.hooks.preSetCategories(ctx, unionIDs(ids), postID, story)
	if len(ids) == 0 {
		return
	}
	if err := s.categories.SetPostCategories(ctx, postID, ids); err != nil {
		logger.Warn("failed to set post categories", "post_id", postID, "error", err)
	}
}

// unionIDs concatenates the sets, keeping first occurrences in order and
// dropping zero ids.
func unionIDs(sets ...[]int64) []int64 {
	seen := make(map[int64]struct{})
	var out []int64
	for _, set := range sets {
		for _, id := range set {
			if id == 0 {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
