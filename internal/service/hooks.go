package service

import (
	"context"
	"net/url"

	"nprstory/internal/domain"
)

// Hooks are the points where a site may alter in-flight data. Each hook
// receives the value about to be used and returns the value to use instead.
// Unset hooks leave values unchanged.
type Hooks struct {
	// PreInsert runs before the post row is first written for a story.
	PreInsert func(ctx context.Context, fields domain.PostFields, postID int64, story *domain.Story, created bool) domain.PostFields
	// PreUpdateMetas runs before the story metadata is stored.
	PreUpdateMetas func(ctx context.Context, metas map[string]string, postID int64, story *domain.Story, created bool) map[string]string
	// PreUpdate runs before the final post update that settles status and author.
	PreUpdate func(ctx context.Context, fields domain.PostFields, postID int64, story *domain.Story) domain.PostFields
	// ResolveCategoryTerm maps a remote category title to a local category name.
	ResolveCategoryTerm func(ctx context.Context, term string, postID int64, story *domain.Story) string
	// PreSetCategories runs before categories are assigned.
	PreSetCategories func(ctx context.Context, categoryIDs []int64, postID int64, story *domain.Story) []int64
	// PrePush alters the query parameters of a push.
	PrePush func(ctx context.Context, params url.Values, postID int64) url.Values
	// PreDelete alters the query parameters of a remote delete.
	PreDelete func(ctx context.Context, params url.Values) url.Values
}

func (h Hooks) preInsert(ctx context.Context, fields domain.PostFields, postID int64, story *domain.Story, created bool) domain.PostFields {
	if h.PreInsert == nil {
		return fields
	}
	return h.PreInsert(ctx, fields, postID, story, created)
}

func (h Hooks) preUpdateMetas(ctx context.Context, metas map[string]string, postID int64, story *domain.Story, created bool) map[string]string {
	if h.PreUpdateMetas == nil {
		return metas
	}
	return h.PreUpdateMetas(ctx, metas, postID, story, created)
}

func (h Hooks) preUpdate(ctx context.Context, fields domain.PostFields, postID int64, story *domain.Story) domain.PostFields {
	if h.PreUpdate == nil {
		return fields
	}
	return h.PreUpdate(ctx, fields, postID, story)
}

func (h Hooks) resolveCategoryTerm(ctx context.Context, term string, postID int64, story *domain.Story) string {
	if h.ResolveCategoryTerm == nil {
		return term
	}
	return h.ResolveCategoryTerm(ctx, term, postID, story)
}

func (h Hooks) preSetCategories(ctx context.Context, ids []int64, postID int64, story *domain.Story) []int64 {
	if h.PreSetCategories == nil {
		return ids
	}
	return h.PreSetCategories(ctx, ids, postID, story)
}

func (h Hooks) prePush(ctx context.Context, params url.Values, postID int64) url.Values {
	if h.PrePush == nil {
		return params
	}
	return h.PrePush(ctx, params, postID)
}

func (h Hooks) preDelete(ctx context.Context, params url.Values) url.Values {
	if h.PreDelete == nil {
		return params
	}
	return h.PreDelete(ctx, params)
}
