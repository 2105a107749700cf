package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"nprstory/internal/config"
	"nprstory/internal/domain"
	"nprstory/internal/layout"
	"nprstory/internal/service/mocks"
)

type IngestServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	posts       *mocks.MockPostStore
	categories  *mocks.MockCategoryStore
	media       *mocks.MockMediaStore
	authors     *mocks.MockAuthorDirectory
	coauthors   *mocks.MockCoauthorStore
	txManager   *mocks.MockTransactionManager
	renderer    *mocks.MockBodyRenderer
	transcripts *mocks.MockTranscriptFetcher
	http        *mocks.MockHTTPGetter
	publisher   *mocks.MockPublisher

	hooks   Hooks
	opts    IngestOptions
	service *IngestService
	logger  *slog.Logger
	now     time.Time
}

func (s *IngestServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.posts = mocks.NewMockPostStore(s.ctrl)
	s.categories = mocks.NewMockCategoryStore(s.ctrl)
	s.media = mocks.NewMockMediaStore(s.ctrl)
	s.authors = mocks.NewMockAuthorDirectory(s.ctrl)
	s.coauthors = mocks.NewMockCoauthorStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.renderer = mocks.NewMockBodyRenderer(s.ctrl)
	s.transcripts = mocks.NewMockTranscriptFetcher(s.ctrl)
	s.http = mocks.NewMockHTTPGetter(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.hooks = Hooks{}
	s.opts = IngestOptions{Ingest: config.IngestConfig{PostType: "post"}}
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.now = time.Date(2024, 2, 21, 12, 0, 0, 0, time.UTC)
	s.build()
}

func (s *IngestServiceTestSuite) build() {
	s.service = NewIngestService(
		Stores{
			Posts:      s.posts,
			Categories: s.categories,
			Media:      s.media,
			Authors:    s.authors,
			Coauthors:  s.coauthors,
			Tx:         s.txManager,
		},
		s.renderer,
		s.transcripts,
		s.http,
		s.publisher,
		s.hooks,
		s.opts,
		s.logger,
	)
	s.service.now = func() time.Time { return s.now }
}

func (s *IngestServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIngestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestServiceTestSuite))
}

func (s *IngestServiceTestSuite) expectRender(body string) {
	s.renderer.EXPECT().Reconstruct(gomock.Any(), gomock.Any(), false).Return(layout.Result{Body: body})
	s.transcripts.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("")
}

func (s *IngestServiceTestSuite) expectTx() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *IngestServiceTestSuite) TestIngest_NewStoryPublished() {
	ctx := context.Background()
	story := sampleStory("1001", later, "Storm")

	s.posts.EXPECT().FindByExternalID(ctx, "1001").Return(nil, nil)
	s.expectRender("<p>Storm body.</p>")
	s.posts.EXPECT().Create(ctx, "1001", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, f domain.PostFields) (int64, error) {
			s.Equal(domain.StatusDraft, f.Status)
			s.Equal("Storm", f.Title)
			s.Equal("post", f.Type)
			return int64(100), nil
		},
	)
	s.authors.EXPECT().FindByNickname(ctx, "Ari Shapiro").Return([]int64{7}, nil)
	s.expectTx()
	s.posts.EXPECT().SetMeta(ctx, int64(100), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, metas map[string]string) error {
			s.Equal("1001", metas[domain.MetaStoryID])
			s.Equal("<p>Storm body.</p>", metas[domain.MetaStoryContent])
			s.Equal("Ari Shapiro", metas[domain.MetaByline])
			return nil
		},
	)
	s.posts.EXPECT().Update(ctx, int64(100), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, f domain.PostFields) error {
			s.Equal(int64(7), f.AuthorID)
			s.Equal(domain.StatusPublish, f.Status)
			return nil
		},
	)
	s.posts.EXPECT().SetStatus(ctx, int64(100), domain.StatusPublish).Return(nil)
	s.coauthors.EXPECT().Search(ctx, "Ari Shapiro").Return(int64(55), nil)
	s.coauthors.EXPECT().SetPostCoauthors(ctx, int64(100), []int64{55}).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *domain.PostMessage) error {
			s.Equal(domain.ActionCreated, msg.Action)
			s.Equal(int64(100), msg.PostID)
			s.Equal("1001", msg.StoryID)
			s.Equal("publish", msg.Status)
			s.Equal(s.now, msg.SyncedAt)
			return nil
		},
	)
	s.categories.EXPECT().FindByName(ctx, "National").Return(&domain.Category{ID: 9, Name: "National"}, nil)
	s.categories.EXPECT().SetPostCategories(ctx, int64(100), []int64{9}).Return(nil)

	id, stats := s.service.Ingest(ctx, []domain.Story{story}, true, nil)

	s.Require().NotNil(id)
	s.Equal(int64(100), *id)
	s.Equal(1, stats.Fetched)
	s.Equal(1, stats.New)
	s.Equal(1, stats.Published)
	s.Equal(0, stats.Errors)
}

func (s *IngestServiceTestSuite) TestIngest_ExistingFreshKeepsStatus() {
	ctx := context.Background()
	story := sampleStory("1001", latest, "Storm 2")
	existing := &domain.Post{ID: 100, ExternalID: "1001", Status: domain.StatusDraft}

	s.posts.EXPECT().FindByExternalID(ctx, "1001").Return(existing, nil)
	s.posts.EXPECT().GetMeta(ctx, int64(100)).Return(map[string]string{
		domain.MetaLastModifiedDate: later,
		domain.MetaPubDate:          later,
	}, nil)
	s.categories.EXPECT().PostCategories(ctx, int64(100)).Return([]int64{5}, nil)
	s.expectRender("<p>Storm 2 body.</p>")
	s.posts.EXPECT().Update(ctx, int64(100), gomock.Any()).Return(nil).Times(2)
	s.authors.EXPECT().FindByNickname(ctx, "Ari Shapiro").Return(nil, nil)
	s.expectTx()
	s.posts.EXPECT().SetMeta(ctx, int64(100), gomock.Any()).Return(nil)
	s.posts.EXPECT().SetStatus(ctx, int64(100), domain.StatusDraft).Return(nil)
	s.coauthors.EXPECT().Search(ctx, "Ari Shapiro").Return(int64(0), nil)
	s.coauthors.EXPECT().SetPostCoauthors(ctx, int64(100), []int64{}).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *domain.PostMessage) error {
			s.Equal(domain.ActionUpdated, msg.Action)
			s.Equal("draft", msg.Status)
			return nil
		},
	)
	s.categories.EXPECT().FindByName(ctx, "National").Return(nil, nil)
	s.categories.EXPECT().SetPostCategories(ctx, int64(100), []int64{5}).Return(nil)

	id, stats := s.service.Ingest(ctx, []domain.Story{story}, true, nil)

	s.Require().NotNil(id)
	s.Equal(int64(100), *id)
	s.Equal(1, stats.Updated)
}

func (s *IngestServiceTestSuite) TestIngest_UnchangedStillReconcilesCategories() {
	ctx := context.Background()
	story := sampleStory("1001", later, "Storm")
	existing := &domain.Post{ID: 100, ExternalID: "1001", Status: domain.StatusPublish}

	s.posts.EXPECT().FindByExternalID(ctx, "1001").Return(existing, nil)
	s.posts.EXPECT().GetMeta(ctx, int64(100)).Return(map[string]string{
		domain.MetaLastModifiedDate: later,
		domain.MetaPubDate:          later,
	}, nil)
	s.categories.EXPECT().PostCategories(ctx, int64(100)).Return([]int64{5, 9}, nil)
	s.expectRender("<p>Storm body.</p>")
	s.categories.EXPECT().FindByName(ctx, "National").Return(&domain.Category{ID: 9}, nil)
	s.categories.EXPECT().SetPostCategories(ctx, int64(100), []int64{5, 9}).Return(nil)

	id, stats := s.service.Ingest(ctx, []domain.Story{story}, true, nil)

	s.Require().NotNil(id)
	s.Equal(int64(100), *id)
	s.Equal(1, stats.Skipped)
	s.Equal(0, stats.Published)
}

func (s *IngestServiceTestSuite) TestIngest_CreateFailure() {
	ctx := context.Background()

	s.posts.EXPECT().FindByExternalID(ctx, "1001").Return(nil, nil)
	s.expectRender("<p>x</p>")
	s.posts.EXPECT().Create(ctx, "1001", gomock.Any()).Return(int64(0), errors.New("db down"))

	id, stats := s.service.Ingest(ctx, []domain.Story{sampleStory("1001", later, "Storm")}, false, nil)

	s.Require().NotNil(id)
	s.Zero(*id)
	s.Equal(1, stats.Errors)
	s.Equal(0, stats.New)
}

func (s *IngestServiceTestSuite) TestIngest_TransactionFailureKeepsPost() {
	ctx := context.Background()
	s.service.publisher = nil
	s.service.coauthors = nil

	s.posts.EXPECT().FindByExternalID(ctx, "1001").Return(nil, nil)
	s.expectRender("<p>x</p>")
	s.posts.EXPECT().Create(ctx, "1001", gomock.Any()).Return(int64(100), nil)
	s.authors.EXPECT().FindByNickname(ctx, "Ari Shapiro").Return(nil, nil)
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(errors.New("serialization failure"))
	s.categories.EXPECT().FindByName(ctx, "National").Return(nil, nil)

	id, stats := s.service.Ingest(ctx, []domain.Story{sampleStory("1001", later, "Storm")}, false, nil)

	s.Require().NotNil(id)
	s.Equal(int64(100), *id)
	s.Equal(1, stats.New)
	s.Equal(1, stats.Errors)
}

func (s *IngestServiceTestSuite) TestIngest_HooksApplied() {
	ctx := context.Background()
	s.hooks = Hooks{
		PreInsert: func(_ context.Context, f domain.PostFields, _ int64, _ *domain.Story, created bool) domain.PostFields {
			s.True(created)
			f.Title = "[NPR] " + f.Title
			return f
		},
		PreUpdateMetas: func(_ context.Context, metas map[string]string, _ int64, _ *domain.Story, _ bool) map[string]string {
			metas["station_flag"] = "1"
			return metas
		},
		ResolveCategoryTerm: func(_ context.Context, term string, _ int64, _ *domain.Story) string {
			return "NPR " + term
		},
		PreSetCategories: func(_ context.Context, ids []int64, _ int64, _ *domain.Story) []int64 {
			return append(ids, 77)
		},
	}
	s.build()
	s.service.coauthors = nil

	s.posts.EXPECT().FindByExternalID(ctx, "1001").Return(nil, nil)
	s.expectRender("<p>x</p>")
	s.posts.EXPECT().Create(ctx, "1001", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, f domain.PostFields) (int64, error) {
			s.Equal("[NPR] Storm", f.Title)
			return int64(100), nil
		},
	)
	s.authors.EXPECT().FindByNickname(ctx, "Ari Shapiro").Return(nil, nil)
	s.expectTx()
	s.posts.EXPECT().SetMeta(ctx, int64(100), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, metas map[string]string) error {
			s.Equal("1", metas["station_flag"])
			return nil
		},
	)
	s.posts.EXPECT().Update(ctx, int64(100), gomock.Any()).Return(nil)
	s.posts.EXPECT().SetStatus(ctx, int64(100), domain.StatusDraft).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	s.categories.EXPECT().FindByName(ctx, "NPR National").Return(&domain.Category{ID: 9}, nil)
	s.categories.EXPECT().SetPostCategories(ctx, int64(100), []int64{9, 77}).Return(nil)

	_, stats := s.service.Ingest(ctx, []domain.Story{sampleStory("1001", later, "Storm")}, false, nil)

	s.Equal(1, stats.New)
}

func (s *IngestServiceTestSuite) TestIngest_PublishFailureCounted() {
	ctx := context.Background()
	s.service.coauthors = nil

	s.posts.EXPECT().FindByExternalID(ctx, "1001").Return(nil, nil)
	s.expectRender("<p>x</p>")
	s.posts.EXPECT().Create(ctx, "1001", gomock.Any()).Return(int64(100), nil)
	s.authors.EXPECT().FindByNickname(ctx, "Ari Shapiro").Return(nil, nil)
	s.expectTx()
	s.posts.EXPECT().SetMeta(ctx, int64(100), gomock.Any()).Return(nil)
	s.posts.EXPECT().Update(ctx, int64(100), gomock.Any()).Return(nil)
	s.posts.EXPECT().SetStatus(ctx, int64(100), domain.StatusDraft).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("channel closed"))
	s.categories.EXPECT().FindByName(ctx, "National").Return(nil, nil)

	_, stats := s.service.Ingest(ctx, []domain.Story{sampleStory("1001", later, "Storm")}, false, nil)

	s.Equal(1, stats.New)
	s.Equal(1, stats.Errors)
	s.Equal(0, stats.Published)
}
