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

	"github.com/zopudigital/content-service/internal/cms"
	"github.com/zopudigital/content-service/internal/domain"
	"github.com/zopudigital/content-service/internal/service/mocks"
)

type ContentServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	cms *mocks.MockQueryExecutor

	service *ContentService
	logger  *slog.Logger
}

func (s *ContentServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.cms = mocks.NewMockQueryExecutor(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewContentService(s.cms, s.logger)
}

func (s *ContentServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestContentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContentServiceTestSuite))
}

// paramNow extracts the $now instant the service sent with the query.
func (s *ContentServiceTestSuite) paramNow(params map[string]any) time.Time {
	raw, ok := params["now"].(string)
	s.Require().True(ok, "query must carry a now param")
	now, err := time.Parse(time.RFC3339, raw)
	s.Require().NoError(err)
	return now
}

func (s *ContentServiceTestSuite) TestPostsByStage_RejectsUnknownStage() {
	posts, err := s.service.PostsByStage(context.Background(), "bogus-stage")

	s.ErrorIs(err, domain.ErrNotFound)
	s.Nil(posts)
}

func (s *ContentServiceTestSuite) TestPostsByStage_PublishBoundary() {
	ctx := context.Background()

	s.cms.EXPECT().
		Query(ctx, cms.QueryPostsByStage, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params map[string]any, result any) error {
			s.Equal("diagnostico", params["stage"])
			now := s.paramNow(params)

			out := result.(*[]cms.Post)
			*out = []cms.Post{
				{ID: "at-now", Title: "No limite", Slug: "no-limite", PublishedAt: now, Stage: "diagnostico", Format: "artigo"},
				{ID: "future", Title: "Futuro", Slug: "futuro", PublishedAt: now.Add(time.Second), Stage: "diagnostico", Format: "artigo"},
				{ID: "no-slug", Title: "Sem slug", Slug: "", PublishedAt: now.Add(-time.Hour), Stage: "diagnostico", Format: "artigo"},
			}
			return nil
		})

	posts, err := s.service.PostsByStage(ctx, "diagnostico")

	s.NoError(err)
	s.Require().Len(posts, 1)
	s.Equal("at-now", posts[0].ID)
}

func (s *ContentServiceTestSuite) TestPersonaContent_UnknownPersona() {
	persona, posts, err := s.service.PersonaContent(context.Background(), "estagiario")

	s.ErrorIs(err, domain.ErrNotFound)
	s.Nil(persona)
	s.Nil(posts)
}

func (s *ContentServiceTestSuite) TestPersonaContent() {
	ctx := context.Background()

	s.cms.EXPECT().
		Query(ctx, cms.QueryPostsByPersona, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params map[string]any, result any) error {
			s.Equal("fundador", params["persona"])
			now := s.paramNow(params)

			out := result.(*[]cms.Post)
			*out = []cms.Post{
				{ID: "p1", Title: "Para fundadores", Slug: "para-fundadores", PublishedAt: now.Add(-time.Hour), Stage: "decisao", Format: "guia", Personas: []string{"fundador"}},
			}
			return nil
		})

	persona, posts, err := s.service.PersonaContent(ctx, "fundador")

	s.NoError(err)
	s.Require().NotNil(persona)
	s.Equal(domain.PersonaFundador, persona.ID)
	s.NotEmpty(persona.Pain)
	s.Require().Len(posts, 1)
	s.Equal("para-fundadores", posts[0].Slug)
}

func (s *ContentServiceTestSuite) TestPost_NotFound() {
	ctx := context.Background()

	s.cms.EXPECT().
		Query(ctx, cms.QueryPostBySlug, gomock.Any(), gomock.Any()).
		Return(nil)

	post, err := s.service.Post(ctx, "nao-existe")

	s.ErrorIs(err, domain.ErrNotFound)
	s.Nil(post)
}

func (s *ContentServiceTestSuite) TestPost_QueryErrorPropagates() {
	ctx := context.Background()

	s.cms.EXPECT().
		Query(ctx, cms.QueryPostBySlug, gomock.Any(), gomock.Any()).
		Return(errors.New("cms down"))

	post, err := s.service.Post(ctx, "qualquer")

	s.Error(err)
	s.NotErrorIs(err, domain.ErrNotFound)
	s.Nil(post)
}

func (s *ContentServiceTestSuite) TestRelatedPosts_ExcludesSource() {
	ctx := context.Background()

	source := &domain.Post{
		ID:    "a",
		Title: "Post A",
		Slug:  "post-a",
		Theme: &domain.Theme{ID: "t1", Title: "Vendas", Slug: "vendas"},
		Interests: []domain.Interest{
			{ID: "i1", Title: "Funil", Slug: "funil"},
		},
	}

	s.cms.EXPECT().
		Query(ctx, cms.QueryRelatedPosts, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params map[string]any, result any) error {
			s.Equal("a", params["id"])
			s.Equal("vendas", params["themeSlug"])
			s.Equal([]string{"funil"}, params["interestSlugs"])
			s.Equal(6, params["limit"])
			now := s.paramNow(params)

			out := result.(*[]cms.Post)
			*out = []cms.Post{
				{ID: "b", Title: "Post B", Slug: "post-b", PublishedAt: now.Add(-time.Hour), Stage: "diagnostico", Format: "artigo"},
				{ID: "a", Title: "Post A", Slug: "post-a", PublishedAt: now.Add(-2 * time.Hour), Stage: "diagnostico", Format: "artigo"},
			}
			return nil
		})

	related, err := s.service.RelatedPosts(ctx, source)

	s.NoError(err)
	s.Require().Len(related, 1)
	s.Equal("b", related[0].ID)
}

func (s *ContentServiceTestSuite) TestThemeWithPosts_UnknownTheme() {
	ctx := context.Background()

	s.cms.EXPECT().
		Query(ctx, cms.QueryThemeBySlug, map[string]any{"slug": "nada"}, gomock.Any()).
		Return(nil)

	theme, posts, err := s.service.ThemeWithPosts(ctx, "nada")

	s.ErrorIs(err, domain.ErrNotFound)
	s.Nil(theme)
	s.Nil(posts)
}

func (s *ContentServiceTestSuite) TestThemeWithPosts() {
	ctx := context.Background()

	s.cms.EXPECT().
		Query(ctx, cms.QueryThemeBySlug, map[string]any{"slug": "vendas"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]any, result any) error {
			out := result.(**cms.Theme)
			*out = &cms.Theme{ID: "t1", Title: "Vendas", Slug: "vendas"}
			return nil
		})

	s.cms.EXPECT().
		Query(ctx, cms.QueryPostsByTheme, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params map[string]any, result any) error {
			s.Equal("vendas", params["slug"])
			now := s.paramNow(params)

			out := result.(*[]cms.Post)
			*out = []cms.Post{
				{ID: "p1", Title: "Pipeline", Slug: "pipeline", PublishedAt: now.Add(-time.Minute), Stage: "estruturacao", Format: "playbook"},
			}
			return nil
		})

	theme, posts, err := s.service.ThemeWithPosts(ctx, "vendas")

	s.NoError(err)
	s.Require().NotNil(theme)
	s.Equal("vendas", theme.Slug)
	s.Require().Len(posts, 1)
	s.Equal("pipeline", posts[0].Slug)
}

func (s *ContentServiceTestSuite) TestSeriesWithPosts_ExcludesUnpublishedMembers() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.cms.EXPECT().
		Query(ctx, cms.QuerySeriesBySlug, map[string]any{"slug": "crm-do-zero"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]any, result any) error {
			out := result.(**cms.Series)
			*out = &cms.Series{
				ID:    "s1",
				Title: "CRM do zero",
				Slug:  "crm-do-zero",
				Posts: []cms.Post{
					{ID: "p1", Title: "Parte 1", Slug: "parte-1", PublishedAt: now.Add(-48 * time.Hour), Stage: "diagnostico", Format: "guia"},
					{ID: "p2", Title: "Parte 2 (rascunho)", Slug: "parte-2", PublishedAt: now.Add(24 * time.Hour), Stage: "diagnostico", Format: "guia"},
					{ID: "p3", Title: "Sem slug", Slug: "", PublishedAt: now.Add(-24 * time.Hour), Stage: "diagnostico", Format: "guia"},
				},
			}
			return nil
		})

	series, err := s.service.SeriesWithPosts(ctx, "crm-do-zero")

	s.NoError(err)
	s.Require().NotNil(series)
	s.Require().Len(series.Posts, 1)
	s.Equal("parte-1", series.Posts[0].Slug)
}

func (s *ContentServiceTestSuite) TestPublishedPostRefs() {
	ctx := context.Background()

	s.cms.EXPECT().
		Query(ctx, cms.QueryAllPublishedPosts, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params map[string]any, result any) error {
			now := s.paramNow(params)

			out := result.(*[]cms.PostRef)
			*out = []cms.PostRef{
				{Slug: "mais-novo", PublishedAt: now.Add(-time.Hour)},
				{Slug: "agendado", PublishedAt: now.Add(time.Hour)},
			}
			return nil
		})

	refs, err := s.service.PublishedPostRefs(ctx)

	s.NoError(err)
	s.Require().Len(refs, 1)
	s.Equal("mais-novo", refs[0].Slug)
}
