package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zopudigital/content-service/internal/cms"
	"github.com/zopudigital/content-service/internal/domain"
)

// relatedPostsLimit caps related-post candidates before any further slicing
// by the caller.
const relatedPostsLimit = 6

// ContentService resolves taxonomy keys into published posts and posts into
// their related entities. Every listing applies the same eligibility rule: a
// defined slug and publishedAt at or before a single per-call instant, both
// in the query and again on the decoded result, so an entry cannot flip
// eligibility mid-request.
type ContentService struct {
	cms    QueryExecutor
	logger *slog.Logger
}

func NewContentService(executor QueryExecutor, logger *slog.Logger) *ContentService {
	return &ContentService{
		cms:    executor,
		logger: logger.With("component", "content"),
	}
}

// Post resolves a single published post by slug.
func (s *ContentService) Post(ctx context.Context, slug string) (*domain.Post, error) {
	now := time.Now().UTC()

	var post *cms.Post
	err := s.cms.Query(ctx, cms.QueryPostBySlug, map[string]any{
		"slug": slug,
		"now":  now.Format(time.RFC3339),
	}, &post)
	if err != nil {
		return nil, fmt.Errorf("query post %q: %w", slug, err)
	}
	if post == nil {
		return nil, domain.ErrNotFound
	}

	d := post.Domain()
	if !d.Published(now) {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

// RelatedPosts lists up to six published posts sharing the source post's
// primary theme or at least one interest, newest first, excluding the source
// itself.
func (s *ContentService) RelatedPosts(ctx context.Context, post *domain.Post) ([]domain.Post, error) {
	now := time.Now().UTC()

	themeSlug := ""
	if post.Theme != nil {
		themeSlug = post.Theme.Slug
	}
	interestSlugs := make([]string, 0, len(post.Interests))
	for _, i := range post.Interests {
		interestSlugs = append(interestSlugs, i.Slug)
	}

	var results []cms.Post
	err := s.cms.Query(ctx, cms.QueryRelatedPosts, map[string]any{
		"id":            post.ID,
		"themeSlug":     themeSlug,
		"interestSlugs": interestSlugs,
		"limit":         relatedPostsLimit,
		"now":           now.Format(time.RFC3339),
	}, &results)
	if err != nil {
		return nil, fmt.Errorf("query related posts for %q: %w", post.ID, err)
	}

	related := s.publishedPosts(results, now)
	out := related[:0]
	for _, p := range related {
		if p.ID == post.ID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// PostsByStage lists published posts in a journey stage. A value outside the
// closed stage enum is a not-found outcome, not an empty page.
func (s *ContentService) PostsByStage(ctx context.Context, stage string) ([]domain.Post, error) {
	if !domain.IsValidStage(stage) {
		return nil, domain.ErrNotFound
	}
	now := time.Now().UTC()

	var results []cms.Post
	err := s.cms.Query(ctx, cms.QueryPostsByStage, map[string]any{
		"stage": stage,
		"now":   now.Format(time.RFC3339),
	}, &results)
	if err != nil {
		return nil, fmt.Errorf("query posts by stage %q: %w", stage, err)
	}

	return s.publishedPosts(results, now), nil
}

// PersonaContent resolves a persona id into the persona record plus the
// published posts tagged with it. Unknown ids are not-found; the persona
// table is the closed source of truth.
func (s *ContentService) PersonaContent(ctx context.Context, id string) (*domain.Persona, []domain.Post, error) {
	persona, ok := domain.PersonaByID(id)
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	now := time.Now().UTC()

	var results []cms.Post
	err := s.cms.Query(ctx, cms.QueryPostsByPersona, map[string]any{
		"persona": id,
		"now":     now.Format(time.RFC3339),
	}, &results)
	if err != nil {
		return nil, nil, fmt.Errorf("query posts by persona %q: %w", id, err)
	}

	return &persona, s.publishedPosts(results, now), nil
}

// ThemeWithPosts resolves a theme slug into the theme and its published
// posts, newest first.
func (s *ContentService) ThemeWithPosts(ctx context.Context, slug string) (*domain.Theme, []domain.Post, error) {
	var theme *cms.Theme
	if err := s.cms.Query(ctx, cms.QueryThemeBySlug, map[string]any{"slug": slug}, &theme); err != nil {
		return nil, nil, fmt.Errorf("query theme %q: %w", slug, err)
	}
	if theme == nil {
		return nil, nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	var results []cms.Post
	err := s.cms.Query(ctx, cms.QueryPostsByTheme, map[string]any{
		"slug": slug,
		"now":  now.Format(time.RFC3339),
	}, &results)
	if err != nil {
		return nil, nil, fmt.Errorf("query posts by theme %q: %w", slug, err)
	}

	d := theme.Domain()
	return &d, s.publishedPosts(results, now), nil
}

// InterestWithPosts resolves an interest slug into the interest and its
// published posts.
func (s *ContentService) InterestWithPosts(ctx context.Context, slug string) (*domain.Interest, []domain.Post, error) {
	var interest *cms.Interest
	if err := s.cms.Query(ctx, cms.QueryInterestBySlug, map[string]any{"slug": slug}, &interest); err != nil {
		return nil, nil, fmt.Errorf("query interest %q: %w", slug, err)
	}
	if interest == nil {
		return nil, nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	var results []cms.Post
	err := s.cms.Query(ctx, cms.QueryPostsByInterest, map[string]any{
		"slug": slug,
		"now":  now.Format(time.RFC3339),
	}, &results)
	if err != nil {
		return nil, nil, fmt.Errorf("query posts by interest %q: %w", slug, err)
	}

	d := interest.Domain()
	return &d, s.publishedPosts(results, now), nil
}

// AuthorWithPosts resolves an author slug into the author and their published
// posts.
func (s *ContentService) AuthorWithPosts(ctx context.Context, slug string) (*domain.Author, []domain.Post, error) {
	var author *cms.Author
	if err := s.cms.Query(ctx, cms.QueryAuthorBySlug, map[string]any{"slug": slug}, &author); err != nil {
		return nil, nil, fmt.Errorf("query author %q: %w", slug, err)
	}
	if author == nil {
		return nil, nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	var results []cms.Post
	err := s.cms.Query(ctx, cms.QueryPostsByAuthor, map[string]any{
		"slug": slug,
		"now":  now.Format(time.RFC3339),
	}, &results)
	if err != nil {
		return nil, nil, fmt.Errorf("query posts by author %q: %w", slug, err)
	}

	d := author.Domain()
	return &d, s.publishedPosts(results, now), nil
}

// SeriesWithPosts resolves a series slug. Members that are not resolvable as
// published are silently excluded from the view.
func (s *ContentService) SeriesWithPosts(ctx context.Context, slug string) (*domain.Series, error) {
	var series *cms.Series
	if err := s.cms.Query(ctx, cms.QuerySeriesBySlug, map[string]any{"slug": slug}, &series); err != nil {
		return nil, fmt.Errorf("query series %q: %w", slug, err)
	}
	if series == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	d := series.Domain()
	members := d.Posts[:0]
	for _, p := range d.Posts {
		if p.Published(now) {
			members = append(members, p)
		}
	}
	d.Posts = members
	return &d, nil
}

// Themes lists every theme, manual rank first, then title.
func (s *ContentService) Themes(ctx context.Context) ([]domain.Theme, error) {
	var results []cms.Theme
	if err := s.cms.Query(ctx, cms.QueryAllThemes, nil, &results); err != nil {
		return nil, fmt.Errorf("query themes: %w", err)
	}

	themes := make([]domain.Theme, 0, len(results))
	for _, t := range results {
		themes = append(themes, t.Domain())
	}
	return themes, nil
}

// Interests lists every interest alphabetically.
func (s *ContentService) Interests(ctx context.Context) ([]domain.Interest, error) {
	var results []cms.Interest
	if err := s.cms.Query(ctx, cms.QueryAllInterests, nil, &results); err != nil {
		return nil, fmt.Errorf("query interests: %w", err)
	}

	interests := make([]domain.Interest, 0, len(results))
	for _, i := range results {
		interests = append(interests, i.Domain())
	}
	return interests, nil
}

// PublishedPostRefs lists slug and publication date of every published post,
// newest first. Feeds the sitemap.
func (s *ContentService) PublishedPostRefs(ctx context.Context) ([]domain.PostRef, error) {
	now := time.Now().UTC()

	var results []cms.PostRef
	err := s.cms.Query(ctx, cms.QueryAllPublishedPosts, map[string]any{
		"now": now.Format(time.RFC3339),
	}, &results)
	if err != nil {
		return nil, fmt.Errorf("query published posts: %w", err)
	}

	refs := make([]domain.PostRef, 0, len(results))
	for _, r := range results {
		if r.Slug == "" || r.PublishedAt.After(now) {
			continue
		}
		refs = append(refs, domain.PostRef{Slug: r.Slug, PublishedAt: r.PublishedAt})
	}
	return refs, nil
}

// publishedPosts maps wire posts to domain and re-applies the eligibility
// rule against the instant the query was issued with.
func (s *ContentService) publishedPosts(results []cms.Post, now time.Time) []domain.Post {
	posts := make([]domain.Post, 0, len(results))
	for _, r := range results {
		d := r.Domain()
		if !d.Published(now) {
			s.logger.Warn("cms returned ineligible post", "id", d.ID, "slug", d.Slug)
			continue
		}
		posts = append(posts, d)
	}
	return posts
}
