package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"

	"toolshub/internal/domain"
	rcache "toolshub/internal/redis"
	"toolshub/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

const featuredCacheKey = "all"

type CreateToolInput struct {
	Name           string
	Slug           string
	Image          string
	CategorySlug   string
	IsFree         bool
	Rating         float64
	Summary        string
	Description    string
	UsageSteps     []string
	WebsiteLink    string
	Tags           []string
	RelatedToolIDs []string
}

type ToolService struct {
	toolRepo      *repository.ToolRepository
	categoryRepo  *repository.CategoryRepository
	commentRepo   *repository.CommentRepository
	featuredCache *rcache.JSONCache[[]*domain.Tool]
}

func NewToolService(db *sqlx.DB, rdb *goredis.Client) *ToolService {
	return &ToolService{
		toolRepo:      repository.NewToolRepository(db),
		categoryRepo:  repository.NewCategoryRepository(db),
		commentRepo:   repository.NewCommentRepository(db),
		featuredCache: rcache.NewJSONCache[[]*domain.Tool](rdb, "featured", 5*time.Minute),
	}
}

// Create persists a new tool. The slug defaults to the slugified name and is
// immutable afterwards; tags are lowercased and deduplicated; a missing image
// falls back to a deterministic placeholder derived from the slug.
func (s *ToolService) Create(ctx context.Context, input CreateToolInput) (*domain.Tool, error) {
	slug := input.Slug
	if slug == "" {
		slug = input.Name
	}
	slug = domain.Slugify(slug)
	if slug == "" {
		return nil, ErrInvalidInput
	}

	image := input.Image
	if image == "" {
		image = "https://picsum.photos/seed/" + slug + "/600/400"
	}

	// categorySlug is not a foreign key; an unknown category is accepted but
	// worth a trace in the logs.
	if exists, err := s.categoryRepo.Exists(input.CategorySlug); err == nil && !exists {
		log.Printf("tool %q filed under unknown category %q", slug, input.CategorySlug)
	}

	steps := make([]domain.UsageStep, 0, len(input.UsageSteps))
	for _, text := range input.UsageSteps {
		steps = append(steps, domain.UsageStep{Text: text})
	}

	tool := &domain.Tool{
		Slug:           slug,
		Name:           input.Name,
		Image:          image,
		CategorySlug:   input.CategorySlug,
		IsFree:         input.IsFree,
		Rating:         input.Rating,
		Summary:        input.Summary,
		Description:    input.Description,
		WebsiteLink:    input.WebsiteLink,
		Tags:           domain.NormalizeTags(input.Tags),
		RelatedToolIDs: domain.NormalizeTags(input.RelatedToolIDs),
		UsageSteps:     steps,
	}

	if err := s.toolRepo.Create(tool); err != nil {
		return nil, err
	}

	if err := s.featuredCache.Delete(ctx, featuredCacheKey); err != nil {
		log.Printf("invalidate featured cache: %v", err)
	}

	return tool, nil
}

func (s *ToolService) List(ctx context.Context) ([]*domain.Tool, error) {
	return s.toolRepo.FindAll()
}

// GetBySlug returns the tool together with its comments, newest first.
func (s *ToolService) GetBySlug(ctx context.Context, slug string) (*domain.Tool, []*domain.Comment, error) {
	tool, err := s.toolRepo.FindBySlug(slug)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.commentRepo.FindByToolSlug(slug)
	if err != nil {
		return nil, nil, err
	}
	return tool, comments, nil
}

// Featured serves the ranked top of the catalog from cache when warm.
func (s *ToolService) Featured(ctx context.Context) ([]*domain.Tool, error) {
	if cached, err := s.featuredCache.Get(ctx, featuredCacheKey); err == nil && cached != nil {
		return *cached, nil
	}

	return s.RefreshFeatured(ctx)
}

// RefreshFeatured recomputes the featured set and rewrites the cache entry.
func (s *ToolService) RefreshFeatured(ctx context.Context) ([]*domain.Tool, error) {
	tools, err := s.toolRepo.FindAll()
	if err != nil {
		return nil, err
	}

	featured := domain.FeaturedTools(tools)
	if err := s.featuredCache.Set(ctx, featuredCacheKey, &featured); err != nil {
		log.Printf("cache featured tools: %v", err)
	}
	return featured, nil
}

func (s *ToolService) Related(ctx context.Context, slug string) ([]*domain.Tool, error) {
	tool, err := s.toolRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}

	all, err := s.toolRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return domain.RelatedTools(tool, all), nil
}

// ListByCategory returns the category's tools sorted by rating descending.
// The category itself must exist.
func (s *ToolService) ListByCategory(ctx context.Context, categorySlug string) ([]*domain.Tool, error) {
	if _, err := s.categoryRepo.FindBySlug(categorySlug); err != nil {
		return nil, err
	}
	return s.toolRepo.FindByCategorySlug(categorySlug)
}
