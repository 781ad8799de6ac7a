package services

import (
	"context"

	"github.com/jmoiron/sqlx"

	"toolshub/internal/domain"
	"toolshub/internal/repository"
)

type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
	IconName    string
	ImageURL    string
	Tags        []string
}

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(db *sqlx.DB) *CategoryService {
	return &CategoryService{
		categoryRepo: repository.NewCategoryRepository(db),
	}
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	slug := input.Slug
	if slug == "" {
		slug = input.Name
	}
	slug = domain.Slugify(slug)
	if slug == "" {
		return nil, ErrInvalidInput
	}

	// the validator enforces this at the API edge; the service guards it too
	// so other entry points (seed, future imports) cannot skip it
	if !domain.ValidIconName(input.IconName) {
		return nil, ErrInvalidInput
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = "https://picsum.photos/seed/" + slug + "-cat/600/400"
	}

	category := &domain.Category{
		Slug:        slug,
		Name:        input.Name,
		Description: input.Description,
		IconName:    input.IconName,
		ImageURL:    imageURL,
		Tags:        domain.NormalizeTags(input.Tags),
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns all categories sorted alphabetically by name.
func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categoryRepo.FindBySlug(slug)
}
