package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"toolshub/internal/domain"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create relies on the unique indexes over slug and name; either violation
// maps to ErrCategoryExists.
func (r *CategoryRepository) Create(category *domain.Category) error {
	query := `
		INSERT INTO categories (slug, name, description, icon_name, image_url, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(query,
		category.Slug, category.Name, category.Description,
		category.IconName, category.ImageURL, pq.Array([]string(category.Tags)),
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrCategoryExists
		}
		return err
	}
	return nil
}

func (r *CategoryRepository) FindAll() ([]*domain.Category, error) {
	query := `
		SELECT id, created_at, slug, name, description, icon_name, image_url, tags
		FROM categories
		ORDER BY name ASC
	`

	var categories []*domain.Category
	if err := r.db.Select(&categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindBySlug(slug string) (*domain.Category, error) {
	query := `
		SELECT id, created_at, slug, name, description, icon_name, image_url, tags
		FROM categories
		WHERE slug = $1
	`

	category := &domain.Category{}
	err := r.db.Get(category, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) Exists(slug string) (bool, error) {
	exists := false
	err := r.db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1)`, slug)
	return exists, err
}
