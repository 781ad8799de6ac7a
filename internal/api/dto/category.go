package dto

import (
	"time"

	"toolshub/internal/domain"
)

type Category struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IconName    string    `json:"iconName"`
	ImageURL    string    `json:"imageURL"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AddCategoryRequest struct {
	Name        string   `json:"name" validate:"required,notblank"`
	Slug        string   `json:"slug" validate:"omitempty,lowercase"`
	Description string   `json:"description" validate:"required,notblank,max=200"`
	IconName    string   `json:"iconName" validate:"required,iconname"`
	ImageURL    string   `json:"imageURL" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
}

func CategoryFromDomain(category *domain.Category) *Category {
	if category == nil {
		return nil
	}
	return &Category{
		ID:          category.ID.String(),
		Slug:        category.Slug,
		Name:        category.Name,
		Description: category.Description,
		IconName:    category.IconName,
		ImageURL:    category.ImageURL,
		Tags:        stringSlice(category.Tags),
		CreatedAt:   category.CreatedAt,
	}
}

func CategoriesFromDomain(categories []*domain.Category) []*Category {
	result := make([]*Category, len(categories))
	for i, category := range categories {
		result[i] = CategoryFromDomain(category)
	}
	return result
}
