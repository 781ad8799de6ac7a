package repository

import (
	"github.com/jmoiron/sqlx"

	"toolshub/internal/domain"
)

type CommentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *domain.Comment) error {
	query := `
		INSERT INTO comments (tool_slug, name, comment)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.db.QueryRow(query,
		comment.ToolSlug, comment.Name, comment.Comment,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *CommentRepository) FindByToolSlug(toolSlug string) ([]*domain.Comment, error) {
	query := `
		SELECT id, created_at, tool_slug, name, comment
		FROM comments
		WHERE tool_slug = $1
		ORDER BY created_at DESC
	`

	var comments []*domain.Comment
	if err := r.db.Select(&comments, query, toolSlug); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) FindAll() ([]*domain.Comment, error) {
	query := `
		SELECT id, created_at, tool_slug, name, comment
		FROM comments
		ORDER BY created_at DESC
	`

	var comments []*domain.Comment
	if err := r.db.Select(&comments, query); err != nil {
		return nil, err
	}
	return comments, nil
}
