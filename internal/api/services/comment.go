package services

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"

	"toolshub/internal/domain"
	"toolshub/internal/repository"
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	toolRepo    *repository.ToolRepository
}

func NewCommentService(db *sqlx.DB) *CommentService {
	return &CommentService{
		commentRepo: repository.NewCommentRepository(db),
		toolRepo:    repository.NewToolRepository(db),
	}
}

// Add appends a comment to an existing tool. The owning tool's updated_at is
// refreshed, matching the embedded-comment behavior where a comment write is
// a tool mutation.
func (s *CommentService) Add(ctx context.Context, toolSlug, name, text string) (*domain.Comment, error) {
	if _, err := s.toolRepo.FindBySlug(toolSlug); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ToolSlug: toolSlug,
		Name:     name,
		Comment:  text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if err := s.toolRepo.TouchUpdatedAt(toolSlug); err != nil {
		log.Printf("touch tool %q after comment: %v", toolSlug, err)
	}

	return comment, nil
}

// ListForTool returns a tool's comments, newest first. Unknown tool is a
// not-found, not an empty list.
func (s *CommentService) ListForTool(ctx context.Context, toolSlug string) ([]*domain.Comment, error) {
	if _, err := s.toolRepo.FindBySlug(toolSlug); err != nil {
		return nil, err
	}
	return s.commentRepo.FindByToolSlug(toolSlug)
}

func (s *CommentService) ListAll(ctx context.Context) ([]*domain.Comment, error) {
	return s.commentRepo.FindAll()
}
