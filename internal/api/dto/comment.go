package dto

import (
	"time"

	"toolshub/internal/domain"
)

type Comment struct {
	ID        string    `json:"id"`
	ToolSlug  string    `json:"toolSlug"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}

type AddCommentRequest struct {
	Name    string `json:"name" validate:"required,notblank"`
	Comment string `json:"comment" validate:"required,notblank"`
}

func CommentFromDomain(comment *domain.Comment) *Comment {
	if comment == nil {
		return nil
	}
	return &Comment{
		ID:        comment.ID.String(),
		ToolSlug:  comment.ToolSlug,
		Name:      comment.Name,
		Comment:   comment.Comment,
		Timestamp: comment.CreatedAt,
	}
}

func CommentsFromDomain(comments []*domain.Comment) []*Comment {
	result := make([]*Comment, len(comments))
	for i, comment := range comments {
		result[i] = CommentFromDomain(comment)
	}
	return result
}
