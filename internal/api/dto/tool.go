package dto

import (
	"time"

	"toolshub/internal/domain"
)

type Tool struct {
	ID             string      `json:"id"`
	Slug           string      `json:"slug"`
	Name           string      `json:"name"`
	Image          string      `json:"image"`
	CategorySlug   string      `json:"categorySlug"`
	IsFree         bool        `json:"isFree"`
	Rating         float64     `json:"rating"`
	Summary        string      `json:"summary"`
	Description    string      `json:"description"`
	UsageSteps     []UsageStep `json:"usageSteps"`
	WebsiteLink    string      `json:"websiteLink"`
	Tags           []string    `json:"tags"`
	Comments       []*Comment  `json:"comments,omitempty"`
	RelatedToolIDs []string    `json:"relatedToolIds"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type UsageStep struct {
	Text string `json:"text" validate:"required,notblank"`
}

// AddToolRequest is the admin submission shape. Rating and IsFree are
// pointers so a zero rating and a paid tool both satisfy the required rule.
type AddToolRequest struct {
	Name           string      `json:"name" validate:"required,notblank"`
	Slug           string      `json:"slug" validate:"omitempty,lowercase"`
	Image          string      `json:"image" validate:"omitempty,url"`
	CategorySlug   string      `json:"categorySlug" validate:"required,notblank"`
	IsFree         *bool       `json:"isFree" validate:"required"`
	Rating         *float64    `json:"rating" validate:"required,gte=0,lte=5"`
	Summary        string      `json:"summary" validate:"required,notblank,max=160"`
	Description    string      `json:"description" validate:"required,notblank"`
	UsageSteps     []UsageStep `json:"usageSteps" validate:"omitempty,dive"`
	WebsiteLink    string      `json:"websiteLink" validate:"required,httpsurl"`
	Tags           []string    `json:"tags"`
	RelatedToolIDs []string    `json:"relatedToolIds"`
}

func ToolFromDomain(tool *domain.Tool, comments []*domain.Comment) *Tool {
	if tool == nil {
		return nil
	}

	steps := make([]UsageStep, len(tool.UsageSteps))
	for i, s := range tool.UsageSteps {
		steps[i] = UsageStep{Text: s.Text}
	}

	return &Tool{
		ID:             tool.ID.String(),
		Slug:           tool.Slug,
		Name:           tool.Name,
		Image:          tool.Image,
		CategorySlug:   tool.CategorySlug,
		IsFree:         tool.IsFree,
		Rating:         tool.Rating,
		Summary:        tool.Summary,
		Description:    tool.Description,
		UsageSteps:     steps,
		WebsiteLink:    tool.WebsiteLink,
		Tags:           stringSlice(tool.Tags),
		Comments:       CommentsFromDomain(comments),
		RelatedToolIDs: stringSlice(tool.RelatedToolIDs),
		CreatedAt:      tool.CreatedAt,
		UpdatedAt:      tool.UpdatedAt,
	}
}

func ToolsFromDomain(tools []*domain.Tool) []*Tool {
	result := make([]*Tool, len(tools))
	for i, tool := range tools {
		result[i] = ToolFromDomain(tool, nil)
	}
	return result
}

func stringSlice(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
