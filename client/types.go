package client

import "time"

// Wire shapes for the catalog API. These mirror the server's JSON exactly so
// importers of this package never need types from the server's internals.

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
	Text string `json:"text"`
}

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

type Comment struct {
	ID        string    `json:"id"`
	ToolSlug  string    `json:"toolSlug"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}

// AddToolRequest is a tool submission. IsFree and Rating are pointers so a
// paid tool and a zero rating survive the server's required check.
type AddToolRequest struct {
	Name           string      `json:"name"`
	Slug           string      `json:"slug,omitempty"`
	Image          string      `json:"image,omitempty"`
	CategorySlug   string      `json:"categorySlug"`
	IsFree         *bool       `json:"isFree"`
	Rating         *float64    `json:"rating"`
	Summary        string      `json:"summary"`
	Description    string      `json:"description"`
	UsageSteps     []UsageStep `json:"usageSteps,omitempty"`
	WebsiteLink    string      `json:"websiteLink"`
	Tags           []string    `json:"tags,omitempty"`
	RelatedToolIDs []string    `json:"relatedToolIds,omitempty"`
}

type AddCategoryRequest struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"description"`
	IconName    string   `json:"iconName"`
	ImageURL    string   `json:"imageURL,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type AddCommentRequest struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
}
