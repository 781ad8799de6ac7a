package domain

import (
	"time"

	"github.com/lib/pq"
)

// Tool is a directory entry. Slug is the stable external key; it never
// changes after creation.
type Tool struct {
	Model
	UpdatedAt      time.Time      `db:"updated_at"`
	Slug           string         `db:"slug"`
	Name           string         `db:"name"`
	Image          string         `db:"image"`
	CategorySlug   string         `db:"category_slug"`
	IsFree         bool           `db:"is_free"`
	Rating         float64        `db:"rating"`
	Summary        string         `db:"summary"`
	Description    string         `db:"description"`
	WebsiteLink    string         `db:"website_link"`
	Tags           pq.StringArray `db:"tags"`
	RelatedToolIDs pq.StringArray `db:"related_tool_ids"`
	UsageSteps     []UsageStep    `db:"-"`
}

// UsageStep is one ordered how-to entry on a tool's detail page.
type UsageStep struct {
	Model
	ToolID   string `db:"tool_id"`
	Position int    `db:"position"`
	Text     string `db:"text"`
}
