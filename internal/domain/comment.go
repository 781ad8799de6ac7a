package domain

// Comment is owned by exactly one tool, referenced by slug. Comments are
// append-only; there is no edit or delete path.
type Comment struct {
	Model
	ToolSlug string `db:"tool_slug"`
	Name     string `db:"name"`
	Comment  string `db:"comment"`
}
