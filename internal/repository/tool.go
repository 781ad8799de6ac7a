package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"toolshub/internal/domain"
)

var (
	ErrToolNotFound = errors.New("tool not found")
	ErrToolExists   = errors.New("tool already exists")
)

type ToolRepository struct {
	db *sqlx.DB
}

func NewToolRepository(db *sqlx.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

const toolColumns = `
	tools.id, tools.created_at, tools.updated_at, tools.slug, tools.name,
	tools.image, tools.category_slug, tools.is_free, tools.rating,
	tools.summary, tools.description, tools.website_link, tools.tags,
	tools.related_tool_ids
`

// Create inserts the tool and its usage steps in one transaction. The slug
// unique index is the sole duplicate guard; a violation surfaces as
// ErrToolExists.
func (r *ToolRepository) Create(tool *domain.Tool) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO tools (
			slug, name, image, category_slug, is_free, rating,
			summary, description, website_link, tags, related_tool_ids
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(query,
		tool.Slug, tool.Name, tool.Image, tool.CategorySlug, tool.IsFree, tool.Rating,
		tool.Summary, tool.Description, tool.WebsiteLink,
		pq.Array([]string(tool.Tags)), pq.Array([]string(tool.RelatedToolIDs)),
	).Scan(&tool.ID, &tool.CreatedAt, &tool.UpdatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrToolExists
		}
		return err
	}

	for i := range tool.UsageSteps {
		step := &tool.UsageSteps[i]
		step.Position = i
		err = tx.QueryRow(
			`INSERT INTO tool_usage_steps (tool_id, position, text) VALUES ($1, $2, $3)
			 RETURNING id, created_at`,
			tool.ID, step.Position, step.Text,
		).Scan(&step.ID, &step.CreatedAt)
		if err != nil {
			return err
		}
		step.ToolID = tool.ID.String()
	}

	return tx.Commit()
}

func (r *ToolRepository) FindAll() ([]*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools ORDER BY created_at DESC`

	var tools []*domain.Tool
	if err := r.db.Select(&tools, query); err != nil {
		return nil, err
	}
	if err := r.attachUsageSteps(tools); err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *ToolRepository) FindBySlug(slug string) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE slug = $1`

	tool := &domain.Tool{}
	err := r.db.Get(tool, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}
	if err := r.attachUsageSteps([]*domain.Tool{tool}); err != nil {
		return nil, err
	}
	return tool, nil
}

func (r *ToolRepository) FindByCategorySlug(categorySlug string) ([]*domain.Tool, error) {
	query := `SELECT ` + toolColumns + `
		FROM tools
		WHERE category_slug = $1
		ORDER BY rating DESC, created_at DESC`

	var tools []*domain.Tool
	if err := r.db.Select(&tools, query, categorySlug); err != nil {
		return nil, err
	}
	if err := r.attachUsageSteps(tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// TouchUpdatedAt refreshes the mutation timestamp. Called when anything owned
// by the tool changes, e.g. a comment is appended.
func (r *ToolRepository) TouchUpdatedAt(slug string) error {
	_, err := r.db.Exec(`UPDATE tools SET updated_at = CURRENT_TIMESTAMP WHERE slug = $1`, slug)
	return err
}

func (r *ToolRepository) attachUsageSteps(tools []*domain.Tool) error {
	if len(tools) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Tool, len(tools))
	ids := make([]string, 0, len(tools))
	for _, t := range tools {
		id := t.ID.String()
		byID[id] = t
		ids = append(ids, id)
	}

	query, args, err := sqlx.In(
		`SELECT id, created_at, tool_id, position, text
		 FROM tool_usage_steps
		 WHERE tool_id IN (?)
		 ORDER BY position ASC`, ids)
	if err != nil {
		return err
	}
	query = r.db.Rebind(query)

	var steps []domain.UsageStep
	if err := r.db.Select(&steps, query, args...); err != nil {
		return err
	}

	for _, step := range steps {
		if tool, ok := byID[step.ToolID]; ok {
			tool.UsageSteps = append(tool.UsageSteps, step)
		}
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "23505") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "duplicate key")
}
