package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"toolshub/internal/config"
	"toolshub/internal/domain"
	"toolshub/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()
	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Starting seed process...")

	if err := truncateTables(db.DB()); err != nil {
		log.Fatalf("Failed to truncate tables: %v", err)
	}

	if err := seedCategories(db.DB()); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	if err := seedTools(db.DB()); err != nil {
		log.Fatalf("Failed to seed tools: %v", err)
	}
	if err := seedComments(db.DB()); err != nil {
		log.Printf("Failed to seed comments: %v", err)
	}

	log.Println("Seed process completed!")
}

func truncateTables(db *sqlx.DB) error {
	log.Println("Truncating all seed tables...")

	tables := []string{
		"comments",
		"tool_usage_steps",
		"tools",
		"categories",
	}

	for _, table := range tables {
		query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
		log.Printf("Truncated table: %s", table)
	}

	return nil
}

func seedCategories(db *sqlx.DB) error {
	log.Println("Seeding categories...")

	categoryRepo := repository.NewCategoryRepository(db)

	categories := []*domain.Category{
		{
			Name:        "AI Writing",
			Slug:        "ai-writing",
			Description: "Assistants that draft, rewrite and polish text.",
			IconName:    "FileText",
			Tags:        []string{"writing", "content"},
		},
		{
			Name:        "Video Editing",
			Slug:        "video-editing",
			Description: "Cut, caption and publish video without a studio.",
			IconName:    "Video",
			Tags:        []string{"video", "editing"},
		},
		{
			Name:        "Code Assistants",
			Slug:        "code-assistants",
			Description: "Pair programmers that complete, review and explain code.",
			IconName:    "Code",
			Tags:        []string{"code", "developer"},
		},
		{
			Name:        "Productivity",
			Slug:        "productivity",
			Description: "Automation and scheduling helpers for daily work.",
			IconName:    "Zap",
			Tags:        []string{"automation", "workflow"},
		},
	}

	for _, category := range categories {
		if category.ImageURL == "" {
			category.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s-cat/600/400", category.Slug)
		}
		if err := categoryRepo.Create(category); err != nil {
			return fmt.Errorf("create category %s: %w", category.Slug, err)
		}
		log.Printf("Created category: %s", category.Name)
	}

	return nil
}

func seedTools(db *sqlx.DB) error {
	log.Println("Seeding tools...")

	toolRepo := repository.NewToolRepository(db)

	tools := []*domain.Tool{
		{
			Name:         "DraftPilot",
			Slug:         "draftpilot",
			CategorySlug: "ai-writing",
			IsFree:       true,
			Rating:       4.6,
			Summary:      "Long-form drafting assistant with tone controls.",
			Description:  "DraftPilot turns an outline into a structured first draft and keeps the voice consistent across revisions.",
			WebsiteLink:  "https://draftpilot.example.com",
			Tags:         []string{"writing", "drafts"},
			UsageSteps: []domain.UsageStep{
				{Position: 0, Text: "Paste your outline or a few bullet points."},
				{Position: 1, Text: "Pick a tone preset and generate the draft."},
				{Position: 2, Text: "Accept or rewrite sections inline."},
			},
		},
		{
			Name:         "ClipForge",
			Slug:         "clipforge",
			CategorySlug: "video-editing",
			IsFree:       false,
			Rating:       4.8,
			Summary:      "Browser video editor with automatic captions.",
			Description:  "ClipForge trims, captions and exports short-form video straight from the browser.",
			WebsiteLink:  "https://clipforge.example.com",
			Tags:         []string{"video", "captions"},
			UsageSteps: []domain.UsageStep{
				{Position: 0, Text: "Upload a clip or record from your webcam."},
				{Position: 1, Text: "Let the caption pass run, then fix any misheard words."},
				{Position: 2, Text: "Export in the aspect ratio your platform needs."},
			},
		},
		{
			Name:         "PairBot",
			Slug:         "pairbot",
			CategorySlug: "code-assistants",
			IsFree:       true,
			Rating:       4.3,
			Summary:      "Inline code completion for the editors you already use.",
			Description:  "PairBot suggests completions, writes tests and explains unfamiliar code from inside the editor.",
			WebsiteLink:  "https://pairbot.example.com",
			Tags:         []string{"code", "completion"},
			UsageSteps: []domain.UsageStep{
				{Position: 0, Text: "Install the editor extension and sign in."},
				{Position: 1, Text: "Start typing; accept suggestions with tab."},
			},
		},
		{
			Name:         "InboxZeroer",
			Slug:         "inboxzeroer",
			CategorySlug: "productivity",
			IsFree:       false,
			Rating:       3.9,
			Summary:      "Email triage that drafts replies and files the rest.",
			Description:  "InboxZeroer sorts incoming mail into act, read and archive piles and pre-drafts the replies worth sending.",
			WebsiteLink:  "https://inboxzeroer.example.com",
			Tags:         []string{"email", "automation"},
			UsageSteps: []domain.UsageStep{
				{Position: 0, Text: "Connect your mailbox."},
				{Position: 1, Text: "Review the triage rules it proposes for a week."},
				{Position: 2, Text: "Turn on auto-filing once the sorting looks right."},
			},
		},
	}

	for _, tool := range tools {
		if tool.Image == "" {
			tool.Image = fmt.Sprintf("https://picsum.photos/seed/%s/600/400", tool.Slug)
		}
		if err := toolRepo.Create(tool); err != nil {
			return fmt.Errorf("create tool %s: %w", tool.Slug, err)
		}
		log.Printf("Created tool: %s", tool.Name)
	}

	return nil
}

func seedComments(db *sqlx.DB) error {
	log.Println("Seeding comments...")

	commentRepo := repository.NewCommentRepository(db)

	comments := []*domain.Comment{
		{ToolSlug: "draftpilot", Name: "Mara", Comment: "Cut my newsletter drafting time in half."},
		{ToolSlug: "clipforge", Name: "Deniz", Comment: "The caption pass is scarily accurate."},
		{ToolSlug: "pairbot", Name: "Jonas", Comment: "Good at tests, a bit chatty in reviews."},
	}

	for _, comment := range comments {
		if err := commentRepo.Create(comment); err != nil {
			return fmt.Errorf("create comment on %s: %w", comment.ToolSlug, err)
		}
	}

	log.Printf("Created %d comments", len(comments))
	return nil
}
