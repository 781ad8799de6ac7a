package worker

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"

	"toolshub/internal/api/services"
)

// FeaturedRefresher keeps the cached featured-tools set warm so the landing
// page never pays the recompute cost on a cold cache.
type FeaturedRefresher struct {
	toolService *services.ToolService
	ticker      *time.Ticker
}

func NewFeaturedRefresher(db *sqlx.DB, rdb *goredis.Client, interval time.Duration) *FeaturedRefresher {
	return &FeaturedRefresher{
		toolService: services.NewToolService(db, rdb),
		ticker:      time.NewTicker(interval),
	}
}

func (w *FeaturedRefresher) Start(ctx context.Context) {
	defer w.ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *FeaturedRefresher) refresh(ctx context.Context) {
	featured, err := w.toolService.RefreshFeatured(ctx)
	if err != nil {
		log.Printf("[FeaturedRefresher] refresh failed: %v", err)
		return
	}
	log.Printf("[FeaturedRefresher] cached %d featured tools", len(featured))
}
