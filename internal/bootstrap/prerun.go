package bootstrap

import (
	"context"
	"fmt"
	"time"

	"studysnap-be/internal/config"

	"gorm.io/gorm"
)

// RunPreConditions verifies every external collaborator before the server
// starts taking requests: both storage buckets, search cluster health and
// database connectivity. Startup aborts on the first failure.
func (c *Container) RunPreConditions(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	checkCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.Spaces.EnsureBucket(checkCtx, cfg.Spaces.NoteDataSpace); err != nil {
		return fmt.Errorf("note storage bucket check failed: %w", err)
	}
	if err := c.Spaces.EnsureBucket(checkCtx, cfg.Spaces.ImageDataSpace); err != nil {
		return fmt.Errorf("image storage bucket check failed: %w", err)
	}

	if err := c.SearchIndex.Health(checkCtx); err != nil {
		return fmt.Errorf("search index health check failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database handle unavailable: %w", err)
	}
	if err := sqlDB.PingContext(checkCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
