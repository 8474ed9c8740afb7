package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// catalogRefresher is the slice of the status cache the job needs.
type catalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshJob periodically reloads the in-memory status catalog from
// the database. The catalog is administrator-seeded and effectively static,
// so a slow cadence keeps renamed statuses from staying stale forever without
// hitting the database on every read.
type CatalogRefreshJob struct {
	refresher catalogRefresher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCatalogRefreshJob creates a job refreshing the given status cache every
// five minutes.
func NewCatalogRefreshJob(refresher catalogRefresher, logger *slog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		refresher: refresher,
		cron:      cron.New(),
		logger:    logger.With("component", "catalog_refresh_job"),
	}
}

// Start begins the catalog refresh job.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()
		if err := j.refresher.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Status catalog refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status catalog refresh job started (running every five minutes)")
	return nil
}

// Stop stops the catalog refresh job.
func (j *CatalogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status catalog refresh job stopped")
}
