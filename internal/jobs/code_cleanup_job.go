package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/agency-cockpit/internal/repository"
)

type CodeCleanupJob struct {
	codes repository.OAuthCodeRepository
}

func NewCodeCleanupJob(codes repository.OAuthCodeRepository) *CodeCleanupJob {
	return &CodeCleanupJob{codes: codes}
}

// PurgeCodes drops exchanged authorization codes whose replay window has
// passed.
func (c *CodeCleanupJob) PurgeCodes() {
	removed := c.codes.PurgeExpired(context.Background(), time.Now())
	if removed > 0 {
		slog.Info("purged expired authorization codes", "count", removed)
	}
}
