package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"yultimate/services/logger"
)

// DigestRunner produces the daily attendance digest.
type DigestRunner interface {
	RunDaily(ctx context.Context) error
}

// InitCronJobs registers the daily digest on schedule and starts the scheduler.
func InitCronJobs(c *cron.Cron, schedule string, digest DigestRunner, log logger.Logger) error {
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		log.Info("running daily digest")
		if err := digest.RunDaily(ctx); err != nil {
			log.Error("daily digest failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs initialized, digest schedule %q", schedule)
	return nil
}
