package main

import (
	"github.com/hibiken/asynq"

	"toolindex-backend/internal/shared"
	"toolindex-backend/pkg/logger"
)

// NewScheduler registers the recurring jobs.
func NewScheduler(redisOpt asynq.RedisClientOpt) *asynq.Scheduler {
	scheduler := asynq.NewScheduler(redisOpt, nil)

	// Nightly sitemap refresh, low queue.
	if _, err := scheduler.Register(
		"0 3 * * *",
		asynq.NewTask(shared.TypeWarmSitemap, nil),
		asynq.Queue("low"),
	); err != nil {
		logger.Error("failed to register sitemap schedule", err)
	}

	return scheduler
}
