package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"toolindex-backend/internal/config"
	"toolindex-backend/internal/shared"
	"toolindex-backend/pkg/logger"
)

type WorkerServer struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	handlers  *Handlers
}

func NewWorkerServer(cfg *config.Config, handlers *Handlers) *WorkerServer {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"high":    20,
			"default": 10,
			"low":     5,
		},
	})

	return &WorkerServer{
		server:    server,
		scheduler: NewScheduler(redisOpt),
		handlers:  handlers,
	}
}

// Run starts the task server and the cron scheduler, blocking until
// SIGINT/SIGTERM.
func (s *WorkerServer) Run() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeContactNotifyAdmin, s.handlers.HandleContactNotifyAdmin)
	mux.HandleFunc(shared.TypeWarmSitemap, s.handlers.HandleWarmSitemap)

	if err := s.scheduler.Start(); err != nil {
		return err
	}

	if err := s.server.Start(mux); err != nil {
		s.scheduler.Shutdown()
		return err
	}

	logger.Info("worker started", nil)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down", nil)
	s.scheduler.Shutdown()
	s.server.Shutdown()

	return nil
}
