package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"toolindex-backend/internal/config"
	seorepo "toolindex-backend/internal/domains/seo/repository"
	seoservice "toolindex-backend/internal/domains/seo/service"
	"toolindex-backend/internal/infrastructure/cache"
	"toolindex-backend/internal/infrastructure/database"
	"toolindex-backend/internal/infrastructure/email"
	"toolindex-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		logger.Error("failed to connect to postgres", err)
		os.Exit(1)
	}
	defer db.Close()

	redisCache := cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		logger.Error("failed to connect to redis", err)
		os.Exit(1)
	}
	defer redisCache.Close()

	emailService := email.NewSMTPEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)
	seoService := seoservice.NewSEOService(
		seorepo.NewPostgresSEORepository(db.Pool), redisCache, cfg.Site.BaseURL)

	handlers := NewHandlers(cfg, emailService, seoService)

	srv := NewWorkerServer(cfg, handlers)
	if err := srv.Run(); err != nil {
		logger.Error("worker exited with error", err)
		os.Exit(1)
	}
}
