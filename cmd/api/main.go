package main

import (
	"os"

	"github.com/joho/godotenv"

	"toolindex-backend/pkg/container"
	"toolindex-backend/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	c, err := container.NewContainer()
	if err != nil {
		logger.Error("failed to initialize container", err)
		os.Exit(1)
	}
	defer c.Cleanup()

	srv := NewServer(c)
	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", err)
		os.Exit(1)
	}
}
