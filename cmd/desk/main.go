package main

import (
	"context"
	"os"

	"repair_desk/internal/adapter/http/routes"
	"repair_desk/internal/config"
	"repair_desk/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{ServiceName: "repair-desk"}).Error(context.Background(), "invalid configuration", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: "repair-desk",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	if err := routes.RunDesk(cfg, log); err != nil {
		log.Error(context.Background(), "desk stopped", err)
		os.Exit(1)
	}
}
