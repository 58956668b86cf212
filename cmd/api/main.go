package main

import (
	"context"
	"os"

	"repair_desk/internal/adapter/http/routes"
	"repair_desk/internal/config"
	"repair_desk/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Repair Desk Repository API
// @version         1.0
// @description     Repair orders, diagnostics, parts, payments and warehouse stock backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{ServiceName: "repair-desk-api"}).Error(context.Background(), "invalid configuration", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: "repair-desk-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	if err := routes.RunAPI(context.Background(), cfg, log); err != nil {
		log.Error(context.Background(), "repository service stopped", err)
		os.Exit(1)
	}
}
