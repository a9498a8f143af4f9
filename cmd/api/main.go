package main

import (
	"log"

	_ "metalshop/docs"
	"metalshop/internal/adapter/http/routes"
	"metalshop/internal/infrastructure/config"
	"metalshop/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Metalshop API
// @version         1.0
// @description     Job costing and business management for a metal fabrication shop.
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
	cfg, err := config.Load("metalshop")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := routes.Run(cfg); err != nil {
		logger.GetLogger().Error("[server] stopped", zap.Error(err))
		logger.Sync()
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
