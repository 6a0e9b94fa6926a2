package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/papaahmadoufall/securaccess/internal/app/routes"
	"github.com/papaahmadoufall/securaccess/internal/domain/models"
	"github.com/papaahmadoufall/securaccess/internal/domain/services/container"
	"github.com/papaahmadoufall/securaccess/internal/domain/stores"
	"github.com/papaahmadoufall/securaccess/internal/infrastructure/config"
	"github.com/papaahmadoufall/securaccess/internal/infrastructure/database"
	"github.com/papaahmadoufall/securaccess/pkg/logger"
)

func main() {
	if err := logger.SetupLogger(); err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}

	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file found, using environment variables")
	}

	cfg := config.GetConfig()

	var (
		storeBundle *stores.Stores
		pool        *database.ConnectionPool
		degraded    bool
	)

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		// degraded mode: reads answer from fixtures, logins and writes get 503
		logger.Error("Database unreachable, starting in degraded mode: %v", err)
		pool = nil
		degraded = true

		storeBundle = stores.NewMemoryStores()
		if err := stores.SeedSampleData(storeBundle, cfg.DefaultManagerPassword); err != nil {
			logger.Error("Failed to load fixture data: %v", err)
			os.Exit(1)
		}
	} else {
		defer pool.Close()

		db := pool.GetDB()
		if err := db.AutoMigrate(
			&models.Worker{},
			&models.Host{},
			&models.Manager{},
			&models.AccessLog{},
		); err != nil {
			logger.Error("Database migration failed: %v", err)
			os.Exit(1)
		}

		storeBundle = stores.NewGormStores(db)
		if err := stores.SeedSampleData(storeBundle, cfg.DefaultManagerPassword); err != nil {
			logger.Warning("Seeding skipped: %v", err)
		}
	}

	c := container.NewServiceContainer(cfg, storeBundle, pool, degraded)
	router := routes.SetupRouter(c)

	logger.Info("SecurAccess API listening on port %s (env %s, degraded=%t)", cfg.ServerPort, cfg.EnvType, degraded)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
