package main

//go:generate swag init -g main.go -d ./,../../internal/api/handlers,../../internal/service -o ../../docs

import (
	"log"
	"os"

	"course-cluster-backend/internal/api/routes"
	"course-cluster-backend/internal/config"
	"course-cluster-backend/internal/database"
	"course-cluster-backend/internal/logger"
	"course-cluster-backend/internal/repository"
	"course-cluster-backend/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "course-cluster-backend/docs" // This is needed for swag
)

//	@title			Course Cluster Backend API
//	@version		1.0
//	@description	Backend API for the room layout planner: rooms, a furniture catalog and placements of catalog objects inside rooms.

//	@host		localhost:8080
//	@BasePath	/api

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.SeedOnStartup {
		if err := seedCatalog(db, cfg); err != nil {
			logrus.Fatal("Failed to seed object catalog:", err)
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	logrus.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// seedCatalog fills an empty object catalog from SEED_OBJECTS_FILE or the built-in defaults
func seedCatalog(db *gorm.DB, cfg *config.Config) error {
	var (
		objects []seed.ObjectDefinition
		err     error
	)
	if cfg.SeedObjectsFile != "" {
		objects, err = seed.LoadObjectsFile(cfg.SeedObjectsFile)
	} else {
		objects, err = seed.DefaultObjects()
	}
	if err != nil {
		return err
	}

	_, err = seed.NewLoader(repository.NewObjectRepository(db), objects).Run()
	return err
}
