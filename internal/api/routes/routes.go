package routes

import (
	"course-cluster-backend/internal/api/handlers"
	"course-cluster-backend/internal/api/middleware"
	"course-cluster-backend/internal/config"
	"course-cluster-backend/internal/repository"
	"course-cluster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	if cfg.MetricsEnabled {
		metrics := middleware.NewMetrics()
		router.Use(metrics.Middleware())
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	roomRepo := repository.NewRoomRepository(db)
	objectRepo := repository.NewObjectRepository(db)
	placementRepo := repository.NewPlacementRepository(db)

	// Initialize services
	roomService := service.NewRoomService(roomRepo, validator)
	objectService := service.NewObjectService(objectRepo, validator)
	placementService := service.NewPlacementService(placementRepo, roomRepo, objectRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	roomHandler := handlers.NewRoomHandler(roomService)
	objectHandler := handlers.NewObjectHandler(objectService)
	placementHandler := handlers.NewPlacementHandler(placementService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Room routes
		rooms := api.Group("/rooms")
		{
			rooms.GET("", roomHandler.ListRooms)
			rooms.GET("/", roomHandler.ListRooms)
			rooms.POST("", roomHandler.CreateRoom)
			rooms.POST("/", roomHandler.CreateRoom)
			rooms.GET("/:id", roomHandler.GetRoom)
			rooms.PUT("/:id", roomHandler.UpdateRoom)
			rooms.DELETE("/:id", roomHandler.DeleteRoom)
		}

		// Object catalog routes
		objects := api.Group("/objects")
		{
			objects.GET("", objectHandler.ListObjects)
			objects.GET("/", objectHandler.ListObjects)
			objects.POST("", objectHandler.CreateObject)
			objects.POST("/", objectHandler.CreateObject)
			objects.GET("/:id", objectHandler.GetObject)
			objects.PUT("/:id", objectHandler.UpdateObject)
			objects.DELETE("/:id", objectHandler.DeleteObject)
		}

		// Placement routes
		placements := api.Group("/placements")
		{
			placements.GET("", placementHandler.ListPlacements)
			placements.GET("/", placementHandler.ListPlacements)
			placements.POST("", placementHandler.CreatePlacement)
			placements.POST("/", placementHandler.CreatePlacement)
			placements.GET("/room/:roomId", placementHandler.ListPlacementsByRoom)
			placements.GET("/:id", placementHandler.GetPlacement)
			placements.PUT("/:id", placementHandler.UpdatePlacement)
			placements.DELETE("/:id", placementHandler.DeletePlacement)
		}
	}

	return router
}
