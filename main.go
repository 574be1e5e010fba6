package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/aura-vc/aura-backend/config"
	"github.com/aura-vc/aura-backend/controllers"
	"github.com/aura-vc/aura-backend/docs"
	"github.com/aura-vc/aura-backend/livekit"
	"github.com/aura-vc/aura-backend/services"
	"github.com/aura-vc/aura-backend/storage"
)

// @title           AURA Backend API
// @version         1.0
// @description     LiveKit-backed video conferencing API
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	// Connect to Redis
	client, err := storage.Connect(cfg.RedisURL)
	if err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	store := storage.NewRoomStore(client)

	// LiveKit collaborators
	issuer := livekit.NewTokenIssuer(cfg.LiveKitAPIKey, cfg.LiveKitAPISecret)
	provider := livekit.NewRoomClient(cfg.LiveKitURL, issuer)

	roomService := services.NewRoomService(provider, store, issuer)
	roomController := controllers.NewRoomController(roomService, cfg.LiveKitURL, cfg.FrontendURL)
	healthController := controllers.NewHealthController(store)

	// Set up Swagger info
	docs.SwaggerInfo.Title = "AURA Backend API"
	docs.SwaggerInfo.Description = "LiveKit-backed video conferencing API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Set up router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.FrontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", healthController.Health)
		api.POST("/token", roomController.GetToken)

		api.POST("/room/create", roomController.CreateRoom)
		api.GET("/room/:roomId", roomController.GetRoom)
		api.DELETE("/room/:roomId", roomController.DeleteRoom)
		api.POST("/room/:roomId/refresh", roomController.RefreshRoom)
		api.GET("/rooms", roomController.ListRooms)
	}

	logrus.Infof("Server running on port %s", cfg.Port)
	logrus.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
