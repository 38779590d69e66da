package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"runtime"
	"saporis/database"
	"saporis/docs"
	"saporis/internal/ai"
	"saporis/internal/controllers"
	"saporis/internal/repository"
	"saporis/internal/session"
	"saporis/internal/storage"
	"saporis/routes"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Saporis API"
	docs.SwaggerInfo.Description = "This is the api of the Saporis nutrition tracker with its food-analysis service."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Signup sessions and OAuth handoffs live in Redis
	sessionStore, err := session.NewRedisStore()
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer sessionStore.Close()

	// Object store for uploaded food photos
	objectStore, err := storage.NewMinioStore()
	if err != nil {
		log.Fatal("Failed to connect to MinIO:", err)
	}

	// Food-analysis service client
	aiClient := ai.NewClient(os.Getenv("ANALYSIS_SERVICE_URL"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := aiClient.HealthCheck(ctx); err != nil {
		log.Printf("Warning: analysis service health check failed: %v", err)
		log.Println("The application will start, but image analysis and chat will fail until the service is available")
	} else {
		log.Println("Analysis service connection established successfully")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	consumptionRepo := repository.NewConsumptionRepository(database.DB)
	chatRepo := repository.NewChatHistoryRepository(database.DB)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo)
	oauthController := controllers.NewOauthController(userRepo, sessionStore)
	signupController := controllers.NewSignupController(sessionStore, userRepo)
	consumptionController := controllers.NewConsumptionController(consumptionRepo)
	analyticsController := controllers.NewAnalyticsController(consumptionRepo, userRepo, aiClient)
	chatController := controllers.NewChatController(aiClient, chatRepo, consumptionRepo, userRepo, objectStore)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "Saporis API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
			"analysis": "External food-analysis service over HTTP",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterOauthRoutes(router, oauthController)
	routes.RegisterSignupRoutes(router, signupController)
	routes.RegisterConsumptionRoutes(router, consumptionController)
	routes.RegisterAnalyticsRoutes(router, analyticsController)
	routes.RegisterChatRoutes(router, chatController)
	routes.RegisterSwaggerRoutes(router)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
	log.Printf("Database Health: http://localhost:%s/debug/database", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Saporis API Server started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
