package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"dengue-tracker-go/internal/auth"
	"dengue-tracker-go/internal/handler"
	"dengue-tracker-go/internal/importer"
	"dengue-tracker-go/internal/middleware"
	"dengue-tracker-go/internal/record"
	"dengue-tracker-go/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Connect to database
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize services
	authService := auth.NewAuthService(db, cfg.JWTSecret, cfg.EncryptionKey)
	recordService := record.NewRecordService(db)
	csvImporter := importer.NewImporter(recordService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	recordHandler := handler.NewRecordHandler(recordService)
	chartHandler := handler.NewChartHandler(recordService)
	uploadHandler := handler.NewUploadHandler(csvImporter)

	// Set up Gin router
	router := gin.Default()

	// CORS for the browser frontend
	corsConfig := cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}
	router.Use(cors.New(corsConfig))

	// Public routes
	router.POST("/api/login", authHandler.Login)
	router.POST("/api/register", authHandler.Register)
	router.GET("/api/regions", recordHandler.GetRegions)

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// 2FA routes
		protected.POST("/2fa/setup", authHandler.SetupTwoFactor)
		protected.POST("/2fa/verify", authHandler.VerifyTwoFactor)
		protected.POST("/2fa/disable", authHandler.DisableTwoFactor)

		// User profile
		protected.GET("/user/profile", authHandler.GetUserProfile)

		// Record management routes
		protected.GET("/records", recordHandler.ListRecords)
		protected.POST("/records", recordHandler.AddRecord)
		protected.POST("/records/upload", uploadHandler.UploadCSV)
		protected.PUT("/records/:id", recordHandler.UpdateRecord)
		protected.DELETE("/records/:id", recordHandler.DeleteRecord)

		// Chart projections
		protected.GET("/charts/cases-by-region", chartHandler.CasesByRegion)
		protected.GET("/charts/cases-over-time", chartHandler.CasesOverTime)
		protected.GET("/charts/deaths-over-time", chartHandler.DeathsOverTime)
		protected.GET("/charts/cases-vs-deaths", chartHandler.CasesVsDeaths)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
