package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alimgiray/commitpulse/internal/handlers"
	"github.com/alimgiray/commitpulse/internal/middleware"
	"github.com/alimgiray/commitpulse/internal/repositories"
	"github.com/alimgiray/commitpulse/internal/services"
	"github.com/alimgiray/commitpulse/internal/workers"
	"github.com/alimgiray/commitpulse/pkg/config"
	"github.com/alimgiray/commitpulse/pkg/database"
	"github.com/alimgiray/commitpulse/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Repositories
	repoRepo := repositories.NewTrackedRepositoryRepository(database.DB)
	jobRepo := repositories.NewJobRepository(database.DB)
	snapshotRepo := repositories.NewSnapshotRepository(database.DB)

	// Services
	githubStats := services.NewGitHubStatsService(config.AppConfig.GitHub.Token)
	insightsService := services.NewInsightsService(repoRepo, snapshotRepo, githubStats, config.AppConfig.Reports.TopN)
	jobService := services.NewJobService(jobRepo)
	reportService := services.NewReportService(
		config.AppConfig.Reports.Dir,
		services.NewChartService(),
		services.NewExportService(),
	)
	schedulerService := services.NewSchedulerService(repoRepo, jobService)

	// Workers
	workerManager := workers.NewWorkerManager(jobRepo, repoRepo, insightsService, reportService)
	if err := workerManager.StartAll(); err != nil {
		log.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	// Scheduler
	schedulerService.StartScheduler()

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	setupRoutes(router, repoRepo, jobService, githubStats, insightsService)

	server := &http.Server{
		Addr:    ":" + config.AppConfig.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	repoRepo *repositories.TrackedRepositoryRepository,
	jobService *services.JobService,
	githubStats *services.GitHubStatsService,
	insightsService *services.InsightsService,
) {
	repositoryHandler := handlers.NewRepositoryHandler(repoRepo, jobService, githubStats)
	insightsHandler := handlers.NewInsightsHandler(insightsService)
	healthHandler := handlers.NewHealthHandler()

	api := router.Group("/api")
	{
		api.GET("/repositories", repositoryHandler.List)
		api.POST("/repositories", repositoryHandler.Track)
		api.GET("/repositories/:id", repositoryHandler.Get)
		api.DELETE("/repositories/:id", repositoryHandler.Delete)
		api.POST("/repositories/:id/refresh", repositoryHandler.Refresh)
		api.GET("/repositories/:id/jobs", repositoryHandler.Jobs)
		api.GET("/repositories/:id/insights", insightsHandler.Latest)
		api.GET("/repositories/:id/insights/history", insightsHandler.History)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.Health)
}
