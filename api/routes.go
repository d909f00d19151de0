package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/fieldscope/research-api/api/analyses"
	"github.com/fieldscope/research-api/api/health"
	"github.com/fieldscope/research-api/api/projects"
	"github.com/fieldscope/research-api/api/transcripts"
	"github.com/fieldscope/research-api/api/types"
	"github.com/fieldscope/research-api/api/version"
	analysesService "github.com/fieldscope/research-api/internal/services/analyses"
	"github.com/fieldscope/research-api/internal/services/consistency"
	projectsService "github.com/fieldscope/research-api/internal/services/projects"
	transcriptsService "github.com/fieldscope/research-api/internal/services/transcripts"
	"github.com/fieldscope/research-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.DB != nil && deps.DB.DB != nil {
		initializeServices(deps, cfg)
	}

	rps := cfg.RateLimiting.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.RateLimiting.Burst
	if burst <= 0 {
		burst = 20
	}

	// Register project routes with general rate limiting
	projectGroup := v1.Group("/projects")
	if cfg.RateLimiting.Enabled {
		projectGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	projects.RegisterRoutes(projectGroup, deps)

	// Register transcript routes with general rate limiting
	transcriptGroup := v1.Group("/transcripts")
	if cfg.RateLimiting.Enabled {
		transcriptGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	transcripts.RegisterRoutes(transcriptGroup, deps)

	// Register content analysis routes with general rate limiting
	analysisGroup := v1.Group("/analyses")
	if cfg.RateLimiting.Enabled {
		analysisGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	analyses.RegisterRoutes(analysisGroup, deps)

	return nil
}

// initializeServices creates and wires the domain services from the database
func initializeServices(deps *types.Dependencies, cfg *config.Config) {
	transcriptRepo := transcriptsService.NewRepository(deps.DB.DB)
	analysisRepo := analysesService.NewRepository(deps.DB.DB)

	if deps.Coordinator == nil {
		deps.Coordinator = consistency.NewService(
			transcriptRepo,
			analysisRepo,
			consistency.WithSerialization(cfg.Ordering.SerializePerProject),
		)
	}

	if deps.ProjectService == nil {
		deps.ProjectService = projectsService.NewService(projectsService.NewRepository(deps.DB.DB))
	}

	if deps.TranscriptService == nil {
		deps.TranscriptService = transcriptsService.NewService(transcriptRepo, analysisRepo, deps.Coordinator)
	}

	if deps.AnalysisService == nil {
		deps.AnalysisService = analysesService.NewService(analysisRepo, transcriptRepo, deps.Coordinator)
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
