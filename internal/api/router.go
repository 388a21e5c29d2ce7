package api

import (
	"github.com/gin-gonic/gin"

	"github.com/songcraft-labs/songcraft-api/internal/api/handlers"
	apimiddleware "github.com/songcraft-labs/songcraft-api/internal/api/middleware"
	"github.com/songcraft-labs/songcraft-api/internal/config"
	"github.com/songcraft-labs/songcraft-api/internal/metrics"
	"github.com/songcraft-labs/songcraft-api/internal/versions"
)

func SetupRouter(cfg *config.Config, store versions.Store, cwMetrics *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.AllowedOrigins))

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// API routes v1
	v1 := router.Group("/api/v1")
	{
		// Lyric analysis - syllables, meter and rhymes in one pass
		lyricsHandler := handlers.NewLyricsHandler(cfg, cwMetrics)
		v1.POST("/lyrics/analyze", lyricsHandler.Analyze)

		// Prosody checks - stress/beat clashes plus harmony warnings
		prosodyHandler := handlers.NewProsodyHandler(cfg, cwMetrics)
		v1.POST("/prosody/check", prosodyHandler.Check)
		v1.GET("/rhythm/templates", prosodyHandler.ListRhythmTemplates)

		// Harmony analysis - classification, numerals, warnings
		harmonyHandler := handlers.NewHarmonyHandler(cfg, cwMetrics)
		v1.POST("/harmony/analyze", harmonyHandler.Analyze)
		v1.POST("/keys/suggest", harmonyHandler.SuggestKey)

		// Reharmonization - suggestions, streaming, version tagging
		reharmHandler := handlers.NewReharmHandler(cfg, store, cwMetrics)
		v1.POST("/reharm/suggestions", reharmHandler.Suggestions)
		v1.POST("/reharm/suggestions/stream", reharmHandler.SuggestionsStream)
		v1.POST("/reharm/apply", reharmHandler.Apply)
		v1.GET("/projects/:projectId/versions", reharmHandler.ListVersions)

		// Content policy
		contentHandler := handlers.NewContentHandler()
		v1.POST("/content/validate", contentHandler.Validate)

		// Chord charts
		chartsHandler := handlers.NewChartsHandler(cfg, cwMetrics)
		v1.POST("/charts/render", chartsHandler.Render)
	}

	return router
}
