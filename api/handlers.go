package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-rhyme-engine/internal/metrics"
	"github.com/gcbaptista/go-rhyme-engine/services"
)

// API holds dependencies for API handlers, primarily the rhyme service.
type API struct {
	service services.RhymeService
}

// NewAPI creates a new API handler structure.
func NewAPI(service services.RhymeService) *API {
	return &API{service: service}
}

// RouterOptions configures NewRouter.
type RouterOptions struct {
	MaxBodyBytes int64
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewRouter builds a gin engine with the standard middleware chain and all routes.
func NewRouter(service services.RhymeService, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), CORSMiddleware())
	if opts.Logger != nil {
		router.Use(LoggingMiddleware(opts.Logger))
	}
	if opts.MaxBodyBytes > 0 {
		router.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	}
	if opts.Metrics != nil {
		router.Use(opts.Metrics.GinMiddleware())
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	SetupRoutes(router, service)
	return router
}

// SetupRoutes defines all the API routes for the rhyme engine.
func SetupRoutes(router *gin.Engine, service services.RhymeService) {
	apiHandler := NewAPI(service)

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/stats", apiHandler.StatsHandler)

	// Queries
	router.POST("/rhymes", apiHandler.FindRhymesHandler)
	router.POST("/schemes", apiHandler.AssignSchemeHandler)
	router.POST("/suggestions", apiHandler.SuggestRhymesHandler)

	// Index management
	router.POST("/train", apiHandler.TrainHandler)
	router.POST("/reload", apiHandler.ReloadHandler)

	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("", apiHandler.ListJobsHandler)
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler)
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)
	}
}

// HealthCheckHandler reports liveness and whether an index is loaded.
func (api *API) HealthCheckHandler(c *gin.Context) {
	stats := api.service.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"ready":  stats.Ready,
	})
}
