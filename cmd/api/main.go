package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avillega/leadtrail/config"
	"github.com/avillega/leadtrail/pkg/agents"
	"github.com/avillega/leadtrail/pkg/api/handlers"
	"github.com/avillega/leadtrail/pkg/comments"
	"github.com/avillega/leadtrail/pkg/database"
	"github.com/avillega/leadtrail/pkg/export"
	"github.com/avillega/leadtrail/pkg/jobs"
	"github.com/avillega/leadtrail/pkg/leads"
	"github.com/avillega/leadtrail/pkg/metrics"
	custommiddleware "github.com/avillega/leadtrail/pkg/middleware"
	"github.com/avillega/leadtrail/pkg/report"
	"github.com/avillega/leadtrail/pkg/tags"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "LeadTrail API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes group with versioning middleware
	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))

	// Version info endpoint
	v1.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, custommiddleware.VersionInfo(custommiddleware.CurrentAPIVersion))
	})

	// Ping endpoint
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Initialize services
	leadService := leads.NewService(db.Ent)
	agentService := agents.NewService(db.Ent)
	commentService := comments.NewService(db.Ent)
	tagService := tags.NewService(db.Ent)
	reportService := report.NewService(db.Ent)
	exportService := export.NewService(leadService, cfg.ExportMaxRows)

	// Initialize cron manager for scheduled jobs
	var cronManager *jobs.CronManager
	if cfg.JobsEnabled {
		cronManager = jobs.NewCronManager(db.Ent, prometheusMetrics, log.Default())
		if err := cronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to setup cron jobs: %v", err)
		}
		cronManager.Start()
		log.Printf("✅ Cron jobs started successfully")

		// Prime the status gauges so /metrics is useful right away
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := cronManager.RefreshStatusGauges(ctx); err != nil {
			log.Printf("⚠️  Failed to prime status gauges: %v", err)
		}
		cancel()
	} else {
		log.Printf("ℹ️  Cron jobs disabled (JOBS_ENABLED=false)")
	}

	// Initialize handlers
	leadHandler := handlers.NewLeadHandler(leadService, prometheusMetrics)
	agentHandler := handlers.NewAgentHandler(agentService)
	commentHandler := handlers.NewCommentHandler(commentService, prometheusMetrics)
	tagHandler := handlers.NewTagHandler(tagService)
	reportHandler := handlers.NewReportHandler(reportService)
	exportHandler := handlers.NewExportHandler(exportService, prometheusMetrics)

	// Lead routes
	leadsGroup := v1.Group("/leads")
	{
		leadsGroup.POST("", leadHandler.Create)
		leadsGroup.GET("", leadHandler.List)
		leadsGroup.GET("/export", exportHandler.Export) // Must be before /:id to avoid route conflict
		leadsGroup.GET("/:id", leadHandler.GetByID)
		leadsGroup.PATCH("/:id", leadHandler.Update)
		leadsGroup.DELETE("/:id", leadHandler.Delete)
		// Comments on a lead
		leadsGroup.POST("/:id/comments", commentHandler.Create)
		leadsGroup.GET("/:id/comments", commentHandler.ListByLead)
	}

	// Sales agent routes
	agentsGroup := v1.Group("/agents")
	{
		agentsGroup.POST("", agentHandler.Create)
		agentsGroup.GET("", agentHandler.List)
		agentsGroup.GET("/:id", agentHandler.GetByID)
		agentsGroup.DELETE("/:id", agentHandler.Delete)
	}

	// Tag routes
	tagsGroup := v1.Group("/tags")
	{
		tagsGroup.POST("", tagHandler.Create)
		tagsGroup.GET("", tagHandler.List)
	}

	// Report routes
	reportGroup := v1.Group("/report")
	{
		reportGroup.GET("/last-week", reportHandler.LastWeek)
		reportGroup.GET("/pipeline", reportHandler.Pipeline)
		reportGroup.GET("/closed-by-agent", reportHandler.ClosedByAgent)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 LeadTrail API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if cronManager != nil {
		cronManager.Stop()
		log.Println("✅ Cron jobs stopped")
	}

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
