package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/Rohithsilent/P-o-P/db"
	"github.com/Rohithsilent/P-o-P/internal/analysis"
	"github.com/Rohithsilent/P-o-P/internal/config"
	"github.com/Rohithsilent/P-o-P/internal/handler"
	"github.com/Rohithsilent/P-o-P/internal/repository"
	"github.com/Rohithsilent/P-o-P/pkg/llm"
	"github.com/Rohithsilent/P-o-P/pkg/youtube"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if err := cfg.RequireYouTube(); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	deps := analysis.Deps{
		Files: repository.NewCommentFiles(cfg.DataDir),
	}
	checks := map[string]handler.Check{}

	var source youtube.Source = youtube.NewClient(cfg.YouTubeAPIKey, cfg.MaxComments, cfg.HTTPTimeout)

	// Postgres and Redis are optional; without them the API still analyzes
	// videos but keeps no archive and no metadata cache.
	var reports handler.ReportStore
	if cfg.DatabaseURL != "" {
		if err := db.Connect(cfg.DatabaseURL); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()

		repo := repository.NewReportRepository(db.DB)
		if err := repo.Migrate(); err != nil {
			log.Fatalf("error migrating DB: %v", err)
		}
		reports = repo
		deps.Reports = repo
		checks["database"] = func(ctx context.Context) error { return db.DB.PingContext(ctx) }
	} else {
		slog.Warn("DATABASE_URL not set, report archive disabled")
	}

	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(context.Background(), cfg.RedisURL); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()

		source = youtube.NewCachedSource(source, db.NewRedisCache(db.Redis), cfg.CacheTTL)
		checks["redis"] = func(ctx context.Context) error { return db.Redis.Ping(ctx).Err() }
	} else {
		slog.Warn("REDIS_URL not set, metadata cache disabled")
	}
	deps.Source = source

	provider, err := llm.New(cfg.LLM)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		slog.Warn("no LLM provider configured, using basic insights", "error", err)
	case err != nil:
		log.Fatalf("error configuring LLM: %v", err)
	default:
		slog.Info("LLM provider configured", "model", provider.ModelName())
		deps.Insights = provider
		deps.Answerer = provider
	}

	analyzer := analysis.New(deps)
	analysisHandler := handler.NewAnalysisHandler(analyzer)
	reportHandler := handler.NewReportHandler(reports)
	healthHandler := handler.NewHealthHandler(checks)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != allowedOrigins[0] {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	r.POST("/analyze", analysisHandler.PostAnalyze)
	r.GET("/analysis", analysisHandler.GetAnalysis)
	r.GET("/analysis/insights", analysisHandler.GetInsights)
	r.GET("/comments", analysisHandler.GetComments)
	r.POST("/ask", analysisHandler.PostAsk)
	r.GET("/reports", reportHandler.GetReports)
	r.GET("/reports/latest", reportHandler.GetLatestReport)
	r.GET("/health", healthHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
