package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/seo-diagnostic/backend/analyzer"
	"github.com/seo-diagnostic/backend/fetch"
	"github.com/seo-diagnostic/backend/logging"
	"github.com/seo-diagnostic/backend/middleware"
	"github.com/seo-diagnostic/backend/rules"
	"github.com/seo-diagnostic/backend/stats"
)

func loadEnv() {
	// Try .env.development first (local development), then regular .env.
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	loadEnv()

	mode := envOr("GIN_MODE", gin.ReleaseMode)
	gin.SetMode(mode)

	logger, err := logging.New(envOr("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	usage, err := stats.NewStorage(envOr("DATA_DIR", "data"))
	if err != nil {
		logger.Fatal("failed to initialize stats storage", zap.Error(err))
	}
	defer usage.Shutdown()

	fetchTimeout, err := time.ParseDuration(envOr("FETCH_TIMEOUT", "10s"))
	if err != nil {
		logger.Fatal("invalid FETCH_TIMEOUT", zap.Error(err))
	}

	fetcher := fetch.NewCachingFetcher(fetch.NewClient(fetchTimeout), rules.CatalogVersion)
	fetcher.OnLookup = usage.RecordCacheLookup

	engine := analyzer.New(fetcher, logger)
	rateLimiter := middleware.NewRateLimiter(2, 5) // 2 req/s, burst of 5

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.AccessLog(logger))
	r.Use(rateLimiter.RateLimit())
	r.Use(corsMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		api.POST("/analyze", analyzeHandler(engine, usage))
		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, usage.Current())
		})
	}

	port := envOr("PORT", "8082")
	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Request-Id")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// analyzeRequest is the wire shape submitted by the client. Keyword is a
// single comma-separated string; splitting happens at this boundary.
type analyzeRequest struct {
	URL     string `json:"url"`
	Keyword string `json:"keyword"`
}

func analyzeHandler(engine *analyzer.Analyzer, usage *stats.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req analyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			usage.RecordAnalysis(true)
			c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다."})
			return
		}

		rep, err := engine.Analyze(c.Request.Context(), analyzer.Request{
			URL:      req.URL,
			Keywords: analyzer.ParseKeywords(req.Keyword),
		})
		if err != nil {
			usage.RecordAnalysis(true)
			c.JSON(statusFor(err), gin.H{"error": userMessage(err)})
			return
		}

		usage.RecordAnalysis(false)
		c.JSON(http.StatusOK, rep)
	}
}

func statusFor(err error) int {
	var ae *analyzer.Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case analyzer.KindInvalidInput:
		return http.StatusBadRequest
	case analyzer.KindTimeout:
		return http.StatusGatewayTimeout
	case analyzer.KindUnreachable, analyzer.KindTooLarge, analyzer.KindTooManyRedirects:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(err error) string {
	var ae *analyzer.Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return "분석 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
}
