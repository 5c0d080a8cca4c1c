package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/leadscope/backend/analyzer"
	"github.com/leadscope/backend/logging"
	"github.com/leadscope/backend/middleware"
	"github.com/leadscope/backend/reports"
)

var (
	leadAnalyzer *analyzer.Analyzer
	rateLimiter  *middleware.RateLimiter
	stats        *logging.Statistics
	reportStore  *reports.Store
	startTime    time.Time
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		// If .env.development doesn't exist, try regular .env
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	loadEnv()
	setupGinMode()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	// Initialize services
	leadAnalyzer = analyzer.New()
	rateLimiter = middleware.NewRateLimiter(2, 5) // 2 requests per second, bucket size of 5
	stats = logging.Initialize(dataDir)
	startTime = time.Now()

	var err error
	reportStore, err = reports.NewStore(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize report store:", err)
	}

	r := gin.Default()

	r.Use(middleware.ErrorHandler())
	r.Use(rateLimiter.RateLimit())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.Use(middleware.StatsMiddleware(stats))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/status", statusHandler)

		api.POST("/analyze", analyzeHandler)
		api.POST("/analyze/seo", analyzeSEOHandler)
		api.POST("/analyze/automation", analyzeAutomationHandler)
		api.POST("/analyze/lead-scoring", analyzeLeadScoringHandler)
		api.POST("/analyze/batch", analyzeBatchHandler)

		api.GET("/reports", func(c *gin.Context) {
			c.JSON(http.StatusOK, reportStore.GetIndex())
		})

		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, stats.GetStatistics())
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}

	log.Printf("Server starting on http://localhost:%s\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

type analyzeRequest struct {
	URL string `json:"url" binding:"required"`
}

type batchRequest struct {
	URLs []string `json:"urls" binding:"required"`
}

// runAnalysis runs the pipeline for one URL and records the outcome in
// the statistics. A nil result means the response was already written.
func runAnalysis(c *gin.Context) *analyzer.AnalysisResult {
	var request analyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: url is required",
		})
		return nil
	}

	start := time.Now()
	result, err := leadAnalyzer.AnalyzeWithContext(c.Request.Context(), request.URL)
	loadTime := float64(time.Since(start).Milliseconds())

	if err != nil {
		stats.TrackAnalysis(request.URL, "", loadTime, true)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to analyze URL: " + err.Error(),
		})
		return nil
	}

	stats.TrackAnalysis(result.URL, result.LeadScore.Quality, loadTime, false)
	return result
}

func statusHandler(c *gin.Context) {
	index := reportStore.GetIndex()
	c.JSON(http.StatusOK, gin.H{
		"service":       "lead-analyzer",
		"status":        "ok",
		"uptimeSeconds": int(time.Since(startTime).Seconds()),
		"reportsStored": len(index.Entries),
		"maxBatchSize":  analyzer.MaxBatchSize,
	})
}

func analyzeHandler(c *gin.Context) {
	result := runAnalysis(c)
	if result == nil {
		return
	}

	entry, err := reportStore.SaveReport(result)
	if err != nil {
		log.Printf("Failed to persist report for %s: %v", result.URL, err)
		c.JSON(http.StatusOK, result)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reportId": entry.ID,
		"result":   result,
	})
}

func analyzeSEOHandler(c *gin.Context) {
	result := runAnalysis(c)
	if result == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":         result.URL,
		"timestamp":   result.Timestamp,
		"seoAnalysis": result.SEO,
	})
}

func analyzeAutomationHandler(c *gin.Context) {
	result := runAnalysis(c)
	if result == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":                 result.URL,
		"timestamp":           result.Timestamp,
		"automationScore":     result.AutomationScore,
		"chatbotAnalysis":     result.Chatbot,
		"leadCaptureAnalysis": result.LeadCapture,
		"emailSignupAnalysis": result.EmailSignup,
		"socialMediaAnalysis": result.Social,
		"reviewAnalysis":      result.Reviews,
		"bookingAnalysis":     result.Booking,
		"mobileAnalysis":      result.Mobile,
		"recommendations":     result.Recommendations,
	})
}

func analyzeLeadScoringHandler(c *gin.Context) {
	result := runAnalysis(c)
	if result == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":            result.URL,
		"timestamp":      result.Timestamp,
		"companyProfile": result.CompanyProfile,
		"leadScore":      result.LeadScore,
	})
}

func analyzeBatchHandler(c *gin.Context) {
	var request batchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: urls is required",
		})
		return
	}

	start := time.Now()
	entries, err := leadAnalyzer.AnalyzeBatch(c.Request.Context(), request.URLs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	loadTime := float64(time.Since(start).Milliseconds()) / float64(len(entries))
	succeeded := 0
	for i := range entries {
		entry := &entries[i]
		if !entry.Success {
			stats.TrackAnalysis(entry.URL, "", loadTime, true)
			continue
		}
		succeeded++
		stats.TrackAnalysis(entry.URL, entry.Result.LeadScore.Quality, loadTime, false)
		if _, err := reportStore.SaveReport(entry.Result); err != nil {
			log.Printf("Failed to persist report for %s: %v", entry.URL, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     len(entries),
		"succeeded": succeeded,
		"failed":    len(entries) - succeeded,
		"results":   entries,
	})
}
