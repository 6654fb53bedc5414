package routes

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feedbacklens/feedbacklens/internal/handlers"
	"github.com/feedbacklens/feedbacklens/internal/pipeline"
)

// requestID tags every response so log lines can be correlated with
// client reports.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Request-ID", uuid.NewString())
		c.Next()
	}
}

func SetupRouter(p *pipeline.Pipeline) *gin.Engine {
	r := gin.Default()

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(requestID())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the FeedbackLens sentiment API",
		})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeText(c, p)
		})
		api.POST("/analyze-file", func(c *gin.Context) {
			handlers.AnalyzeFile(c, p)
		})
	}

	return r
}
