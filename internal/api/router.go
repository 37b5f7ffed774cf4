package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/geotrend-go/internal/config"
	"github.com/jengzang/geotrend-go/internal/handler"
	"github.com/jengzang/geotrend-go/internal/middleware"
	"github.com/jengzang/geotrend-go/internal/models"
)

// SetupRouter wires the HTTP routes for serve mode.
func SetupRouter(cfg *config.Config, result *models.Result) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "geotrend API is running",
		})
	})

	trendHandler := handler.NewTrendHandler(result)

	api := r.Group("/api/v1")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		trend := api.Group("/trend")
		{
			trend.GET("", trendHandler.GetTrend)
			trend.GET("/plot", trendHandler.GetPlot)
		}
	}

	return r
}
