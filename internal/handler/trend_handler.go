package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/geotrend-go/internal/models"
	"github.com/jengzang/geotrend-go/internal/render"
	"github.com/jengzang/geotrend-go/pkg/response"
)

// TrendHandler serves the analysis result computed at startup.
type TrendHandler struct {
	result *models.Result
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(result *models.Result) *TrendHandler {
	return &TrendHandler{result: result}
}

// GetTrend handles GET /api/v1/trend
func (h *TrendHandler) GetTrend(c *gin.Context) {
	response.Success(c, h.result)
}

// GetPlot handles GET /api/v1/trend/plot
func (h *TrendHandler) GetPlot(c *gin.Context) {
	var buf bytes.Buffer
	if err := render.WritePNG(h.result, &buf); err != nil {
		response.InternalError(c, "Failed to render plot")
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
