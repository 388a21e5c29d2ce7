package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/songcraft-labs/songcraft-api/internal/config"
	"github.com/songcraft-labs/songcraft-api/internal/metrics"
	"github.com/songcraft-labs/songcraft-api/internal/models"
	"github.com/songcraft-labs/songcraft-api/internal/theory"
)

type ChartsHandler struct {
	cfg *config.Config
	cw  *metrics.Client
}

func NewChartsHandler(cfg *config.Config, cw *metrics.Client) *ChartsHandler {
	return &ChartsHandler{
		cfg: cfg,
		cw:  cw,
	}
}

type ChartRenderRequest struct {
	Key    string              `json:"key"`
	Chords []string            `json:"chords"`
	Events []models.ChordEvent `json:"events"`
	Format string              `json:"format"`
}

// Render lays the progression out as a plain-text chart in the requested
// format. Charts are derived fresh from chords and key, never stored.
func (h *ChartsHandler) Render(c *gin.Context) {
	var req ChartRenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := keyOrFallback(c, req.Key, h.cfg.DefaultKey, h.cw)

	chords, err := ProgressionRequest{Chords: req.Chords, Events: req.Events}.progression()
	if err != nil {
		respondChordError(c, err)
		return
	}

	format := theory.ChartFormat(req.Format)
	if format == "" {
		format = theory.ChartSymbols
	}

	chart, err := theory.RenderChart(chords, key, format)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":    key.Describe(),
		"format": string(format),
		"chart":  chart,
	})
}
