package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/songcraft-labs/songcraft-api/internal/config"
	"github.com/songcraft-labs/songcraft-api/internal/logger"
	"github.com/songcraft-labs/songcraft-api/internal/metrics"
	"github.com/songcraft-labs/songcraft-api/internal/prosody"
)

type LyricsHandler struct {
	cfg *config.Config
	cw  *metrics.Client
}

func NewLyricsHandler(cfg *config.Config, cw *metrics.Client) *LyricsHandler {
	return &LyricsHandler{
		cfg: cfg,
		cw:  cw,
	}
}

type LyricsAnalyzeRequest struct {
	Text string `json:"text"`
}

type LyricsAnalyzeResponse struct {
	Syllables []prosody.SyllableToken `json:"syllables"`
	Meter     prosody.MeterAnalysis   `json:"meter"`
	Rhymes    []prosody.RhymeGroup    `json:"rhymes"`
}

// Analyze runs syllable, meter and rhyme analysis over a lyric in one pass.
// Empty text is fine and returns an empty analysis.
func (h *LyricsHandler) Analyze(c *gin.Context) {
	var req LyricsAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	response := LyricsAnalyzeResponse{
		Syllables: prosody.AnalyzeSyllables(req.Text),
		Meter:     prosody.AnalyzeMeter(req.Text),
		Rhymes:    prosody.AnalyzeRhymes(req.Text),
	}

	logger.LogAnalysisRequest(c.Request.Context(), opLyricsAnalyze, time.Since(start), logger.Fields{
		"request_id": c.GetString("request_id"),
		"words":      len(response.Syllables),
		"feet":       len(response.Meter.Feet),
		"rhymes":     len(response.Rhymes),
	})
	h.cw.RecordAnalysis(opLyricsAnalyze, len(response.Meter.Suggestions))

	c.JSON(http.StatusOK, response)
}
