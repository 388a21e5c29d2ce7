package handlers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/songcraft-labs/songcraft-api/internal/config"
	"github.com/songcraft-labs/songcraft-api/internal/harmony"
	"github.com/songcraft-labs/songcraft-api/internal/logger"
	"github.com/songcraft-labs/songcraft-api/internal/metrics"
	"github.com/songcraft-labs/songcraft-api/internal/models"
	"github.com/songcraft-labs/songcraft-api/internal/prosody"
)

type ProsodyHandler struct {
	cfg *config.Config
	cw  *metrics.Client
}

func NewProsodyHandler(cfg *config.Config, cw *metrics.Client) *ProsodyHandler {
	return &ProsodyHandler{
		cfg: cfg,
		cw:  cw,
	}
}

type ProsodyCheckRequest struct {
	Lyrics         string              `json:"lyrics"`
	Notes          []models.NoteEvent  `json:"notes"`
	Tempo          float64             `json:"tempo"`
	Key            string              `json:"key"`
	Chords         []string            `json:"chords"`
	Events         []models.ChordEvent `json:"events"`
	RhythmTemplate string              `json:"rhythmTemplate"`
}

type ProsodyCheckResponse struct {
	Key      string           `json:"key"`
	Warnings []models.Warning `json:"warnings"`
}

// Check aggregates every prosody and harmony warning pass that the request
// gives us material for: stress/beat clashes from lyrics plus notes,
// non-diatonic and voice-leading warnings from chords, rhythm conflicts
// from a named template. Unsupported keys fall back to the configured
// default rather than failing the whole check.
func (h *ProsodyHandler) Check(c *gin.Context) {
	var req ProsodyCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := models.ValidateNotes(req.Notes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := keyOrFallback(c, req.Key, h.cfg.DefaultKey, h.cw)

	start := time.Now()
	warnings := []models.Warning{}
	if req.Tempo > 0 {
		warnings = append(warnings, prosody.CheckClashesAtTempo(req.Lyrics, req.Notes, req.Tempo)...)
	} else {
		warnings = append(warnings, prosody.CheckClashes(req.Lyrics, req.Notes)...)
	}

	if len(req.Chords) > 0 || len(req.Events) > 0 {
		chords, err := ProgressionRequest{Chords: req.Chords, Events: req.Events}.progression()
		if err != nil {
			respondChordError(c, err)
			return
		}
		warnings = append(warnings, harmony.CheckNonDiatonic(chords, key)...)
		warnings = append(warnings, harmony.CheckVoiceLeading(chords)...)
	}

	if req.RhythmTemplate != "" {
		template, ok := prosody.GetTemplate(req.RhythmTemplate)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": fmt.Sprintf("unknown rhythm template %q", req.RhythmTemplate),
			})
			return
		}
		tempo := prosody.ClampTempo(req.Tempo)
		onsets := template.Expand(barsToCover(req.Notes, template, tempo), tempo)
		warnings = append(warnings, prosody.CheckRhythmConflicts(req.Notes, onsets)...)
	}

	logger.LogAnalysisRequest(c.Request.Context(), opProsodyCheck, time.Since(start), logger.Fields{
		"request_id": c.GetString("request_id"),
		"key":        key.String(),
		"notes":      len(req.Notes),
		"warnings":   len(warnings),
	})
	h.cw.RecordAnalysis(opProsodyCheck, len(warnings))

	c.JSON(http.StatusOK, ProsodyCheckResponse{
		Key:      key.String(),
		Warnings: warnings,
	})
}

// barsToCover sizes a template expansion so its onsets span every note.
func barsToCover(notes []models.NoteEvent, template prosody.RhythmTemplate, bpm float64) int {
	maxEnd := 0.0
	for _, note := range notes {
		if end := note.Start + note.Duration; end > maxEnd {
			maxEnd = end
		}
	}

	secondsPerBar := template.CycleBeats * 60 / bpm
	bars := int(math.Ceil(maxEnd / secondsPerBar))
	if bars < 1 {
		bars = 1
	}
	return bars
}

// ListRhythmTemplates returns every rhythm template, in name order.
func (h *ProsodyHandler) ListRhythmTemplates(c *gin.Context) {
	names := prosody.TemplateNames()
	templates := make([]prosody.RhythmTemplate, 0, len(names))
	for _, name := range names {
		if template, ok := prosody.GetTemplate(name); ok {
			templates = append(templates, template)
		}
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}
