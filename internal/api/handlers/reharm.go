package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/songcraft-labs/songcraft-api/internal/config"
	"github.com/songcraft-labs/songcraft-api/internal/harmony"
	"github.com/songcraft-labs/songcraft-api/internal/logger"
	"github.com/songcraft-labs/songcraft-api/internal/metrics"
	"github.com/songcraft-labs/songcraft-api/internal/models"
	"github.com/songcraft-labs/songcraft-api/internal/theory"
	"github.com/songcraft-labs/songcraft-api/internal/versions"
)

// Global metrics instance
var sentryMetrics = metrics.NewSentryMetrics()

type ReharmHandler struct {
	cfg   *config.Config
	store versions.Store
	cw    *metrics.Client
}

func NewReharmHandler(cfg *config.Config, store versions.Store, cw *metrics.Client) *ReharmHandler {
	return &ReharmHandler{
		cfg:   cfg,
		store: store,
		cw:    cw,
	}
}

// SuggestionPayload is the wire form of one reharmonization suggestion.
type SuggestionPayload struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	Progression []models.ChordEvent `json:"progression"`
	Complexity  string              `json:"complexity"`
	StyleTag    string              `json:"styleTag"`
	Confidence  float64             `json:"confidence"`
}

func suggestionPayload(s harmony.ReharmSuggestion) SuggestionPayload {
	return SuggestionPayload{
		ID:          s.ID,
		Description: s.Description,
		Progression: eventsFromChords(s.Progression),
		Complexity:  string(s.Complexity),
		StyleTag:    s.StyleTag,
		Confidence:  s.Confidence,
	}
}

// Suggestions runs every reharmonization strategy over the progression and
// returns the full set at once.
func (h *ReharmHandler) Suggestions(c *gin.Context) {
	var req ProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key, ok := requireKey(c, req.Key)
	if !ok {
		return
	}

	chords, err := req.progression()
	if err != nil {
		respondChordError(c, err)
		return
	}

	start := time.Now()
	suggestions := harmony.GenerateSuggestions(chords, key)

	payloads := make([]SuggestionPayload, len(suggestions))
	for i, suggestion := range suggestions {
		payloads[i] = suggestionPayload(suggestion)
	}

	duration := time.Since(start)
	sentryMetrics.RecordSuggestionGeneration(c.Request.Context(), duration, len(payloads))
	h.cw.RecordSuggestions(duration, len(payloads))

	c.JSON(http.StatusOK, gin.H{
		"key":         key.Describe(),
		"suggestions": payloads,
	})
}

// SuggestionsStream is Suggestions over SSE: one event per strategy, then
// a final done event.
func (h *ReharmHandler) SuggestionsStream(c *gin.Context) {
	var req ProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key, ok := requireKey(c, req.Key)
	if !ok {
		return
	}

	chords, err := req.progression()
	if err != nil {
		respondChordError(c, err)
		return
	}

	// Set headers for SSE
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable nginx buffering
	c.Header("X-Request-ID", c.GetString("request_id"))

	// Flush headers
	c.Writer.Flush()

	start := time.Now()
	suggestions := harmony.GenerateSuggestions(chords, key)
	for _, suggestion := range suggestions {
		event := gin.H{
			"type":       "suggestion",
			"suggestion": suggestionPayload(suggestion),
		}
		eventJSON, err := json.Marshal(event)
		if err != nil {
			logger.Error("Failed to marshal suggestion event", err, logger.WithContext(c))
			continue
		}

		_, _ = fmt.Fprintf(c.Writer, "data: %s\n\n", eventJSON)
		c.Writer.Flush()
	}

	// Send final completion event
	finalEvent := gin.H{
		"type":       "done",
		"request_id": c.GetString("request_id"),
		"count":      len(suggestions),
	}
	eventJSON, _ := json.Marshal(finalEvent)
	_, _ = fmt.Fprintf(c.Writer, "data: %s\n\n", eventJSON)
	c.Writer.Flush()

	h.cw.RecordSuggestions(time.Since(start), len(suggestions))
}

type ReharmApplyRequest struct {
	ProjectID    string              `json:"projectId" binding:"required"`
	Key          string              `json:"key" binding:"required"`
	Label        string              `json:"label"`
	SuggestionID string              `json:"suggestionId"`
	Progression  []models.ChordEvent `json:"progression" binding:"required"`
}

// Apply tags the chosen progression as a new version of the project. The
// engine never mutates project state itself; this is the one write path.
func (h *ReharmHandler) Apply(c *gin.Context) {
	var req ReharmApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := requireKey(c, req.Key); !ok {
		return
	}

	if err := models.ValidateChordEvents(req.Progression); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, event := range req.Progression {
		if _, err := theory.ParseChord(event.ChordSymbol); err != nil {
			respondChordError(c, err)
			return
		}
	}

	label := req.Label
	if label == "" {
		label = defaultVersionLabel
	}

	version, err := h.store.Save(c.Request.Context(), versions.Version{
		ProjectID: req.ProjectID,
		Label:     label,
		Key:       req.Key,
		Chords:    req.Progression,
	})
	if err != nil {
		logger.Error("Failed to tag version", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to tag version"})
		return
	}

	sentryMetrics.RecordCustomMetric("version_tagged", map[string]interface{}{
		"project_id":    req.ProjectID,
		"suggestion_id": req.SuggestionID,
		"chords":        len(req.Progression),
	})

	c.JSON(http.StatusOK, gin.H{"version": version})
}

// ListVersions returns the versions tagged for a project.
func (h *ReharmHandler) ListVersions(c *gin.Context) {
	projectID := c.Param("projectId")

	listed, err := h.store.List(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list versions", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list versions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projectId": projectID,
		"versions":  listed,
	})
}
