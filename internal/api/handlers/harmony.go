package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/songcraft-labs/songcraft-api/internal/config"
	"github.com/songcraft-labs/songcraft-api/internal/harmony"
	"github.com/songcraft-labs/songcraft-api/internal/logger"
	"github.com/songcraft-labs/songcraft-api/internal/metrics"
	"github.com/songcraft-labs/songcraft-api/internal/models"
	"github.com/songcraft-labs/songcraft-api/internal/theory"
)

type HarmonyHandler struct {
	cfg *config.Config
	cw  *metrics.Client
}

func NewHarmonyHandler(cfg *config.Config, cw *metrics.Client) *HarmonyHandler {
	return &HarmonyHandler{
		cfg: cfg,
		cw:  cw,
	}
}

// HarmonyEntry is one chord of the analyzed progression with its numeral
// readings and harmonic function.
type HarmonyEntry struct {
	Chord     string                   `json:"chord"`
	Roman     string                   `json:"roman"`
	Nashville string                   `json:"nashville"`
	Function  harmony.HarmonicFunction `json:"function"`
}

type HarmonyAnalyzeResponse struct {
	Key      string           `json:"key"`
	Chords   []HarmonyEntry   `json:"chords"`
	Warnings []models.Warning `json:"warnings"`
}

// Analyze classifies a progression against its key and reports the
// non-diatonic and voice-leading warnings alongside. The key is required
// here: numerals against the wrong tonic would be worse than an error.
func (h *HarmonyHandler) Analyze(c *gin.Context) {
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
	functions := harmony.Classify(chords, key)

	entries := make([]HarmonyEntry, len(chords))
	for i, chord := range chords {
		entries[i] = HarmonyEntry{
			Chord:     chord.NameIn(key),
			Roman:     theory.RomanNumeral(chord, key),
			Nashville: theory.NashvilleNumber(chord, key),
			Function:  functions[i],
		}
	}

	warnings := harmony.CheckNonDiatonic(chords, key)
	warnings = append(warnings, harmony.CheckVoiceLeading(chords)...)

	logger.LogAnalysisRequest(c.Request.Context(), opHarmonyAnalyze, time.Since(start), logger.Fields{
		"request_id": c.GetString("request_id"),
		"key":        key.String(),
		"chords":     len(chords),
		"warnings":   len(warnings),
	})
	h.cw.RecordAnalysis(opHarmonyAnalyze, len(warnings))

	c.JSON(http.StatusOK, HarmonyAnalyzeResponse{
		Key:      key.Describe(),
		Chords:   entries,
		Warnings: warnings,
	})
}

type KeySuggestRequest struct {
	Chords []string            `json:"chords"`
	Events []models.ChordEvent `json:"events"`
}

type KeySuggestResponse struct {
	Found      bool    `json:"found"`
	Key        string  `json:"key,omitempty"`
	Name       string  `json:"name,omitempty"`
	Confidence float64 `json:"confidence"`
}

// SuggestKey picks the supported key that best covers the progression,
// weighting each chord by its duration.
func (h *HarmonyHandler) SuggestKey(c *gin.Context) {
	var req KeySuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chords, err := ProgressionRequest{Chords: req.Chords, Events: req.Events}.progression()
	if err != nil {
		respondChordError(c, err)
		return
	}

	key, confidence, found := theory.SuggestKey(chords)
	response := KeySuggestResponse{Found: found, Confidence: confidence}
	if found {
		response.Key = key.String()
		response.Name = key.Describe()
	}

	h.cw.RecordAnalysis(opKeySuggest, 0)

	c.JSON(http.StatusOK, response)
}
