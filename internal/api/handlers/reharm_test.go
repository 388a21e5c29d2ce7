package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songcraft-labs/songcraft-api/internal/models"
	"github.com/songcraft-labs/songcraft-api/internal/versions"
)

func setupReharmTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	router := gin.New()
	handler := NewReharmHandler(testConfig(), versions.NewMemoryStore(), testMetrics(t))
	router.POST("/api/v1/reharm/suggestions", handler.Suggestions)
	router.POST("/api/v1/reharm/suggestions/stream", handler.SuggestionsStream)
	router.POST("/api/v1/reharm/apply", handler.Apply)
	router.GET("/api/v1/projects/:projectId/versions", handler.ListVersions)
	return router
}

func TestReharmSuggestions(t *testing.T) {
	router := setupReharmTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/reharm/suggestions", gin.H{
		"key":    "C",
		"chords": []string{"C", "Am", "F", "G"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	suggestions, ok := body["suggestions"].([]any)
	require.True(t, ok)
	require.Len(t, suggestions, 4, "one suggestion per strategy")

	confidences := make([]float64, 0, len(suggestions))
	for _, raw := range suggestions {
		suggestion, ok := raw.(map[string]any)
		require.True(t, ok)
		assert.NotEmpty(t, suggestion["id"])
		assert.NotEmpty(t, suggestion["description"])
		assert.NotEmpty(t, suggestion["progression"])
		confidences = append(confidences, suggestion["confidence"].(float64))
	}
	assert.Equal(t, []float64{0.8, 0.7, 0.6, 0.9}, confidences)
}

func TestReharmSuggestionsInsertsDominants(t *testing.T) {
	router := setupReharmTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/reharm/suggestions", gin.H{
		"key":    "C",
		"chords": []string{"C", "Am", "F", "G"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	suggestions := body["suggestions"].([]any)

	first := suggestions[0].(map[string]any)
	progression, ok := first["progression"].([]any)
	require.True(t, ok)
	require.Len(t, progression, 6, "E7 and D7 inserted before their targets")

	symbols := make([]string, 0, len(progression))
	for _, raw := range progression {
		event := raw.(map[string]any)
		symbols = append(symbols, event["chordSymbol"].(string))
	}
	assert.Equal(t, []string{"C", "E7", "Am", "F", "D7", "G"}, symbols)
}

func TestReharmSuggestionsStream(t *testing.T) {
	router := setupReharmTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/reharm/suggestions/stream", gin.H{
		"key":    "C",
		"chords": []string{"C", "G7"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	var events []map[string]any
	for _, line := range strings.Split(w.Body.String(), "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var event map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event))
		events = append(events, event)
	}

	require.Len(t, events, 5, "four strategy events and one done event")
	for _, event := range events[:4] {
		assert.Equal(t, "suggestion", event["type"])
		suggestion, ok := event["suggestion"].(map[string]any)
		require.True(t, ok)
		assert.NotEmpty(t, suggestion["id"])
	}

	done := events[4]
	assert.Equal(t, "done", done["type"])
	assert.Equal(t, float64(4), done["count"])
}

func TestReharmSuggestionsEmptyProgression(t *testing.T) {
	router := setupReharmTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/reharm/suggestions", gin.H{
		"key":    "C",
		"chords": []string{},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Empty(t, body["suggestions"])
}

func TestReharmApplyAndListVersions(t *testing.T) {
	router := setupReharmTestRouter(t)

	apply := performJSON(t, router, http.MethodPost, "/api/v1/reharm/apply", gin.H{
		"projectId":    "project-7",
		"key":          "C",
		"label":        "tritone pass",
		"suggestionId": "11111111-2222-3333-4444-555555555555",
		"progression": []models.ChordEvent{
			{ChordSymbol: "C", StartBeats: 0, DurationBeats: 4},
			{ChordSymbol: "Db7", StartBeats: 4, DurationBeats: 4},
		},
	})
	require.Equal(t, http.StatusOK, apply.Code)

	applyBody := decodeJSON(t, apply)
	version, ok := applyBody["version"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, version["id"])
	assert.Equal(t, "tritone pass", version["label"])

	list := performJSON(t, router, http.MethodGet, "/api/v1/projects/project-7/versions", nil)
	require.Equal(t, http.StatusOK, list.Code)

	listBody := decodeJSON(t, list)
	listed, ok := listBody["versions"].([]any)
	require.True(t, ok)
	require.Len(t, listed, 1)

	stored := listed[0].(map[string]any)
	assert.Equal(t, version["id"], stored["id"])
	assert.Equal(t, "C", stored["key"])
}

func TestReharmApplyValidation(t *testing.T) {
	router := setupReharmTestRouter(t)

	// Missing projectId
	w := performJSON(t, router, http.MethodPost, "/api/v1/reharm/apply", gin.H{
		"key": "C",
		"progression": []models.ChordEvent{
			{ChordSymbol: "C", StartBeats: 0, DurationBeats: 4},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unparseable chord symbol
	w = performJSON(t, router, http.MethodPost, "/api/v1/reharm/apply", gin.H{
		"projectId": "project-7",
		"key":       "C",
		"progression": []models.ChordEvent{
			{ChordSymbol: "Xyz", StartBeats: 0, DurationBeats: 4},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Negative duration
	w = performJSON(t, router, http.MethodPost, "/api/v1/reharm/apply", gin.H{
		"projectId": "project-7",
		"key":       "C",
		"progression": []models.ChordEvent{
			{ChordSymbol: "C", StartBeats: 0, DurationBeats: -4},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
