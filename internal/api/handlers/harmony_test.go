package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songcraft-labs/songcraft-api/internal/models"
)

func setupHarmonyTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	router := gin.New()
	handler := NewHarmonyHandler(testConfig(), testMetrics(t))
	router.POST("/api/v1/harmony/analyze", handler.Analyze)
	router.POST("/api/v1/keys/suggest", handler.SuggestKey)
	return router
}

func TestHarmonyAnalyzeDiatonic(t *testing.T) {
	router := setupHarmonyTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/harmony/analyze", gin.H{
		"key":    "C",
		"chords": []string{"C", "Am", "F", "G"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, "C major", body["key"])

	chords, ok := body["chords"].([]any)
	require.True(t, ok)
	require.Len(t, chords, 4)

	romans := make([]string, 0, len(chords))
	for _, raw := range chords {
		entry, ok := raw.(map[string]any)
		require.True(t, ok)

		function, ok := entry["function"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "diatonic", function["kind"])

		romans = append(romans, entry["roman"].(string))
	}
	assert.Equal(t, []string{"I", "vi", "IV", "V"}, romans)

	warnings, ok := body["warnings"].([]any)
	if ok {
		for _, raw := range warnings {
			warning := raw.(map[string]any)
			assert.NotEqual(t, "non_diatonic", warning["kind"])
		}
	}
}

func TestHarmonyAnalyzeSecondaryDominant(t *testing.T) {
	router := setupHarmonyTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/harmony/analyze", gin.H{
		"key":    "C",
		"chords": []string{"C", "D7", "G", "C"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	chords, ok := body["chords"].([]any)
	require.True(t, ok)
	require.Len(t, chords, 4)

	d7, ok := chords[1].(map[string]any)
	require.True(t, ok)
	function, ok := d7["function"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "secondary_dominant", function["kind"])
	assert.Equal(t, "V7/V", function["label"])
	assert.Equal(t, "V", function["target"])

	// D7 resolving to G carries no medium non-diatonic warning.
	if warnings, ok := body["warnings"].([]any); ok {
		for _, raw := range warnings {
			warning := raw.(map[string]any)
			if warning["kind"] == "non_diatonic" {
				assert.NotEqual(t, "medium", warning["severity"])
			}
		}
	}
}

func TestHarmonyAnalyzeUnsupportedKey(t *testing.T) {
	router := setupHarmonyTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/harmony/analyze", gin.H{
		"key":    "C#",
		"chords": []string{"C#", "F#"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHarmonyAnalyzeInvalidChord(t *testing.T) {
	router := setupHarmonyTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/harmony/analyze", gin.H{
		"key":    "C",
		"chords": []string{"C", "Hm7"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHarmonyAnalyzeWithEvents(t *testing.T) {
	router := setupHarmonyTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/harmony/analyze", gin.H{
		"key": "C",
		"events": []models.ChordEvent{
			{ChordSymbol: "C", StartBeats: 0, DurationBeats: 8},
			{ChordSymbol: "G7", StartBeats: 8, DurationBeats: 4},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	chords, ok := body["chords"].([]any)
	require.True(t, ok)
	require.Len(t, chords, 2)

	g7 := chords[1].(map[string]any)
	assert.Equal(t, "V7", g7["roman"])
	assert.Equal(t, "57", g7["nashville"])
}

func TestKeySuggest(t *testing.T) {
	router := setupHarmonyTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/keys/suggest", gin.H{
		"chords": []string{"C", "Am", "F", "G"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, "C", body["key"])
	assert.Equal(t, "C major", body["name"])
	assert.Equal(t, float64(1), body["confidence"])
}

func TestKeySuggestMinor(t *testing.T) {
	router := setupHarmonyTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/keys/suggest", gin.H{
		"chords": []string{"Am", "F", "C", "G"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, "Am", body["key"])
}

func TestKeySuggestEmpty(t *testing.T) {
	router := setupHarmonyTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/v1/keys/suggest", gin.H{
		"chords": []string{},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.Equal(t, false, body["found"])
	assert.Equal(t, float64(0), body["confidence"])
}
