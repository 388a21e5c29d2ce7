package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/songcraft-labs/songcraft-api/internal/logger"
	"github.com/songcraft-labs/songcraft-api/internal/metrics"
	"github.com/songcraft-labs/songcraft-api/internal/models"
	"github.com/songcraft-labs/songcraft-api/internal/theory"
)

// ProgressionRequest is the common shape for endpoints that read a chord
// progression. Chords carries bare symbols with default timing; Events
// carries symbols with explicit beat positions and wins when both are set.
type ProgressionRequest struct {
	Key    string              `json:"key"`
	Chords []string            `json:"chords"`
	Events []models.ChordEvent `json:"events"`
}

func (r ProgressionRequest) progression() ([]theory.Chord, error) {
	if len(r.Events) > 0 {
		if err := models.ValidateChordEvents(r.Events); err != nil {
			return nil, err
		}
		chords := make([]theory.Chord, 0, len(r.Events))
		for i, event := range r.Events {
			chord, err := theory.ParseChord(event.ChordSymbol)
			if err != nil {
				return nil, err
			}
			chord.Position = i
			chord.StartBeats = event.StartBeats
			chord.DurationBeats = event.DurationBeats
			chords = append(chords, chord)
		}
		return chords, nil
	}
	return theory.ParseProgression(r.Chords)
}

// eventsFromChords converts engine chords back to wire events.
func eventsFromChords(chords []theory.Chord) []models.ChordEvent {
	events := make([]models.ChordEvent, len(chords))
	for i, chord := range chords {
		events[i] = models.ChordEvent{
			ChordSymbol:   chord.Symbol,
			StartBeats:    chord.StartBeats,
			DurationBeats: chord.DurationBeats,
		}
	}
	return events
}

// respondChordError maps invalid chord symbols to 422 and structural
// problems to 400.
func respondChordError(c *gin.Context, err error) {
	var invalidChord *theory.InvalidChordError
	if errors.As(err, &invalidChord) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalidChord.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// requireKey parses a key name or answers 422. Endpoints whose analysis is
// meaningless against the wrong tonic use this instead of the fallback.
func requireKey(c *gin.Context, name string) (theory.Key, bool) {
	key, err := theory.ParseKey(name)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return theory.Key{}, false
	}
	return key, true
}

// keyOrFallback parses a key name, substituting the configured default for
// unsupported keys. The substitution is logged and counted; an empty name
// takes the default silently.
func keyOrFallback(c *gin.Context, name, defaultKey string, cw *metrics.Client) theory.Key {
	fallback, err := theory.ParseKey(defaultKey)
	if err != nil {
		fallback = theory.MustKey("C")
	}

	if name == "" {
		return fallback
	}

	key, err := theory.ParseKey(name)
	if err == nil {
		return key
	}

	logger.Warn("Unsupported key, falling back", logger.Fields{
		"request_id": c.GetString("request_id"),
		"requested":  name,
		"fallback":   fallback.String(),
	})
	if cw != nil {
		cw.RecordKeyFallback(name)
	}
	return fallback
}
