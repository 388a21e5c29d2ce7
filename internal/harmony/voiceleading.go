package harmony

import (
	"fmt"

	"github.com/songcraft-labs/songcraft-api/internal/models"
	"github.com/songcraft-labs/songcraft-api/internal/theory"
)

// largeLeap is the largest melodic interval (in semitones) a voice can move
// between chords before it gets flagged. An octave is the usual line.
const largeLeap = 12

// CheckVoiceLeading voices each chord at the default octave and compares
// consecutive voicings voice by voice: two voices a fifth or an octave
// apart that move in parallel get a medium warning, and any single voice
// leaping more than an octave gets a low one. Warnings point at the second
// chord of the offending pair.
func CheckVoiceLeading(chords []theory.Chord) []models.Warning {
	voicings := theory.VoicingsForProgression(chords)

	var warnings []models.Warning
	for i := 0; i+1 < len(voicings); i++ {
		warnings = append(warnings, checkTransition(chords[i], chords[i+1], voicings[i], voicings[i+1], i+1)...)
	}
	return warnings
}

func checkTransition(from, to theory.Chord, prev, next []int, position int) []models.Warning {
	voices := len(prev)
	if len(next) < voices {
		voices = len(next)
	}

	var warnings []models.Warning
	flaggedFifths := false
	flaggedOctaves := false
	for a := 0; a < voices; a++ {
		for b := a + 1; b < voices; b++ {
			prevInterval := prev[b] - prev[a]
			nextInterval := next[b] - next[a]
			if prevInterval != nextInterval || prevInterval <= 0 {
				continue
			}
			if prev[a] == next[a] {
				// Oblique motion, both voices held their interval but
				// neither moved.
				continue
			}
			switch prevInterval % 12 {
			case 7:
				if !flaggedFifths {
					flaggedFifths = true
					warnings = append(warnings, models.Warning{
						Kind:          models.WarningVoiceLeading,
						Severity:      models.SeverityMedium,
						Message:       fmt.Sprintf("parallel fifths between %s and %s", from.Symbol, to.Symbol),
						PositionIndex: position,
						Suggestion:    "Move the inner voices in contrary motion",
					})
				}
			case 0:
				if !flaggedOctaves {
					flaggedOctaves = true
					warnings = append(warnings, models.Warning{
						Kind:          models.WarningVoiceLeading,
						Severity:      models.SeverityMedium,
						Message:       fmt.Sprintf("parallel octaves between %s and %s", from.Symbol, to.Symbol),
						PositionIndex: position,
						Suggestion:    "Move the inner voices in contrary motion",
					})
				}
			}
		}
	}

	for a := 0; a < voices; a++ {
		leap := next[a] - prev[a]
		if leap < 0 {
			leap = -leap
		}
		if leap > largeLeap {
			warnings = append(warnings, models.Warning{
				Kind:          models.WarningVoiceLeading,
				Severity:      models.SeverityLow,
				Message:       fmt.Sprintf("voice %d leaps %d semitones from %s to %s", a+1, leap, from.Symbol, to.Symbol),
				PositionIndex: position,
				Suggestion:    "Consider an inversion to smooth the line",
			})
		}
	}
	return warnings
}
