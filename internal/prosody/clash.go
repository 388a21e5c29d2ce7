package prosody

import (
	"fmt"
	"math"

	"github.com/songcraft-labs/songcraft-api/internal/models"
)

// The strong-beat test assumes 4/4. CheckClashes always runs at
// ReferenceBPM regardless of the project tempo; CheckClashesAtTempo exists
// for callers that want the actual tempo instead.
const (
	ReferenceBPM = 120.0

	strongBeatTolerance = 0.1
	beatsPerBar         = 4.0
)

// rhythmTolerance is how far (in seconds) a melody note may sit from the
// nearest rhythm onset before it counts as a conflict.
const rhythmTolerance = 0.1

// Tempo bounds for user-supplied BPM values.
const (
	MinTempo = 60.0
	MaxTempo = 200.0
)

// CheckClashes pairs melody notes with syllable tokens by index and flags
// stress/beat mismatches at the fixed reference tempo.
func CheckClashes(lyrics string, notes []models.NoteEvent) []models.Warning {
	return CheckClashesAtTempo(lyrics, notes, ReferenceBPM)
}

// CheckClashesAtTempo is CheckClashes with an explicit tempo, clamped to
// the supported range. Notes and syllables are paired position by position,
// not time-aligned; trailing unpaired notes or syllables are ignored.
// A primary-stress syllable off a strong beat, or an unstressed syllable on
// one, produces a warning.
func CheckClashesAtTempo(lyrics string, notes []models.NoteEvent, bpm float64) []models.Warning {
	bpm = ClampTempo(bpm)
	tokens := AnalyzeSyllables(lyrics)

	pairs := len(tokens)
	if len(notes) < pairs {
		pairs = len(notes)
	}

	var warnings []models.Warning
	for i := 0; i < pairs; i++ {
		strong := onStrongBeat(notes[i].Start, bpm)
		switch {
		case tokens[i].Stress == StressPrimary && !strong:
			warnings = append(warnings, models.Warning{
				Kind:          models.WarningProsodyClash,
				Severity:      models.SeverityMedium,
				Message:       fmt.Sprintf("stressed syllable %q lands off the strong beat at %.2fs", tokens[i].Word, notes[i].Start),
				PositionIndex: i,
				Suggestion:    "Shift the note onto beat 1 or 3, or pick a word stressed elsewhere",
			})
		case tokens[i].Stress == StressUnstressed && strong:
			warnings = append(warnings, models.Warning{
				Kind:          models.WarningProsodyClash,
				Severity:      models.SeverityLow,
				Message:       fmt.Sprintf("unstressed syllable %q lands on a strong beat at %.2fs", tokens[i].Word, notes[i].Start),
				PositionIndex: i,
				Suggestion:    "Let a stressed word carry this beat instead",
			})
		}
	}
	return warnings
}

// onStrongBeat reports whether a time in seconds lands near beat 1 or 3 of
// a 4/4 bar at the given tempo.
func onStrongBeat(timeSeconds, bpm float64) bool {
	beat := math.Mod(timeSeconds*bpm/60, beatsPerBar)
	return beat < strongBeatTolerance || math.Abs(beat-2) < strongBeatTolerance
}

// ClampTempo bounds a BPM value to the supported range; zero or negative
// values fall back to the reference tempo.
func ClampTempo(bpm float64) float64 {
	if bpm <= 0 {
		return ReferenceBPM
	}
	if bpm < MinTempo {
		return MinTempo
	}
	if bpm > MaxTempo {
		return MaxTempo
	}
	return bpm
}

// CheckRhythmConflicts flags every melody note with no rhythm onset within
// the tolerance window. An empty onset list means no rhythm was provided
// and produces no warnings.
func CheckRhythmConflicts(notes []models.NoteEvent, onsets []Onset) []models.Warning {
	if len(onsets) == 0 {
		return nil
	}

	var warnings []models.Warning
	for i, note := range notes {
		if nearestOnset(note.Start, onsets) <= rhythmTolerance {
			continue
		}
		warnings = append(warnings, models.Warning{
			Kind:          models.WarningRhythmConflict,
			Severity:      models.SeverityLow,
			Message:       fmt.Sprintf("note at %.2fs has no rhythm event within %.1fs", note.Start, rhythmTolerance),
			PositionIndex: i,
			Suggestion:    "Nudge the note onto the pattern or thin the pattern out",
		})
	}
	return warnings
}

func nearestOnset(timeSeconds float64, onsets []Onset) float64 {
	nearest := math.Inf(1)
	for _, onset := range onsets {
		d := math.Abs(onset.Time - timeSeconds)
		if d < nearest {
			nearest = d
		}
	}
	return nearest
}
