package models

import "fmt"

// NoteEvent represents a single melody note. Start and Duration are in
// seconds from the beginning of the phrase.
type NoteEvent struct {
	Pitch    int     `json:"pitch"`
	Velocity int     `json:"velocity"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// ChordEvent represents a chord symbol with timing information in beats.
type ChordEvent struct {
	ChordSymbol   string  `json:"chordSymbol"`
	StartBeats    float64 `json:"startBeats"`
	DurationBeats float64 `json:"durationBeats"`
}

// ValidateNotes rejects structurally malformed note lists before analysis.
// Empty lists are fine; negative timing is not.
func ValidateNotes(notes []NoteEvent) error {
	for i, n := range notes {
		if n.Start < 0 {
			return fmt.Errorf("note %d: negative start time %.3f", i, n.Start)
		}
		if n.Duration < 0 {
			return fmt.Errorf("note %d: negative duration %.3f", i, n.Duration)
		}
	}
	return nil
}

// ValidateChordEvents rejects chord lists with negative timing.
func ValidateChordEvents(chords []ChordEvent) error {
	for i, ch := range chords {
		if ch.StartBeats < 0 {
			return fmt.Errorf("chord %d (%s): negative start %.3f", i, ch.ChordSymbol, ch.StartBeats)
		}
		if ch.DurationBeats < 0 {
			return fmt.Errorf("chord %d (%s): negative duration %.3f", i, ch.ChordSymbol, ch.DurationBeats)
		}
	}
	return nil
}
