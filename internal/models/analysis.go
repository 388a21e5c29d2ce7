package models

// WarningKind identifies which analyzer produced a warning.
type WarningKind string

const (
	WarningProsodyClash   WarningKind = "prosody_clash"
	WarningNonDiatonic    WarningKind = "non_diatonic"
	WarningVoiceLeading   WarningKind = "voice_leading"
	WarningRhythmConflict WarningKind = "rhythm_conflict"
)

// Severity levels for analysis warnings
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Warning is a single analysis finding tied to a position in the input
// (a token index for lyric checks, a chord index for harmonic checks).
type Warning struct {
	Kind          WarningKind `json:"kind"`
	Severity      Severity    `json:"severity"`
	Message       string      `json:"message"`
	PositionIndex int         `json:"positionIndex"`
	Suggestion    string      `json:"suggestion,omitempty"`
}
