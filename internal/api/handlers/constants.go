package handlers

const (
	// Metric operation labels
	opLyricsAnalyze  = "lyrics_analyze"
	opProsodyCheck   = "prosody_check"
	opHarmonyAnalyze = "harmony_analyze"
	opKeySuggest     = "key_suggest"

	// Version labels
	defaultVersionLabel = "reharmonization"
)
