package prosody

import (
	"strings"

	"gonum.org/v1/gonum/stat"
)

// MeterAnalysis is the metric reading of a lyric: the feet as glyph
// strings, the concatenated pattern, and a 0..1 regularity score.
type MeterAnalysis struct {
	Pattern     string   `json:"pattern"`
	Feet        []string `json:"feet"`
	Regularity  float64  `json:"regularity"`
	Suggestions []string `json:"suggestions"`
}

// Word glyphs: one syllable reads as a short mark, two as short+long,
// three or more as short+long+long.
const (
	glyphShort = "u"
	glyphLong  = "-"
)

const (
	regularityThreshold = 0.7
	minFeetForStructure = 4
)

// Fixed suggestion texts, pinned by tests.
const (
	suggestionSteadierFeet = "Try keeping a steadier syllable count from foot to foot"
	suggestionReadAloud    = "Read the lines aloud and tap the pulse to hear where the meter stumbles"
	suggestionMoreLines    = "Add more lines to establish a clearer metric structure"
)

// AnalyzeMeter groups each line's words pairwise into feet and scores how
// regular the foot lengths are. A partial foot at the end of a line is
// kept. Empty text scores a trivial regularity of 1.
func AnalyzeMeter(text string) MeterAnalysis {
	var feet []string
	for _, line := range strings.Split(strings.ToLower(text), "\n") {
		words := wordPattern.FindAllString(line, -1)
		for i := 0; i < len(words); i += 2 {
			foot := syllableGlyphs(words[i])
			if i+1 < len(words) {
				foot += syllableGlyphs(words[i+1])
			}
			feet = append(feet, foot)
		}
	}

	analysis := MeterAnalysis{
		Pattern:    strings.Join(feet, " "),
		Feet:       feet,
		Regularity: footRegularity(feet),
	}
	if analysis.Regularity < regularityThreshold {
		analysis.Suggestions = append(analysis.Suggestions, suggestionSteadierFeet, suggestionReadAloud)
	}
	if len(feet) < minFeetForStructure {
		analysis.Suggestions = append(analysis.Suggestions, suggestionMoreLines)
	}
	return analysis
}

func syllableGlyphs(word string) string {
	switch countSyllables(word) {
	case 1:
		return glyphShort
	case 2:
		return glyphShort + glyphLong
	default:
		return glyphShort + glyphLong + glyphLong
	}
}

// footRegularity is 1 - variance/mean of the foot lengths, clamped to
// [0,1]. One foot or none is trivially regular.
func footRegularity(feet []string) float64 {
	if len(feet) <= 1 {
		return 1
	}
	lengths := make([]float64, len(feet))
	for i, foot := range feet {
		lengths[i] = float64(len(foot))
	}
	mean := stat.Mean(lengths, nil)
	variance := stat.Variance(lengths, nil)
	return clamp01(1 - variance/mean)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
