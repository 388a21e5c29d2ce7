// Package prosody analyzes lyric text: syllables and stress, meter, rhyme
// groups, and the alignment of stressed syllables against melody rhythm.
// The analyzers are heuristics tuned for songwriting feedback, not
// linguistically exact tools, and every function is a pure transform of its
// input.
package prosody

import (
	"regexp"
	"strings"
)

// Stress is the per-word stress level assigned by the placeholder stress
// policy.
type Stress string

const (
	StressPrimary    Stress = "primary"
	StressSecondary  Stress = "secondary"
	StressUnstressed Stress = "unstressed"
)

// SyllableToken is one word of the lyric with its syllable count and
// assigned stress. PositionIndex counts words across the whole text.
type SyllableToken struct {
	Word          string `json:"word"`
	SyllableCount int    `json:"syllableCount"`
	Stress        Stress `json:"stress"`
	PositionIndex int    `json:"positionIndex"`
}

var wordPattern = regexp.MustCompile(`[a-z0-9']+`)

var vowelRuns = regexp.MustCompile(`[aeiouy]+`)

const shortWordLen = 3

// AnalyzeSyllables tokenizes the text and assigns each word a syllable
// count and stress. Empty text yields an empty slice.
func AnalyzeSyllables(text string) []SyllableToken {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]SyllableToken, 0, len(words))
	for i, word := range words {
		tokens = append(tokens, SyllableToken{
			Word:          word,
			SyllableCount: countSyllables(word),
			Stress:        stressFor(word, i),
			PositionIndex: i,
		})
	}
	return tokens
}

// countSyllables counts vowel-cluster runs, dropping one count for a
// trailing silent "e". A word never counts less than one syllable. This is
// a spelling heuristic, not dictionary syllabification.
func countSyllables(word string) int {
	count := len(vowelRuns.FindAllString(word, -1))
	if count > 1 && strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// stressFor applies the placeholder stress policy: short words are
// unstressed, longer words alternate primary and secondary by word
// position. A phonetic stress lexicon would replace this.
func stressFor(word string, position int) Stress {
	if len(word) <= shortWordLen {
		return StressUnstressed
	}
	if position%2 == 0 {
		return StressPrimary
	}
	return StressSecondary
}
