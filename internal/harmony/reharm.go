package harmony

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/songcraft-labs/songcraft-api/internal/theory"
)

// Complexity buckets a suggestion for filtering in clients.
type Complexity string

const (
	ComplexityBasic        Complexity = "basic"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
)

// ReharmSuggestion is one alternative progression. Suggestions are immutable
// once generated; applying one replaces the active progression wholesale.
type ReharmSuggestion struct {
	ID          string
	Description string
	Progression []theory.Chord
	Complexity  Complexity
	StyleTag    string
	Confidence  float64
}

// Fixed per-strategy confidence scores. These are coarse editorial
// heuristics, not fit metrics.
const (
	confidenceSecondaryDominant = 0.8
	confidenceModalInterchange  = 0.7
	confidenceTritoneSub        = 0.6
	confidenceExtendedHarmony   = 0.9
)

// GenerateSuggestions runs the four reharm strategies independently and
// concatenates their results without deduplication. A strategy with nothing
// to say still contributes its suggestion carrying the unmodified
// progression. Empty input produces an empty list.
func GenerateSuggestions(chords []theory.Chord, key theory.Key) []ReharmSuggestion {
	if len(chords) == 0 {
		return []ReharmSuggestion{}
	}
	return []ReharmSuggestion{
		insertSecondaryDominants(chords, key),
		borrowFromParallelModes(chords, key),
		substituteTritones(chords, key),
		extendHarmony(chords, key),
	}
}

// insertSecondaryDominants places a V7 in front of the first chord rooted on
// each rule's resolution target. The inserted dominant takes half the
// target's duration and pushes the target's start back by the same amount.
func insertSecondaryDominants(chords []theory.Chord, key theory.Key) ReharmSuggestion {
	type insertion struct {
		before   int
		dominant theory.Chord
	}

	var insertions []insertion
	for _, rule := range secondaryDominantRules {
		target := key.Tonic.Transpose(rule.targetOffset)
		idx := firstWithRoot(chords, target)
		if idx < 0 {
			continue
		}
		half := chords[idx].DurationBeats / 2
		dominant := theory.Chord{
			Root:          key.Tonic.Transpose(rule.dominantOffset),
			Quality:       theory.QualityDom7,
			StartBeats:    chords[idx].StartBeats,
			DurationBeats: half,
		}
		dominant.Symbol = dominant.NameIn(key)
		insertions = append(insertions, insertion{before: idx, dominant: dominant})
	}
	sort.Slice(insertions, func(i, j int) bool { return insertions[i].before < insertions[j].before })

	result := make([]theory.Chord, 0, len(chords)+len(insertions))
	var described []string
	next := 0
	for i, c := range chords {
		for next < len(insertions) && insertions[next].before == i {
			result = append(result, insertions[next].dominant)
			described = append(described, fmt.Sprintf("%s into %s", insertions[next].dominant.Symbol, c.NameIn(key)))
			c.StartBeats += insertions[next].dominant.DurationBeats
			next++
		}
		result = append(result, cloneChord(c))
	}
	reindex(result)

	description := "No secondary dominant targets in this progression"
	if len(described) > 0 {
		description = "Insert secondary dominants: " + strings.Join(described, ", ")
	}
	return ReharmSuggestion{
		ID:          uuid.New().String(),
		Description: description,
		Progression: result,
		Complexity:  ComplexityIntermediate,
		StyleTag:    "functional",
		Confidence:  confidenceSecondaryDominant,
	}
}

// borrowFromParallelModes swaps the first chord on each displaced degree for
// its borrowed replacement, keeping position and duration.
func borrowFromParallelModes(chords []theory.Chord, key theory.Key) ReharmSuggestion {
	result := cloneProgression(chords)

	var described []string
	for _, rule := range interchangeRules(key) {
		displaced := key.Tonic.Transpose(rule.displacesOffset)
		idx := firstWithRoot(chords, displaced)
		if idx < 0 {
			continue
		}
		borrowed := theory.Chord{
			Root:          key.Tonic.Transpose(rule.borrowedOffset),
			Quality:       borrowedQuality(rule.borrowedClass),
			Position:      result[idx].Position,
			StartBeats:    result[idx].StartBeats,
			DurationBeats: result[idx].DurationBeats,
		}
		borrowed.Symbol = borrowed.NameIn(key)
		if borrowed.Symbol == chords[idx].Symbol {
			// Already the borrowed chord, nothing to replace.
			continue
		}
		described = append(described, fmt.Sprintf("%s replaces %s", borrowed.Symbol, chords[idx].NameIn(key)))
		result[idx] = borrowed
	}

	description := "No modal interchange candidates in this progression"
	if len(described) > 0 {
		description = fmt.Sprintf("Borrow from the %s: %s", borrowSource(key), strings.Join(described, ", "))
	}
	return ReharmSuggestion{
		ID:          uuid.New().String(),
		Description: description,
		Progression: result,
		Complexity:  ComplexityIntermediate,
		StyleTag:    "modal color",
		Confidence:  confidenceModalInterchange,
	}
}

func borrowedQuality(class string) theory.Quality {
	if class == "min" {
		return theory.QualityMinor
	}
	return theory.QualityMajor
}

func borrowSource(key theory.Key) string {
	if key.Mode == theory.ModeMinor {
		return "parallel major"
	}
	return "parallel minor"
}

// substituteTritones moves every dominant-seventh chord's root a tritone
// away, preserving quality, extensions, and timing. Applying the strategy
// twice restores the original roots.
func substituteTritones(chords []theory.Chord, key theory.Key) ReharmSuggestion {
	result := cloneProgression(chords)

	var described []string
	for i, c := range result {
		if !c.IsDominantSeventh() {
			continue
		}
		moved := c.WithRoot(c.Root.Transpose(tritone))
		moved.Symbol = moved.NameIn(key)
		described = append(described, fmt.Sprintf("%s for %s", moved.Symbol, c.NameIn(key)))
		result[i] = moved
	}

	description := "No dominant sevenths to substitute"
	if len(described) > 0 {
		description = "Tritone substitutions: " + strings.Join(described, ", ")
	}
	return ReharmSuggestion{
		ID:          uuid.New().String(),
		Description: description,
		Progression: result,
		Complexity:  ComplexityAdvanced,
		StyleTag:    "jazz",
		Confidence:  confidenceTritoneSub,
	}
}

// extensionsByQuality is the extension set attached per quality by the
// extended-harmony strategy. Roots and qualities stay untouched.
var extensionsByQuality = map[theory.Quality][]int{
	theory.QualityMaj7: {9, 13},
	theory.QualityMin7: {9, 11},
	theory.QualityDom7: {9, 11, 13},
}

func extendHarmony(chords []theory.Chord, key theory.Key) ReharmSuggestion {
	result := cloneProgression(chords)

	extended := 0
	for i, c := range result {
		additions, ok := extensionsByQuality[c.Quality]
		if !ok {
			continue
		}
		for _, ext := range additions {
			c.Extensions = appendUniqueExtension(c.Extensions, ext)
		}
		c.Symbol = c.NameIn(key)
		result[i] = c
		extended++
	}

	description := "No seventh chords to extend"
	if extended > 0 {
		description = fmt.Sprintf("Add upper extensions to %d chord(s) for a lusher texture", extended)
	}
	return ReharmSuggestion{
		ID:          uuid.New().String(),
		Description: description,
		Progression: result,
		Complexity:  ComplexityBasic,
		StyleTag:    "lush",
		Confidence:  confidenceExtendedHarmony,
	}
}

func appendUniqueExtension(extensions []int, ext int) []int {
	for _, e := range extensions {
		if e == ext {
			return extensions
		}
	}
	return append(extensions, ext)
}

func firstWithRoot(chords []theory.Chord, root theory.PitchClass) int {
	for i, c := range chords {
		if c.Root == root {
			return i
		}
	}
	return -1
}

func cloneChord(c theory.Chord) theory.Chord {
	clone := c
	clone.Extensions = append([]int(nil), c.Extensions...)
	if c.Bass != nil {
		bass := *c.Bass
		clone.Bass = &bass
	}
	return clone
}

func cloneProgression(chords []theory.Chord) []theory.Chord {
	result := make([]theory.Chord, len(chords))
	for i, c := range chords {
		result[i] = cloneChord(c)
	}
	return result
}

func reindex(chords []theory.Chord) {
	for i := range chords {
		chords[i].Position = i
	}
}
