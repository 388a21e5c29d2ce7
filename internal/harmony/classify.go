// Package harmony tags chords with their harmonic function relative to a
// key and builds reharmonization suggestions on top of those tags. All rule
// tables are scale-degree-relative: absolute pitch classes are derived by
// transposing from the active key's tonic at call time, so the same rules
// serve every supported key.
package harmony

import (
	"fmt"

	"github.com/songcraft-labs/songcraft-api/internal/models"
	"github.com/songcraft-labs/songcraft-api/internal/theory"
)

// FunctionKind is the classification bucket for a chord in context.
type FunctionKind string

const (
	FunctionDiatonic          FunctionKind = "diatonic"
	FunctionSecondaryDominant FunctionKind = "secondary_dominant"
	FunctionModalInterchange  FunctionKind = "modal_interchange"
	FunctionTritoneSub        FunctionKind = "tritone_substitution"
	FunctionUnclassified      FunctionKind = "unclassified"
)

// HarmonicFunction is the tag attached to one chord of a progression.
type HarmonicFunction struct {
	Kind  FunctionKind `json:"kind"`
	Label string       `json:"label,omitempty"`
	// Target is the resolution degree for secondary dominants ("V", "ii").
	Target string `json:"target,omitempty"`
	// Borrowed names the mode a modal-interchange chord comes from.
	Borrowed string `json:"borrowed,omitempty"`
	// SubstitutesFor names the dominant a tritone substitution stands in for.
	SubstitutesFor string `json:"substitutesFor,omitempty"`
}

// secondaryDominantRule relates a dominant root to its resolution target,
// both as semitone offsets from the tonic.
type secondaryDominantRule struct {
	dominantOffset int
	targetOffset   int
	targetDegree   string
}

// In C these read D7 to G, A7 to Dm, E7 to Am, B7 to Em.
var secondaryDominantRules = []secondaryDominantRule{
	{dominantOffset: 2, targetOffset: 7, targetDegree: "V"},
	{dominantOffset: 9, targetOffset: 2, targetDegree: "ii"},
	{dominantOffset: 4, targetOffset: 9, targetDegree: "vi"},
	{dominantOffset: 11, targetOffset: 4, targetDegree: "iii"},
}

// modalInterchangeRule describes a borrowed chord: where its root sits
// relative to the tonic, what triad class it must carry, and which diatonic
// degree it displaces when a reharm swaps it in.
type modalInterchangeRule struct {
	borrowedOffset  int
	borrowedClass   string
	numeral         string
	sourceMode      string
	displacesOffset int
}

var majorInterchangeRules = []modalInterchangeRule{
	{borrowedOffset: 10, borrowedClass: "maj", numeral: "bVII", sourceMode: "parallel minor", displacesOffset: 11},
	{borrowedOffset: 8, borrowedClass: "maj", numeral: "bVI", sourceMode: "parallel minor", displacesOffset: 9},
	{borrowedOffset: 3, borrowedClass: "maj", numeral: "bIII", sourceMode: "parallel minor", displacesOffset: 4},
	{borrowedOffset: 1, borrowedClass: "maj", numeral: "bII", sourceMode: "phrygian", displacesOffset: 2},
	{borrowedOffset: 5, borrowedClass: "min", numeral: "iv", sourceMode: "parallel minor", displacesOffset: 5},
}

var minorInterchangeRules = []modalInterchangeRule{
	{borrowedOffset: 0, borrowedClass: "maj", numeral: "I", sourceMode: "parallel major", displacesOffset: 0},
	{borrowedOffset: 5, borrowedClass: "maj", numeral: "IV", sourceMode: "dorian", displacesOffset: 5},
}

func interchangeRules(key theory.Key) []modalInterchangeRule {
	if key.Mode == theory.ModeMinor {
		return minorInterchangeRules
	}
	return majorInterchangeRules
}

const tritone = 6

// Classify tags every chord in the progression. Precedence: secondary
// dominant (needs the next chord to resolve), then tritone substitution,
// then modal interchange, then plain diatonic membership. Chords matching
// nothing come back Unclassified.
func Classify(chords []theory.Chord, key theory.Key) []HarmonicFunction {
	functions := make([]HarmonicFunction, len(chords))
	for i := range chords {
		var next *theory.Chord
		if i+1 < len(chords) {
			next = &chords[i+1]
		}
		functions[i] = classifyChord(chords[i], next, key)
	}
	return functions
}

func classifyChord(c theory.Chord, next *theory.Chord, key theory.Key) HarmonicFunction {
	if fn, ok := matchSecondaryDominant(c, next, key); ok {
		return fn
	}
	if fn, ok := matchTritoneSub(c, key); ok {
		return fn
	}
	if fn, ok := matchInterchange(c, key); ok {
		return fn
	}
	if key.ContainsChord(c) {
		return HarmonicFunction{Kind: FunctionDiatonic, Label: theory.RomanNumeral(c, key)}
	}
	return HarmonicFunction{Kind: FunctionUnclassified}
}

// matchSecondaryDominant requires a dominant-seventh quality (a maj7 never
// qualifies) and the following chord rooted on the rule's resolution target.
func matchSecondaryDominant(c theory.Chord, next *theory.Chord, key theory.Key) (HarmonicFunction, bool) {
	if !c.IsDominantSeventh() || next == nil {
		return HarmonicFunction{}, false
	}
	offset := key.Tonic.IntervalTo(c.Root)
	for _, rule := range secondaryDominantRules {
		if rule.dominantOffset != offset {
			continue
		}
		if next.Root != key.Tonic.Transpose(rule.targetOffset) {
			continue
		}
		return HarmonicFunction{
			Kind:   FunctionSecondaryDominant,
			Label:  "V7/" + rule.targetDegree,
			Target: rule.targetDegree,
		}, true
	}
	return HarmonicFunction{}, false
}

// matchTritoneSub looks for a dominant-seventh chord rooted a tritone from
// one of the key's dominants (the V or any secondary dominant).
func matchTritoneSub(c theory.Chord, key theory.Key) (HarmonicFunction, bool) {
	if !c.IsDominantSeventh() {
		return HarmonicFunction{}, false
	}
	offset := key.Tonic.IntervalTo(c.Root)
	for _, dominantOffset := range dominantOffsets() {
		if (dominantOffset+tritone)%12 != offset {
			continue
		}
		substituted := key.SpellPitch(key.Tonic.Transpose(dominantOffset)) + "7"
		return HarmonicFunction{
			Kind:           FunctionTritoneSub,
			Label:          "tritone sub of " + substituted,
			SubstitutesFor: substituted,
		}, true
	}
	return HarmonicFunction{}, false
}

// dominantOffsets lists the V plus every secondary-dominant root offset.
func dominantOffsets() []int {
	offsets := []int{7}
	for _, rule := range secondaryDominantRules {
		offsets = append(offsets, rule.dominantOffset)
	}
	return offsets
}

func matchInterchange(c theory.Chord, key theory.Key) (HarmonicFunction, bool) {
	offset := key.Tonic.IntervalTo(c.Root)
	for _, rule := range interchangeRules(key) {
		if rule.borrowedOffset != offset || rule.borrowedClass != c.TriadClass() {
			continue
		}
		return HarmonicFunction{
			Kind:     FunctionModalInterchange,
			Label:    "borrowed " + rule.numeral,
			Borrowed: rule.sourceMode,
		}, true
	}
	return HarmonicFunction{}, false
}

// CheckNonDiatonic emits a warning for every chord whose root falls outside
// the key's scale. Chords recognized as secondary dominants or modal
// interchange are downgraded to low-severity informational notes; everything
// else gets a medium warning.
func CheckNonDiatonic(chords []theory.Chord, key theory.Key) []models.Warning {
	functions := Classify(chords, key)

	var warnings []models.Warning
	for i, c := range chords {
		if key.IsDiatonic(c.Root) {
			continue
		}
		name := c.NameIn(key)
		switch functions[i].Kind {
		case FunctionSecondaryDominant:
			warnings = append(warnings, models.Warning{
				Kind:          models.WarningNonDiatonic,
				Severity:      models.SeverityLow,
				Message:       fmt.Sprintf("%s works as %s here, resolving to the %s chord", name, functions[i].Label, functions[i].Target),
				PositionIndex: i,
			})
		case FunctionModalInterchange:
			warnings = append(warnings, models.Warning{
				Kind:          models.WarningNonDiatonic,
				Severity:      models.SeverityLow,
				Message:       fmt.Sprintf("%s is %s from the %s", name, functions[i].Label, functions[i].Borrowed),
				PositionIndex: i,
			})
		default:
			warnings = append(warnings, models.Warning{
				Kind:          models.WarningNonDiatonic,
				Severity:      models.SeverityMedium,
				Message:       fmt.Sprintf("%s is outside %s", name, key.Describe()),
				PositionIndex: i,
				Suggestion:    fmt.Sprintf("Try a diatonic substitute or confirm the chromatic color in %s is intentional", key.Describe()),
			})
		}
	}
	return warnings
}
