// Package theory implements the chord, scale, and key primitives the
// analyzers are built on. Everything here is a pure function of its inputs:
// pitch classes are semitone integers, display spellings are derived per
// key, and nothing is cached between calls.
package theory

import (
	"fmt"
	"strings"
)

// PitchClass is a semitone 0-11 with C = 0. Enharmonic spellings (F# and Gb)
// compare equal; spelling only matters when rendering for a key.
type PitchClass int

const semitonesPerOctave = 12

var sharpNames = [semitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var flatNames = [semitonesPerOctave]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// Semitone offsets of the natural note letters from C
var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParsePitchClass parses a note name such as "C", "F#", "Bb", or "E#"
// into its pitch class. Any number of trailing accidentals is accepted so
// spellings like E# (F# major) and Cb resolve correctly.
func ParsePitchClass(name string) (PitchClass, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return 0, fmt.Errorf("empty note name")
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	offset, ok := letterOffsets[letter]
	if !ok {
		return 0, fmt.Errorf("invalid note letter: %q", s)
	}

	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '#':
			offset++
		case 'b':
			offset--
		default:
			return 0, fmt.Errorf("invalid accidental in note name: %q", s)
		}
	}

	return PitchClass((offset%semitonesPerOctave + semitonesPerOctave) % semitonesPerOctave), nil
}

// Transpose moves the pitch class by the given number of semitones,
// wrapping within the octave.
func (pc PitchClass) Transpose(semitones int) PitchClass {
	v := (int(pc) + semitones) % semitonesPerOctave
	if v < 0 {
		v += semitonesPerOctave
	}
	return PitchClass(v)
}

// IntervalTo returns the upward interval in semitones from pc to other (0-11).
func (pc PitchClass) IntervalTo(other PitchClass) int {
	return (int(other) - int(pc) + semitonesPerOctave) % semitonesPerOctave
}

// String renders the pitch class with sharp spelling. Use Key.SpellPitch for
// key-aware spelling.
func (pc PitchClass) String() string {
	return sharpNames[int(pc)%semitonesPerOctave]
}
