package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultOctave is the octave chords are voiced at when the caller has no
// opinion. Octave 4 keeps triads in the comping register.
const DefaultOctave = 4

const (
	midiMin = 0
	midiMax = 127
)

// qualityIntervals holds the semitone stack above the root for each chord
// quality.
var qualityIntervals = map[Quality][]int{
	QualityMajor:   {0, 4, 7},
	QualityMinor:   {0, 3, 7},
	QualityDim:     {0, 3, 6},
	QualityDim7:    {0, 3, 6, 9},
	QualityHalfDim: {0, 3, 6, 10},
	QualityAug:     {0, 4, 8},
	QualityDom7:    {0, 4, 7, 10},
	QualityMaj7:    {0, 4, 7, 11},
	QualityMin7:    {0, 3, 7, 10},
	QualitySus2:    {0, 2, 7},
	QualitySus4:    {0, 5, 7},
}

// extensionIntervals places extensions in the octave above the seventh.
var extensionIntervals = map[int]int{
	9:  14,
	11: 17,
	13: 21,
}

// Voicing builds the ascending MIDI pitches for a chord at the given
// octave. The root lands at octave*12 + pitch class, a slash bass is
// prepended an octave below, and anything outside the MIDI range is
// dropped.
func Voicing(c Chord, octave int) []int {
	intervals, ok := qualityIntervals[c.Quality]
	if !ok {
		intervals = qualityIntervals[QualityMajor]
	}

	base := octave*semitonesPerOctave + int(c.Root)
	notes := make([]int, 0, len(intervals)+len(c.Extensions)+1)

	if c.Bass != nil {
		notes = appendInRange(notes, (octave-1)*semitonesPerOctave+int(*c.Bass))
	}
	for _, interval := range intervals {
		notes = appendInRange(notes, base+interval)
	}
	for _, ext := range c.Extensions {
		if interval, ok := extensionIntervals[ext]; ok {
			notes = appendInRange(notes, base+interval)
		}
	}
	return notes
}

func appendInRange(notes []int, pitch int) []int {
	if pitch < midiMin || pitch > midiMax {
		return notes
	}
	return append(notes, pitch)
}

// VoicingsForProgression voices every chord in a progression at the default
// octave, preserving order.
func VoicingsForProgression(chords []Chord) [][]int {
	voicings := make([][]int, len(chords))
	for i, c := range chords {
		voicings[i] = Voicing(c, DefaultOctave)
	}
	return voicings
}

// NoteNameToMIDI converts a scientific note name like "C4" or "F#3" to its
// MIDI number using the standard mapping (C4 = 60).
func NoteNameToMIDI(name string) (int, error) {
	s := strings.TrimSpace(name)
	if len(s) < 2 {
		return 0, fmt.Errorf("note name too short: %q", name)
	}

	split := 1
	if s[1] == '#' || s[1] == 'b' {
		split = 2
	}
	if split >= len(s) {
		return 0, fmt.Errorf("note name missing octave: %q", name)
	}

	pc, err := ParsePitchClass(s[:split])
	if err != nil {
		return 0, fmt.Errorf("note name %q: %w", name, err)
	}
	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return 0, fmt.Errorf("note name %q: bad octave: %w", name, err)
	}

	midi := (octave+1)*semitonesPerOctave + int(pc)
	if midi < midiMin || midi > midiMax {
		return 0, fmt.Errorf("note name %q: out of MIDI range", name)
	}
	return midi, nil
}

// MIDIPitchClass reduces a MIDI number to its pitch class.
func MIDIPitchClass(midi int) PitchClass {
	pc := midi % semitonesPerOctave
	if pc < 0 {
		pc += semitonesPerOctave
	}
	return PitchClass(pc)
}
