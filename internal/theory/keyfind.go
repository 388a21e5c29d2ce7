package theory

import "gonum.org/v1/gonum/stat"

// ContainsChord reports whether every chord tone (triad plus any seventh)
// sits inside the key's scale. Extensions are ignored: a 9 or 13 is color,
// not a key signal.
func (k Key) ContainsChord(c Chord) bool {
	intervals, ok := qualityIntervals[c.Quality]
	if !ok {
		intervals = qualityIntervals[QualityMajor]
	}
	for _, interval := range intervals {
		if !k.IsDiatonic(c.Root.Transpose(interval)) {
			return false
		}
	}
	return true
}

// SuggestKey scores every supported key (majors and their relative minors)
// against a progression and returns the best fit with a 0..1 confidence,
// the duration-weighted fraction of chords that are diatonic to it.
// Ties go to the key whose tonic opens the progression, majors ahead of
// minors otherwise. Empty input returns ok=false.
func SuggestKey(chords []Chord) (Key, float64, bool) {
	if len(chords) == 0 {
		return Key{}, 0, false
	}

	var (
		best      Key
		bestScore = -1.0
	)
	for _, key := range candidateKeys() {
		score := diatonicFit(key, chords)
		if betterFit(key, score, best, bestScore, chords[0]) {
			best, bestScore = key, score
		}
	}
	return best, bestScore, true
}

// candidateKeys lists majors first so they win plain ties.
func candidateKeys() []Key {
	names := SupportedKeys()
	keys := make([]Key, 0, len(names))
	for _, name := range names {
		keys = append(keys, MustKey(name))
	}
	return keys
}

func diatonicFit(key Key, chords []Chord) float64 {
	indicators := make([]float64, len(chords))
	weights := make([]float64, len(chords))
	for i, c := range chords {
		if key.ContainsChord(c) {
			indicators[i] = 1
		}
		weight := c.DurationBeats
		if weight <= 0 {
			weight = defaultChordBeats
		}
		weights[i] = weight
	}
	return stat.Mean(indicators, weights)
}

func betterFit(candidate Key, candidateScore float64, incumbent Key, incumbentScore float64, first Chord) bool {
	if candidateScore != incumbentScore {
		return candidateScore > incumbentScore
	}
	return tonicOpens(candidate, first) && !tonicOpens(incumbent, first)
}

// tonicOpens reports whether the progression's first chord states the
// candidate tonic in the candidate mode.
func tonicOpens(key Key, first Chord) bool {
	if key.Tonic != first.Root {
		return false
	}
	switch first.TriadClass() {
	case "min":
		return key.Mode == ModeMinor
	case "maj", "sus":
		return key.Mode == ModeMajor
	default:
		return false
	}
}
