package theory

import (
	"strconv"
	"strings"
)

// chromaticNumerals maps semitone offsets from the tonic to roman degree
// names, spelled against the major scale. Offsets outside the scale use
// flat alterations, matching how borrowed chords (bVII, bVI, bIII, bII)
// read on charts. Case is applied afterwards from the chord quality.
var chromaticNumerals = [semitonesPerOctave]string{
	"I", "bII", "II", "bIII", "III", "IV", "bV", "V", "bVI", "VI", "bVII", "VII",
}

// chromaticDegrees maps semitone offsets to Nashville degree names.
var chromaticDegrees = [semitonesPerOctave]string{
	"1", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7",
}

// RomanNumeral renders a chord as a roman numeral relative to the key's
// tonic: lowercase for minor and diminished triads, with the usual quality
// suffixes (V7, ii7, viiø7, bVII).
func RomanNumeral(c Chord, key Key) string {
	offset := key.Tonic.IntervalTo(c.Root)
	numeral := chromaticNumerals[offset]
	if class := c.TriadClass(); class == "min" || class == "dim" {
		numeral = strings.ToLower(numeral)
	}
	return numeral + numeralSuffix(c)
}

// NashvilleNumber renders a chord as a Nashville degree relative to the
// key's tonic, keeping the same quality suffixes as the symbol form.
func NashvilleNumber(c Chord, key Key) string {
	offset := key.Tonic.IntervalTo(c.Root)
	return chromaticDegrees[offset] + nashvilleSuffix(c)
}

func numeralSuffix(c Chord) string {
	var suffix string
	switch c.Quality {
	case QualityMajor, QualityMinor:
		suffix = ""
	case QualityDim:
		suffix = "°"
	case QualityDim7:
		suffix = "°7"
	case QualityHalfDim:
		suffix = "ø7"
	case QualityAug:
		suffix = "+"
	case QualityDom7, QualityMin7:
		suffix = "7"
	case QualityMaj7:
		suffix = "maj7"
	default:
		suffix = string(c.Quality)
	}
	return suffix + extensionSuffix(c)
}

func nashvilleSuffix(c Chord) string {
	var suffix string
	switch c.Quality {
	case QualityMajor:
		suffix = ""
	case QualityMinor:
		suffix = "m"
	case QualityMin7:
		suffix = "m7"
	case QualityDim:
		suffix = "°"
	case QualityDim7:
		suffix = "°7"
	case QualityHalfDim:
		suffix = "ø7"
	case QualityAug:
		suffix = "+"
	case QualityDom7:
		suffix = "7"
	default:
		suffix = string(c.Quality)
	}
	return suffix + extensionSuffix(c)
}

func extensionSuffix(c Chord) string {
	if len(c.Extensions) == 0 {
		return ""
	}
	parts := make([]string, len(c.Extensions))
	for i, ext := range c.Extensions {
		parts[i] = strconv.Itoa(ext)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
