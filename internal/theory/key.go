package theory

import (
	"fmt"
	"strings"
)

// Mode distinguishes major keys from their natural-minor relatives.
type Mode string

const (
	ModeMajor Mode = "major"
	ModeMinor Mode = "minor"
)

const scaleDegrees = 7

// UnsupportedKeyError is returned when a key is outside the supported set.
// The engine never falls back on its own; callers that degrade to C major
// must do so explicitly and log it.
type UnsupportedKeyError struct {
	Key string
}

func (e *UnsupportedKeyError) Error() string {
	return fmt.Sprintf("unsupported key: %q (supported: %s major keys and their relative minors)",
		e.Key, strings.Join(majorKeyOrder, ", "))
}

// Key is a tonic pitch class plus a mode. The zero value is not a valid key;
// construct one with ParseKey or MustKey.
type Key struct {
	Tonic PitchClass
	Mode  Mode

	// name is the canonical table entry ("Eb", "F#m") used for spelling.
	name string
}

// The twelve major keys the engine supports, in circle-of-fifths order from
// the sharp side. Spellings follow each key's signature (F# major carries
// E#, the flat keys carry flats).
var majorKeyOrder = []string{"C", "G", "D", "A", "E", "B", "F#", "F", "Bb", "Eb", "Ab", "Db"}

var majorScaleNames = map[string][scaleDegrees]string{
	"C":  {"C", "D", "E", "F", "G", "A", "B"},
	"G":  {"G", "A", "B", "C", "D", "E", "F#"},
	"D":  {"D", "E", "F#", "G", "A", "B", "C#"},
	"A":  {"A", "B", "C#", "D", "E", "F#", "G#"},
	"E":  {"E", "F#", "G#", "A", "B", "C#", "D#"},
	"B":  {"B", "C#", "D#", "E", "F#", "G#", "A#"},
	"F#": {"F#", "G#", "A#", "B", "C#", "D#", "E#"},
	"F":  {"F", "G", "A", "Bb", "C", "D", "E"},
	"Bb": {"Bb", "C", "D", "Eb", "F", "G", "A"},
	"Eb": {"Eb", "F", "G", "Ab", "Bb", "C", "D"},
	"Ab": {"Ab", "Bb", "C", "Db", "Eb", "F", "G"},
	"Db": {"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"},
}

// relativeMinors maps each supported minor tonic name to its relative major.
var relativeMinors = map[string]string{
	"Am":  "C",
	"Em":  "G",
	"Bm":  "D",
	"F#m": "A",
	"C#m": "E",
	"G#m": "B",
	"D#m": "F#",
	"Dm":  "F",
	"Gm":  "Bb",
	"Cm":  "Eb",
	"Fm":  "Ab",
	"Bbm": "Db",
}

// Offset of the relative minor tonic above its major tonic (degree 6).
const relativeMinorOffset = 9

// ParseKey parses key names like "C", "F#", "Bb major", "Am", "g minor".
// Unknown keys return *UnsupportedKeyError.
func ParseKey(name string) (Key, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return Key{}, &UnsupportedKeyError{Key: name}
	}

	// Uppercase the tonic letter so "bb minor" and "Bb minor" agree.
	s = strings.ToUpper(s[:1]) + s[1:]

	mode := ModeMajor
	switch {
	case strings.HasSuffix(s, " major"):
		s = strings.TrimSuffix(s, " major")
	case strings.HasSuffix(s, "maj"):
		s = strings.TrimSuffix(s, "maj")
	case strings.HasSuffix(s, " minor"):
		s = strings.TrimSuffix(s, " minor")
		mode = ModeMinor
	case strings.HasSuffix(s, "min"):
		s = strings.TrimSuffix(s, "min")
		mode = ModeMinor
	case strings.HasSuffix(s, "m"):
		s = strings.TrimSuffix(s, "m")
		mode = ModeMinor
	}
	s = strings.TrimSpace(s)

	if mode == ModeMinor {
		minorName := s + "m"
		if _, ok := relativeMinors[minorName]; !ok {
			return Key{}, &UnsupportedKeyError{Key: name}
		}
		tonic, err := ParsePitchClass(s)
		if err != nil {
			return Key{}, &UnsupportedKeyError{Key: name}
		}
		return Key{Tonic: tonic, Mode: ModeMinor, name: minorName}, nil
	}

	if _, ok := majorScaleNames[s]; !ok {
		return Key{}, &UnsupportedKeyError{Key: name}
	}
	tonic, err := ParsePitchClass(s)
	if err != nil {
		return Key{}, &UnsupportedKeyError{Key: name}
	}
	return Key{Tonic: tonic, Mode: ModeMajor, name: s}, nil
}

// MustKey is ParseKey for known-good literals in tests and defaults.
func MustKey(name string) Key {
	k, err := ParseKey(name)
	if err != nil {
		panic(err)
	}
	return k
}

// SupportedKeys lists every accepted key name, majors first.
func SupportedKeys() []string {
	keys := make([]string, 0, len(majorKeyOrder)*2)
	keys = append(keys, majorKeyOrder...)
	for _, major := range majorKeyOrder {
		keys = append(keys, relativeMinorName(major))
	}
	return keys
}

func relativeMinorName(major string) string {
	for minor, maj := range relativeMinors {
		if maj == major {
			return minor
		}
	}
	return ""
}

// ScaleNames returns the seven scale-degree spellings for the key, in
// degree order. Minor keys rotate their relative major's spellings so the
// signature is preserved (G minor reads Bb and Eb, not A# and D#).
func (k Key) ScaleNames() []string {
	if k.Mode == ModeMinor {
		major := majorScaleNames[relativeMinors[k.name]]
		names := make([]string, scaleDegrees)
		// The minor tonic sits on degree 6 of the relative major.
		for i := 0; i < scaleDegrees; i++ {
			names[i] = major[(i+5)%scaleDegrees]
		}
		return names
	}

	major := majorScaleNames[k.name]
	names := make([]string, scaleDegrees)
	copy(names, major[:])
	return names
}

// DiatonicScale returns the key's seven pitch classes in degree order.
func (k Key) DiatonicScale() []PitchClass {
	names := k.ScaleNames()
	scale := make([]PitchClass, len(names))
	for i, n := range names {
		pc, err := ParsePitchClass(n)
		if err != nil {
			// Scale tables only contain parseable names.
			panic(fmt.Sprintf("bad scale table entry %q: %v", n, err))
		}
		scale[i] = pc
	}
	return scale
}

// IsDiatonic reports whether the pitch class belongs to the key's scale.
func (k Key) IsDiatonic(pc PitchClass) bool {
	for _, d := range k.DiatonicScale() {
		if d == pc {
			return true
		}
	}
	return false
}

// SpellPitch renders a pitch class the way this key would write it: scale
// members use their degree spelling, chromatic notes spell flat. The flat
// fallback matches how the chromatic degrees read on charts (bII, bIII,
// bVI, bVII), which is where out-of-key roots almost always come from.
func (k Key) SpellPitch(pc PitchClass) string {
	names := k.ScaleNames()
	for i, d := range k.DiatonicScale() {
		if d == pc {
			return names[i]
		}
	}
	return flatNames[int(pc)%semitonesPerOctave]
}

// RelativeMajor returns the relative major of a minor key, or the key itself
// when already major.
func (k Key) RelativeMajor() Key {
	if k.Mode == ModeMajor {
		return k
	}
	name := relativeMinors[k.name]
	return Key{Tonic: k.Tonic.Transpose(-relativeMinorOffset + semitonesPerOctave), Mode: ModeMajor, name: name}
}

// RelativeMinor returns the relative minor of a major key, or the key itself
// when already minor.
func (k Key) RelativeMinor() Key {
	if k.Mode == ModeMinor {
		return k
	}
	name := relativeMinorName(k.name)
	return Key{Tonic: k.Tonic.Transpose(relativeMinorOffset), Mode: ModeMinor, name: name}
}

// String renders the canonical key name ("Eb", "F#m").
func (k Key) String() string {
	if k.name != "" {
		return k.name
	}
	if k.Mode == ModeMinor {
		return k.Tonic.String() + "m"
	}
	return k.Tonic.String()
}

// Describe renders the long form used in charts and log lines ("Eb major").
func (k Key) Describe() string {
	tonic := strings.TrimSuffix(k.String(), "m")
	return tonic + " " + string(k.Mode)
}
