package theory

import (
	"fmt"
	"strings"
)

// Quality is the chord quality family. Extensions (9/11/13) are carried
// separately so a quality never encodes an inconsistent extension.
type Quality string

const (
	QualityMajor    Quality = "maj"
	QualityMinor    Quality = "min"
	QualityDim      Quality = "dim"
	QualityDim7     Quality = "dim7"
	QualityHalfDim  Quality = "m7b5"
	QualityAug      Quality = "aug"
	QualityDom7     Quality = "7"
	QualityMaj7     Quality = "maj7"
	QualityMin7     Quality = "min7"
	QualitySus2     Quality = "sus2"
	QualitySus4     Quality = "sus4"
)

// InvalidChordError reports a chord symbol the parser could not make sense
// of, with the offending fragment.
type InvalidChordError struct {
	Symbol string
	Reason string
}

func (e *InvalidChordError) Error() string {
	return fmt.Sprintf("invalid chord %q: %s", e.Symbol, e.Reason)
}

// Chord is a parsed chord with its place in a progression. Roman numerals
// and Nashville numbers are derived from (Chord, Key) on demand, never
// stored here.
type Chord struct {
	Symbol        string
	Root          PitchClass
	Bass          *PitchClass
	Quality       Quality
	Extensions    []int
	Position      int
	StartBeats    float64
	DurationBeats float64
}

const defaultChordBeats = 4

// ParseChord parses symbols like "C", "Em", "D7", "Cmaj7", "Am7", "Fm7b5",
// "Bdim7", "Gsus4", "C9", and slash chords like "Em/G".
func ParseChord(symbol string) (Chord, error) {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return Chord{}, &InvalidChordError{Symbol: symbol, Reason: "empty symbol"}
	}

	base := s
	var bass *PitchClass
	if idx := strings.Index(s, "/"); idx > 0 {
		base = strings.TrimSpace(s[:idx])
		bassName := strings.TrimSpace(s[idx+1:])
		pc, err := ParsePitchClass(bassName)
		if err != nil {
			return Chord{}, &InvalidChordError{Symbol: symbol, Reason: "bad bass note " + bassName}
		}
		bass = &pc
	}

	rootName := base[:1]
	if len(base) > 1 && (base[1] == '#' || base[1] == 'b') {
		rootName = base[:2]
	}
	root, err := ParsePitchClass(rootName)
	if err != nil {
		return Chord{}, &InvalidChordError{Symbol: symbol, Reason: "bad root " + rootName}
	}

	quality, extensions, err := parseQuality(symbol, base[len(rootName):])
	if err != nil {
		return Chord{}, err
	}

	return Chord{
		Symbol:        s,
		Root:          root,
		Bass:          bass,
		Quality:       quality,
		Extensions:    extensions,
		DurationBeats: defaultChordBeats,
	}, nil
}

// parseQuality consumes the symbol after the root. Prefix checks run most
// specific first so "maj7" is never shredded by the bare-"m" minor check.
func parseQuality(symbol, rest string) (Quality, []int, error) {
	quality := QualityMajor

	switch {
	case rest == "":
		quality = QualityMajor
	case strings.HasPrefix(rest, "maj7"):
		quality, rest = QualityMaj7, rest[4:]
	case strings.HasPrefix(rest, "maj9"):
		return QualityMaj7, []int{9}, nil
	case strings.HasPrefix(rest, "maj"):
		quality, rest = QualityMajor, rest[3:]
	case strings.HasPrefix(rest, "m7b5"):
		quality, rest = QualityHalfDim, rest[4:]
	case strings.HasPrefix(rest, "min7"):
		quality, rest = QualityMin7, rest[4:]
	case strings.HasPrefix(rest, "m7"):
		quality, rest = QualityMin7, rest[2:]
	case strings.HasPrefix(rest, "dim7"):
		quality, rest = QualityDim7, rest[4:]
	case strings.HasPrefix(rest, "dim"):
		quality, rest = QualityDim, rest[3:]
	case strings.HasPrefix(rest, "aug"):
		quality, rest = QualityAug, rest[3:]
	case strings.HasPrefix(rest, "sus2"):
		quality, rest = QualitySus2, rest[4:]
	case strings.HasPrefix(rest, "sus4"):
		quality, rest = QualitySus4, rest[4:]
	case strings.HasPrefix(rest, "sus"):
		quality, rest = QualitySus4, rest[3:]
	case strings.HasPrefix(rest, "min"):
		quality, rest = QualityMinor, rest[3:]
	case strings.HasPrefix(rest, "m"):
		quality, rest = QualityMinor, rest[1:]
	case strings.HasPrefix(rest, "7"):
		quality, rest = QualityDom7, rest[1:]
	case strings.HasPrefix(rest, "13"):
		return QualityDom7, []int{13}, nil
	case strings.HasPrefix(rest, "11"):
		return QualityDom7, []int{11}, nil
	case strings.HasPrefix(rest, "9"):
		return QualityDom7, []int{9}, nil
	}

	extensions, err := parseExtensions(symbol, rest)
	if err != nil {
		return quality, nil, err
	}
	return quality, extensions, nil
}

func parseExtensions(symbol, rest string) ([]int, error) {
	var extensions []int
	for rest != "" {
		rest = strings.TrimLeft(rest, "(),")
		switch {
		case rest == "":
		case strings.HasPrefix(rest, "add13"), strings.HasPrefix(rest, "13"):
			extensions = appendExtension(extensions, 13)
			rest = strings.TrimPrefix(strings.TrimPrefix(rest, "add"), "13")
		case strings.HasPrefix(rest, "add11"), strings.HasPrefix(rest, "11"):
			extensions = appendExtension(extensions, 11)
			rest = strings.TrimPrefix(strings.TrimPrefix(rest, "add"), "11")
		case strings.HasPrefix(rest, "add9"), strings.HasPrefix(rest, "9"):
			extensions = appendExtension(extensions, 9)
			rest = strings.TrimPrefix(strings.TrimPrefix(rest, "add"), "9")
		default:
			return nil, &InvalidChordError{Symbol: symbol, Reason: "unrecognized quality fragment " + rest}
		}
	}
	return extensions, nil
}

func appendExtension(extensions []int, ext int) []int {
	for _, e := range extensions {
		if e == ext {
			return extensions
		}
	}
	return append(extensions, ext)
}

// ParseProgression parses a chord symbol list into a progression with dense
// positions and default one-bar durations laid end to end.
func ParseProgression(symbols []string) ([]Chord, error) {
	chords := make([]Chord, 0, len(symbols))
	start := 0.0
	for i, sym := range symbols {
		c, err := ParseChord(sym)
		if err != nil {
			return nil, err
		}
		c.Position = i
		c.StartBeats = start
		start += c.DurationBeats
		chords = append(chords, c)
	}
	return chords, nil
}

// IsDominantSeventh reports a dominant-7 quality chord (the only quality
// eligible for secondary-dominant and tritone-substitution treatment).
func (c Chord) IsDominantSeventh() bool {
	return c.Quality == QualityDom7
}

// TriadClass collapses the quality to its triad family: "maj", "min",
// "dim", "aug", or "sus".
func (c Chord) TriadClass() string {
	switch c.Quality {
	case QualityMinor, QualityMin7:
		return "min"
	case QualityDim, QualityDim7, QualityHalfDim:
		return "dim"
	case QualityAug:
		return "aug"
	case QualitySus2, QualitySus4:
		return "sus"
	default:
		return "maj"
	}
}

// WithRoot returns a copy of the chord moved to a new root, keeping quality,
// extensions, and timing. The rendered name replaces the original symbol.
func (c Chord) WithRoot(root PitchClass) Chord {
	moved := c
	moved.Root = root
	moved.Extensions = append([]int(nil), c.Extensions...)
	moved.Symbol = moved.Name()
	return moved
}

// Name renders the chord symbol with sharp-preferred spelling. Use NameIn
// for key-aware spelling.
func (c Chord) Name() string {
	return c.render(c.Root.String(), func(pc PitchClass) string { return pc.String() })
}

// NameIn renders the chord symbol spelled for a key.
func (c Chord) NameIn(key Key) string {
	return c.render(key.SpellPitch(c.Root), key.SpellPitch)
}

func (c Chord) render(rootName string, spell func(PitchClass) string) string {
	var b strings.Builder
	b.WriteString(rootName)
	b.WriteString(qualitySuffix(c.Quality))
	if len(c.Extensions) > 0 {
		parts := make([]string, len(c.Extensions))
		for i, ext := range c.Extensions {
			parts[i] = fmt.Sprintf("%d", ext)
		}
		b.WriteString("(" + strings.Join(parts, ",") + ")")
	}
	if c.Bass != nil {
		b.WriteString("/" + spell(*c.Bass))
	}
	return b.String()
}

func qualitySuffix(q Quality) string {
	switch q {
	case QualityMajor:
		return ""
	case QualityMinor:
		return "m"
	case QualityMin7:
		return "m7"
	case QualityDom7:
		return "7"
	default:
		return string(q)
	}
}
