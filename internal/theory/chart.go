package theory

import (
	"fmt"
	"strings"
)

// ChartFormat selects how chart cells are rendered.
type ChartFormat string

const (
	ChartSymbols   ChartFormat = "symbol"
	ChartRoman     ChartFormat = "roman"
	ChartNashville ChartFormat = "nashville"
)

const chartBarsPerLine = 4

// RenderChart lays a progression out as a plain-text chart: a key header
// followed by bar lines of four cells, e.g.
//
//	Key: C major
//	| C | Am | F | G |
//
// Symbols are spelled for the key, so Bb stays Bb in F and A# stays A#
// in B.
func RenderChart(chords []Chord, key Key, format ChartFormat) (string, error) {
	render, err := cellRenderer(format)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Key: " + key.Describe() + "\n")
	for i := 0; i < len(chords); i += chartBarsPerLine {
		end := i + chartBarsPerLine
		if end > len(chords) {
			end = len(chords)
		}
		cells := make([]string, 0, chartBarsPerLine)
		for _, c := range chords[i:end] {
			cells = append(cells, render(c, key))
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String(), nil
}

func cellRenderer(format ChartFormat) (func(Chord, Key) string, error) {
	switch format {
	case ChartSymbols, "":
		return Chord.NameIn, nil
	case ChartRoman:
		return RomanNumeral, nil
	case ChartNashville:
		return NashvilleNumber, nil
	default:
		return nil, fmt.Errorf("unknown chart format %q", format)
	}
}
