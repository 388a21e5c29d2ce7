package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChart_Symbols(t *testing.T) {
	chords, err := ParseProgression([]string{"C", "Am", "F", "G"})
	require.NoError(t, err)

	chart, err := RenderChart(chords, MustKey("C"), ChartSymbols)
	require.NoError(t, err)
	assert.Equal(t, "Key: C major\n| C | Am | F | G |\n", chart)
}

func TestRenderChart_Roman(t *testing.T) {
	chords, err := ParseProgression([]string{"C", "Am", "F", "G7"})
	require.NoError(t, err)

	chart, err := RenderChart(chords, MustKey("C"), ChartRoman)
	require.NoError(t, err)
	assert.Equal(t, "Key: C major\n| I | vi | IV | V7 |\n", chart)
}

func TestRenderChart_Nashville(t *testing.T) {
	chords, err := ParseProgression([]string{"C", "Am", "F", "G"})
	require.NoError(t, err)

	chart, err := RenderChart(chords, MustKey("C"), ChartNashville)
	require.NoError(t, err)
	assert.Equal(t, "Key: C major\n| 1 | 6m | 4 | 5 |\n", chart)
}

func TestRenderChart_WrapsAtFourBars(t *testing.T) {
	chords, err := ParseProgression([]string{"C", "Am", "F", "G", "C"})
	require.NoError(t, err)

	chart, err := RenderChart(chords, MustKey("C"), ChartSymbols)
	require.NoError(t, err)
	assert.Equal(t, "Key: C major\n| C | Am | F | G |\n| C |\n", chart)
}

func TestRenderChart_KeySpelling(t *testing.T) {
	chords, err := ParseProgression([]string{"F", "Bb7", "C7", "F"})
	require.NoError(t, err)

	chart, err := RenderChart(chords, MustKey("F"), ChartSymbols)
	require.NoError(t, err)
	assert.Contains(t, chart, "Bb7", "flat keys keep flat spellings")
}

func TestRenderChart_EmptyProgression(t *testing.T) {
	chart, err := RenderChart(nil, MustKey("C"), ChartSymbols)
	require.NoError(t, err)
	assert.Equal(t, "Key: C major\n", chart)
}

func TestRenderChart_UnknownFormat(t *testing.T) {
	_, err := RenderChart(nil, MustKey("C"), ChartFormat("tab"))
	assert.Error(t, err)
}

func TestRenderChart_DefaultFormat(t *testing.T) {
	chords, err := ParseProgression([]string{"C"})
	require.NoError(t, err)

	chart, err := RenderChart(chords, MustKey("C"), "")
	require.NoError(t, err)
	assert.Equal(t, "Key: C major\n| C |\n", chart)
}
