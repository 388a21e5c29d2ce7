package prosody

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRhymes_GroupsByLineEndings(t *testing.T) {
	text := "turn on the light\nwe dance all night\nstars burning bright\nfeel the groove"
	groups := AnalyzeRhymes(text)

	require.Len(t, groups, 1, "groove has no partner")
	group := groups[0]
	assert.Equal(t, "ht", group.Pattern)
	assert.Equal(t, []string{"light", "night", "bright"}, group.Words)
	assert.Equal(t, []int{0, 1, 2}, group.LineNumbers)
	assert.Equal(t, RhymePerfect, group.Strength)
}

func TestAnalyzeRhymes_FirstAppearanceOrder(t *testing.T) {
	text := "day\nway\nmoon\nsoon\nplay"
	groups := AnalyzeRhymes(text)

	require.Len(t, groups, 2)
	assert.Equal(t, "ay", groups[0].Pattern)
	assert.Equal(t, []string{"day", "way", "play"}, groups[0].Words)
	assert.Equal(t, []int{0, 1, 4}, groups[0].LineNumbers)
	assert.Equal(t, "on", groups[1].Pattern)
	assert.Equal(t, []string{"moon", "soon"}, groups[1].Words)
}

func TestAnalyzeRhymes_TwoCharHeuristicMissesRealRhymes(t *testing.T) {
	// high/sky/by rhyme to the ear but share no two-character suffix, so
	// the heuristic reports nothing.
	groups := AnalyzeRhymes("so high\nin the sky\nrolling by")
	assert.Empty(t, groups)
}

func TestAnalyzeRhymes_IgnoresCaseAndPunctuation(t *testing.T) {
	groups := AnalyzeRhymes("Hold me TIGHT!\nin the night.")
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"tight", "night"}, groups[0].Words)
}

func TestAnalyzeRhymes_ShortFinalWords(t *testing.T) {
	// Two-letter words key on the whole word, so "so" does not join the
	// "go" group even though they rhyme.
	groups := AnalyzeRhymes("we go\nso so\nlet go")
	require.Len(t, groups, 1)
	assert.Equal(t, "go", groups[0].Pattern)
	assert.Equal(t, []string{"go", "go"}, groups[0].Words)
	assert.Equal(t, []int{0, 2}, groups[0].LineNumbers)
}

func TestAnalyzeRhymes_Idempotent(t *testing.T) {
	text := "day\nway\nmoon\nsoon"
	first := AnalyzeRhymes(text)
	second := AnalyzeRhymes(text)
	assert.Equal(t, first, second)
}

func TestAnalyzeRhymes_EmptyAndBlankLines(t *testing.T) {
	assert.Empty(t, AnalyzeRhymes(""))
	assert.Empty(t, AnalyzeRhymes("one line only"))

	groups := AnalyzeRhymes("light\n\n\nnight")
	require.Len(t, groups, 1)
	assert.Equal(t, []int{0, 3}, groups[0].LineNumbers)
}
