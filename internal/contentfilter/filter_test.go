package contentfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCleanContent(t *testing.T) {
	result := Validate("city lights and slow dances", DefaultPolicy())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
	assert.Equal(t, "city lights and slow dances", result.FilteredContent)
	assert.Empty(t, result.Suggestions)
}

func TestValidateExplicitContent(t *testing.T) {
	result := Validate("I would kill for that damn groove", DefaultPolicy())

	assert.False(t, result.Valid)
	assert.Equal(t, "I would [explicit] for that [explicit] groove", result.FilteredContent)
	assert.Len(t, result.Issues, 2)
	assert.Equal(t, CategoryExplicit, result.Issues[0].Category)
	assert.Equal(t, "kill", result.Issues[0].Term)
	assert.Equal(t, "damn", result.Issues[1].Term)
	assert.Equal(t, []string{"Soften explicit wording for a radio friendly lyric"}, result.Suggestions)
}

func TestValidateHatefulContent(t *testing.T) {
	result := Validate("Haters gonna hate", DefaultPolicy())

	assert.False(t, result.Valid)
	assert.Equal(t, "[removed] gonna [removed]", result.FilteredContent)
	assert.Len(t, result.Issues, 2)
	for _, issue := range result.Issues {
		assert.Equal(t, CategoryHateful, issue.Category)
	}
}

func TestValidateBothCategories(t *testing.T) {
	result := Validate("hatred and violence", DefaultPolicy())

	assert.False(t, result.Valid)
	assert.Equal(t, "[removed] and [explicit]", result.FilteredContent)

	categories := make(map[Category]int)
	for _, issue := range result.Issues {
		categories[issue.Category]++
	}
	assert.Equal(t, 1, categories[CategoryHateful])
	assert.Equal(t, 1, categories[CategoryExplicit])
	assert.Len(t, result.Suggestions, 2)
}

func TestValidateCategoryGating(t *testing.T) {
	policy := Policy{BlockHateful: true}

	result := Validate("that damn groove", policy)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
	assert.Equal(t, "that damn groove", result.FilteredContent)
}

func TestValidateWordBoundaries(t *testing.T) {
	// "hello" and "shellac" contain "hell" but are not matches.
	result := Validate("hello shellac", DefaultPolicy())

	assert.True(t, result.Valid)
	assert.Equal(t, "hello shellac", result.FilteredContent)
}

func TestValidateStyleDescriptorsOnly(t *testing.T) {
	result := Validate("this is a nice happy pop song", StrictPolicy())

	assert.False(t, result.Valid)
	assert.Equal(t, "happy pop", result.FilteredContent)

	var flagged []string
	for _, issue := range result.Issues {
		assert.Equal(t, CategoryOffStyle, issue.Category)
		flagged = append(flagged, issue.Term)
	}
	assert.Equal(t, []string{"this", "is", "a", "nice", "song"}, flagged)
	assert.Contains(t, result.Suggestions[0], "style words only")
}

func TestValidateStyleDescriptorsOnlyValid(t *testing.T) {
	result := Validate("dreamy 80s synth pop", StrictPolicy())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
	assert.Equal(t, "dreamy 80s synth pop", result.FilteredContent)
}

func TestValidateStyleDescriptorsNormalized(t *testing.T) {
	result := Validate("Upbeat DISCO", StrictPolicy())

	assert.True(t, result.Valid)
	assert.Equal(t, "upbeat disco", result.FilteredContent)
}

func TestStyleVocabularyCoversEveryBank(t *testing.T) {
	for _, word := range []string{"jazz", "melancholy", "midtempo", "guitar", "retro"} {
		assert.True(t, styleVocabulary[word], "expected %q in the style vocabulary", word)
	}
	assert.False(t, styleVocabulary["nice"])
	assert.False(t, styleVocabulary["song"])
}
