package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRomanNumeral(t *testing.T) {
	key := MustKey("C")

	tests := []struct {
		symbol   string
		expected string
	}{
		{"C", "I"},
		{"Dm7", "ii7"},
		{"Em", "iii"},
		{"F", "IV"},
		{"G7", "V7"},
		{"Am", "vi"},
		{"Bdim", "vii°"},
		{"Bm7b5", "viiø7"},
		{"Cmaj7", "Imaj7"},
		{"Caug", "I+"},
		{"Bb", "bVII"},
		{"Ab", "bVI"},
		{"Fm", "iv"},
		{"Db7", "bII7"},
		{"D7", "II7"},
		{"C9", "I7(9)"},
	}

	for _, tt := range tests {
		c, err := ParseChord(tt.symbol)
		require.NoError(t, err, "symbol %s", tt.symbol)
		assert.Equal(t, tt.expected, RomanNumeral(c, key), "symbol %s", tt.symbol)
	}
}

func TestRomanNumeral_TransposesWithKey(t *testing.T) {
	c, err := ParseChord("C7")
	require.NoError(t, err)

	// C7 reads V7 in F but bII7 in B.
	assert.Equal(t, "V7", RomanNumeral(c, MustKey("F")))
	assert.Equal(t, "bII7", RomanNumeral(c, MustKey("B")))
}

func TestNashvilleNumber(t *testing.T) {
	key := MustKey("C")

	tests := []struct {
		symbol   string
		expected string
	}{
		{"C", "1"},
		{"Dm", "2m"},
		{"Em7", "3m7"},
		{"F", "4"},
		{"G7", "57"},
		{"Am", "6m"},
		{"Bb", "b7"},
		{"Bdim", "7°"},
	}

	for _, tt := range tests {
		c, err := ParseChord(tt.symbol)
		require.NoError(t, err, "symbol %s", tt.symbol)
		assert.Equal(t, tt.expected, NashvilleNumber(c, key), "symbol %s", tt.symbol)
	}
}
