package prosody

import "strings"

// RhymeStrength grades a rhyme group. Only perfect groups are produced
// today; slant and assonance exist for callers that grade externally.
type RhymeStrength string

const (
	RhymePerfect   RhymeStrength = "perfect"
	RhymeSlant     RhymeStrength = "slant"
	RhymeAssonance RhymeStrength = "assonance"
)

// RhymeGroup collects the line-ending words sharing one rhyme pattern.
type RhymeGroup struct {
	Pattern     string        `json:"pattern"`
	Words       []string      `json:"words"`
	LineNumbers []int         `json:"lineNumbers"`
	Strength    RhymeStrength `json:"strength"`
}

// AnalyzeRhymes groups lines by the last two characters of each line's
// final word and returns the groups with at least two members, in order of
// first appearance. The two-character key is a coarse stand-in for real
// rhyme detection, so every group reads as perfect.
func AnalyzeRhymes(text string) []RhymeGroup {
	groups := map[string]*RhymeGroup{}
	var order []string

	for lineNumber, line := range strings.Split(strings.ToLower(text), "\n") {
		words := wordPattern.FindAllString(line, -1)
		if len(words) == 0 {
			continue
		}
		last := words[len(words)-1]

		pattern := last
		if len(last) > 2 {
			pattern = last[len(last)-2:]
		}

		group, ok := groups[pattern]
		if !ok {
			group = &RhymeGroup{Pattern: pattern, Strength: RhymePerfect}
			groups[pattern] = group
			order = append(order, pattern)
		}
		group.Words = append(group.Words, last)
		group.LineNumbers = append(group.LineNumbers, lineNumber)
	}

	var result []RhymeGroup
	for _, pattern := range order {
		if group := groups[pattern]; len(group.Words) >= 2 {
			result = append(result, *group)
		}
	}
	return result
}
