// Package contentfilter screens lyric and prompt text against keyword
// banks before it reaches downstream tooling. It is a regex classifier,
// not a moderation model: expect false positives and false negatives on
// anything subtler than a plain keyword hit, and layer a real classifier
// on top for production moderation.
package contentfilter

import (
	"regexp"
	"strings"

	"github.com/songcraft-labs/songcraft-api/pkg/embedded"
)

// Category labels the bank that flagged a term.
type Category string

const (
	CategoryHateful  Category = "hateful"
	CategoryExplicit Category = "explicit"
	CategoryOffStyle Category = "off_style"
)

// Policy selects which checks run. Each bank is gated independently;
// StyleDescriptorsOnly switches to vocabulary extraction instead.
type Policy struct {
	BlockHateful         bool `json:"blockHateful"`
	BlockExplicit        bool `json:"blockExplicit"`
	StyleDescriptorsOnly bool `json:"styleDescriptorsOnly"`
}

// DefaultPolicy blocks hateful and explicit content.
func DefaultPolicy() Policy {
	return Policy{BlockHateful: true, BlockExplicit: true}
}

// StrictPolicy additionally restricts text to style descriptors.
func StrictPolicy() Policy {
	return Policy{BlockHateful: true, BlockExplicit: true, StyleDescriptorsOnly: true}
}

// Issue reports a single flagged term.
type Issue struct {
	Category Category `json:"category"`
	Term     string   `json:"term"`
}

// Result is the outcome of a validation pass. FilteredContent holds the
// input with flagged spans replaced, or the extracted descriptor list in
// style-only mode.
type Result struct {
	Valid           bool     `json:"valid"`
	Issues          []Issue  `json:"issues,omitempty"`
	FilteredContent string   `json:"filteredContent,omitempty"`
	Suggestions     []string `json:"suggestions,omitempty"`
}

type contentBank struct {
	category    Category
	pattern     *regexp.Regexp
	placeholder string
}

var contentBanks = []contentBank{
	{
		category:    CategoryHateful,
		pattern:     regexp.MustCompile(`(?i)\b(hate\w*|hatred|bigot\w*|racist\w*|nazi\w*)\b`),
		placeholder: "[removed]",
	},
	{
		category:    CategoryExplicit,
		pattern:     regexp.MustCompile(`(?i)\b(damn\w*|hell|sex\w*|drugs?|violence|violent|kill\w*|murder\w*)\b`),
		placeholder: "[explicit]",
	},
}

func (b contentBank) enabledIn(policy Policy) bool {
	switch b.category {
	case CategoryHateful:
		return policy.BlockHateful
	case CategoryExplicit:
		return policy.BlockExplicit
	}
	return false
}

var wordPattern = regexp.MustCompile(`[a-z0-9']+`)

// styleVocabulary is the union of the embedded genre, mood, tempo,
// instrument and era word lists.
var styleVocabulary = buildVocabulary()

func buildVocabulary() map[string]bool {
	vocab := make(map[string]bool)
	sources := [][]byte{
		embedded.GenresTxt,
		embedded.MoodsTxt,
		embedded.TemposTxt,
		embedded.InstrumentsTxt,
		embedded.ErasTxt,
	}
	for _, raw := range sources {
		for _, line := range strings.Split(string(raw), "\n") {
			word := strings.ToLower(strings.TrimSpace(line))
			if word == "" {
				continue
			}
			vocab[word] = true
		}
	}
	return vocab
}

// Validate screens content under the given policy. In style-only mode
// every word outside the style vocabulary is a violation and the
// filtered content is the list of recognized descriptors; otherwise each
// enabled bank flags its matches and replaces them with the bank's
// placeholder token.
func Validate(content string, policy Policy) Result {
	if policy.StyleDescriptorsOnly {
		return validateStyleOnly(content)
	}

	result := Result{Valid: true, FilteredContent: content}
	for _, bank := range contentBanks {
		if !bank.enabledIn(policy) {
			continue
		}
		for _, term := range bank.pattern.FindAllString(content, -1) {
			result.Issues = append(result.Issues, Issue{
				Category: bank.category,
				Term:     strings.ToLower(term),
			})
		}
		result.FilteredContent = bank.pattern.ReplaceAllString(result.FilteredContent, bank.placeholder)
	}

	if len(result.Issues) > 0 {
		result.Valid = false
		result.Suggestions = suggestionsFor(result.Issues)
	}
	return result
}

func validateStyleOnly(content string) Result {
	result := Result{Valid: true}
	var descriptors []string
	for _, word := range wordPattern.FindAllString(strings.ToLower(content), -1) {
		if styleVocabulary[word] {
			descriptors = append(descriptors, word)
			continue
		}
		result.Issues = append(result.Issues, Issue{Category: CategoryOffStyle, Term: word})
	}
	result.FilteredContent = strings.Join(descriptors, " ")
	if len(result.Issues) > 0 {
		result.Valid = false
		result.Suggestions = suggestionsFor(result.Issues)
	}
	return result
}

var categorySuggestions = map[Category]string{
	CategoryHateful:  "Remove hostile language and keep the focus on the music",
	CategoryExplicit: "Soften explicit wording for a radio friendly lyric",
	CategoryOffStyle: "Describe the track with style words only: genre, mood, tempo, instruments, era",
}

func suggestionsFor(issues []Issue) []string {
	var suggestions []string
	seen := make(map[Category]bool)
	for _, issue := range issues {
		if seen[issue.Category] {
			continue
		}
		seen[issue.Category] = true
		if s, ok := categorySuggestions[issue.Category]; ok {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}
