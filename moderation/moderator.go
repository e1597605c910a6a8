package moderation

import (
	"chatroom/domain"
	"chatroom/errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator masks censored words. It holds no mutable state after construction,
// so Check is safe to call from any number of goroutines.
type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	obfuscation  bool
	words        []string
}

type TextMapping struct {
	Normalized []rune
	OrigIdx    []int
}

type span struct {
	start int
	end   int
	word  string
}

// NewModerator initializes the Aho-Corasick automaton with a normalized version of the provided censored words list.
// With obfuscation enabled, leet speak is folded and punctuation or spaces are skipped while matching.
func NewModerator(censoredWords []string, censoredChar rune, obfuscation bool) (*Moderator, error) {
	seen := make(map[string]struct{}, len(censoredWords))
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		var normalized []rune
		if obfuscation {
			normalized = normalizeRunes([]rune(word))
		} else {
			normalized = lowerRunes([]rune(strings.TrimSpace(word)))
		}
		if len(normalized) == 0 {
			continue
		}
		if _, ok := seen[string(normalized)]; ok {
			continue
		}
		seen[string(normalized)] = struct{}{}
		patterns = append(patterns, normalized)
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: %w", errors.ErrFilterUnavailable, errors.ErrEmptyWords)
	}
	sort.Slice(patterns, func(i, j int) bool {
		return string(patterns[i]) < string(patterns[j])
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFilterUnavailable, err)
	}
	words := make([]string, len(patterns))
	for i, p := range patterns {
		words[i] = string(p)
	}
	return &Moderator{matcher: m, censoredChar: censoredChar, obfuscation: obfuscation, words: words}, nil
}

// Words returns the normalized, sorted dictionary.
func (m *Moderator) Words() []string {
	return append([]string(nil), m.words...)
}

// Check reports whether the text is clean and returns it with every matched span
// replaced by the same number of censored characters.
func (m *Moderator) Check(original string) (domain.FilterResult, error) {
	if m == nil || m.matcher == nil {
		return domain.FilterResult{}, errors.ErrFilterUnavailable
	}
	if strings.TrimSpace(original) == "" {
		return domain.FilterResult{Clean: true, Transformed: original}, nil
	}

	mapping := m.normalize(original)
	if len(mapping.Normalized) == 0 {
		return domain.FilterResult{Clean: true, Transformed: original}, nil
	}

	terms := m.matcher.MultiPatternSearch(mapping.Normalized, false)
	if len(terms) == 0 {
		return domain.FilterResult{Clean: true, Transformed: original}, nil
	}

	spans := make([]span, 0, len(terms))
	for _, term := range terms {
		normStart := term.Pos
		normEnd := normStart + len(term.Word)
		if normStart < 0 || normEnd > len(mapping.OrigIdx) {
			continue
		}
		spans = append(spans, span{
			start: mapping.OrigIdx[normStart],
			end:   mapping.OrigIdx[normEnd-1] + 1,
			word:  string(term.Word),
		})
	}
	if len(spans) == 0 {
		return domain.FilterResult{Clean: true, Transformed: original}, nil
	}

	// Longest match first: a span contained in an earlier, longer span is not reported again.
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	origRunes := []rune(original)
	var words []string
	maxEnd := -1
	for _, s := range spans {
		if s.end <= maxEnd {
			continue
		}
		words = append(words, s.word)
		for i := s.start; i < s.end; i++ {
			origRunes[i] = m.censoredChar
		}
		maxEnd = s.end
	}

	return domain.FilterResult{
		Clean:       false,
		Transformed: string(origRunes),
		Words:       words,
	}, nil
}

// normalize transforms the input string into a searchable format and tracks original rune positions.
func (m *Moderator) normalize(input string) TextMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		if m.obfuscation {
			r = simplifyRune(r)
			if isNoise(r) {
				continue
			}
		}
		norm = append(norm, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return TextMapping{Normalized: norm, OrigIdx: origIdx}
}

func lowerRunes(input []rune) []rune {
	out := make([]rune, len(input))
	for i, r := range input {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// normalizeRunes applies simplification and noise removal to a slice of runes.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common Leet speak characters back to their standard alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters that should be ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
