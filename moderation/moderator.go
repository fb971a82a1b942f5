// Package moderation censors forbidden words in accepted messages
// before they reach the transcript or the counterpart.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator matches a normalized word list with an Aho-Corasick
// automaton and masks the matched spans of the original text.
type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewModerator builds the automaton from the censored word list.
// An empty list yields a pass-through moderator.
func NewModerator(words []string, replacement rune) (*Moderator, error) {
	if len(words) == 0 {
		return &Moderator{replacement: replacement}, nil
	}

	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		if norm := normalize([]rune(w)); len(norm) > 0 {
			patterns = append(patterns, norm)
		}
	}
	if len(patterns) == 0 {
		return &Moderator{replacement: replacement}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, replacement: replacement}, nil
}

// Censor replaces every forbidden span with the replacement rune,
// preserving untouched characters and overall length.
func (m *Moderator) Censor(original string) string {
	if m.matcher == nil {
		return original
	}

	origRunes := []rune(original)
	norm, origIdx := normalizeMapped(origRunes)
	if len(norm) == 0 {
		return original
	}

	spans := m.matcher.MultiPatternSearch(norm, false)
	if len(spans) == 0 {
		return original
	}

	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			origRunes[i] = m.replacement
		}
	}
	return string(origRunes)
}

// normalizeMapped lowercases and strips separators while remembering,
// for each kept rune, its index in the original text.
func normalizeMapped(orig []rune) ([]rune, []int) {
	norm := make([]rune, 0, len(orig))
	idx := make([]int, 0, len(orig))
	for i, r := range orig {
		if skippable(r) {
			continue
		}
		norm = append(norm, unicode.ToLower(r))
		idx = append(idx, i)
	}
	return norm, idx
}

func normalize(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if skippable(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

// skippable runes are ignored during matching so spacing or punctuation
// cannot hide a forbidden word.
func skippable(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}
