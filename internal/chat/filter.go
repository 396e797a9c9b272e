package chat

import (
	"strings"
	"unicode"

	"github.com/coregx/ahocorasick"
)

// badWords is the built-in Portuguese profanity list. Custom words added
// by the admin are layered on top of it at filter build time.
var badWords = []string{
	"idiota", "burro", "estupido", "estúpido", "imbecil", "trouxa",
	"palavrão", "merda", "bosta", "pqp", "caralho", "porra", "inferno", "demonio",
}

// IsBuiltinWord reports whether w is already covered by the built-in list.
func IsBuiltinWord(w string) bool {
	w = strings.ToLower(strings.TrimSpace(w))
	for _, b := range badWords {
		if b == w {
			return true
		}
	}
	return false
}

// Filter masks profane words in chat text. Matching is case-insensitive
// and bounded to whole words, so "burro" is masked but "burrice" is not.
type Filter struct {
	ac       *ahocorasick.Automaton
	patterns []string
}

// NewFilter compiles the built-in list plus any custom words into a
// single automaton. Custom words are lowercased; duplicates are harmless
// because every pattern masks to the same replacement.
func NewFilter(custom []string) (*Filter, error) {
	patterns := make([]string, 0, len(badWords)+len(custom))
	patterns = append(patterns, badWords...)
	for _, w := range custom {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			patterns = append(patterns, w)
		}
	}

	ac, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	return &Filter{ac: ac, patterns: patterns}, nil
}

// Clean returns text with every whole-word profanity replaced by a run
// of '*' the length of the matched word.
func (f *Filter) Clean(text string) string {
	if f == nil || f.ac == nil || text == "" {
		return text
	}

	lower := strings.ToLower(text)
	matches := f.ac.FindAllOverlapping([]byte(lower))
	if len(matches) == 0 {
		return text
	}

	masked := []rune(text)
	lowerRunes := []rune(lower)
	// Byte offset -> rune index, valid while ToLower preserves rune count
	// for the characters we match on.
	byteToRune := make(map[int]int, len(lowerRunes)+1)
	pos := 0
	for i, r := range lowerRunes {
		byteToRune[pos] = i
		pos += len(string(r))
	}
	byteToRune[pos] = len(lowerRunes)

	for _, m := range matches {
		start, ok := byteToRune[m.Start]
		if !ok {
			continue
		}
		end, ok := byteToRune[m.End]
		if !ok {
			continue
		}
		if !wholeWord(lowerRunes, start, end) {
			continue
		}
		for i := start; i < end; i++ {
			masked[i] = '*'
		}
	}
	return string(masked)
}

func wholeWord(runes []rune, start, end int) bool {
	if start > 0 && isWordRune(runes[start-1]) {
		return false
	}
	if end < len(runes) && isWordRune(runes[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
