// Package tokenizer splits caption text into words. It deletes ASCII
// punctuation (so "don't" becomes "dont"), splits on whitespace and drops
// stop-words by exact, case-sensitive match. No case folding or stemming is
// applied.
package tokenizer

import (
	"strings"
)

// Punctuation is the set of characters deleted before splitting.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// StopWords is an immutable set of words excluded from counting.
type StopWords map[string]struct{}

// NewStopWords builds a stop-word set from words.
func NewStopWords(words []string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is a stop-word.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// StripPunctuation removes every punctuation character from text.
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(Punctuation, r) {
			return -1
		}
		return r
	}, text)
}

// Tokenize returns the words of text that survive punctuation stripping and
// stop-word removal, in order of appearance.
func Tokenize(text string, stop StopWords) []string {
	words := strings.Fields(StripPunctuation(text))
	tokens := words[:0]
	for _, word := range words {
		if stop.Contains(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
