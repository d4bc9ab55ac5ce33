package analytics

import (
	"sort"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/tokenizer"
	apperrors "github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/errors"
)

// WordCount maps a caption word to its number of occurrences.
type WordCount map[string]int

type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CountWords tokenizes every caption and tallies the surviving words.
func CountWords(captions []string, stop tokenizer.StopWords) WordCount {
	counts := make(WordCount)
	for _, caption := range captions {
		for _, word := range tokenizer.Tokenize(caption, stop) {
			counts[word]++
		}
	}
	return counts
}

// Rank orders the counts by count descending, then word descending.
func (wc WordCount) Rank() []WordFrequency {
	result := make([]WordFrequency, 0, len(wc))
	for word, count := range wc {
		result = append(result, WordFrequency{Word: word, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Word > result[j].Word
	})
	return result
}

// TopWords ranks the caption words and returns at most n of them. Fewer are
// returned when the captions hold fewer distinct words; none at all is not an
// error.
func TopWords(captions []string, n int, stop tokenizer.StopWords) ([]WordFrequency, error) {
	if n <= 0 {
		return nil, apperrors.Newf(apperrors.ErrInvalidCount, apperrors.ExitQuery, "word count must be positive, got %d", n)
	}
	ranked := CountWords(captions, stop).Rank()
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}
