package analytics

import (
	"errors"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/category"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/corpus"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/index"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stop = tokenizer.NewStopWords(config.DefaultStopWords)

func sampleCorpus() *corpus.Corpus {
	return corpus.New(
		corpus.Record{Key: "img1", CategoryLabels: []int{1, 1, 2}, Captions: []string{"A cat and a dog."}},
		corpus.Record{Key: "img2", CategoryLabels: []int{2}, Captions: []string{"The dog runs."}},
	)
}

func sampleIndex() *index.CategoryIndex {
	return index.Build(sampleCorpus(), category.Table{1: "cat", 2: "dog"})
}

func TestMaxOccurrencesTieGoesAlphabetical(t *testing.T) {
	got, err := MaxOccurrences(sampleIndex())
	require.NoError(t, err)
	assert.Equal(t, CategoryCount{Name: "cat", Count: 2}, got)
}

func TestMaxDistinctImages(t *testing.T) {
	got, err := MaxDistinctImages(sampleIndex())
	require.NoError(t, err)
	assert.Equal(t, CategoryCount{Name: "dog", Count: 2}, got)
}

func TestMaxDistinctImagesTie(t *testing.T) {
	c := corpus.New(
		corpus.Record{Key: "1", CategoryLabels: []int{3, 1}},
		corpus.Record{Key: "2", CategoryLabels: []int{1, 3, 3}},
	)
	ix := index.Build(c, category.Table{1: "zebra", 3: "ant"})

	got, err := MaxDistinctImages(ix)
	require.NoError(t, err)
	assert.Equal(t, CategoryCount{Name: "ant", Count: 2}, got)

	occ, err := MaxOccurrences(ix)
	require.NoError(t, err)
	assert.Equal(t, CategoryCount{Name: "ant", Count: 3}, occ)
}

func TestDistinctNeverExceedsTotal(t *testing.T) {
	c := corpus.New(
		corpus.Record{Key: "1", CategoryLabels: []int{1, 1, 1, 2}},
		corpus.Record{Key: "2", CategoryLabels: []int{2}},
		corpus.Record{Key: "3", CategoryLabels: []int{2, 3}},
	)
	ix := index.Build(c, category.Table{1: "a", 2: "b", 3: "c"})
	occ, err := MaxOccurrences(ix)
	require.NoError(t, err)
	distinct, err := MaxDistinctImages(ix)
	require.NoError(t, err)
	assert.LessOrEqual(t, distinct.Count, occ.Count)
}

func TestMaxOnEmptyIndex(t *testing.T) {
	ix := index.Build(corpus.New(), category.Table{})

	_, err := MaxOccurrences(ix)
	assert.True(t, errors.Is(err, apperrors.ErrEmptyResult))

	_, err = MaxDistinctImages(ix)
	assert.True(t, errors.Is(err, apperrors.ErrEmptyResult))
}
