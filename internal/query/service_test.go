package query

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/analytics"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/category"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/corpus"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/dataset"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/metrics"
)

func newService(t *testing.T, records ...corpus.Record) (*Service, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	ds := dataset.New(category.Table{1: "cat", 2: "dog", 3: "bird"}, corpus.New(records...))
	return New(ds, config.DefaultStopWords, m), m
}

func sampleRecords() []corpus.Record {
	return []corpus.Record{
		{Key: "10", CategoryLabels: []int{1, 1, 2}, Captions: []string{"A cat and a dog."}},
		{Key: "9", CategoryLabels: []int{2}, Captions: []string{"The dog runs."}},
		{Key: "009", CategoryLabels: []int{2}, Captions: nil},
		{Key: "100", CategoryLabels: []int{2, 2}, Captions: []string{}},
	}
}

func TestListCategories(t *testing.T) {
	svc, m := newService(t, sampleRecords()...)
	assert.Equal(t, []string{"cat", "dog"}, svc.ListCategories())
	assert.Equal(t, 1.0, metrics.CounterValue(m.QueriesTotal.WithLabelValues(QueryListCategories, metrics.OutcomeOK)))
}

func TestImagesForCategoryDedupAndNumericSort(t *testing.T) {
	svc, _ := newService(t, sampleRecords()...)

	keys, err := svc.ImagesForCategory("dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "10", "100"}, keys)

	keys, err = svc.ImagesForCategory("cat")
	require.NoError(t, err)
	assert.Equal(t, []string{"10"}, keys)
}

func TestImagesForCategoryNonNumericKeysLast(t *testing.T) {
	svc, _ := newService(t,
		corpus.Record{Key: "img_b", CategoryLabels: []int{1}},
		corpus.Record{Key: "img_a", CategoryLabels: []int{1, 1}},
		corpus.Record{Key: "3", CategoryLabels: []int{1}},
	)
	keys, err := svc.ImagesForCategory("cat")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "img_a", "img_b"}, keys)
}

func TestImagesForCategoryNotFound(t *testing.T) {
	svc, m := newService(t, sampleRecords()...)

	_, err := svc.ImagesForCategory("fish")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCategoryNotFound))

	// "bird" is in the table but not in the corpus.
	_, err = svc.ImagesForCategory("bird")
	assert.True(t, errors.Is(err, apperrors.ErrCategoryNotFound))

	assert.Equal(t, 2.0, metrics.CounterValue(m.QueriesTotal.WithLabelValues(QueryImagesForCategory, metrics.OutcomeNotFound)))
}

func TestMaxQueries(t *testing.T) {
	svc, _ := newService(t, sampleRecords()...)

	occ, err := svc.MaxOccurrences()
	require.NoError(t, err)
	assert.Equal(t, analytics.CategoryCount{Name: "dog", Count: 5}, occ)

	imgs, err := svc.MaxDistinctImages()
	require.NoError(t, err)
	assert.Equal(t, analytics.CategoryCount{Name: "dog", Count: 4}, imgs)
}

func TestEmptyCorpus(t *testing.T) {
	svc, m := newService(t)

	assert.Empty(t, svc.ListCategories())

	_, err := svc.MaxOccurrences()
	assert.True(t, errors.Is(err, apperrors.ErrEmptyResult))
	_, err = svc.MaxDistinctImages()
	assert.True(t, errors.Is(err, apperrors.ErrEmptyResult))

	words, err := svc.TopWords(10)
	require.NoError(t, err)
	assert.Empty(t, words)

	assert.Equal(t, 1.0, metrics.CounterValue(m.QueriesTotal.WithLabelValues(QueryMaxOccurrences, metrics.OutcomeEmpty)))
}

func TestTopWords(t *testing.T) {
	svc, m := newService(t, sampleRecords()...)

	words, err := svc.TopWords(2)
	require.NoError(t, err)
	assert.Equal(t, []analytics.WordFrequency{{Word: "dog", Count: 2}, {Word: "runs", Count: 1}}, words)

	_, err = svc.TopWords(0)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCount))
	assert.Equal(t, 1.0, metrics.CounterValue(m.QueriesTotal.WithLabelValues(QueryTopWords, metrics.OutcomeInvalid)))
}

func TestServiceWithoutMetrics(t *testing.T) {
	ds := dataset.New(category.Table{1: "cat"}, corpus.New(corpus.Record{Key: "1", CategoryLabels: []int{1}}))
	svc := New(ds, nil, nil)
	assert.True(t, svc.HasCategory("cat"))
	_, err := svc.MaxOccurrences()
	assert.NoError(t, err)
}

func TestConcurrentQueries(t *testing.T) {
	svc, _ := newService(t, sampleRecords()...)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.ImagesForCategory("dog")
			_, _ = svc.TopWords(3)
			_, _ = svc.MaxOccurrences()
		}()
	}
	wg.Wait()
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	FormatCategories(&buf, []string{"cat", "dog"})
	FormatImages(&buf, "dog", []string{"9", "10"})
	FormatMaxOccurrences(&buf, analytics.CategoryCount{Name: "dog", Count: 5})
	FormatMaxImages(&buf, analytics.CategoryCount{Name: "dog", Count: 4})
	FormatTopWords(&buf, 2, []analytics.WordFrequency{{Word: "dog", Count: 2}})

	want := "Categories:\n" +
		"cat, dog\n" +
		"The category dog appears in the following images:\n" +
		"9, 10\n" +
		"Max Instances: the category dog appears 5 times in images.\n" +
		"Max images: the category dog appears in 4 images.\n" +
		"Top 2 words in captions.\n" +
		"word           count\n" +
		"dog                2\n"
	assert.Equal(t, want, buf.String())
}
