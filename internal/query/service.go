// Package query exposes the five analyzer queries over a loaded dataset.
// Every method is read-only, so one Service may serve concurrent callers.
package query

import (
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/analytics"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/dataset"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/tokenizer"
	apperrors "github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/metrics"
)

// Query names used as metric labels.
const (
	QueryListCategories    = "list_categories"
	QueryImagesForCategory = "images_for_category"
	QueryMaxOccurrences    = "max_occurrences"
	QueryMaxDistinctImages = "max_distinct_images"
	QueryTopWords          = "top_words"
)

type Service struct {
	ds      *dataset.Dataset
	stop    tokenizer.StopWords
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates a Service over ds. m may be nil.
func New(ds *dataset.Dataset, stopWords []string, m *metrics.Metrics) *Service {
	return &Service{
		ds:      ds,
		stop:    tokenizer.NewStopWords(stopWords),
		metrics: m,
		logger:  logger.WithComponent("query"),
	}
}

// ListCategories returns the category names present in the corpus, sorted.
func (s *Service) ListCategories() []string {
	defer s.observe(QueryListCategories, time.Now(), nil)
	return s.ds.Index.Names()
}

// HasCategory reports whether name is a category present in the corpus.
func (s *Service) HasCategory(name string) bool {
	return s.ds.Index.Has(name)
}

// ImagesForCategory returns each image labelled name once. Integer keys are
// sorted numerically and printed in canonical form; any other keys follow in
// string order.
func (s *Service) ImagesForCategory(name string) (keys []string, err error) {
	defer func(start time.Time) { s.observe(QueryImagesForCategory, start, err) }(time.Now())
	if !s.ds.Index.Has(name) {
		return nil, apperrors.Newf(apperrors.ErrCategoryNotFound, apperrors.ExitQuery, "%q", name)
	}
	list, _ := s.ds.Index.Images(name)
	return coerceKeys(list.Dedup()), nil
}

func (s *Service) MaxOccurrences() (result analytics.CategoryCount, err error) {
	defer func(start time.Time) { s.observe(QueryMaxOccurrences, start, err) }(time.Now())
	return analytics.MaxOccurrences(s.ds.Index)
}

func (s *Service) MaxDistinctImages() (result analytics.CategoryCount, err error) {
	defer func(start time.Time) { s.observe(QueryMaxDistinctImages, start, err) }(time.Now())
	return analytics.MaxDistinctImages(s.ds.Index)
}

// TopWords recounts the caption words on every call and returns the first n
// of the ranking.
func (s *Service) TopWords(n int) (words []analytics.WordFrequency, err error) {
	defer func(start time.Time) { s.observe(QueryTopWords, start, err) }(time.Now())
	return analytics.TopWords(s.ds.Corpus.Captions(), n, s.stop)
}

func (s *Service) observe(query string, start time.Time, err error) {
	outcome := outcomeOf(err)
	s.logger.Debug("query executed",
		"query", query,
		"outcome", outcome,
		"elapsed", time.Since(start),
	)
	if s.metrics == nil {
		return
	}
	s.metrics.QueriesTotal.WithLabelValues(query, outcome).Inc()
	s.metrics.QueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, apperrors.ErrCategoryNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, apperrors.ErrEmptyResult):
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeInvalid
	}
}

type imageKey struct {
	raw     string
	num     int
	numeric bool
}

func coerceKeys(keys []string) []string {
	parsed := make([]imageKey, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		key := imageKey{raw: k}
		if n, err := strconv.Atoi(k); err == nil {
			key.num, key.numeric = n, true
			key.raw = strconv.Itoa(n)
		}
		// "7" and "007" collapse to the same image once coerced.
		if _, dup := seen[key.raw]; dup {
			continue
		}
		seen[key.raw] = struct{}{}
		parsed = append(parsed, key)
	}
	sort.Slice(parsed, func(i, j int) bool {
		a, b := parsed[i], parsed[j]
		if a.numeric != b.numeric {
			return a.numeric
		}
		if a.numeric {
			return a.num < b.num
		}
		return a.raw < b.raw
	})
	out := make([]string, len(parsed))
	for i, k := range parsed {
		out[i] = k.raw
	}
	return out
}
