// Package analytics computes the aggregate statistics over a category index
// and the caption word ranking over a corpus.
package analytics

import (
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/index"
	apperrors "github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/errors"
)

// CategoryCount is a category together with the statistic it won with.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MaxOccurrences returns the category with the most bounding boxes across
// the corpus, duplicates within an image included.
func MaxOccurrences(ix *index.CategoryIndex) (CategoryCount, error) {
	return maxBy(ix, ix.Occurrences)
}

// MaxDistinctImages returns the category present in the most images.
func MaxDistinctImages(ix *index.CategoryIndex) (CategoryCount, error) {
	return maxBy(ix, ix.DistinctImages)
}

// maxBy walks the names in ascending order and keeps the first strict
// maximum, so ties go to the alphabetically first category.
func maxBy(ix *index.CategoryIndex, stat func(name string) int) (CategoryCount, error) {
	names := ix.Names()
	if len(names) == 0 {
		return CategoryCount{}, apperrors.New(apperrors.ErrEmptyResult, apperrors.ExitQuery, "no categories in corpus")
	}
	best := CategoryCount{Name: names[0], Count: stat(names[0])}
	for _, name := range names[1:] {
		if n := stat(name); n > best.Count {
			best = CategoryCount{Name: name, Count: n}
		}
	}
	return best, nil
}
