// Package dataset loads the category table and the annotation corpus at
// startup and derives the category index from them. The resulting Dataset
// is read-only and may be shared by any number of goroutines.
package dataset

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/category"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/corpus"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/index"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/metrics"
)

type Dataset struct {
	Table  category.Table
	Corpus *corpus.Corpus
	Index  *index.CategoryIndex
}

// New derives the index for an already loaded table and corpus.
func New(table category.Table, c *corpus.Corpus) *Dataset {
	return &Dataset{
		Table:  table,
		Corpus: c,
		Index:  index.Build(c, table),
	}
}

// Open reads both input files in parallel and builds the index. Either load
// failing aborts the other and is returned. m may be nil.
func Open(ctx context.Context, cfg config.DataConfig, m *metrics.Metrics) (*Dataset, error) {
	log := logger.WithComponent("dataset")

	var (
		table category.Table
		c     *corpus.Corpus
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		t, err := category.LoadFile(cfg.CategoriesPath)
		if err != nil {
			return err
		}
		if err := gctx.Err(); err != nil {
			return err
		}
		observeLoad(m, "categories", start)
		log.Info("category table loaded",
			"path", cfg.CategoriesPath,
			"entries", t.Len(),
			"elapsed", time.Since(start),
		)
		table = t
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		loaded, err := corpus.LoadFile(cfg.AnnotationsPath)
		if err != nil {
			return err
		}
		if err := gctx.Err(); err != nil {
			return err
		}
		observeLoad(m, "annotations", start)
		log.Info("annotation corpus loaded",
			"path", cfg.AnnotationsPath,
			"records", loaded.Len(),
			"elapsed", time.Since(start),
		)
		c = loaded
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}

	ds := New(table, c)
	if m != nil {
		m.CategoryTableSize.Set(float64(table.Len()))
		m.CorpusRecords.Set(float64(c.Len()))
		m.CorpusCategories.Set(float64(ds.Index.Len()))
	}
	log.Info("category index built", "categories", ds.Index.Len())
	return ds, nil
}

func observeLoad(m *metrics.Metrics, source string, start time.Time) {
	if m == nil {
		return
	}
	m.LoadDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}
