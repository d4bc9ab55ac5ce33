// Package metrics defines the Prometheus metric collectors used by the
// analyzer and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Query outcomes recorded on QueriesTotal.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeEmpty    = "empty"
)

// Metrics holds all Prometheus collectors for the analyzer.
type Metrics struct {
	QueriesTotal      *prometheus.CounterVec
	QueryDuration     *prometheus.HistogramVec
	LoadDuration      *prometheus.HistogramVec
	CorpusRecords     prometheus.Gauge
	CorpusCategories  prometheus.Gauge
	CategoryTableSize prometheus.Gauge
}

// New creates the collectors and registers them on reg. A nil reg falls back
// to the global default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "annotation_queries_total",
				Help: "Total analyzer queries by query name and outcome.",
			},
			[]string{"query", "outcome"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "annotation_query_duration_seconds",
				Help:    "Analyzer query latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"query"},
		),
		LoadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "annotation_load_duration_seconds",
				Help:    "Time spent loading each input source.",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"source"},
		),
		CorpusRecords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "annotation_corpus_records",
				Help: "Number of image records in the loaded corpus.",
			},
		),
		CorpusCategories: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "annotation_corpus_categories",
				Help: "Number of distinct categories present in the corpus.",
			},
		),
		CategoryTableSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "annotation_category_table_size",
				Help: "Number of entries in the category table.",
			},
		),
	}

	reg.MustRegister(
		m.QueriesTotal,
		m.QueryDuration,
		m.LoadDuration,
		m.CorpusRecords,
		m.CorpusCategories,
		m.CategoryTableSize,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler for g.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// CounterValue reads the current value of a counter. It returns 0 for
// metrics that are not counters.
func CounterValue(c prometheus.Metric) float64 {
	var pb dto.Metric
	if err := c.Write(&pb); err != nil || pb.Counter == nil {
		return 0
	}
	return pb.Counter.GetValue()
}

// GaugeValue reads the current value of a gauge. It returns 0 for metrics
// that are not gauges.
func GaugeValue(g prometheus.Metric) float64 {
	var pb dto.Metric
	if err := g.Write(&pb); err != nil || pb.Gauge == nil {
		return 0
	}
	return pb.Gauge.GetValue()
}
