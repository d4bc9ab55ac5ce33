package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/health"
)

// StartServer serves /metrics from g and, when checker is not nil, /healthz
// in the background. The returned function stops the server.
func StartServer(port int, g prometheus.Gatherer, checker *health.Checker) (shutdown func(context.Context) error) {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      newMux(g, checker),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("metrics server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server error", "error", err)
		}
	}()

	return server.Shutdown
}

func newMux(g prometheus.Gatherer, checker *health.Checker) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))
	if checker != nil {
		mux.Handle("/healthz", checker.Handler())
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body><h1>Annotation Analyzer Metrics</h1><p><a href="/metrics">/metrics</a></p></body></html>`)
	})
	return mux
}
