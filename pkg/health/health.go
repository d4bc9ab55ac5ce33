// Package health reports whether the process is ready to answer queries.
// Components register a Check and the Checker folds the results into a
// Report that the metrics server exposes at /healthz.
package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/logger"
)

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Check returns nil when the component is usable.
type Check func(ctx context.Context) error

// Report is the aggregated result of all registered checks. Components maps
// each check name to "up" or to the error it returned.
type Report struct {
	Status     Status            `json:"status"`
	Components map[string]string `json:"components"`
	Timestamp  string            `json:"timestamp"`
}

type Checker struct {
	mu     sync.RWMutex
	checks map[string]Check
	logger *slog.Logger
}

func NewChecker() *Checker {
	return &Checker{
		checks: make(map[string]Check),
		logger: logger.WithComponent("health"),
	}
}

// Register adds or replaces the check called name.
func (c *Checker) Register(name string, check Check) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Run executes every check in name order. The report is down when any check
// fails or when nothing is registered.
func (c *Checker) Run(ctx context.Context) Report {
	c.mu.RLock()
	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	checks := make(map[string]Check, len(c.checks))
	for name, check := range c.checks {
		checks[name] = check
	}
	c.mu.RUnlock()
	sort.Strings(names)

	report := Report{
		Status:     StatusUp,
		Components: make(map[string]string, len(names)),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if len(names) == 0 {
		report.Status = StatusDown
		return report
	}
	for _, name := range names {
		if err := checks[name](ctx); err != nil {
			c.logger.Debug("health check failed", "check", name, "error", err)
			report.Components[name] = err.Error()
			report.Status = StatusDown
			continue
		}
		report.Components[name] = string(StatusUp)
	}
	return report
}

// Handler serves the current Report as JSON, with 503 while any check fails.
func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		report := c.Run(ctx)
		w.Header().Set("Content-Type", "application/json")
		if report.Status == StatusUp {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(report)
	}
}
