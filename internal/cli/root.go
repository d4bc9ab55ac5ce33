// Package cli implements the annotations command: one-shot subcommands for
// each analyzer query and the interactive menu.
package cli

import (
	"context"
	"fmt"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/dataset"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/internal/query"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/health"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/image-annotation-analytics/pkg/metrics"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfgFile         string
	annotationsPath string
	categoriesPath  string
	logLevel        string
	logFormat       string

	cfg             *config.Config
	registry        *prometheus.Registry
	metrics         *metrics.Metrics
	checker         *health.Checker
	ready           atomic.Bool
	shutdownMetrics func(context.Context) error
}

var errDatasetNotLoaded = errors.New("dataset not loaded")

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "annotations",
		Short: "Analyze image annotation categories and captions",
		Long: `annotations loads a category table and a JSON annotation corpus and answers
questions about them: which categories exist, which images show a category,
which category occurs most and which caption words are most frequent.

Run "annotations menu" for the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "path to YAML config file")
	flags.StringVar(&a.annotationsPath, "annotations", "", "path to the JSON annotation file")
	flags.StringVar(&a.categoriesPath, "categories", "", "path to the category file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")

	root.AddCommand(
		a.newCategoriesCommand(),
		a.newImagesCommand(),
		a.newMaxInstancesCommand(),
		a.newMaxImagesCommand(),
		a.newWordsCommand(),
		a.newMenuCommand(),
	)
	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.annotationsPath != "" {
		cfg.Data.AnnotationsPath = a.annotationsPath
	}
	if a.categoriesPath != "" {
		cfg.Data.CategoriesPath = a.categoriesPath
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	a.cfg = cfg

	logger.SetupWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	a.registry = prometheus.NewRegistry()
	a.metrics = metrics.New(a.registry)
	a.checker = health.NewChecker()
	a.checker.Register("dataset", func(context.Context) error {
		if !a.ready.Load() {
			return errDatasetNotLoaded
		}
		return nil
	})
	if cfg.Metrics.Enabled {
		a.shutdownMetrics = metrics.StartServer(cfg.Metrics.Port, a.registry, a.checker)
	}
	slog.Debug("configuration loaded",
		"command", cmd.Name(),
		"annotations", cfg.Data.AnnotationsPath,
		"categories", cfg.Data.CategoriesPath,
		"metrics", cfg.Metrics.Enabled,
	)
	return nil
}

func (a *app) close() error {
	if a.shutdownMetrics == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdownMetrics(ctx); err != nil {
		return fmt.Errorf("stopping metrics server: %w", err)
	}
	return nil
}

// service loads the dataset named by the configuration.
func (a *app) service(ctx context.Context) (*query.Service, error) {
	if a.cfg.Data.AnnotationsPath == "" {
		return nil, fmt.Errorf("no annotation file given (use --annotations or data.annotationsPath)")
	}
	if a.cfg.Data.CategoriesPath == "" {
		return nil, fmt.Errorf("no category file given (use --categories or data.categoriesPath)")
	}
	ds, err := dataset.Open(ctx, a.cfg.Data, a.metrics)
	if err != nil {
		return nil, err
	}
	a.ready.Store(true)
	logger.FromContext(ctx).Debug("dataset ready",
		"records", ds.Corpus.Len(),
		"categories", ds.Index.Len(),
	)
	return query.New(ds, a.cfg.Analysis.StopWords, a.metrics), nil
}
