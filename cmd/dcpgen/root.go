package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/dcpgen/config"
	"github.com/katalvlaran/dcpgen/generator"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	metrics    bool

	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "dcpgen",
		Short: "Random DCP expression generator",
		Long: `dcpgen builds random expressions from a catalog of convex-analysis atoms.

Convex and concave expressions follow the Disciplined Convex Programming
composition rules; non-DCP expressions carry exactly one deliberate violation.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			_ = a.logger.Sync()
			if !a.metrics {
				return nil
			}
			return a.dumpMetrics(cmd.ErrOrStderr())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML settings file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "print generator metrics to stderr on exit")

	root.AddCommand(newGenerateCmd(a), newQuizCmd(a), newCatalogCmd(a))

	return root
}

// setup loads settings and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.registry = prometheus.NewRegistry()
	return nil
}

// generator assembles a Generator from the loaded settings; seed overrides
// the configured seed when non-zero.
func (a *app) generator(seed int64) (*generator.Generator, error) {
	cat, err := a.cfg.Catalog()
	if err != nil {
		return nil, err
	}
	opts := append(a.cfg.GeneratorOptions(),
		generator.WithCatalog(cat),
		generator.WithLogger(a.logger.Named("generator")),
		generator.WithMetrics(generator.NewMetrics(a.registry)),
	)
	if seed != 0 {
		opts = append(opts, generator.WithSeed(seed))
	}
	return generator.New(opts...), nil
}

// source returns the kind-drawing source: seeded when a seed is known.
func (a *app) source(seed int64) generator.Source {
	if seed == 0 {
		seed = a.cfg.Seed
	}
	if seed == 0 {
		return generator.DefaultSource()
	}
	return rand.New(rand.NewSource(seed))
}

func (a *app) dumpMetrics(w io.Writer) error {
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	return writeFamilies(w, families)
}

// writeFamilies prints families in the Prometheus text exposition format,
// skipping families with no samples.
func writeFamilies(w io.Writer, families []*dto.MetricFamily) error {
	for _, mf := range families {
		if len(mf.GetMetric()) == 0 {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
